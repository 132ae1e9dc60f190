package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.True(t, ValidPhone("98765-43210"))
	assert.True(t, ValidPhone("98 7654 3210"))

	// Country code pushes the digit count past ten
	assert.False(t, ValidPhone("+91 9876543210"))

	assert.False(t, ValidPhone(""))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("98765432101"))
	assert.False(t, ValidPhone("abcdefghij"))
}

func TestValidAadhaar(t *testing.T) {
	assert.True(t, ValidAadhaar("123456789012"))
	assert.True(t, ValidAadhaar("1234 5678 9012"))
	assert.True(t, ValidAadhaar("1234-5678-9012"))

	assert.False(t, ValidAadhaar(""))
	assert.False(t, ValidAadhaar("12345678901"))
	assert.False(t, ValidAadhaar("1234567890123"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("worker@example.com"))
	assert.True(t, ValidEmail("first.last@sub.domain.in"))
	assert.True(t, ValidEmail("  padded@example.com  "))

	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("no-at-sign.com"))
	assert.False(t, ValidEmail("two@@example.com"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Secret12"))
	assert.True(t, ValidPassword("aVeryLongPassword9"))

	assert.False(t, ValidPassword("Short1a"))
	assert.False(t, ValidPassword("alllowercase1"))
	assert.False(t, ValidPassword("ALLUPPERCASE1"))
	assert.False(t, ValidPassword("NoDigitsHere"))
}

func TestStructUsesCustomRules(t *testing.T) {
	type form struct {
		Phone   string `validate:"required,phone10"`
		Aadhaar string `validate:"omitempty,aadhaar12"`
	}

	assert.NoError(t, Struct(form{Phone: "9876543210"}))
	assert.NoError(t, Struct(form{Phone: "9876543210", Aadhaar: "123456789012"}))
	assert.Error(t, Struct(form{Phone: "123"}))
	assert.Error(t, Struct(form{Phone: "9876543210", Aadhaar: "123"}))
}
