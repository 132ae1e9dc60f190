package userinfra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

func freshSignupUser() *user.User {
	now := time.Now()
	return &user.User{
		ID:           kernel.NewUserID("user-1"),
		Role:         kernel.RoleJobSeeker,
		Name:         "Ravi Kumar",
		Phone:        kernel.Phone("9876543210"),
		Email:        kernel.Email("ravi@example.com"),
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestFromEntityStoresEmptyArraysForNilLists(t *testing.T) {
	// A freshly signed-up user has no profile lists yet. The columns must
	// still hold JSON arrays so jsonb array predicates can evaluate them.
	model, err := fromEntity(freshSignupUser())
	require.NoError(t, err)

	assert.Equal(t, "[]", string(model.JobTypes))
	assert.Equal(t, "[]", string(model.Availability))
	assert.Equal(t, "[]", string(model.Languages))
}

func TestFromEntityKeepsPopulatedLists(t *testing.T) {
	u := freshSignupUser()
	u.JobTypes = []kernel.JobType{"Security", "Driver"}
	u.Availability = []string{"full_time"}

	model, err := fromEntity(u)
	require.NoError(t, err)

	assert.JSONEq(t, `["Security","Driver"]`, string(model.JobTypes))
	assert.JSONEq(t, `["full_time"]`, string(model.Availability))
	assert.Equal(t, "[]", string(model.Languages))
}

func TestListRoundTrip(t *testing.T) {
	u := freshSignupUser()
	u.JobTypes = []kernel.JobType{"Electrician"}
	u.Availability = []string{"weekends"}
	u.Languages = []string{"hi", "en"}

	model, err := fromEntity(u)
	require.NoError(t, err)

	restored, err := model.toEntity()
	require.NoError(t, err)

	assert.Equal(t, u.JobTypes, restored.JobTypes)
	assert.Equal(t, u.Availability, restored.Availability)
	assert.Equal(t, u.Languages, restored.Languages)
}

func TestToEntityAcceptsLegacyNullListColumns(t *testing.T) {
	u := freshSignupUser()
	model, err := fromEntity(u)
	require.NoError(t, err)

	// Rows written before list columns defaulted to [] hold jsonb null
	model.JobTypes = []byte("null")
	model.Availability = []byte("null")

	restored, err := model.toEntity()
	require.NoError(t, err)

	assert.Empty(t, restored.JobTypes)
	assert.Empty(t, restored.Availability)
}
