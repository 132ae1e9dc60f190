package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type Phone string

func (p Phone) String() string { return string(p) }
func (p Phone) IsEmpty() bool  { return string(p) == "" }

// Digits returns the phone number with every non-digit stripped.
func (p Phone) Digits() string {
	var b strings.Builder
	for _, r := range string(p) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Aadhaar is the Indian national identity number (12 digits).
type Aadhaar string

func (a Aadhaar) String() string { return string(a) }
func (a Aadhaar) IsEmpty() bool  { return string(a) == "" }

func (a Aadhaar) Digits() string {
	var b strings.Builder
	for _, r := range string(a) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid checks the Aadhaar is exactly 12 digits once separators are stripped.
func (a Aadhaar) IsValid() bool {
	return len(a.Digits()) == 12
}

// Money is an amount in whole rupees.
type Money int64

func (m Money) IsPositive() bool { return m > 0 }

type JobType string

func (j JobType) String() string { return string(j) }

// UserRole distinguishes the two sides of the marketplace.
type UserRole string

const (
	RoleJobSeeker UserRole = "job"  // looking for work
	RoleEmployer  UserRole = "hire" // hiring
)

func (r UserRole) IsValid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}
