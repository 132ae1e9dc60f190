package user

import (
	"strings"
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

type User struct {
	ID           kernel.UserID   `db:"id" json:"id"`
	Role         kernel.UserRole `db:"role" json:"role"`
	Name         string          `db:"name" json:"name"`
	Phone        kernel.Phone    `db:"phone" json:"phone"`
	Email        kernel.Email    `db:"email" json:"email"`
	PasswordHash string          `db:"password_hash" json:"-"`

	// Shared profile fields
	Address string `db:"address" json:"address"`
	City    string `db:"city" json:"city"`

	// Job seeker fields
	Aadhaar        kernel.Aadhaar   `db:"aadhaar" json:"aadhaar,omitempty"`
	Experience     string           `db:"experience" json:"experience,omitempty"`
	JobTypes       []kernel.JobType `db:"job_types" json:"job_types,omitempty"`
	ExpectedSalary kernel.Money     `db:"expected_salary" json:"expected_salary,omitempty"`
	Availability   []string         `db:"availability" json:"availability,omitempty"`
	Languages      []string         `db:"languages" json:"languages,omitempty"`

	// Employer fields
	CompanyName         string `db:"company_name" json:"company_name,omitempty"`
	CompanyType         string `db:"company_type" json:"company_type,omitempty"`
	BusinessDescription string `db:"business_description" json:"business_description,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsJobSeeker checks if the user is on the seeking side of the marketplace.
func (u *User) IsJobSeeker() bool {
	return u.Role == kernel.RoleJobSeeker
}

// IsEmployer checks if the user is on the hiring side of the marketplace.
func (u *User) IsEmployer() bool {
	return u.Role == kernel.RoleEmployer
}

// seekerProfileFields are the fields a job seeker must fill for a complete profile.
var seekerProfileFields = []string{
	"name", "phone", "email", "aadhaar", "address", "city",
	"experience", "job_types", "expected_salary", "availability",
}

// employerProfileFields are the fields an employer must fill for a complete profile.
var employerProfileFields = []string{
	"name", "phone", "email", "company_name", "company_type",
	"address", "city", "business_description",
}

// ProfileCompletion returns the percentage of required profile fields that
// are filled, by role.
func (u *User) ProfileCompletion() int {
	fields := employerProfileFields
	if u.IsJobSeeker() {
		fields = seekerProfileFields
	}

	completed := 0
	for _, field := range fields {
		if u.fieldFilled(field) {
			completed++
		}
	}
	return completed * 100 / len(fields)
}

// HasCompleteProfile reports whether every required field is filled.
func (u *User) HasCompleteProfile() bool {
	return u.ProfileCompletion() == 100
}

func (u *User) fieldFilled(field string) bool {
	switch field {
	case "name":
		return u.Name != ""
	case "phone":
		return !u.Phone.IsEmpty()
	case "email":
		return !u.Email.IsEmpty()
	case "aadhaar":
		return !u.Aadhaar.IsEmpty()
	case "address":
		return u.Address != ""
	case "city":
		return u.City != ""
	case "experience":
		return u.Experience != ""
	case "job_types":
		return len(u.JobTypes) > 0
	case "expected_salary":
		return u.ExpectedSalary > 0
	case "availability":
		return len(u.Availability) > 0
	case "company_name":
		return u.CompanyName != ""
	case "company_type":
		return u.CompanyType != ""
	case "business_description":
		return u.BusinessDescription != ""
	default:
		return false
	}
}

// MatchesIdentifier checks whether identifier refers to this user by name,
// phone or email. Name comparison is case-insensitive.
func (u *User) MatchesIdentifier(identifier string) bool {
	if identifier == "" {
		return false
	}
	if strings.EqualFold(u.Name, identifier) {
		return true
	}
	return string(u.Phone) == identifier || string(u.Email) == identifier
}
