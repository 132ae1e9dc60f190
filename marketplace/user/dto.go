package user

import (
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// UpdateProfileRequest - DTO for partial profile updates. Nil means unchanged.
type UpdateProfileRequest struct {
	Name           *string           `json:"name,omitempty"`
	Phone          *kernel.Phone     `json:"phone,omitempty" validate:"omitempty,phone10"`
	Email          *kernel.Email     `json:"email,omitempty" validate:"omitempty,email"`
	Address        *string           `json:"address,omitempty"`
	City           *string           `json:"city,omitempty"`
	Aadhaar        *kernel.Aadhaar   `json:"aadhaar,omitempty" validate:"omitempty,aadhaar12"`
	Experience     *string           `json:"experience,omitempty"`
	JobTypes       *[]kernel.JobType `json:"job_types,omitempty"`
	ExpectedSalary *kernel.Money     `json:"expected_salary,omitempty" validate:"omitempty,gt=0"`
	Availability   *[]string         `json:"availability,omitempty"`
	Languages      *[]string         `json:"languages,omitempty"`

	CompanyName         *string `json:"company_name,omitempty"`
	CompanyType         *string `json:"company_type,omitempty"`
	BusinessDescription *string `json:"business_description,omitempty"`
}

// ProfileResponse - DTO for returning a profile with its completion percentage.
type ProfileResponse struct {
	User              *User `json:"user"`
	ProfileCompletion int   `json:"profile_completion"`
}

// SearchSeekersRequest - DTO for employers browsing job seekers. All filters
// are optional substring matches; only seekers with complete profiles match.
type SearchSeekersRequest struct {
	Skill      string                   `json:"skill,omitempty"`
	City       string                   `json:"city,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// SeekerResponse - DTO for a browsable job seeker card.
type SeekerResponse struct {
	ID                kernel.UserID    `json:"id"`
	Name              string           `json:"name"`
	City              string           `json:"city"`
	Experience        string           `json:"experience"`
	JobTypes          []kernel.JobType `json:"job_types"`
	ExpectedSalary    kernel.Money     `json:"expected_salary"`
	Availability      []string         `json:"availability"`
	Languages         []string         `json:"languages"`
	ProfileCompletion int              `json:"profile_completion"`
	MemberSince       time.Time        `json:"member_since"`
}

// Response type alias for paginated seekers
type PaginatedSeekersResponse = kernel.Paginated[SeekerResponse]
