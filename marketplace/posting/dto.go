package posting

import (
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// CreatePostingRequest - DTO for publishing a new job posting
type CreatePostingRequest struct {
	Title              string         `json:"title" validate:"required"`
	Location           string         `json:"location" validate:"required"`
	Salary             kernel.Money   `json:"salary" validate:"required,gt=0"`
	JobType            kernel.JobType `json:"job_type" validate:"required"`
	Experience         string         `json:"experience"`
	WorkingHours       string         `json:"working_hours"`
	Urgency            string         `json:"urgency"`
	ContractType       string         `json:"contract_type"`
	Description        string         `json:"description"`
	Requirements       string         `json:"requirements"`
	Benefits           string         `json:"benefits"`
	RequiredCandidates int            `json:"required_candidates" validate:"required,gte=1"`
}

// UpdatePostingRequest - DTO for editing an existing posting
type UpdatePostingRequest struct {
	Title              *string         `json:"title,omitempty"`
	Location           *string         `json:"location,omitempty"`
	Salary             *kernel.Money   `json:"salary,omitempty" validate:"omitempty,gt=0"`
	JobType            *kernel.JobType `json:"job_type,omitempty"`
	Experience         *string         `json:"experience,omitempty"`
	WorkingHours       *string         `json:"working_hours,omitempty"`
	Urgency            *string         `json:"urgency,omitempty"`
	ContractType       *string         `json:"contract_type,omitempty"`
	Description        *string         `json:"description,omitempty"`
	Requirements       *string         `json:"requirements,omitempty"`
	Benefits           *string         `json:"benefits,omitempty"`
	RequiredCandidates *int            `json:"required_candidates,omitempty" validate:"omitempty,gte=1"`
}

// SearchPostingsRequest - filters for the public posting feed
type SearchPostingsRequest struct {
	Query      string                   `json:"query"`
	Location   string                   `json:"location"`
	JobType    kernel.JobType           `json:"job_type"`
	MinSalary  kernel.Money             `json:"min_salary"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// PostingResponse is the employer-facing view with derived hiring state
type PostingResponse struct {
	*Posting
	Status            Status `json:"status"`
	RemainingSlots    int    `json:"remaining_slots"`
	ApplicationsCount int    `json:"applications_count"`
}

// PublicPostingResponse is the seeker-facing view of an open posting
type PublicPostingResponse struct {
	ID             kernel.PostingID `json:"id"`
	EmployerID     kernel.UserID    `json:"employer_id"`
	CompanyName    string           `json:"company_name,omitempty"`
	Title          string           `json:"title"`
	Location       string           `json:"location"`
	Salary         kernel.Money     `json:"salary"`
	JobType        kernel.JobType   `json:"job_type"`
	Experience     string           `json:"experience,omitempty"`
	WorkingHours   string           `json:"working_hours,omitempty"`
	Urgency        string           `json:"urgency,omitempty"`
	ContractType   string           `json:"contract_type,omitempty"`
	Description    string           `json:"description,omitempty"`
	Requirements   string           `json:"requirements,omitempty"`
	Benefits       string           `json:"benefits,omitempty"`
	RemainingSlots int              `json:"remaining_slots"`
	PostedAt       time.Time        `json:"posted_at"`
}

// ClosePostingResponse reports the posting state after a manual close
type ClosePostingResponse struct {
	PostingID  kernel.PostingID `json:"posting_id"`
	Status     Status           `json:"status"`
	HiredCount int              `json:"hired_count"`
	ClosedAt   *time.Time       `json:"closed_at"`
}

// PaginatedPostingsResponse for employer dashboard listings
type PaginatedPostingsResponse = kernel.Paginated[PostingResponse]

// PaginatedPublicPostingsResponse for the seeker feed
type PaginatedPublicPostingsResponse = kernel.Paginated[PublicPostingResponse]
