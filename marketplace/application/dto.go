package application

import (
	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// ApplyRequest - DTO for applying to a job posting
type ApplyRequest struct {
	PostingID kernel.PostingID `json:"posting_id" validate:"required"`
	Message   string           `json:"message"`
}

// RespondRequest - DTO for accepting or rejecting an application
type RespondRequest struct {
	Message string `json:"message"`
}

// SeekerApplicationResponse is the applicant's view of their application
type SeekerApplicationResponse struct {
	*Application
	PostingTitle  string         `json:"posting_title"`
	CompanyName   string         `json:"company_name,omitempty"`
	Location      string         `json:"location"`
	Salary        kernel.Money   `json:"salary"`
	JobType       kernel.JobType `json:"job_type"`
	PostingStatus posting.Status `json:"posting_status"`
}

// EmployerApplicationResponse is the employer's view of a candidate
type EmployerApplicationResponse struct {
	*Application
	ApplicantName       string       `json:"applicant_name"`
	ApplicantPhone      kernel.Phone `json:"applicant_phone"`
	ApplicantEmail      kernel.Email `json:"applicant_email"`
	ApplicantCity       string       `json:"applicant_city,omitempty"`
	ApplicantExperience string       `json:"applicant_experience,omitempty"`
}

// AcceptApplicationResponse reports the hiring-slot state after an accept
type AcceptApplicationResponse struct {
	Application    *Application `json:"application"`
	HiredCount     int          `json:"hired_count"`
	RequiredSlots  int          `json:"required_slots"`
	RemainingSlots int          `json:"remaining_slots"`
	PostingClosed  bool         `json:"posting_closed"`
}

// PaginatedSeekerApplicationsResponse for the applicant's dashboard
type PaginatedSeekerApplicationsResponse = kernel.Paginated[SeekerApplicationResponse]

// PaginatedEmployerApplicationsResponse for the employer's candidate list
type PaginatedEmployerApplicationsResponse = kernel.Paginated[EmployerApplicationResponse]
