package offer

import (
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// SendOfferRequest - DTO for an employer sending a direct offer
type SendOfferRequest struct {
	JobSeekerID   kernel.UserID `json:"job_seeker_id" validate:"required"`
	JobTitle      string        `json:"job_title" validate:"required"`
	SalaryOffered kernel.Money  `json:"salary_offered" validate:"required,gt=0"`
	Location      string        `json:"location" validate:"required"`
	Message       string        `json:"message"`
}

// RespondOfferRequest - DTO for a seeker responding to an offer
type RespondOfferRequest struct {
	Message string `json:"message"`
}

// SeekerOfferResponse is the seeker's view of a received offer
type SeekerOfferResponse struct {
	*Offer
	EmployerName  string `json:"employer_name"`
	CompanyName   string `json:"company_name,omitempty"`
	SecondsLeft   int64  `json:"seconds_left"`
	ExpiredByTime bool   `json:"expired_by_time"`
}

// EmployerOfferResponse is the employer's view of a sent offer
type EmployerOfferResponse struct {
	*Offer
	SeekerName  string       `json:"seeker_name"`
	SeekerPhone kernel.Phone `json:"seeker_phone"`
	SeekerCity  string       `json:"seeker_city,omitempty"`
}

// ExpiryJob is the payload scheduled on the expiry queue when an offer is
// sent
type ExpiryJob struct {
	OfferID   kernel.OfferID `json:"offer_id"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// PaginatedSeekerOffersResponse for the seeker's inbox
type PaginatedSeekerOffersResponse = kernel.Paginated[SeekerOfferResponse]

// PaginatedEmployerOffersResponse for the employer's sent list
type PaginatedEmployerOffersResponse = kernel.Paginated[EmployerOfferResponse]
