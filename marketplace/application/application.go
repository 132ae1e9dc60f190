package application

import (
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// Status of a job application
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Application represents a job seeker's application to a posting
type Application struct {
	ID          kernel.ApplicationID `db:"id" json:"id"`
	PostingID   kernel.PostingID     `db:"posting_id" json:"posting_id"`
	EmployerID  kernel.UserID        `db:"employer_id" json:"employer_id"`
	ApplicantID kernel.UserID        `db:"applicant_id" json:"applicant_id"`

	Status          Status     `db:"status" json:"status"`
	Message         string     `db:"message" json:"message,omitempty"`
	ResponseMessage *string    `db:"response_message" json:"response_message,omitempty"`
	ResponseAt      *time.Time `db:"response_at" json:"response_at,omitempty"`

	AppliedAt time.Time `db:"applied_at" json:"applied_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPending checks whether the employer can still respond
func (a *Application) IsPending() bool {
	return a.Status == StatusPending
}

// Accept marks the application as accepted with an optional message
func (a *Application) Accept(responseMessage string) error {
	if !a.IsPending() {
		return ErrAlreadyResponded().WithDetail("status", string(a.Status))
	}

	now := time.Now()
	a.Status = StatusAccepted
	if responseMessage != "" {
		a.ResponseMessage = &responseMessage
	}
	a.ResponseAt = &now
	a.UpdatedAt = now
	return nil
}

// Reject marks the application as rejected with an optional message
func (a *Application) Reject(responseMessage string) error {
	if !a.IsPending() {
		return ErrAlreadyResponded().WithDetail("status", string(a.Status))
	}

	now := time.Now()
	a.Status = StatusRejected
	if responseMessage != "" {
		a.ResponseMessage = &responseMessage
	}
	a.ResponseAt = &now
	a.UpdatedAt = now
	return nil
}
