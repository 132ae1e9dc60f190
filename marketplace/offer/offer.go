package offer

import (
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// DefaultValidity is how long a seeker has to respond to an offer
const DefaultValidity = 24 * time.Hour

// Status of a direct job offer
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Offer represents an employer's direct job offer to a seeker, valid for a
// limited time window
type Offer struct {
	ID          kernel.OfferID `db:"id" json:"id"`
	EmployerID  kernel.UserID  `db:"employer_id" json:"employer_id"`
	JobSeekerID kernel.UserID  `db:"job_seeker_id" json:"job_seeker_id"`

	JobTitle      string       `db:"job_title" json:"job_title"`
	SalaryOffered kernel.Money `db:"salary_offered" json:"salary_offered"`
	Location      string       `db:"location" json:"location"`
	Message       string       `db:"message" json:"message,omitempty"`

	Status          Status     `db:"status" json:"status"`
	ResponseMessage *string    `db:"response_message" json:"response_message,omitempty"`
	ResponseAt      *time.Time `db:"response_at" json:"response_at,omitempty"`

	OfferedAt time.Time `db:"offered_at" json:"offered_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPending checks whether the offer is still awaiting a response
func (o *Offer) IsPending() bool {
	return o.Status == StatusPending
}

// IsExpiredAt checks whether a pending offer's response window has passed
func (o *Offer) IsExpiredAt(now time.Time) bool {
	return o.IsPending() && now.After(o.ExpiresAt)
}

// TimeRemaining returns how long the seeker still has to respond
func (o *Offer) TimeRemaining(now time.Time) time.Duration {
	if !o.IsPending() {
		return 0
	}
	remaining := o.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Accept marks the offer as accepted with an optional message
func (o *Offer) Accept(responseMessage string) error {
	return o.respond(StatusAccepted, responseMessage)
}

// Reject marks the offer as rejected with an optional message
func (o *Offer) Reject(responseMessage string) error {
	return o.respond(StatusRejected, responseMessage)
}

func (o *Offer) respond(status Status, responseMessage string) error {
	now := time.Now()

	if o.IsExpiredAt(now) {
		return ErrOfferExpired().WithDetail("expired_at", o.ExpiresAt)
	}
	if !o.IsPending() {
		return ErrAlreadyResponded().WithDetail("status", string(o.Status))
	}

	o.Status = status
	if responseMessage != "" {
		o.ResponseMessage = &responseMessage
	}
	o.ResponseAt = &now
	o.UpdatedAt = now
	return nil
}

// MarkExpired transitions a pending offer past its window to expired
func (o *Offer) MarkExpired(now time.Time) error {
	if !o.IsPending() {
		return ErrAlreadyResponded().WithDetail("status", string(o.Status))
	}

	o.Status = StatusExpired
	o.UpdatedAt = now
	return nil
}
