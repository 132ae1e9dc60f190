package offer

import (
	"context"
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// SeekerOfferRow couples an offer with details of the employer who sent it
type SeekerOfferRow struct {
	Offer        *Offer
	EmployerName string
	CompanyName  string
}

// EmployerOfferRow couples an offer with details of the seeker it targets
type EmployerOfferRow struct {
	Offer       *Offer
	SeekerName  string
	SeekerPhone string
	SeekerCity  string
}

// Repository defines the port for offer persistence
type Repository interface {
	// Create persists a new offer
	Create(ctx context.Context, o *Offer) error

	// GetByID retrieves an offer by its ID
	GetByID(ctx context.Context, id kernel.OfferID) (*Offer, error)

	// HasPendingOffer checks whether the employer already has a pending
	// offer out to the seeker
	HasPendingOffer(ctx context.Context, employerID, seekerID kernel.UserID) (bool, error)

	// ListBySeeker retrieves offers received by a seeker, newest first
	ListBySeeker(ctx context.Context, seekerID kernel.UserID, opts kernel.PaginationOptions) ([]*SeekerOfferRow, int, error)

	// ListByEmployer retrieves offers sent by an employer, newest first
	ListByEmployer(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) ([]*EmployerOfferRow, int, error)

	// Update persists a status change to an existing offer
	Update(ctx context.Context, o *Offer) error

	// MarkExpired transitions the offer to expired if it is still pending
	// and past its window. Returns false when the offer was already
	// responded to or not yet due.
	MarkExpired(ctx context.Context, id kernel.OfferID, now time.Time) (bool, error)

	// ExpireDue transitions every pending offer past its window to
	// expired, returning how many were affected
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}

// ExpiryQueue defines the port for scheduling offer expirations
type ExpiryQueue interface {
	// Schedule enqueues an expiry job to fire once the offer's window ends
	Schedule(ctx context.Context, job ExpiryJob) error

	// Dequeue blocks until an expiry job is due or the timeout elapses.
	// Returns nil when no job is available.
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// MoveDueToReady moves scheduled jobs whose time has come onto the
	// ready queue
	MoveDueToReady(ctx context.Context) (int, error)

	// PendingCount returns the number of scheduled expiry jobs
	PendingCount(ctx context.Context) (int64, error)
}
