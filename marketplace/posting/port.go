package posting

import (
	"context"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// EmployerPostingRow couples a posting with its application count for
// dashboard listings
type EmployerPostingRow struct {
	Posting           *Posting
	ApplicationsCount int
}

// OpenPostingRow couples an open posting with its employer's company name
// for the public feed
type OpenPostingRow struct {
	Posting     *Posting
	CompanyName string
}

// Repository defines the port for job posting persistence
type Repository interface {
	// Create persists a new job posting
	Create(ctx context.Context, p *Posting) error

	// Update persists changes to an existing posting
	Update(ctx context.Context, p *Posting) error

	// GetByID retrieves a posting by its ID, including deleted ones
	GetByID(ctx context.Context, id kernel.PostingID) (*Posting, error)

	// ListByEmployer retrieves an employer's non-deleted postings, newest
	// first, with per-posting application counts
	ListByEmployer(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) ([]*EmployerPostingRow, int, error)

	// SearchOpen retrieves open postings matching the given filters for
	// the seeker feed
	SearchOpen(ctx context.Context, req SearchPostingsRequest) ([]*OpenPostingRow, int, error)
}
