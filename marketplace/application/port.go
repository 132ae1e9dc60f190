package application

import (
	"context"

	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// SeekerApplicationRow couples an application with details of the posting
// it targets
type SeekerApplicationRow struct {
	Application *Application
	Posting     *posting.Posting
	CompanyName string
}

// EmployerApplicationRow couples an application with details of the
// applicant
type EmployerApplicationRow struct {
	Application         *Application
	ApplicantName       string
	ApplicantPhone      string
	ApplicantEmail      string
	ApplicantCity       string
	ApplicantExperience string
}

// Repository defines the port for application persistence
type Repository interface {
	// Create persists a new application
	Create(ctx context.Context, a *Application) error

	// GetByID retrieves an application by its ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// ExistsForPosting checks whether the applicant already applied to the
	// posting
	ExistsForPosting(ctx context.Context, postingID kernel.PostingID, applicantID kernel.UserID) (bool, error)

	// ListByApplicant retrieves a seeker's applications, newest first
	ListByApplicant(ctx context.Context, applicantID kernel.UserID, opts kernel.PaginationOptions) ([]*SeekerApplicationRow, int, error)

	// ListByPosting retrieves a posting's applications, newest first
	ListByPosting(ctx context.Context, postingID kernel.PostingID, opts kernel.PaginationOptions) ([]*EmployerApplicationRow, int, error)

	// Update persists a status change to an existing application
	Update(ctx context.Context, a *Application) error

	// AcceptAndRecordHire marks the application accepted and increments the
	// posting's hired count in a single transaction, auto-closing the
	// posting once all required positions are filled
	AcceptAndRecordHire(ctx context.Context, a *Application) (*posting.HireResult, error)
}
