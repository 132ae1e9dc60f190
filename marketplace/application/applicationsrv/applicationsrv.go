package applicationsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobhubapp/jobhub/marketplace/application"
	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/pkg/kernel"
	"github.com/jobhubapp/jobhub/pkg/logx"
	"github.com/jobhubapp/jobhub/pkg/validation"
)

// ApplicationService implements application business logic
type ApplicationService struct {
	applicationRepo application.Repository
	postingRepo     posting.Repository
}

// NewApplicationService creates a new application service
func NewApplicationService(applicationRepo application.Repository, postingRepo posting.Repository) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
	}
}

// Apply submits a seeker's application to an open posting
func (s *ApplicationService) Apply(ctx context.Context, applicantID kernel.UserID, req application.ApplyRequest) (*application.Application, error) {
	if err := validation.Struct(req); err != nil {
		return nil, application.ErrValidationFailed().WithDetail("validation_error", err.Error())
	}

	p, err := s.postingRepo.GetByID(ctx, req.PostingID)
	if err != nil {
		return nil, err
	}

	if p.EmployerID == applicantID {
		return nil, application.ErrCannotApplyOwnPosting()
	}
	if p.IsDeleted() {
		return nil, posting.ErrPostingNotFound().WithDetail("posting_id", req.PostingID.String())
	}
	if !p.IsOpenForApplications() {
		return nil, posting.ErrPostingClosed().WithDetail("posting_id", req.PostingID.String())
	}

	exists, err := s.applicationRepo.ExistsForPosting(ctx, req.PostingID, applicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, application.ErrAlreadyApplied().WithDetail("posting_id", req.PostingID.String())
	}

	now := time.Now()
	a := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		PostingID:   p.ID,
		EmployerID:  p.EmployerID,
		ApplicantID: applicantID,
		Status:      application.StatusPending,
		Message:     req.Message,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.applicationRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	logx.WithField("application_id", a.ID.String()).
		WithField("posting_id", p.ID.String()).
		Info("application submitted")

	return a, nil
}

// ListMyApplications lists the seeker's applications with posting details
func (s *ApplicationService) ListMyApplications(ctx context.Context, applicantID kernel.UserID, opts kernel.PaginationOptions) (*application.PaginatedSeekerApplicationsResponse, error) {
	rows, total, err := s.applicationRepo.ListByApplicant(ctx, applicantID, opts)
	if err != nil {
		return nil, err
	}

	responses := make([]application.SeekerApplicationResponse, len(rows))
	for i, row := range rows {
		responses[i] = application.SeekerApplicationResponse{
			Application:   row.Application,
			PostingTitle:  row.Posting.Title,
			CompanyName:   row.CompanyName,
			Location:      row.Posting.Location,
			Salary:        row.Posting.Salary,
			JobType:       row.Posting.JobType,
			PostingStatus: row.Posting.DerivedStatus(),
		}
	}

	return kernel.NewPaginated(responses, opts, total), nil
}

// ListPostingApplications lists candidates for one of the employer's
// postings
func (s *ApplicationService) ListPostingApplications(ctx context.Context, employerID kernel.UserID, postingID kernel.PostingID, opts kernel.PaginationOptions) (*application.PaginatedEmployerApplicationsResponse, error) {
	p, err := s.postingRepo.GetByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if p.EmployerID != employerID {
		return nil, posting.ErrNotPostingOwner().WithDetail("posting_id", postingID.String())
	}

	rows, total, err := s.applicationRepo.ListByPosting(ctx, postingID, opts)
	if err != nil {
		return nil, err
	}

	responses := make([]application.EmployerApplicationResponse, len(rows))
	for i, row := range rows {
		responses[i] = application.EmployerApplicationResponse{
			Application:         row.Application,
			ApplicantName:       row.ApplicantName,
			ApplicantPhone:      kernel.Phone(row.ApplicantPhone),
			ApplicantEmail:      kernel.Email(row.ApplicantEmail),
			ApplicantCity:       row.ApplicantCity,
			ApplicantExperience: row.ApplicantExperience,
		}
	}

	return kernel.NewPaginated(responses, opts, total), nil
}

// Accept accepts a pending application and records the hire against the
// posting's required slots
func (s *ApplicationService) Accept(ctx context.Context, employerID kernel.UserID, applicationID kernel.ApplicationID, req application.RespondRequest) (*application.AcceptApplicationResponse, error) {
	a, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	if err := a.Accept(req.Message); err != nil {
		return nil, err
	}

	hire, err := s.applicationRepo.AcceptAndRecordHire(ctx, a)
	if err != nil {
		return nil, err
	}

	logx.WithField("application_id", a.ID.String()).
		WithField("posting_id", a.PostingID.String()).
		WithField("remaining_slots", hire.RemainingSlots()).
		Info("application accepted")

	return &application.AcceptApplicationResponse{
		Application:    a,
		HiredCount:     hire.HiredCount,
		RequiredSlots:  hire.RequiredCandidates,
		RemainingSlots: hire.RemainingSlots(),
		PostingClosed:  hire.AutoClosed,
	}, nil
}

// Reject rejects a pending application with an optional message
func (s *ApplicationService) Reject(ctx context.Context, employerID kernel.UserID, applicationID kernel.ApplicationID, req application.RespondRequest) (*application.Application, error) {
	a, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	if err := a.Reject(req.Message); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	logx.WithField("application_id", a.ID.String()).Info("application rejected")
	return a, nil
}

func (s *ApplicationService) ownedApplication(ctx context.Context, employerID kernel.UserID, applicationID kernel.ApplicationID) (*application.Application, error) {
	a, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if a.EmployerID != employerID {
		return nil, application.ErrNotApplicationOwner().WithDetail("application_id", applicationID.String())
	}
	return a, nil
}
