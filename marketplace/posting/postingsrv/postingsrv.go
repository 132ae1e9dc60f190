package postingsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/pkg/kernel"
	"github.com/jobhubapp/jobhub/pkg/logx"
	"github.com/jobhubapp/jobhub/pkg/validation"
)

// PostingService implements job posting business logic
type PostingService struct {
	postingRepo posting.Repository
}

// NewPostingService creates a new posting service
func NewPostingService(postingRepo posting.Repository) *PostingService {
	return &PostingService{
		postingRepo: postingRepo,
	}
}

// CreatePosting publishes a new job posting for the given employer
func (s *PostingService) CreatePosting(ctx context.Context, employerID kernel.UserID, req posting.CreatePostingRequest) (*posting.PostingResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, posting.ErrValidationFailed().WithDetail("validation_error", err.Error())
	}

	now := time.Now()
	p := &posting.Posting{
		ID:                 kernel.NewPostingID(uuid.NewString()),
		EmployerID:         employerID,
		Title:              req.Title,
		Location:           req.Location,
		Salary:             req.Salary,
		JobType:            req.JobType,
		Experience:         req.Experience,
		WorkingHours:       req.WorkingHours,
		Urgency:            req.Urgency,
		ContractType:       req.ContractType,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Benefits:           req.Benefits,
		RequiredCandidates: req.RequiredCandidates,
		HiredCount:         0,
		RecordStatus:       posting.RecordStatusActive,
		PostedAt:           now,
		UpdatedAt:          now,
	}

	if err := s.postingRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logx.WithField("posting_id", p.ID.String()).
		WithField("employer_id", employerID.String()).
		Info("job posting created")

	return toResponse(p, 0), nil
}

// GetPosting retrieves one of the employer's postings
func (s *PostingService) GetPosting(ctx context.Context, employerID kernel.UserID, postingID kernel.PostingID) (*posting.PostingResponse, error) {
	p, err := s.ownedPosting(ctx, employerID, postingID)
	if err != nil {
		return nil, err
	}
	return toResponse(p, 0), nil
}

// ListMyPostings lists the employer's postings with application counts
func (s *PostingService) ListMyPostings(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) (*posting.PaginatedPostingsResponse, error) {
	rows, total, err := s.postingRepo.ListByEmployer(ctx, employerID, opts)
	if err != nil {
		return nil, err
	}

	responses := make([]posting.PostingResponse, len(rows))
	for i, row := range rows {
		responses[i] = *toResponse(row.Posting, row.ApplicationsCount)
	}

	return kernel.NewPaginated(responses, opts, total), nil
}

// UpdatePosting edits an existing posting owned by the employer
func (s *PostingService) UpdatePosting(ctx context.Context, employerID kernel.UserID, postingID kernel.PostingID, req posting.UpdatePostingRequest) (*posting.PostingResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, posting.ErrValidationFailed().WithDetail("validation_error", err.Error())
	}

	p, err := s.ownedPosting(ctx, employerID, postingID)
	if err != nil {
		return nil, err
	}
	if p.IsDeleted() {
		return nil, posting.ErrPostingDeleted().WithDetail("posting_id", postingID.String())
	}

	applyUpdates(p, req)

	// Shrinking required_candidates below the hired count would leave the
	// posting over-filled
	if p.RequiredCandidates < p.HiredCount {
		return nil, posting.ErrInvalidRequiredCandidates().
			WithDetail("hired_count", p.HiredCount).
			WithDetail("required_candidates", p.RequiredCandidates)
	}

	p.UpdatedAt = time.Now()
	if err := s.postingRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return toResponse(p, 0), nil
}

// ClosePosting manually closes a posting so it stops accepting candidates
func (s *PostingService) ClosePosting(ctx context.Context, employerID kernel.UserID, postingID kernel.PostingID) (*posting.ClosePostingResponse, error) {
	p, err := s.ownedPosting(ctx, employerID, postingID)
	if err != nil {
		return nil, err
	}

	if err := p.Close(); err != nil {
		return nil, err
	}

	if err := s.postingRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	logx.WithField("posting_id", p.ID.String()).Info("job posting manually closed")

	return &posting.ClosePostingResponse{
		PostingID:  p.ID,
		Status:     p.DerivedStatus(),
		HiredCount: p.HiredCount,
		ClosedAt:   p.ClosedAt,
	}, nil
}

// DeletePosting soft-deletes a posting, hiding it from seekers
func (s *PostingService) DeletePosting(ctx context.Context, employerID kernel.UserID, postingID kernel.PostingID) error {
	p, err := s.ownedPosting(ctx, employerID, postingID)
	if err != nil {
		return err
	}

	if err := p.SoftDelete(); err != nil {
		return err
	}

	if err := s.postingRepo.Update(ctx, p); err != nil {
		return err
	}

	logx.WithField("posting_id", p.ID.String()).Info("job posting deleted")
	return nil
}

// BrowseOpenPostings lists open postings for job seekers with filters
func (s *PostingService) BrowseOpenPostings(ctx context.Context, req posting.SearchPostingsRequest) (*posting.PaginatedPublicPostingsResponse, error) {
	rows, total, err := s.postingRepo.SearchOpen(ctx, req)
	if err != nil {
		return nil, err
	}

	responses := make([]posting.PublicPostingResponse, len(rows))
	for i, row := range rows {
		responses[i] = toPublicResponse(row)
	}

	return kernel.NewPaginated(responses, req.Pagination, total), nil
}

func (s *PostingService) ownedPosting(ctx context.Context, employerID kernel.UserID, postingID kernel.PostingID) (*posting.Posting, error) {
	p, err := s.postingRepo.GetByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if p.EmployerID != employerID {
		return nil, posting.ErrNotPostingOwner().WithDetail("posting_id", postingID.String())
	}
	return p, nil
}

func applyUpdates(p *posting.Posting, req posting.UpdatePostingRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Salary != nil {
		p.Salary = *req.Salary
	}
	if req.JobType != nil {
		p.JobType = *req.JobType
	}
	if req.Experience != nil {
		p.Experience = *req.Experience
	}
	if req.WorkingHours != nil {
		p.WorkingHours = *req.WorkingHours
	}
	if req.Urgency != nil {
		p.Urgency = *req.Urgency
	}
	if req.ContractType != nil {
		p.ContractType = *req.ContractType
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Requirements != nil {
		p.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		p.Benefits = *req.Benefits
	}
	if req.RequiredCandidates != nil {
		p.RequiredCandidates = *req.RequiredCandidates
	}
}

func toResponse(p *posting.Posting, applicationsCount int) *posting.PostingResponse {
	return &posting.PostingResponse{
		Posting:           p,
		Status:            p.DerivedStatus(),
		RemainingSlots:    p.RemainingSlots(),
		ApplicationsCount: applicationsCount,
	}
}

func toPublicResponse(row *posting.OpenPostingRow) posting.PublicPostingResponse {
	p := row.Posting
	return posting.PublicPostingResponse{
		ID:             p.ID,
		EmployerID:     p.EmployerID,
		CompanyName:    row.CompanyName,
		Title:          p.Title,
		Location:       p.Location,
		Salary:         p.Salary,
		JobType:        p.JobType,
		Experience:     p.Experience,
		WorkingHours:   p.WorkingHours,
		Urgency:        p.Urgency,
		ContractType:   p.ContractType,
		Description:    p.Description,
		Requirements:   p.Requirements,
		Benefits:       p.Benefits,
		RemainingSlots: p.RemainingSlots(),
		PostedAt:       p.PostedAt,
	}
}
