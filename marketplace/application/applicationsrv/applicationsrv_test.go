package applicationsrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubapp/jobhub/marketplace/application"
	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

type fakePostingRepo struct {
	postings map[kernel.PostingID]*posting.Posting
}

func newFakePostingRepo(postings ...*posting.Posting) *fakePostingRepo {
	r := &fakePostingRepo{postings: make(map[kernel.PostingID]*posting.Posting)}
	for _, p := range postings {
		r.postings[p.ID] = p
	}
	return r
}

func (r *fakePostingRepo) Create(ctx context.Context, p *posting.Posting) error {
	r.postings[p.ID] = p
	return nil
}

func (r *fakePostingRepo) Update(ctx context.Context, p *posting.Posting) error {
	r.postings[p.ID] = p
	return nil
}

func (r *fakePostingRepo) GetByID(ctx context.Context, id kernel.PostingID) (*posting.Posting, error) {
	p, ok := r.postings[id]
	if !ok {
		return nil, posting.ErrPostingNotFound()
	}
	return p, nil
}

func (r *fakePostingRepo) ListByEmployer(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) ([]*posting.EmployerPostingRow, int, error) {
	return nil, 0, nil
}

func (r *fakePostingRepo) SearchOpen(ctx context.Context, req posting.SearchPostingsRequest) ([]*posting.OpenPostingRow, int, error) {
	return nil, 0, nil
}

type fakeApplicationRepo struct {
	applications map[kernel.ApplicationID]*application.Application
	postingRepo  *fakePostingRepo
}

func newFakeApplicationRepo(postingRepo *fakePostingRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[kernel.ApplicationID]*application.Application),
		postingRepo:  postingRepo,
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a *application.Application) error {
	r.applications[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	return a, nil
}

func (r *fakeApplicationRepo) ExistsForPosting(ctx context.Context, postingID kernel.PostingID, applicantID kernel.UserID) (bool, error) {
	for _, a := range r.applications {
		if a.PostingID == postingID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID kernel.UserID, opts kernel.PaginationOptions) ([]*application.SeekerApplicationRow, int, error) {
	return nil, 0, nil
}

func (r *fakeApplicationRepo) ListByPosting(ctx context.Context, postingID kernel.PostingID, opts kernel.PaginationOptions) ([]*application.EmployerApplicationRow, int, error) {
	return nil, 0, nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, a *application.Application) error {
	if _, ok := r.applications[a.ID]; !ok {
		return application.ErrApplicationNotFound()
	}
	r.applications[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) AcceptAndRecordHire(ctx context.Context, a *application.Application) (*posting.HireResult, error) {
	p, err := r.postingRepo.GetByID(ctx, a.PostingID)
	if err != nil {
		return nil, err
	}
	if !p.IsOpenForApplications() {
		return nil, posting.ErrAllSlotsFilled()
	}
	if err := p.RecordHire(); err != nil {
		return nil, err
	}
	r.applications[a.ID] = a
	return &posting.HireResult{
		PostingID:          p.ID,
		HiredCount:         p.HiredCount,
		RequiredCandidates: p.RequiredCandidates,
		AutoClosed:         p.AutoClosed,
	}, nil
}

func testPosting(required, hired int) *posting.Posting {
	return &posting.Posting{
		ID:                 kernel.NewPostingID("post-1"),
		EmployerID:         kernel.NewUserID("emp-1"),
		Title:              "Warehouse Helper",
		RequiredCandidates: required,
		HiredCount:         hired,
		RecordStatus:       posting.RecordStatusActive,
		PostedAt:           time.Now(),
	}
}

func pendingApplication(id string) *application.Application {
	return &application.Application{
		ID:          kernel.NewApplicationID(id),
		PostingID:   kernel.NewPostingID("post-1"),
		EmployerID:  kernel.NewUserID("emp-1"),
		ApplicantID: kernel.NewUserID("seeker-" + id),
		Status:      application.StatusPending,
		AppliedAt:   time.Now(),
	}
}

func TestApplyToOpenPosting(t *testing.T) {
	postingRepo := newFakePostingRepo(testPosting(2, 0))
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	a, err := svc.Apply(context.Background(), kernel.NewUserID("seeker-1"), application.ApplyRequest{
		PostingID: kernel.NewPostingID("post-1"),
		Message:   "I have two years of experience",
	})
	require.NoError(t, err)

	assert.Equal(t, application.StatusPending, a.Status)
	assert.Equal(t, kernel.NewUserID("emp-1"), a.EmployerID)
}

func TestApplyTwiceFails(t *testing.T) {
	postingRepo := newFakePostingRepo(testPosting(2, 0))
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	seeker := kernel.NewUserID("seeker-1")
	req := application.ApplyRequest{PostingID: kernel.NewPostingID("post-1")}

	_, err := svc.Apply(context.Background(), seeker, req)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), seeker, req)
	assert.Error(t, err)
}

func TestApplyToClosedPostingFails(t *testing.T) {
	p := testPosting(2, 0)
	p.IsClosed = true
	postingRepo := newFakePostingRepo(p)
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	_, err := svc.Apply(context.Background(), kernel.NewUserID("seeker-1"), application.ApplyRequest{
		PostingID: kernel.NewPostingID("post-1"),
	})
	assert.Error(t, err)
}

func TestApplyToOwnPostingFails(t *testing.T) {
	postingRepo := newFakePostingRepo(testPosting(2, 0))
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	_, err := svc.Apply(context.Background(), kernel.NewUserID("emp-1"), application.ApplyRequest{
		PostingID: kernel.NewPostingID("post-1"),
	})
	assert.Error(t, err)
}

func TestAcceptRecordsHire(t *testing.T) {
	postingRepo := newFakePostingRepo(testPosting(2, 0))
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	a := pendingApplication("app-1")
	appRepo.applications[a.ID] = a

	resp, err := svc.Accept(context.Background(), kernel.NewUserID("emp-1"), a.ID, application.RespondRequest{Message: "welcome"})
	require.NoError(t, err)

	assert.Equal(t, application.StatusAccepted, resp.Application.Status)
	assert.Equal(t, 1, resp.HiredCount)
	assert.Equal(t, 1, resp.RemainingSlots)
	assert.False(t, resp.PostingClosed)
}

func TestAcceptLastSlotAutoClosesPosting(t *testing.T) {
	postingRepo := newFakePostingRepo(testPosting(1, 0))
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	a := pendingApplication("app-1")
	appRepo.applications[a.ID] = a

	resp, err := svc.Accept(context.Background(), kernel.NewUserID("emp-1"), a.ID, application.RespondRequest{})
	require.NoError(t, err)

	assert.True(t, resp.PostingClosed)
	assert.Equal(t, 0, resp.RemainingSlots)

	p, _ := postingRepo.GetByID(context.Background(), a.PostingID)
	assert.Equal(t, posting.StatusAutoClosed, p.DerivedStatus())
}

func TestAcceptOnFilledPostingFails(t *testing.T) {
	p := testPosting(1, 1)
	p.IsClosed = true
	p.AutoClosed = true
	postingRepo := newFakePostingRepo(p)
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	a := pendingApplication("app-2")
	appRepo.applications[a.ID] = a

	_, err := svc.Accept(context.Background(), kernel.NewUserID("emp-1"), a.ID, application.RespondRequest{})
	assert.Error(t, err)
}

func TestAcceptByNonOwnerFails(t *testing.T) {
	postingRepo := newFakePostingRepo(testPosting(2, 0))
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	a := pendingApplication("app-1")
	appRepo.applications[a.ID] = a

	_, err := svc.Accept(context.Background(), kernel.NewUserID("emp-2"), a.ID, application.RespondRequest{})
	assert.Error(t, err)
}

func TestRejectApplication(t *testing.T) {
	postingRepo := newFakePostingRepo(testPosting(2, 0))
	appRepo := newFakeApplicationRepo(postingRepo)
	svc := NewApplicationService(appRepo, postingRepo)

	a := pendingApplication("app-1")
	appRepo.applications[a.ID] = a

	rejected, err := svc.Reject(context.Background(), kernel.NewUserID("emp-1"), a.ID, application.RespondRequest{Message: "position filled"})
	require.NoError(t, err)

	assert.Equal(t, application.StatusRejected, rejected.Status)

	// Rejecting does not consume a hiring slot
	p, _ := postingRepo.GetByID(context.Background(), a.PostingID)
	assert.Equal(t, 0, p.HiredCount)
}
