package offersrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubapp/jobhub/marketplace/offer"
	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

type fakeUserRepo struct {
	users map[kernel.UserID]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[kernel.UserID]*user.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id kernel.UserID, u *user.User) error {
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, phone kernel.Phone) (*user.User, error) {
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) FindByIdentifier(ctx context.Context, identifier string, role kernel.UserRole) ([]*user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) SearchSeekers(ctx context.Context, req user.SearchSeekersRequest) (*kernel.Paginated[user.User], error) {
	return nil, nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, id kernel.UserID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

type fakeOfferRepo struct {
	offers map[kernel.OfferID]*offer.Offer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[kernel.OfferID]*offer.Offer)}
}

func (r *fakeOfferRepo) Create(ctx context.Context, o *offer.Offer) error {
	r.offers[o.ID] = o
	return nil
}

func (r *fakeOfferRepo) GetByID(ctx context.Context, id kernel.OfferID) (*offer.Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return nil, offer.ErrOfferNotFound()
	}
	return o, nil
}

func (r *fakeOfferRepo) HasPendingOffer(ctx context.Context, employerID, seekerID kernel.UserID) (bool, error) {
	for _, o := range r.offers {
		if o.EmployerID == employerID && o.JobSeekerID == seekerID && o.Status == offer.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOfferRepo) ListBySeeker(ctx context.Context, seekerID kernel.UserID, opts kernel.PaginationOptions) ([]*offer.SeekerOfferRow, int, error) {
	var rows []*offer.SeekerOfferRow
	for _, o := range r.offers {
		if o.JobSeekerID == seekerID {
			rows = append(rows, &offer.SeekerOfferRow{Offer: o, EmployerName: "Employer"})
		}
	}
	return rows, len(rows), nil
}

func (r *fakeOfferRepo) ListByEmployer(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) ([]*offer.EmployerOfferRow, int, error) {
	return nil, 0, nil
}

func (r *fakeOfferRepo) Update(ctx context.Context, o *offer.Offer) error {
	if _, ok := r.offers[o.ID]; !ok {
		return offer.ErrOfferNotFound()
	}
	r.offers[o.ID] = o
	return nil
}

func (r *fakeOfferRepo) MarkExpired(ctx context.Context, id kernel.OfferID, now time.Time) (bool, error) {
	o, ok := r.offers[id]
	if !ok {
		return false, offer.ErrOfferNotFound()
	}
	if o.Status != offer.StatusPending || o.ExpiresAt.After(now) {
		return false, nil
	}
	o.Status = offer.StatusExpired
	return true, nil
}

func (r *fakeOfferRepo) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	count := 0
	for _, o := range r.offers {
		if o.Status == offer.StatusPending && !o.ExpiresAt.After(now) {
			o.Status = offer.StatusExpired
			count++
		}
	}
	return count, nil
}

type fakeExpiryQueue struct {
	scheduled []offer.ExpiryJob
}

func (q *fakeExpiryQueue) Schedule(ctx context.Context, job offer.ExpiryJob) error {
	q.scheduled = append(q.scheduled, job)
	return nil
}

func (q *fakeExpiryQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	return nil, nil
}

func (q *fakeExpiryQueue) MoveDueToReady(ctx context.Context) (int, error) {
	return 0, nil
}

func (q *fakeExpiryQueue) PendingCount(ctx context.Context) (int64, error) {
	return int64(len(q.scheduled)), nil
}

func seekerUser(id string) *user.User {
	return &user.User{
		ID:   kernel.NewUserID(id),
		Role: kernel.RoleJobSeeker,
		Name: "Ravi",
	}
}

func sendRequest(seekerID string) offer.SendOfferRequest {
	return offer.SendOfferRequest{
		JobSeekerID:   kernel.NewUserID(seekerID),
		JobTitle:      "Electrician",
		SalaryOffered: 22000,
		Location:      "Chennai",
		Message:       "Immediate start",
	}
}

func newTestService(users ...*user.User) (*OfferService, *fakeOfferRepo, *fakeExpiryQueue) {
	offerRepo := newFakeOfferRepo()
	queue := &fakeExpiryQueue{}
	svc := NewOfferService(offerRepo, newFakeUserRepo(users...), queue, 24*time.Hour)
	return svc, offerRepo, queue
}

func TestSendOfferSchedulesExpiry(t *testing.T) {
	svc, _, queue := newTestService(seekerUser("seeker-1"))

	o, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-1"))
	require.NoError(t, err)

	assert.Equal(t, offer.StatusPending, o.Status)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), o.ExpiresAt, time.Minute)

	require.Len(t, queue.scheduled, 1)
	assert.Equal(t, o.ID, queue.scheduled[0].OfferID)
	assert.Equal(t, o.ExpiresAt, queue.scheduled[0].ExpiresAt)
}

func TestSendOfferToEmployerFails(t *testing.T) {
	employer := &user.User{ID: kernel.NewUserID("emp-2"), Role: kernel.RoleEmployer}
	svc, _, _ := newTestService(employer)

	_, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("emp-2"))
	assert.Error(t, err)
}

func TestSendDuplicatePendingOfferFails(t *testing.T) {
	svc, _, _ := newTestService(seekerUser("seeker-1"))
	employerID := kernel.NewUserID("emp-1")

	_, err := svc.SendOffer(context.Background(), employerID, sendRequest("seeker-1"))
	require.NoError(t, err)

	_, err = svc.SendOffer(context.Background(), employerID, sendRequest("seeker-1"))
	assert.Error(t, err)
}

func TestAcceptOfferWithinWindow(t *testing.T) {
	svc, _, _ := newTestService(seekerUser("seeker-1"))

	o, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-1"))
	require.NoError(t, err)

	accepted, err := svc.AcceptOffer(context.Background(), kernel.NewUserID("seeker-1"), o.ID, offer.RespondOfferRequest{Message: "See you Monday"})
	require.NoError(t, err)

	assert.Equal(t, offer.StatusAccepted, accepted.Status)
}

func TestRespondToExpiredOfferFailsAndPersists(t *testing.T) {
	svc, offerRepo, _ := newTestService(seekerUser("seeker-1"))

	o, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-1"))
	require.NoError(t, err)

	// Push the offer past its window
	o.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = svc.AcceptOffer(context.Background(), kernel.NewUserID("seeker-1"), o.ID, offer.RespondOfferRequest{})
	assert.Error(t, err)

	stored, _ := offerRepo.GetByID(context.Background(), o.ID)
	assert.Equal(t, offer.StatusExpired, stored.Status)
}

func TestRespondByWrongSeekerFails(t *testing.T) {
	svc, _, _ := newTestService(seekerUser("seeker-1"), seekerUser("seeker-2"))

	o, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-1"))
	require.NoError(t, err)

	_, err = svc.RejectOffer(context.Background(), kernel.NewUserID("seeker-2"), o.ID, offer.RespondOfferRequest{})
	assert.Error(t, err)
}

func TestExpireOffer(t *testing.T) {
	svc, offerRepo, _ := newTestService(seekerUser("seeker-1"))

	o, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-1"))
	require.NoError(t, err)
	o.ExpiresAt = time.Now().Add(-time.Second)

	expired, err := svc.ExpireOffer(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, expired)

	stored, _ := offerRepo.GetByID(context.Background(), o.ID)
	assert.Equal(t, offer.StatusExpired, stored.Status)

	// A second expiry attempt is a no-op
	expired, err = svc.ExpireOffer(context.Background(), o.ID)
	require.NoError(t, err)
	assert.False(t, expired)
}

func TestExpireOfferLeavesRespondedOffersAlone(t *testing.T) {
	svc, offerRepo, _ := newTestService(seekerUser("seeker-1"))

	o, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-1"))
	require.NoError(t, err)

	_, err = svc.AcceptOffer(context.Background(), kernel.NewUserID("seeker-1"), o.ID, offer.RespondOfferRequest{})
	require.NoError(t, err)

	expired, err := svc.ExpireOffer(context.Background(), o.ID)
	require.NoError(t, err)
	assert.False(t, expired)

	stored, _ := offerRepo.GetByID(context.Background(), o.ID)
	assert.Equal(t, offer.StatusAccepted, stored.Status)
}

func TestExpireDueSweep(t *testing.T) {
	svc, offerRepo, _ := newTestService(seekerUser("seeker-1"), seekerUser("seeker-2"))

	o1, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-1"))
	require.NoError(t, err)
	o2, err := svc.SendOffer(context.Background(), kernel.NewUserID("emp-1"), sendRequest("seeker-2"))
	require.NoError(t, err)

	o1.ExpiresAt = time.Now().Add(-time.Minute)

	count, err := svc.ExpireDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored1, _ := offerRepo.GetByID(context.Background(), o1.ID)
	stored2, _ := offerRepo.GetByID(context.Background(), o2.ID)
	assert.Equal(t, offer.StatusExpired, stored1.Status)
	assert.Equal(t, offer.StatusPending, stored2.Status)
}
