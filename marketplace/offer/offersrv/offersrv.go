package offersrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobhubapp/jobhub/marketplace/offer"
	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/pkg/kernel"
	"github.com/jobhubapp/jobhub/pkg/logx"
	"github.com/jobhubapp/jobhub/pkg/validation"
)

// OfferService implements direct job offer business logic
type OfferService struct {
	offerRepo   offer.Repository
	userRepo    user.Repository
	expiryQueue offer.ExpiryQueue
	validity    time.Duration
}

// NewOfferService creates a new offer service
func NewOfferService(offerRepo offer.Repository, userRepo user.Repository, expiryQueue offer.ExpiryQueue, validity time.Duration) *OfferService {
	if validity <= 0 {
		validity = offer.DefaultValidity
	}
	return &OfferService{
		offerRepo:   offerRepo,
		userRepo:    userRepo,
		expiryQueue: expiryQueue,
		validity:    validity,
	}
}

// SendOffer creates a time-boxed direct offer from an employer to a seeker
func (s *OfferService) SendOffer(ctx context.Context, employerID kernel.UserID, req offer.SendOfferRequest) (*offer.Offer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, offer.ErrValidationFailed().WithDetail("validation_error", err.Error())
	}

	seeker, err := s.userRepo.GetByID(ctx, req.JobSeekerID)
	if err != nil {
		return nil, err
	}
	if !seeker.IsJobSeeker() {
		return nil, offer.ErrRecipientNotSeeker().WithDetail("user_id", req.JobSeekerID.String())
	}

	pending, err := s.offerRepo.HasPendingOffer(ctx, employerID, req.JobSeekerID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, offer.ErrDuplicatePendingOffer().WithDetail("job_seeker_id", req.JobSeekerID.String())
	}

	now := time.Now()
	o := &offer.Offer{
		ID:            kernel.NewOfferID(uuid.NewString()),
		EmployerID:    employerID,
		JobSeekerID:   req.JobSeekerID,
		JobTitle:      req.JobTitle,
		SalaryOffered: req.SalaryOffered,
		Location:      req.Location,
		Message:       req.Message,
		Status:        offer.StatusPending,
		OfferedAt:     now,
		ExpiresAt:     now.Add(s.validity),
		UpdatedAt:     now,
	}

	if err := s.offerRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	// The periodic sweep catches offers whose scheduling failed
	if err := s.expiryQueue.Schedule(ctx, offer.ExpiryJob{OfferID: o.ID, ExpiresAt: o.ExpiresAt}); err != nil {
		logx.Warnf("Failed to schedule expiry for offer %s: %v", o.ID, err)
	}

	logx.WithField("offer_id", o.ID.String()).
		WithField("job_seeker_id", req.JobSeekerID.String()).
		Info("job offer sent")

	return o, nil
}

// ListMyOffers lists offers received by the seeker
func (s *OfferService) ListMyOffers(ctx context.Context, seekerID kernel.UserID, opts kernel.PaginationOptions) (*offer.PaginatedSeekerOffersResponse, error) {
	rows, total, err := s.offerRepo.ListBySeeker(ctx, seekerID, opts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]offer.SeekerOfferResponse, len(rows))
	for i, row := range rows {
		responses[i] = offer.SeekerOfferResponse{
			Offer:         row.Offer,
			EmployerName:  row.EmployerName,
			CompanyName:   row.CompanyName,
			SecondsLeft:   int64(row.Offer.TimeRemaining(now).Seconds()),
			ExpiredByTime: row.Offer.IsExpiredAt(now),
		}
	}

	return kernel.NewPaginated(responses, opts, total), nil
}

// ListSentOffers lists offers sent by the employer
func (s *OfferService) ListSentOffers(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) (*offer.PaginatedEmployerOffersResponse, error) {
	rows, total, err := s.offerRepo.ListByEmployer(ctx, employerID, opts)
	if err != nil {
		return nil, err
	}

	responses := make([]offer.EmployerOfferResponse, len(rows))
	for i, row := range rows {
		responses[i] = offer.EmployerOfferResponse{
			Offer:       row.Offer,
			SeekerName:  row.SeekerName,
			SeekerPhone: kernel.Phone(row.SeekerPhone),
			SeekerCity:  row.SeekerCity,
		}
	}

	return kernel.NewPaginated(responses, opts, total), nil
}

// AcceptOffer accepts a pending, unexpired offer
func (s *OfferService) AcceptOffer(ctx context.Context, seekerID kernel.UserID, offerID kernel.OfferID, req offer.RespondOfferRequest) (*offer.Offer, error) {
	return s.respond(ctx, seekerID, offerID, req.Message, (*offer.Offer).Accept)
}

// RejectOffer rejects a pending, unexpired offer
func (s *OfferService) RejectOffer(ctx context.Context, seekerID kernel.UserID, offerID kernel.OfferID, req offer.RespondOfferRequest) (*offer.Offer, error) {
	return s.respond(ctx, seekerID, offerID, req.Message, (*offer.Offer).Reject)
}

func (s *OfferService) respond(ctx context.Context, seekerID kernel.UserID, offerID kernel.OfferID, message string, action func(*offer.Offer, string) error) (*offer.Offer, error) {
	o, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if o.JobSeekerID != seekerID {
		return nil, offer.ErrNotOfferRecipient().WithDetail("offer_id", offerID.String())
	}

	now := time.Now()
	if o.IsExpiredAt(now) {
		// Persist the lapse so the row matches what the caller sees
		if _, err := s.offerRepo.MarkExpired(ctx, offerID, now); err != nil {
			logx.Warnf("Failed to persist expiry for offer %s: %v", offerID, err)
		}
		return nil, offer.ErrOfferExpired().WithDetail("expired_at", o.ExpiresAt)
	}

	if err := action(o, message); err != nil {
		return nil, err
	}

	if err := s.offerRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	logx.WithField("offer_id", o.ID.String()).
		WithField("status", string(o.Status)).
		Info("job offer responded")

	return o, nil
}

// ExpireOffer marks a single offer expired if it is pending and past its
// window. Used by the expiry worker.
func (s *OfferService) ExpireOffer(ctx context.Context, offerID kernel.OfferID) (bool, error) {
	expired, err := s.offerRepo.MarkExpired(ctx, offerID, time.Now())
	if err != nil {
		return false, err
	}
	if expired {
		logx.WithField("offer_id", offerID.String()).Info("job offer expired")
	}
	return expired, nil
}

// ExpireDue marks every overdue pending offer expired. Used as a periodic
// backstop for the queue.
func (s *OfferService) ExpireDue(ctx context.Context) (int, error) {
	count, err := s.offerRepo.ExpireDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logx.Infof("Expired %d overdue job offers", count)
	}
	return count, nil
}
