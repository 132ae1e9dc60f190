package offerinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jobhubapp/jobhub/marketplace/offer"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// PostgresOfferRepository implements offer.Repository using PostgreSQL
type PostgresOfferRepository struct {
	db *sqlx.DB
}

// NewPostgresOfferRepository creates a new PostgreSQL offer repository
func NewPostgresOfferRepository(db *sqlx.DB) *PostgresOfferRepository {
	return &PostgresOfferRepository{db: db}
}

// offerModel is the database representation of a job offer
type offerModel struct {
	ID              string         `db:"id"`
	EmployerID      string         `db:"employer_id"`
	JobSeekerID     string         `db:"job_seeker_id"`
	JobTitle        string         `db:"job_title"`
	SalaryOffered   int64          `db:"salary_offered"`
	Location        string         `db:"location"`
	Message         string         `db:"message"`
	Status          string         `db:"status"`
	ResponseMessage sql.NullString `db:"response_message"`
	ResponseAt      sql.NullTime   `db:"response_at"`
	OfferedAt       time.Time      `db:"offered_at"`
	ExpiresAt       time.Time      `db:"expires_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

const offerColumns = `id, employer_id, job_seeker_id, job_title, salary_offered, location,
	message, status, response_message, response_at, offered_at, expires_at, updated_at`

func (m *offerModel) toEntity() *offer.Offer {
	o := &offer.Offer{
		ID:            kernel.NewOfferID(m.ID),
		EmployerID:    kernel.NewUserID(m.EmployerID),
		JobSeekerID:   kernel.NewUserID(m.JobSeekerID),
		JobTitle:      m.JobTitle,
		SalaryOffered: kernel.Money(m.SalaryOffered),
		Location:      m.Location,
		Message:       m.Message,
		Status:        offer.Status(m.Status),
		OfferedAt:     m.OfferedAt,
		ExpiresAt:     m.ExpiresAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.ResponseMessage.Valid {
		msg := m.ResponseMessage.String
		o.ResponseMessage = &msg
	}
	if m.ResponseAt.Valid {
		at := m.ResponseAt.Time
		o.ResponseAt = &at
	}
	return o
}

func fromEntity(o *offer.Offer) *offerModel {
	m := &offerModel{
		ID:            o.ID.String(),
		EmployerID:    o.EmployerID.String(),
		JobSeekerID:   o.JobSeekerID.String(),
		JobTitle:      o.JobTitle,
		SalaryOffered: int64(o.SalaryOffered),
		Location:      o.Location,
		Message:       o.Message,
		Status:        string(o.Status),
		OfferedAt:     o.OfferedAt,
		ExpiresAt:     o.ExpiresAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.ResponseMessage != nil {
		m.ResponseMessage = sql.NullString{String: *o.ResponseMessage, Valid: true}
	}
	if o.ResponseAt != nil {
		m.ResponseAt = sql.NullTime{Time: *o.ResponseAt, Valid: true}
	}
	return m
}

// Create inserts a new offer
func (r *PostgresOfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	model := fromEntity(o)

	query := `
		INSERT INTO job_offers (` + offerColumns + `)
		VALUES (:id, :employer_id, :job_seeker_id, :job_title, :salary_offered, :location,
			:message, :status, :response_message, :response_at, :offered_at, :expires_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return errx.Wrap(err, "employer or seeker does not exist", errx.TypeValidation)
		}
		return errx.Wrap(err, "failed to create job offer", errx.TypeInternal)
	}

	return nil
}

// GetByID retrieves an offer by its ID
func (r *PostgresOfferRepository) GetByID(ctx context.Context, id kernel.OfferID) (*offer.Offer, error) {
	var model offerModel

	query := `SELECT ` + offerColumns + ` FROM job_offers WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, offer.ErrOfferNotFound().WithDetail("offer_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get job offer", errx.TypeInternal)
	}

	return model.toEntity(), nil
}

// HasPendingOffer checks for an outstanding pending offer between the pair
func (r *PostgresOfferRepository) HasPendingOffer(ctx context.Context, employerID, seekerID kernel.UserID) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS(
			SELECT 1 FROM job_offers
			WHERE employer_id = $1 AND job_seeker_id = $2 AND status = 'pending'
		)`

	err := r.db.GetContext(ctx, &exists, query, employerID.String(), seekerID.String())
	if err != nil {
		return false, errx.Wrap(err, "failed to check for pending offer", errx.TypeInternal)
	}

	return exists, nil
}

// seekerOfferModel joins an offer with employer details
type seekerOfferModel struct {
	offerModel
	EmployerName string `db:"employer_name"`
	CompanyName  string `db:"company_name"`
}

// ListBySeeker retrieves offers received by a seeker, newest first
func (r *PostgresOfferRepository) ListBySeeker(ctx context.Context, seekerID kernel.UserID, opts kernel.PaginationOptions) ([]*offer.SeekerOfferRow, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM job_offers WHERE job_seeker_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, seekerID.String()); err != nil {
		return nil, 0, errx.Wrap(err, "failed to count job offers", errx.TypeInternal)
	}

	var models []seekerOfferModel
	query := `
		SELECT o.id, o.employer_id, o.job_seeker_id, o.job_title, o.salary_offered, o.location,
			o.message, o.status, o.response_message, o.response_at, o.offered_at, o.expires_at, o.updated_at,
			u.name AS employer_name,
			COALESCE(u.company_name, '') AS company_name
		FROM job_offers o
		JOIN users u ON u.id = o.employer_id
		WHERE o.job_seeker_id = $1
		ORDER BY o.offered_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &models, query, seekerID.String(), opts.PageSize, opts.Offset())
	if err != nil {
		return nil, 0, errx.Wrap(err, "failed to list job offers", errx.TypeInternal)
	}

	rows := make([]*offer.SeekerOfferRow, len(models))
	for i := range models {
		rows[i] = &offer.SeekerOfferRow{
			Offer:        models[i].offerModel.toEntity(),
			EmployerName: models[i].EmployerName,
			CompanyName:  models[i].CompanyName,
		}
	}

	return rows, total, nil
}

// employerOfferModel joins an offer with seeker details
type employerOfferModel struct {
	offerModel
	SeekerName  string `db:"seeker_name"`
	SeekerPhone string `db:"seeker_phone"`
	SeekerCity  string `db:"seeker_city"`
}

// ListByEmployer retrieves offers sent by an employer, newest first
func (r *PostgresOfferRepository) ListByEmployer(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) ([]*offer.EmployerOfferRow, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM job_offers WHERE employer_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, employerID.String()); err != nil {
		return nil, 0, errx.Wrap(err, "failed to count job offers", errx.TypeInternal)
	}

	var models []employerOfferModel
	query := `
		SELECT o.id, o.employer_id, o.job_seeker_id, o.job_title, o.salary_offered, o.location,
			o.message, o.status, o.response_message, o.response_at, o.offered_at, o.expires_at, o.updated_at,
			u.name AS seeker_name,
			u.phone AS seeker_phone,
			u.city AS seeker_city
		FROM job_offers o
		JOIN users u ON u.id = o.job_seeker_id
		WHERE o.employer_id = $1
		ORDER BY o.offered_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &models, query, employerID.String(), opts.PageSize, opts.Offset())
	if err != nil {
		return nil, 0, errx.Wrap(err, "failed to list job offers", errx.TypeInternal)
	}

	rows := make([]*offer.EmployerOfferRow, len(models))
	for i := range models {
		rows[i] = &offer.EmployerOfferRow{
			Offer:       models[i].offerModel.toEntity(),
			SeekerName:  models[i].SeekerName,
			SeekerPhone: models[i].SeekerPhone,
			SeekerCity:  models[i].SeekerCity,
		}
	}

	return rows, total, nil
}

// Update persists a status change to an existing offer. Guarded on pending
// so a response cannot overwrite an expiry that already landed.
func (r *PostgresOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	model := fromEntity(o)
	model.UpdatedAt = time.Now()

	query := `
		UPDATE job_offers SET
			status = :status,
			response_message = :response_message,
			response_at = :response_at,
			updated_at = :updated_at
		WHERE id = :id AND status = 'pending'`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return errx.Wrap(err, "failed to update job offer", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}
	if rows == 0 {
		return offer.ErrAlreadyResponded().WithDetail("offer_id", o.ID.String())
	}

	return nil
}

// MarkExpired transitions the offer to expired if still pending and due
func (r *PostgresOfferRepository) MarkExpired(ctx context.Context, id kernel.OfferID, now time.Time) (bool, error) {
	query := `
		UPDATE job_offers SET
			status = 'expired',
			updated_at = $2
		WHERE id = $1 AND status = 'pending' AND expires_at <= $2`

	result, err := r.db.ExecContext(ctx, query, id.String(), now)
	if err != nil {
		return false, errx.Wrap(err, "failed to expire job offer", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, errx.Wrap(err, "failed to check expire result", errx.TypeInternal)
	}

	return rows > 0, nil
}

// ExpireDue transitions every pending offer past its window to expired
func (r *PostgresOfferRepository) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	query := `
		UPDATE job_offers SET
			status = 'expired',
			updated_at = $1
		WHERE status = 'pending' AND expires_at <= $1`

	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, errx.Wrap(err, "failed to expire due job offers", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errx.Wrap(err, "failed to check expire result", errx.TypeInternal)
	}

	return int(rows), nil
}
