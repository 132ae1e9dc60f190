package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jobhubapp/jobhub/marketplace/application"
	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// PostgresApplicationRepository implements application.Repository using
// PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application
// repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// applicationModel is the database representation of an application
type applicationModel struct {
	ID              string         `db:"id"`
	PostingID       string         `db:"posting_id"`
	EmployerID      string         `db:"employer_id"`
	ApplicantID     string         `db:"applicant_id"`
	Status          string         `db:"status"`
	Message         string         `db:"message"`
	ResponseMessage sql.NullString `db:"response_message"`
	ResponseAt      sql.NullTime   `db:"response_at"`
	AppliedAt       time.Time      `db:"applied_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

const applicationColumns = `id, posting_id, employer_id, applicant_id, status, message,
	response_message, response_at, applied_at, updated_at`

func (m *applicationModel) toEntity() *application.Application {
	a := &application.Application{
		ID:          kernel.NewApplicationID(m.ID),
		PostingID:   kernel.NewPostingID(m.PostingID),
		EmployerID:  kernel.NewUserID(m.EmployerID),
		ApplicantID: kernel.NewUserID(m.ApplicantID),
		Status:      application.Status(m.Status),
		Message:     m.Message,
		AppliedAt:   m.AppliedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.ResponseMessage.Valid {
		msg := m.ResponseMessage.String
		a.ResponseMessage = &msg
	}
	if m.ResponseAt.Valid {
		at := m.ResponseAt.Time
		a.ResponseAt = &at
	}
	return a
}

func fromEntity(a *application.Application) *applicationModel {
	m := &applicationModel{
		ID:          a.ID.String(),
		PostingID:   a.PostingID.String(),
		EmployerID:  a.EmployerID.String(),
		ApplicantID: a.ApplicantID.String(),
		Status:      string(a.Status),
		Message:     a.Message,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.ResponseMessage != nil {
		m.ResponseMessage = sql.NullString{String: *a.ResponseMessage, Valid: true}
	}
	if a.ResponseAt != nil {
		m.ResponseAt = sql.NullTime{Time: *a.ResponseAt, Valid: true}
	}
	return m
}

// Create inserts a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	model := fromEntity(a)

	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES (:id, :posting_id, :employer_id, :applicant_id, :status, :message,
			:response_message, :response_at, :applied_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return application.ErrAlreadyApplied().WithDetail("posting_id", a.PostingID.String())
			case "23503":
				return errx.Wrap(err, "posting or applicant does not exist", errx.TypeValidation)
			}
		}
		return errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	return nil
}

// GetByID retrieves an application by its ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	var model applicationModel

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get application", errx.TypeInternal)
	}

	return model.toEntity(), nil
}

// ExistsForPosting checks whether the applicant already applied to the
// posting
func (r *PostgresApplicationRepository) ExistsForPosting(ctx context.Context, postingID kernel.PostingID, applicantID kernel.UserID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE posting_id = $1 AND applicant_id = $2)`

	err := r.db.GetContext(ctx, &exists, query, postingID.String(), applicantID.String())
	if err != nil {
		return false, errx.Wrap(err, "failed to check for existing application", errx.TypeInternal)
	}

	return exists, nil
}

// seekerApplicationModel joins an application with its posting details
type seekerApplicationModel struct {
	applicationModel
	PostingTitle       string       `db:"posting_title"`
	CompanyName        string       `db:"company_name"`
	Location           string       `db:"location"`
	Salary             int64        `db:"salary"`
	JobType            string       `db:"job_type"`
	RequiredCandidates int          `db:"required_candidates"`
	HiredCount         int          `db:"hired_count"`
	IsClosed           bool         `db:"is_closed"`
	AutoClosed         bool         `db:"auto_closed"`
	RecordStatus       string       `db:"record_status"`
	ClosedAt           sql.NullTime `db:"closed_at"`
	PostedAt           time.Time    `db:"posted_at"`
}

// ListByApplicant retrieves a seeker's applications, newest first
func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID kernel.UserID, opts kernel.PaginationOptions) ([]*application.SeekerApplicationRow, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE applicant_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, applicantID.String()); err != nil {
		return nil, 0, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	var models []seekerApplicationModel
	query := `
		SELECT a.id, a.posting_id, a.employer_id, a.applicant_id, a.status, a.message,
			a.response_message, a.response_at, a.applied_at, a.updated_at,
			p.title AS posting_title,
			COALESCE(u.company_name, '') AS company_name,
			p.location, p.salary, p.job_type,
			p.required_candidates, p.hired_count, p.is_closed, p.auto_closed,
			p.record_status, p.closed_at, p.posted_at
		FROM applications a
		JOIN job_postings p ON p.id = a.posting_id
		JOIN users u ON u.id = a.employer_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &models, query, applicantID.String(), opts.PageSize, opts.Offset())
	if err != nil {
		return nil, 0, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	rows := make([]*application.SeekerApplicationRow, len(models))
	for i := range models {
		m := &models[i]
		p := &posting.Posting{
			ID:                 kernel.NewPostingID(m.PostingID),
			EmployerID:         kernel.NewUserID(m.EmployerID),
			Title:              m.PostingTitle,
			Location:           m.Location,
			Salary:             kernel.Money(m.Salary),
			JobType:            kernel.JobType(m.JobType),
			RequiredCandidates: m.RequiredCandidates,
			HiredCount:         m.HiredCount,
			IsClosed:           m.IsClosed,
			AutoClosed:         m.AutoClosed,
			RecordStatus:       posting.RecordStatus(m.RecordStatus),
			PostedAt:           m.PostedAt,
		}
		if m.ClosedAt.Valid {
			closedAt := m.ClosedAt.Time
			p.ClosedAt = &closedAt
		}
		rows[i] = &application.SeekerApplicationRow{
			Application: m.applicationModel.toEntity(),
			Posting:     p,
			CompanyName: m.CompanyName,
		}
	}

	return rows, total, nil
}

// employerApplicationModel joins an application with applicant details
type employerApplicationModel struct {
	applicationModel
	ApplicantName       string `db:"applicant_name"`
	ApplicantPhone      string `db:"applicant_phone"`
	ApplicantEmail      string `db:"applicant_email"`
	ApplicantCity       string `db:"applicant_city"`
	ApplicantExperience string `db:"applicant_experience"`
}

// ListByPosting retrieves a posting's applications, newest first
func (r *PostgresApplicationRepository) ListByPosting(ctx context.Context, postingID kernel.PostingID, opts kernel.PaginationOptions) ([]*application.EmployerApplicationRow, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE posting_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, postingID.String()); err != nil {
		return nil, 0, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	var models []employerApplicationModel
	query := `
		SELECT a.id, a.posting_id, a.employer_id, a.applicant_id, a.status, a.message,
			a.response_message, a.response_at, a.applied_at, a.updated_at,
			u.name AS applicant_name,
			u.phone AS applicant_phone,
			u.email AS applicant_email,
			u.city AS applicant_city,
			u.experience AS applicant_experience
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.posting_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &models, query, postingID.String(), opts.PageSize, opts.Offset())
	if err != nil {
		return nil, 0, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	rows := make([]*application.EmployerApplicationRow, len(models))
	for i := range models {
		m := &models[i]
		rows[i] = &application.EmployerApplicationRow{
			Application:         m.applicationModel.toEntity(),
			ApplicantName:       m.ApplicantName,
			ApplicantPhone:      m.ApplicantPhone,
			ApplicantEmail:      m.ApplicantEmail,
			ApplicantCity:       m.ApplicantCity,
			ApplicantExperience: m.ApplicantExperience,
		}
	}

	return rows, total, nil
}

// Update persists a status change to an existing application
func (r *PostgresApplicationRepository) Update(ctx context.Context, a *application.Application) error {
	model := fromEntity(a)
	model.UpdatedAt = time.Now()

	query := `
		UPDATE applications SET
			status = :status,
			response_message = :response_message,
			response_at = :response_at,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return errx.Wrap(err, "failed to update application", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound().WithDetail("application_id", a.ID.String())
	}

	return nil
}

// AcceptAndRecordHire marks the application accepted and increments the
// posting's hired count atomically. The posting update is guarded so a
// closed or filled posting cannot be over-hired by concurrent accepts.
func (r *PostgresApplicationRepository) AcceptAndRecordHire(ctx context.Context, a *application.Application) (*posting.HireResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errx.Wrap(err, "failed to begin transaction", errx.TypeInternal)
	}
	defer tx.Rollback()

	model := fromEntity(a)
	model.UpdatedAt = time.Now()

	updateApp := `
		UPDATE applications SET
			status = $1,
			response_message = $2,
			response_at = $3,
			updated_at = $4
		WHERE id = $5 AND status = 'pending'`

	result, err := tx.ExecContext(ctx, updateApp,
		model.Status, model.ResponseMessage, model.ResponseAt, model.UpdatedAt, model.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to accept application", errx.TypeInternal)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, errx.Wrap(err, "failed to check accept result", errx.TypeInternal)
	}
	if rows == 0 {
		return nil, application.ErrAlreadyResponded().WithDetail("application_id", a.ID.String())
	}

	recordHire := `
		UPDATE job_postings SET
			hired_count = hired_count + 1,
			is_closed = (hired_count + 1 >= required_candidates),
			auto_closed = (hired_count + 1 >= required_candidates),
			closed_at = CASE WHEN hired_count + 1 >= required_candidates THEN NOW() ELSE closed_at END,
			updated_at = NOW()
		WHERE id = $1
			AND record_status != 'deleted'
			AND is_closed = FALSE
			AND hired_count < required_candidates
		RETURNING hired_count, required_candidates, auto_closed`

	var hire struct {
		HiredCount         int  `db:"hired_count"`
		RequiredCandidates int  `db:"required_candidates"`
		AutoClosed         bool `db:"auto_closed"`
	}
	err = tx.GetContext(ctx, &hire, recordHire, a.PostingID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posting.ErrAllSlotsFilled().WithDetail("posting_id", a.PostingID.String())
		}
		return nil, errx.Wrap(err, "failed to record hire", errx.TypeInternal)
	}

	if err := tx.Commit(); err != nil {
		return nil, errx.Wrap(err, "failed to commit accept", errx.TypeInternal)
	}

	return &posting.HireResult{
		PostingID:          a.PostingID,
		HiredCount:         hire.HiredCount,
		RequiredCandidates: hire.RequiredCandidates,
		AutoClosed:         hire.AutoClosed,
	}, nil
}
