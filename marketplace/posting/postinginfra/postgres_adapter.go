package postinginfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// PostgresPostingRepository implements posting.Repository using PostgreSQL
type PostgresPostingRepository struct {
	db *sqlx.DB
}

// NewPostgresPostingRepository creates a new PostgreSQL posting repository
func NewPostgresPostingRepository(db *sqlx.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

// postingModel is the database representation of a job posting
type postingModel struct {
	ID                 string       `db:"id"`
	EmployerID         string       `db:"employer_id"`
	Title              string       `db:"title"`
	Location           string       `db:"location"`
	Salary             int64        `db:"salary"`
	JobType            string       `db:"job_type"`
	Experience         string       `db:"experience"`
	WorkingHours       string       `db:"working_hours"`
	Urgency            string       `db:"urgency"`
	ContractType       string       `db:"contract_type"`
	Description        string       `db:"description"`
	Requirements       string       `db:"requirements"`
	Benefits           string       `db:"benefits"`
	RequiredCandidates int          `db:"required_candidates"`
	HiredCount         int          `db:"hired_count"`
	IsClosed           bool         `db:"is_closed"`
	AutoClosed         bool         `db:"auto_closed"`
	RecordStatus       string       `db:"record_status"`
	ClosedAt           sql.NullTime `db:"closed_at"`
	PostedAt           time.Time    `db:"posted_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
}

const postingColumns = `id, employer_id, title, location, salary, job_type, experience,
	working_hours, urgency, contract_type, description, requirements, benefits,
	required_candidates, hired_count, is_closed, auto_closed, record_status,
	closed_at, posted_at, updated_at`

func (m *postingModel) toEntity() *posting.Posting {
	p := &posting.Posting{
		ID:                 kernel.NewPostingID(m.ID),
		EmployerID:         kernel.NewUserID(m.EmployerID),
		Title:              m.Title,
		Location:           m.Location,
		Salary:             kernel.Money(m.Salary),
		JobType:            kernel.JobType(m.JobType),
		Experience:         m.Experience,
		WorkingHours:       m.WorkingHours,
		Urgency:            m.Urgency,
		ContractType:       m.ContractType,
		Description:        m.Description,
		Requirements:       m.Requirements,
		Benefits:           m.Benefits,
		RequiredCandidates: m.RequiredCandidates,
		HiredCount:         m.HiredCount,
		IsClosed:           m.IsClosed,
		AutoClosed:         m.AutoClosed,
		RecordStatus:       posting.RecordStatus(m.RecordStatus),
		PostedAt:           m.PostedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.ClosedAt.Valid {
		closedAt := m.ClosedAt.Time
		p.ClosedAt = &closedAt
	}
	return p
}

func fromEntity(p *posting.Posting) *postingModel {
	m := &postingModel{
		ID:                 p.ID.String(),
		EmployerID:         p.EmployerID.String(),
		Title:              p.Title,
		Location:           p.Location,
		Salary:             int64(p.Salary),
		JobType:            string(p.JobType),
		Experience:         p.Experience,
		WorkingHours:       p.WorkingHours,
		Urgency:            p.Urgency,
		ContractType:       p.ContractType,
		Description:        p.Description,
		Requirements:       p.Requirements,
		Benefits:           p.Benefits,
		RequiredCandidates: p.RequiredCandidates,
		HiredCount:         p.HiredCount,
		IsClosed:           p.IsClosed,
		AutoClosed:         p.AutoClosed,
		RecordStatus:       string(p.RecordStatus),
		PostedAt:           p.PostedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.ClosedAt != nil {
		m.ClosedAt = sql.NullTime{Time: *p.ClosedAt, Valid: true}
	}
	return m
}

// Create inserts a new job posting
func (r *PostgresPostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	model := fromEntity(p)

	query := `
		INSERT INTO job_postings (` + postingColumns + `)
		VALUES (:id, :employer_id, :title, :location, :salary, :job_type, :experience,
			:working_hours, :urgency, :contract_type, :description, :requirements, :benefits,
			:required_candidates, :hired_count, :is_closed, :auto_closed, :record_status,
			:closed_at, :posted_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return errx.Wrap(err, "employer does not exist", errx.TypeValidation)
		}
		return errx.Wrap(err, "failed to create job posting", errx.TypeInternal)
	}

	return nil
}

// Update persists changes to an existing posting
func (r *PostgresPostingRepository) Update(ctx context.Context, p *posting.Posting) error {
	model := fromEntity(p)
	model.UpdatedAt = time.Now()

	query := `
		UPDATE job_postings SET
			title = :title,
			location = :location,
			salary = :salary,
			job_type = :job_type,
			experience = :experience,
			working_hours = :working_hours,
			urgency = :urgency,
			contract_type = :contract_type,
			description = :description,
			requirements = :requirements,
			benefits = :benefits,
			required_candidates = :required_candidates,
			hired_count = :hired_count,
			is_closed = :is_closed,
			auto_closed = :auto_closed,
			record_status = :record_status,
			closed_at = :closed_at,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return errx.Wrap(err, "failed to update job posting", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}
	if rows == 0 {
		return posting.ErrPostingNotFound().WithDetail("posting_id", p.ID.String())
	}

	return nil
}

// GetByID retrieves a posting by its ID
func (r *PostgresPostingRepository) GetByID(ctx context.Context, id kernel.PostingID) (*posting.Posting, error) {
	var model postingModel

	query := `SELECT ` + postingColumns + ` FROM job_postings WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get job posting", errx.TypeInternal)
	}

	return model.toEntity(), nil
}

// employerPostingModel joins a posting row with its application count
type employerPostingModel struct {
	postingModel
	ApplicationsCount int `db:"applications_count"`
}

// ListByEmployer retrieves an employer's non-deleted postings, newest first
func (r *PostgresPostingRepository) ListByEmployer(ctx context.Context, employerID kernel.UserID, opts kernel.PaginationOptions) ([]*posting.EmployerPostingRow, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM job_postings
		WHERE employer_id = $1 AND record_status != 'deleted'`

	if err := r.db.GetContext(ctx, &total, countQuery, employerID.String()); err != nil {
		return nil, 0, errx.Wrap(err, "failed to count job postings", errx.TypeInternal)
	}

	var models []employerPostingModel
	query := `
		SELECT p.id, p.employer_id, p.title, p.location, p.salary, p.job_type, p.experience,
			p.working_hours, p.urgency, p.contract_type, p.description, p.requirements, p.benefits,
			p.required_candidates, p.hired_count, p.is_closed, p.auto_closed, p.record_status,
			p.closed_at, p.posted_at, p.updated_at,
			COUNT(a.id) AS applications_count
		FROM job_postings p
		LEFT JOIN applications a ON a.posting_id = p.id
		WHERE p.employer_id = $1 AND p.record_status != 'deleted'
		GROUP BY p.id
		ORDER BY p.posted_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &models, query, employerID.String(), opts.PageSize, opts.Offset())
	if err != nil {
		return nil, 0, errx.Wrap(err, "failed to list job postings", errx.TypeInternal)
	}

	rows := make([]*posting.EmployerPostingRow, len(models))
	for i := range models {
		rows[i] = &posting.EmployerPostingRow{
			Posting:           models[i].postingModel.toEntity(),
			ApplicationsCount: models[i].ApplicationsCount,
		}
	}

	return rows, total, nil
}

// openPostingModel joins a posting row with the employer's company name
type openPostingModel struct {
	postingModel
	CompanyName string `db:"company_name"`
}

// SearchOpen retrieves open postings matching the given filters
func (r *PostgresPostingRepository) SearchOpen(ctx context.Context, req posting.SearchPostingsRequest) ([]*posting.OpenPostingRow, int, error) {
	conditions := []string{
		"p.record_status != 'deleted'",
		"p.is_closed = FALSE",
		"p.hired_count < p.required_candidates",
	}
	args := []interface{}{}
	argPos := 1

	if req.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(p.title ILIKE $%d OR p.description ILIKE $%d OR p.requirements ILIKE $%d)",
			argPos, argPos, argPos))
		args = append(args, "%"+req.Query+"%")
		argPos++
	}
	if req.Location != "" {
		conditions = append(conditions, fmt.Sprintf("p.location ILIKE $%d", argPos))
		args = append(args, "%"+req.Location+"%")
		argPos++
	}
	if req.JobType != "" {
		conditions = append(conditions, fmt.Sprintf("p.job_type = $%d", argPos))
		args = append(args, string(req.JobType))
		argPos++
	}
	if req.MinSalary > 0 {
		conditions = append(conditions, fmt.Sprintf("p.salary >= $%d", argPos))
		args = append(args, int64(req.MinSalary))
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM job_postings p WHERE ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, errx.Wrap(err, "failed to count open postings", errx.TypeInternal)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.employer_id, p.title, p.location, p.salary, p.job_type, p.experience,
			p.working_hours, p.urgency, p.contract_type, p.description, p.requirements, p.benefits,
			p.required_candidates, p.hired_count, p.is_closed, p.auto_closed, p.record_status,
			p.closed_at, p.posted_at, p.updated_at,
			COALESCE(u.company_name, '') AS company_name
		FROM job_postings p
		JOIN users u ON u.id = p.employer_id
		WHERE %s
		ORDER BY p.posted_at DESC
		LIMIT $%d OFFSET $%d`, where, argPos, argPos+1)
	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var models []openPostingModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, 0, errx.Wrap(err, "failed to search open postings", errx.TypeInternal)
	}

	rows := make([]*posting.OpenPostingRow, len(models))
	for i := range models {
		rows[i] = &posting.OpenPostingRow{
			Posting:     models[i].postingModel.toEntity(),
			CompanyName: models[i].CompanyName,
		}
	}

	return rows, total, nil
}
