package userinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/kernel"
	"github.com/lib/pq"
)

// PostgresUserRepository implements user.Repository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type userModel struct {
	ID                  string          `db:"id"`
	Role                string          `db:"role"`
	Name                string          `db:"name"`
	Phone               string          `db:"phone"`
	Email               string          `db:"email"`
	PasswordHash        string          `db:"password_hash"`
	Address             string          `db:"address"`
	City                string          `db:"city"`
	Aadhaar             string          `db:"aadhaar"`
	Experience          string          `db:"experience"`
	JobTypes            json.RawMessage `db:"job_types"`
	ExpectedSalary      int64           `db:"expected_salary"`
	Availability        json.RawMessage `db:"availability"`
	Languages           json.RawMessage `db:"languages"`
	CompanyName         string          `db:"company_name"`
	CompanyType         string          `db:"company_type"`
	BusinessDescription string          `db:"business_description"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

const userColumns = `
	id, role, name, phone, email, password_hash, address, city,
	aadhaar, experience, job_types, expected_salary, availability, languages,
	company_name, company_type, business_description, created_at, updated_at
`

// toEntity converts database model to domain entity
func (m *userModel) toEntity() (*user.User, error) {
	var jobTypes []kernel.JobType
	if len(m.JobTypes) > 0 {
		if err := json.Unmarshal(m.JobTypes, &jobTypes); err != nil {
			return nil, errx.Wrap(err, "failed to unmarshal job_types", errx.TypeInternal)
		}
	}

	var availability []string
	if len(m.Availability) > 0 {
		if err := json.Unmarshal(m.Availability, &availability); err != nil {
			return nil, errx.Wrap(err, "failed to unmarshal availability", errx.TypeInternal)
		}
	}

	var languages []string
	if len(m.Languages) > 0 {
		if err := json.Unmarshal(m.Languages, &languages); err != nil {
			return nil, errx.Wrap(err, "failed to unmarshal languages", errx.TypeInternal)
		}
	}

	return &user.User{
		ID:                  kernel.UserID(m.ID),
		Role:                kernel.UserRole(m.Role),
		Name:                m.Name,
		Phone:               kernel.Phone(m.Phone),
		Email:               kernel.Email(m.Email),
		PasswordHash:        m.PasswordHash,
		Address:             m.Address,
		City:                m.City,
		Aadhaar:             kernel.Aadhaar(m.Aadhaar),
		Experience:          m.Experience,
		JobTypes:            jobTypes,
		ExpectedSalary:      kernel.Money(m.ExpectedSalary),
		Availability:        availability,
		Languages:           languages,
		CompanyName:         m.CompanyName,
		CompanyType:         m.CompanyType,
		BusinessDescription: m.BusinessDescription,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

// marshalList stores nil slices as an empty JSON array. Marshaling nil
// produces the scalar null, which jsonb array functions reject.
func marshalList[T any](items []T) (json.RawMessage, error) {
	if items == nil {
		return json.RawMessage("[]"), nil
	}
	return json.Marshal(items)
}

// fromEntity converts domain entity to database model
func fromEntity(u *user.User) (*userModel, error) {
	jobTypes, err := marshalList(u.JobTypes)
	if err != nil {
		return nil, errx.Wrap(err, "failed to marshal job_types", errx.TypeInternal)
	}

	availability, err := marshalList(u.Availability)
	if err != nil {
		return nil, errx.Wrap(err, "failed to marshal availability", errx.TypeInternal)
	}

	languages, err := marshalList(u.Languages)
	if err != nil {
		return nil, errx.Wrap(err, "failed to marshal languages", errx.TypeInternal)
	}

	return &userModel{
		ID:                  string(u.ID),
		Role:                string(u.Role),
		Name:                u.Name,
		Phone:               string(u.Phone),
		Email:               string(u.Email),
		PasswordHash:        u.PasswordHash,
		Address:             u.Address,
		City:                u.City,
		Aadhaar:             string(u.Aadhaar),
		Experience:          u.Experience,
		JobTypes:            jobTypes,
		ExpectedSalary:      int64(u.ExpectedSalary),
		Availability:        availability,
		Languages:           languages,
		CompanyName:         u.CompanyName,
		CompanyType:         u.CompanyType,
		BusinessDescription: u.BusinessDescription,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model, err := fromEntity(userEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (
			id, role, name, phone, email, password_hash, address, city,
			aadhaar, experience, job_types, expected_salary, availability, languages,
			company_name, company_type, business_description, created_at, updated_at
		) VALUES (
			:id, :role, :name, :phone, :email, :password_hash, :address, :city,
			:aadhaar, :experience, :job_types, :expected_salary, :availability, :languages,
			:company_name, :company_type, :business_description, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return user.ErrUserAlreadyExists()
			}
		}
		return errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}

	return nil
}

// Update updates an existing user
func (r *PostgresUserRepository) Update(ctx context.Context, id kernel.UserID, userEntity *user.User) error {
	model, err := fromEntity(userEntity)
	if err != nil {
		return err
	}

	query := `
		UPDATE users SET
			name = :name,
			phone = :phone,
			email = :email,
			password_hash = :password_hash,
			address = :address,
			city = :city,
			aadhaar = :aadhaar,
			experience = :experience,
			job_types = :job_types,
			expected_salary = :expected_salary,
			availability = :availability,
			languages = :languages,
			company_name = :company_name,
			company_type = :company_type,
			business_description = :business_description,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return user.ErrUserAlreadyExists()
			}
		}
		return errx.Wrap(err, "failed to update user", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}

	if rows == 0 {
		return user.ErrUserNotFound()
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, errx.Wrap(err, "failed to get user by id", errx.TypeInternal)
	}

	return model.toEntity()
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, errx.Wrap(err, "failed to get user by email", errx.TypeInternal)
	}

	return model.toEntity()
}

// GetByPhone retrieves a user by phone
func (r *PostgresUserRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(phone))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, errx.Wrap(err, "failed to get user by phone", errx.TypeInternal)
	}

	return model.toEntity()
}

// FindByIdentifier retrieves users of a role matching the identifier by
// name (case-insensitive), phone or email
func (r *PostgresUserRepository) FindByIdentifier(ctx context.Context, identifier string, role kernel.UserRole) ([]*user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1
		  AND (LOWER(name) = LOWER($2) OR phone = $2 OR email = $2)
	`

	var models []userModel
	err := r.db.SelectContext(ctx, &models, query, string(role), identifier)
	if err != nil {
		return nil, errx.Wrap(err, "failed to find users by identifier", errx.TypeInternal)
	}

	entities := make([]*user.User, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// SearchSeekers retrieves job seekers with complete profiles matching the
// optional skill and city filters. Profile completeness is expressed in SQL
// so pagination counts stay correct.
func (r *PostgresUserRepository) SearchSeekers(ctx context.Context, req user.SearchSeekersRequest) (*kernel.Paginated[user.User], error) {
	whereConditions := []string{
		"role = 'job'",
		"name <> ''",
		"phone <> ''",
		"email <> ''",
		"aadhaar <> ''",
		"address <> ''",
		"city <> ''",
		"experience <> ''",
		"expected_salary > 0",
		// Rows written before list columns defaulted to [] hold jsonb null,
		// and jsonb_array_length errors on scalars
		"(jsonb_typeof(job_types::jsonb) = 'array' AND jsonb_array_length(job_types::jsonb) > 0)",
		"(jsonb_typeof(availability::jsonb) = 'array' AND jsonb_array_length(availability::jsonb) > 0)",
	}
	args := []interface{}{}
	argCount := 1

	if req.Skill != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("job_types::text ILIKE $%d", argCount))
		args = append(args, "%"+req.Skill+"%")
		argCount++
	}

	if req.City != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("city ILIKE $%d", argCount))
		args = append(args, "%"+req.City+"%")
		argCount++
	}

	whereClause := "WHERE " + whereConditions[0]
	for i := 1; i < len(whereConditions); i++ {
		whereClause += " AND " + whereConditions[i]
	}

	// Count total
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, errx.Wrap(err, "failed to count job seekers", errx.TypeInternal)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, userColumns, whereClause, argCount, argCount+1)

	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var models []userModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search job seekers", errx.TypeInternal)
	}

	entities := make([]user.User, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return kernel.NewPaginated(entities, req.Pagination, total), nil
}

// Exists checks if a user exists by ID
func (r *PostgresUserRepository) Exists(ctx context.Context, id kernel.UserID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, errx.Wrap(err, "failed to check user existence", errx.TypeInternal)
	}

	return exists, nil
}
