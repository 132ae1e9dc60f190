package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/kernel"
	"github.com/jobhubapp/jobhub/pkg/validation"
)

// AuthService registers and authenticates marketplace users
type AuthService struct {
	userRepo    user.Repository
	passwordSvc PasswordService
	tokenSvc    *TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo user.Repository, passwordSvc PasswordService, tokenSvc *TokenService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// SignupRequest - DTO for registering a new user
type SignupRequest struct {
	Role     kernel.UserRole `json:"role" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Phone    kernel.Phone    `json:"phone" validate:"required,phone10"`
	Email    kernel.Email    `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
}

// LoginRequest - DTO for logging in. Identifier is name, phone or email.
type LoginRequest struct {
	Identifier string          `json:"identifier" validate:"required"`
	Password   string          `json:"password" validate:"required"`
	Role       kernel.UserRole `json:"role" validate:"required"`
}

// Session is returned on successful signup or login
type Session struct {
	UserID            kernel.UserID   `json:"user_id"`
	Role              kernel.UserRole `json:"role"`
	Name              string          `json:"name"`
	Token             string          `json:"token"`
	ExpiresAt         time.Time       `json:"expires_at"`
	ProfileCompletion int             `json:"profile_completion"`
}

// Signup registers a new user and opens a session
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := validation.Struct(req); err != nil {
		return nil, ErrValidationFailed().WithDetail("validation_error", err.Error())
	}

	if !req.Role.IsValid() {
		return nil, user.ErrInvalidRole().WithDetail("role", string(req.Role))
	}

	if !validation.ValidPassword(req.Password) {
		return nil, ErrWeakPassword().WithDetail("requirements", validation.PasswordRequirements())
	}

	if existing, err := s.userRepo.GetByPhone(ctx, req.Phone); err == nil && existing != nil {
		return nil, user.ErrPhoneAlreadyInUse().WithDetail("phone", req.Phone.String())
	}
	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, user.ErrEmailAlreadyInUse().WithDetail("email", req.Email.String())
	}

	hash, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newUser := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Role:         req.Role,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}

	return s.openSession(newUser)
}

// Login authenticates a user by identifier, password and role
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	if err := validation.Struct(req); err != nil {
		return nil, ErrValidationFailed().WithDetail("validation_error", err.Error())
	}

	if !req.Role.IsValid() {
		return nil, user.ErrInvalidRole().WithDetail("role", string(req.Role))
	}

	candidates, err := s.userRepo.FindByIdentifier(ctx, strings.TrimSpace(req.Identifier), req.Role)
	if err != nil {
		return nil, errx.Wrap(err, "failed to look up user", errx.TypeInternal)
	}

	for _, candidate := range candidates {
		if s.passwordSvc.Compare(candidate.PasswordHash, req.Password) {
			return s.openSession(candidate)
		}
	}

	return nil, ErrInvalidCredentials()
}

// CurrentUser resolves the authenticated user from token claims
func (s *AuthService) CurrentUser(ctx context.Context, userID kernel.UserID) (*user.User, error) {
	userEntity, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", userID.String())
	}
	return userEntity, nil
}

func (s *AuthService) openSession(u *user.User) (*Session, error) {
	token, err := s.tokenSvc.GenerateToken(u.ID, u.Role, u.Name)
	if err != nil {
		return nil, err
	}

	return &Session{
		UserID:            u.ID,
		Role:              u.Role,
		Name:              u.Name,
		Token:             token,
		ExpiresAt:         time.Now().Add(s.tokenSvc.TokenTTL()),
		ProfileCompletion: u.ProfileCompletion(),
	}, nil
}
