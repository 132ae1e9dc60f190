package usersrv

import (
	"context"
	"time"

	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/kernel"
	"github.com/jobhubapp/jobhub/pkg/validation"
)

// UserService provides profile operations for both marketplace roles
type UserService struct {
	userRepo user.Repository
}

// NewUserService creates a new instance of the user service
func NewUserService(userRepo user.Repository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetProfile retrieves a user's profile with its completion percentage
func (s *UserService) GetProfile(ctx context.Context, userID kernel.UserID) (*user.ProfileResponse, error) {
	userEntity, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", userID.String())
	}

	return &user.ProfileResponse{
		User:              userEntity,
		ProfileCompletion: userEntity.ProfileCompletion(),
	}, nil
}

// UpdateProfile applies a partial profile update
func (s *UserService) UpdateProfile(ctx context.Context, userID kernel.UserID, req user.UpdateProfileRequest) (*user.ProfileResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, user.ErrValidationFailed().WithDetail("validation_error", err.Error())
	}

	userEntity, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", userID.String())
	}

	updated := false

	if req.Name != nil && *req.Name != userEntity.Name {
		userEntity.Name = *req.Name
		updated = true
	}

	if req.Phone != nil && *req.Phone != userEntity.Phone {
		if err := s.checkPhoneAvailable(ctx, *req.Phone, userID); err != nil {
			return nil, err
		}
		userEntity.Phone = *req.Phone
		updated = true
	}

	if req.Email != nil && *req.Email != userEntity.Email {
		if err := s.checkEmailAvailable(ctx, *req.Email, userID); err != nil {
			return nil, err
		}
		userEntity.Email = *req.Email
		updated = true
	}

	if req.Address != nil {
		userEntity.Address = *req.Address
		updated = true
	}

	if req.City != nil {
		userEntity.City = *req.City
		updated = true
	}

	if userEntity.IsJobSeeker() {
		updated = s.applySeekerFields(userEntity, req) || updated
	} else {
		updated = s.applyEmployerFields(userEntity, req) || updated
	}

	if !updated {
		return nil, user.ErrNoFieldsToUpdate()
	}

	userEntity.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, userID, userEntity); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}

	return &user.ProfileResponse{
		User:              userEntity,
		ProfileCompletion: userEntity.ProfileCompletion(),
	}, nil
}

// BrowseSeekers retrieves job seekers with complete profiles for an employer
func (s *UserService) BrowseSeekers(ctx context.Context, employerID kernel.UserID, req user.SearchSeekersRequest) (*user.PaginatedSeekersResponse, error) {
	employer, err := s.userRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", employerID.String())
	}

	if !employer.IsEmployer() {
		return nil, user.ErrNotAnEmployer().WithDetail("user_id", employerID.String())
	}

	seekers, err := s.userRepo.SearchSeekers(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to browse job seekers", errx.TypeInternal)
	}

	responses := make([]user.SeekerResponse, 0, len(seekers.Items))
	for _, seeker := range seekers.Items {
		responses = append(responses, user.SeekerResponse{
			ID:                seeker.ID,
			Name:              seeker.Name,
			City:              seeker.City,
			Experience:        seeker.Experience,
			JobTypes:          seeker.JobTypes,
			ExpectedSalary:    seeker.ExpectedSalary,
			Availability:      seeker.Availability,
			Languages:         seeker.Languages,
			ProfileCompletion: seeker.ProfileCompletion(),
			MemberSince:       seeker.CreatedAt,
		})
	}

	return &kernel.Paginated[user.SeekerResponse]{
		Items: responses,
		Page:  seekers.Page,
		Empty: seekers.Empty,
	}, nil
}

// GetUserByID retrieves a user entity for other services
func (s *UserService) GetUserByID(ctx context.Context, userID kernel.UserID) (*user.User, error) {
	userEntity, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", userID.String())
	}
	return userEntity, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *UserService) applySeekerFields(u *user.User, req user.UpdateProfileRequest) bool {
	updated := false

	if req.Aadhaar != nil && *req.Aadhaar != u.Aadhaar {
		u.Aadhaar = *req.Aadhaar
		updated = true
	}
	if req.Experience != nil {
		u.Experience = *req.Experience
		updated = true
	}
	if req.JobTypes != nil {
		u.JobTypes = *req.JobTypes
		updated = true
	}
	if req.ExpectedSalary != nil {
		u.ExpectedSalary = *req.ExpectedSalary
		updated = true
	}
	if req.Availability != nil {
		u.Availability = *req.Availability
		updated = true
	}
	if req.Languages != nil {
		u.Languages = *req.Languages
		updated = true
	}

	return updated
}

func (s *UserService) applyEmployerFields(u *user.User, req user.UpdateProfileRequest) bool {
	updated := false

	if req.CompanyName != nil {
		u.CompanyName = *req.CompanyName
		updated = true
	}
	if req.CompanyType != nil {
		u.CompanyType = *req.CompanyType
		updated = true
	}
	if req.BusinessDescription != nil {
		u.BusinessDescription = *req.BusinessDescription
		updated = true
	}

	return updated
}

func (s *UserService) checkPhoneAvailable(ctx context.Context, phone kernel.Phone, selfID kernel.UserID) error {
	existing, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil // not found means available
	}
	if existing.ID != selfID {
		return user.ErrPhoneAlreadyInUse().WithDetail("phone", phone.String())
	}
	return nil
}

func (s *UserService) checkEmailAvailable(ctx context.Context, email kernel.Email, selfID kernel.UserID) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}
	if existing.ID != selfID {
		return user.ErrEmailAlreadyInUse().WithDetail("email", email.String())
	}
	return nil
}
