package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

type fakeUserRepo struct {
	users map[kernel.UserID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[kernel.UserID]*user.User)}
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
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, phone kernel.Phone) (*user.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) FindByIdentifier(ctx context.Context, identifier string, role kernel.UserRole) ([]*user.User, error) {
	var matches []*user.User
	for _, u := range r.users {
		if u.Role != role {
			continue
		}
		if strings.EqualFold(u.Name, identifier) || string(u.Phone) == identifier || string(u.Email) == identifier {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (r *fakeUserRepo) SearchSeekers(ctx context.Context, req user.SearchSeekersRequest) (*kernel.Paginated[user.User], error) {
	return nil, nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, id kernel.UserID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokenSvc := NewTokenService("test-secret", time.Hour, "jobhub")
	svc := NewAuthService(repo, NewBcryptPasswordService(), tokenSvc)
	return svc, repo
}

func signupRequest() SignupRequest {
	return SignupRequest{
		Role:     kernel.RoleJobSeeker,
		Name:     "Ravi Kumar",
		Phone:    kernel.Phone("9876543210"),
		Email:    kernel.Email("ravi@example.com"),
		Password: "Secret123",
	}
}

func TestSignupOpensSession(t *testing.T) {
	svc, repo := newTestAuthService()

	session, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, kernel.RoleJobSeeker, session.Role)
	assert.Equal(t, "Ravi Kumar", session.Name)

	stored, err := repo.GetByID(context.Background(), session.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", stored.PasswordHash)
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	req := signupRequest()
	req.Password = "weak"

	_, err := svc.Signup(context.Background(), req)
	assert.Error(t, err)
}

func TestSignupRejectsInvalidRole(t *testing.T) {
	svc, _ := newTestAuthService()

	req := signupRequest()
	req.Role = kernel.UserRole("admin")

	_, err := svc.Signup(context.Background(), req)
	assert.Error(t, err)
}

func TestSignupRejectsDuplicatePhone(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	req := signupRequest()
	req.Email = kernel.Email("other@example.com")
	_, err = svc.Signup(context.Background(), req)
	assert.Error(t, err)
}

func TestLoginByNamePhoneAndEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	for _, identifier := range []string{"Ravi Kumar", "ravi kumar", "9876543210", "ravi@example.com"} {
		session, err := svc.Login(context.Background(), LoginRequest{
			Identifier: identifier,
			Password:   "Secret123",
			Role:       kernel.RoleJobSeeker,
		})
		require.NoError(t, err, "identifier %q", identifier)
		assert.NotEmpty(t, session.Token)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{
		Identifier: "9876543210",
		Password:   "WrongPass1",
		Role:       kernel.RoleJobSeeker,
	})
	assert.Error(t, err)
}

func TestLoginRejectsWrongRole(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{
		Identifier: "9876543210",
		Password:   "Secret123",
		Role:       kernel.RoleEmployer,
	})
	assert.Error(t, err)
}
