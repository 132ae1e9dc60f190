package user

import (
	"context"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, id kernel.UserID, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// GetByPhone retrieves a user by phone
	GetByPhone(ctx context.Context, phone kernel.Phone) (*User, error)

	// FindByIdentifier retrieves users of a role whose name, phone or email
	// matches the identifier (name match is case-insensitive)
	FindByIdentifier(ctx context.Context, identifier string, role kernel.UserRole) ([]*User, error)

	// SearchSeekers retrieves job seekers matching the filters
	SearchSeekers(ctx context.Context, req SearchSeekersRequest) (*kernel.Paginated[User], error)

	// Exists checks if a user exists by ID
	Exists(ctx context.Context, id kernel.UserID) (bool, error)
}
