package auth

import (
	"github.com/jobhubapp/jobhub/pkg/errx"
	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies passwords
type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// BcryptPasswordService implements PasswordService with bcrypt
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a bcrypt password service with the default cost
func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{cost: bcrypt.DefaultCost}
}

// Hash hashes a plaintext password
func (s *BcryptPasswordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}
	return string(hash), nil
}

// Compare checks a plaintext password against a stored hash
func (s *BcryptPasswordService) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
