package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// TokenService issues and validates the marketplace's JWT access tokens
type TokenService struct {
	secretKey []byte
	tokenTTL  time.Duration
	issuer    string
}

// NewTokenService creates a JWT token service
func NewTokenService(secretKey string, tokenTTL time.Duration, issuer string) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		issuer:    issuer,
	}
}

type tokenClaims struct {
	Role kernel.UserRole `json:"role"`
	Name string          `json:"name"`
	jwt.RegisteredClaims
}

// Claims are the validated contents of an access token
type Claims struct {
	UserID    kernel.UserID
	Role      kernel.UserRole
	Name      string
	ExpiresAt time.Time
}

// GenerateToken issues an access token for a user
func (s *TokenService) GenerateToken(userID kernel.UserID, role kernel.UserRole, name string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign token", errx.TypeInternal)
	}

	return signed, nil
}

// ValidateToken parses and validates an access token
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken()
	}

	expiresAt := time.Time{}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &Claims{
		UserID:    kernel.UserID(claims.Subject),
		Role:      claims.Role,
		Name:      claims.Name,
		ExpiresAt: expiresAt,
	}, nil
}

// TokenTTL exposes the configured token lifetime
func (s *TokenService) TokenTTL() time.Duration {
	return s.tokenTTL
}
