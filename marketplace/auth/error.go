package auth

import (
	"net/http"

	"github.com/jobhubapp/jobhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid credentials")
	CodeInvalidToken       = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeMissingToken       = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization header")
	CodeRoleNotAllowed     = ErrRegistry.Register("ROLE_NOT_ALLOWED", errx.TypeAuthorization, http.StatusForbidden, "Role not allowed for this operation")
	CodeValidationFailed   = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
	CodeWeakPassword       = ErrRegistry.Register("WEAK_PASSWORD", errx.TypeValidation, http.StatusBadRequest, "Password does not meet policy requirements")
)

// Helper functions
func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrRoleNotAllowed() *errx.Error {
	return ErrRegistry.New(CodeRoleNotAllowed)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}

func ErrWeakPassword() *errx.Error {
	return ErrRegistry.New(CodeWeakPassword)
}
