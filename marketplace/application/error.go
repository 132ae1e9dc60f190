package application

import (
	"net/http"

	"github.com/jobhubapp/jobhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeAlreadyApplied        = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "You have already applied to this job posting")
	CodeAlreadyResponded      = ErrRegistry.Register("ALREADY_RESPONDED", errx.TypeBusiness, http.StatusConflict, "Application has already been responded to")
	CodeNotApplicationOwner   = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Application belongs to another user")
	CodeCannotApplyOwnPosting = ErrRegistry.Register("OWN_POSTING", errx.TypeBusiness, http.StatusBadRequest, "You cannot apply to your own job posting")
	CodeValidationFailed      = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Application validation failed")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrAlreadyResponded() *errx.Error {
	return ErrRegistry.New(CodeAlreadyResponded)
}

func ErrNotApplicationOwner() *errx.Error {
	return ErrRegistry.New(CodeNotApplicationOwner)
}

func ErrCannotApplyOwnPosting() *errx.Error {
	return ErrRegistry.New(CodeCannotApplyOwnPosting)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
