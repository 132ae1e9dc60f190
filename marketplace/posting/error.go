package posting

import (
	"net/http"

	"github.com/jobhubapp/jobhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("POSTING")

// Error codes
var (
	CodePostingNotFound           = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job posting not found")
	CodePostingDeleted            = ErrRegistry.Register("DELETED", errx.TypeBusiness, http.StatusGone, "Job posting has been deleted")
	CodePostingClosed             = ErrRegistry.Register("CLOSED", errx.TypeBusiness, http.StatusConflict, "Job posting is closed and no longer accepting candidates")
	CodePostingAlreadyClosed      = ErrRegistry.Register("ALREADY_CLOSED", errx.TypeConflict, http.StatusConflict, "Job posting is already closed")
	CodeNotPostingOwner           = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Job posting belongs to another employer")
	CodeAllSlotsFilled            = ErrRegistry.Register("ALL_SLOTS_FILLED", errx.TypeBusiness, http.StatusConflict, "All required positions have already been filled")
	CodeInvalidRequiredCandidates = ErrRegistry.Register("INVALID_REQUIRED_CANDIDATES", errx.TypeValidation, http.StatusBadRequest, "Required candidates must be at least 1")
	CodeValidationFailed          = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Job posting validation failed")
)

// Helper functions
func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrPostingDeleted() *errx.Error {
	return ErrRegistry.New(CodePostingDeleted)
}

func ErrPostingClosed() *errx.Error {
	return ErrRegistry.New(CodePostingClosed)
}

func ErrPostingAlreadyClosed() *errx.Error {
	return ErrRegistry.New(CodePostingAlreadyClosed)
}

func ErrNotPostingOwner() *errx.Error {
	return ErrRegistry.New(CodeNotPostingOwner)
}

func ErrAllSlotsFilled() *errx.Error {
	return ErrRegistry.New(CodeAllSlotsFilled)
}

func ErrInvalidRequiredCandidates() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequiredCandidates)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
