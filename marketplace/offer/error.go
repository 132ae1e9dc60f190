package offer

import (
	"net/http"

	"github.com/jobhubapp/jobhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("OFFER")

// Error codes
var (
	CodeOfferNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job offer not found")
	CodeOfferExpired          = ErrRegistry.Register("EXPIRED", errx.TypeBusiness, http.StatusGone, "Job offer has expired")
	CodeAlreadyResponded      = ErrRegistry.Register("ALREADY_RESPONDED", errx.TypeBusiness, http.StatusConflict, "Job offer has already been responded to")
	CodeNotOfferRecipient     = ErrRegistry.Register("NOT_RECIPIENT", errx.TypeAuthorization, http.StatusForbidden, "Job offer was sent to another user")
	CodeNotOfferSender        = ErrRegistry.Register("NOT_SENDER", errx.TypeAuthorization, http.StatusForbidden, "Job offer was sent by another employer")
	CodeRecipientNotSeeker    = ErrRegistry.Register("RECIPIENT_NOT_SEEKER", errx.TypeBusiness, http.StatusBadRequest, "Job offers can only be sent to job seekers")
	CodeDuplicatePendingOffer = ErrRegistry.Register("DUPLICATE_PENDING", errx.TypeConflict, http.StatusConflict, "A pending offer to this seeker already exists")
	CodeValidationFailed      = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Job offer validation failed")
)

// Helper functions
func ErrOfferNotFound() *errx.Error {
	return ErrRegistry.New(CodeOfferNotFound)
}

func ErrOfferExpired() *errx.Error {
	return ErrRegistry.New(CodeOfferExpired)
}

func ErrAlreadyResponded() *errx.Error {
	return ErrRegistry.New(CodeAlreadyResponded)
}

func ErrNotOfferRecipient() *errx.Error {
	return ErrRegistry.New(CodeNotOfferRecipient)
}

func ErrNotOfferSender() *errx.Error {
	return ErrRegistry.New(CodeNotOfferSender)
}

func ErrRecipientNotSeeker() *errx.Error {
	return ErrRegistry.New(CodeRecipientNotSeeker)
}

func ErrDuplicatePendingOffer() *errx.Error {
	return ErrRegistry.New(CodeDuplicatePendingOffer)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
