package user

import (
	"net/http"

	"github.com/jobhubapp/jobhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("USER")

// Error codes
var (
	CodeUserNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeUserAlreadyExists  = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "User already exists")
	CodeInvalidRole        = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Invalid user role")
	CodeInvalidPhone       = ErrRegistry.Register("INVALID_PHONE", errx.TypeValidation, http.StatusBadRequest, "Phone number must be exactly 10 digits")
	CodeInvalidAadhaar     = ErrRegistry.Register("INVALID_AADHAAR", errx.TypeValidation, http.StatusBadRequest, "Aadhaar number must be exactly 12 digits")
	CodeInvalidEmail       = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email format")
	CodeIncompleteProfile  = ErrRegistry.Register("INCOMPLETE_PROFILE", errx.TypeBusiness, http.StatusForbidden, "Profile must be complete for this operation")
	CodeNotAJobSeeker      = ErrRegistry.Register("NOT_A_JOB_SEEKER", errx.TypeBusiness, http.StatusForbidden, "User is not a job seeker")
	CodeNotAnEmployer      = ErrRegistry.Register("NOT_AN_EMPLOYER", errx.TypeBusiness, http.StatusForbidden, "User is not an employer")
	CodeNoFieldsToUpdate   = ErrRegistry.Register("NO_FIELDS_TO_UPDATE", errx.TypeValidation, http.StatusBadRequest, "No profile fields to update")
	CodeValidationFailed   = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
	CodePhoneAlreadyInUse  = ErrRegistry.Register("PHONE_ALREADY_IN_USE", errx.TypeConflict, http.StatusConflict, "Phone number already registered")
	CodeEmailAlreadyInUse  = ErrRegistry.Register("EMAIL_ALREADY_IN_USE", errx.TypeConflict, http.StatusConflict, "Email already registered")
)

// Helper functions
func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrUserAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeUserAlreadyExists)
}

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}

func ErrInvalidPhone() *errx.Error {
	return ErrRegistry.New(CodeInvalidPhone)
}

func ErrInvalidAadhaar() *errx.Error {
	return ErrRegistry.New(CodeInvalidAadhaar)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrIncompleteProfile() *errx.Error {
	return ErrRegistry.New(CodeIncompleteProfile)
}

func ErrNotAJobSeeker() *errx.Error {
	return ErrRegistry.New(CodeNotAJobSeeker)
}

func ErrNotAnEmployer() *errx.Error {
	return ErrRegistry.New(CodeNotAnEmployer)
}

func ErrNoFieldsToUpdate() *errx.Error {
	return ErrRegistry.New(CodeNoFieldsToUpdate)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}

func ErrPhoneAlreadyInUse() *errx.Error {
	return ErrRegistry.New(CodePhoneAlreadyInUse)
}

func ErrEmailAlreadyInUse() *errx.Error {
	return ErrRegistry.New(CodeEmailAlreadyInUse)
}
