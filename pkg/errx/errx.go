package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for clients and for HTTP mapping.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeInternal       Type = "INTERNAL"
)

// Code identifies a registered error within a registry.
type Code string

type definition struct {
	code       Code
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of a single domain.
// Each domain package creates its own registry with a unique prefix.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a registry whose codes are namespaced by prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register adds an error definition and returns its code.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.definitions[full] = definition{
		code:       full,
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an error instance from a registered code.
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "Unknown error",
		}
	}
	return &Error{
		Code:       def.code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// Error is a structured application error.
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair to the error. Returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON body served for this error.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error. If err is already an
// *Error it is returned unchanged so registered codes survive service layers.
func Wrap(err error, message string, errType Type) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Code:       Code(string(errType)),
		Type:       errType,
		HTTPStatus: statusFor(errType),
		Message:    message,
		cause:      err,
	}
}

func statusFor(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
