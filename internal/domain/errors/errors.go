package errors

import (
	"net/http"

	"cromptch/internal/errors"
)

// Kind classifies an application error. Each kind maps to exactly one HTTP status.
type Kind string

const (
	KindBadRequest   Kind = "BAD_REQUEST"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindInternal     Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Kind() Kind      // Error classification
	Message() string // Short user-facing message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind    Kind
	message string
}

func newError(kind Kind, message string) *BaseError {
	return &BaseError{kind: kind, message: message}
}

// BadRequest reports malformed or invalid client input.
func BadRequest(message string) *BaseError { return newError(KindBadRequest, message) }

// Unauthorized reports a missing, invalid or insufficient credential.
func Unauthorized(message string) *BaseError { return newError(KindUnauthorized, message) }

// Forbidden reports an authenticated caller acting outside its permissions.
func Forbidden(message string) *BaseError { return newError(KindForbidden, message) }

// NotFound reports a missing resource.
func NotFound(message string) *BaseError { return newError(KindNotFound, message) }

// Internal reports a server-side failure. The message is shown to clients, so keep it generic.
func Internal(message string) *BaseError { return newError(KindInternal, message) }

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Wrap attaches a cause for logs while keeping the public message.
func (e *BaseError) Wrap(cause error) error {
	return &causedError{BaseError: e, cause: cause}
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	switch e.kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

func (e *causedError) Is(target error) bool {
	base, ok := target.(*BaseError)

	return ok && base == e.BaseError
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := errors.AsType[AppError](err)

	return ok && appErr.Kind() == kind
}

// Predefined error types
var (
	// Credential store
	ErrUsernameTooShort = BadRequest("Username must be at least 3 characters")
	ErrPasswordTooShort = BadRequest("Password must be at least 8 characters")
	ErrInvalidEmail     = BadRequest("Invalid email address")
	ErrUserTaken        = BadRequest("Username or email already in use")
	ErrUserNotFound     = NotFound("User not found")
	ErrUserCreateFailed = Internal("Failed to create user")
	ErrPasswordHash     = Internal("Failed to hash password")

	// Captcha
	ErrCaptchaMissing      = BadRequest("Missing hCaptcha token")
	ErrCaptchaInvalid      = BadRequest("Invalid hCaptcha token")
	ErrCaptchaVerifyFailed = Internal("Failed to verify hCaptcha")

	// Tokens and authorization
	ErrMissingAuthHeader = Unauthorized("Missing authorization header")
	ErrInvalidAuthHeader = Unauthorized("Invalid authorization header")
	ErrInvalidToken      = Unauthorized("Invalid token")
	ErrTokenExpired      = Unauthorized("Token expired")
	ErrNotAdmin          = Unauthorized("User is not an admin")
	ErrTokenCreateFailed = Internal("Failed to create token")
	ErrTokenUpdateFailed = Internal("Failed to update token")

	// Recipes
	ErrRecipeTitleEmpty       = BadRequest("Recipe title must not be empty")
	ErrRecipeNoIngredients    = BadRequest("Recipe must have at least one ingredient")
	ErrRecipeNoSteps          = BadRequest("Recipe must have at least one step")
	ErrIngredientNameEmpty    = BadRequest("Ingredient name must not be empty")
	ErrIngredientUnitEmpty    = BadRequest("Ingredient unit must not be empty")
	ErrIngredientNegative     = BadRequest("Ingredient quantity must not be negative")
	ErrStepDescriptionEmpty   = BadRequest("Step description must not be empty")
	ErrTimeEstimateNegative   = BadRequest("Time estimates must not be negative")
	ErrInvalidListLimit       = BadRequest("Invalid limit")
	ErrUnknownImage           = BadRequest("Unknown image")
	ErrRecipeNotFound         = NotFound("Recipe not found")
	ErrRecipeCreateFailed     = Internal("Error creating recipe")
	ErrRecipeFetchFailed      = Internal("Internal db error")
	ErrRecipeListFailed       = Internal("Error fetching recipes")
	ErrRecipeDeleteFailed     = Internal("Deletion failed")
	ErrQRCodeGenerationFailed = Internal("Failed to generate QR code")

	// Images
	ErrImageUploadFailed = BadRequest("Image upload failed")
	ErrImageNotFound     = NotFound("Image not found")
	ErrImageEntryFailed  = Internal("Failed to create image entry")

	// Request shape
	ErrInvalidBody = BadRequest("Invalid request body")
	ErrInvalidID   = BadRequest("Invalid id")

	// General errors
	ErrInternalError = Internal("Internal server error")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Internal db error"
}
