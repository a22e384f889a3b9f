package errors

import "fmt"

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeExternal     ErrorType = "EXTERNAL_API_ERROR"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
)

type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Error constructors
func NewValidationError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewExternalError(service string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeExternal,
		Message: fmt.Sprintf("Error from external service (%s)", service),
		Details: err.Error(),
	}
}

// NewUpstreamAuthError reports a 401/403 from the vendor API. Retrying
// cannot fix credentials, so callers fail over to the demo catalog.
func NewUpstreamAuthError(service string, status int) *APIError {
	return &APIError{
		Type:    ErrorTypeUnauthorized,
		Message: fmt.Sprintf("External service (%s) rejected credentials", service),
		Details: fmt.Sprintf("status %d", status),
	}
}

// NewUpstreamServerError reports a 5xx from the vendor API.
func NewUpstreamServerError(service string, status int) *APIError {
	return &APIError{
		Type:    ErrorTypeExternal,
		Message: fmt.Sprintf("External service (%s) failed", service),
		Details: fmt.Sprintf("status %d", status),
	}
}

func NewInternalError(err error) *APIError {
	return &APIError{
		Type:    ErrorTypeInternal,
		Message: "Internal server error",
		Details: err.Error(),
	}
}
