package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// RemoteError is a failed answer from the marketplace data service. The
// upstream status and message are carried through unchanged so callers can
// surface exactly what the marketplace said.
type RemoteError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return fmt.Sprintf("marketplace returned %d: %s", e.Status, e.Message)
}

// NewRemoteError creates a new remote error
func NewRemoteError(status int, message string) *RemoteError {
	return &RemoteError{
		Status:  status,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrActionInFlight    = NewDomainError("ACTION_IN_FLIGHT", "Another action for this resource is still in flight")
	ErrRemoteUnavailable = NewDomainError("REMOTE_UNAVAILABLE", "Marketplace data service is unavailable")
)
