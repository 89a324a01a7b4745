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

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
)

// NewRelationshipViolation reports a reference to an entity that does not
// exist or is owned by another user. Distinct from NOT_FOUND so the API layer
// answers 422 instead of 404.
func NewRelationshipViolation(entity string) *DomainError {
	return NewDomainError("RELATIONSHIP_VIOLATION", fmt.Sprintf("%s not found or not owned by this user", entity))
}

// NewDuplicateConflict reports a uniqueness violation, carrying the field name
// and the conflicting value.
func NewDuplicateConflict(field, value string) *DomainError {
	return NewDomainError("DUPLICATE_"+field, fmt.Sprintf("a record with %s %q already exists", field, value))
}

// NewExternalServiceError wraps a failure of an outbound dependency so callers
// can present a retry hint rather than a validation message.
func NewExternalServiceError(service string, err error) *DomainError {
	return NewDomainError("EXTERNAL_SERVICE", fmt.Sprintf("%s: %v", service, err))
}
