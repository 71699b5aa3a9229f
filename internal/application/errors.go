package application

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an application does not exist.
var ErrNotFound = errors.New("application not found")

// ValidationError rejects a payload that fails schema validation. Message
// carries the first violation, which is what the form surfaces.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DuplicateError rejects a second application by the same user for the same
// property.
type DuplicateError struct {
	PropertyID uuid.UUID
}

func (e *DuplicateError) Error() string {
	return "you have already applied to this property"
}

// NotFoundError reports a missing referenced resource by name.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// AuthorizationError rejects an operation the requester may not perform.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return e.Reason }

// TransitionError rejects a status change the lifecycle does not allow.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}
