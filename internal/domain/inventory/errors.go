package inventory

import "fmt"

// ErrInsufficientResource is returned when a debit would take a resource
// below zero. Insufficiency is a normal, recoverable condition for callers.
type ErrInsufficientResource struct {
	ResourceID string
	Requested  int
	Available  int
}

func (e *ErrInsufficientResource) Error() string {
	return fmt.Sprintf("insufficient %s: have %d, need %d", e.ResourceID, e.Available, e.Requested)
}
