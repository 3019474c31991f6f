package ledger

import "fmt"

// ErrInvalidTransaction reports a transaction that violates an invariant
type ErrInvalidTransaction struct {
	Field  string
	Reason string
}

func (e *ErrInvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction: field %q: %s", e.Field, e.Reason)
}
