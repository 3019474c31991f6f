package inventory

import (
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
)

// Ledger holds the player's resource quantities. Entries that reach zero are
// pruned; a query for an absent resource reads as zero, so pruning is not
// observable to callers.
type Ledger struct {
	quantities map[string]int
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{quantities: make(map[string]int)}
}

// NewLedgerFromSnapshot restores a ledger from a persisted snapshot,
// discarding non-positive entries.
func NewLedgerFromSnapshot(snapshot map[string]int) *Ledger {
	l := NewLedger()
	for id, qty := range snapshot {
		if qty > 0 {
			l.quantities[id] = qty
		}
	}
	return l
}

// Quantity returns the held quantity for a resource, zero if absent
func (l *Ledger) Quantity(resourceID string) int {
	return l.quantities[resourceID]
}

// Credit adds quantity to a resource. Non-positive quantities are ignored.
func (l *Ledger) Credit(resourceID string, quantity int) {
	if quantity <= 0 {
		return
	}
	l.quantities[resourceID] += quantity
}

// Debit removes quantity from a resource, failing without mutation if the
// held amount is insufficient. Non-positive quantities are a no-op.
func (l *Ledger) Debit(resourceID string, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	current := l.quantities[resourceID]
	if current < quantity {
		return &ErrInsufficientResource{
			ResourceID: resourceID,
			Requested:  quantity,
			Available:  current,
		}
	}
	if current == quantity {
		delete(l.quantities, resourceID)
	} else {
		l.quantities[resourceID] = current - quantity
	}
	return nil
}

// CanDebit reports whether a single debit would succeed
func (l *Ledger) CanDebit(resourceID string, quantity int) bool {
	return l.quantities[resourceID] >= quantity
}

// CanDebitAll reports whether every stack could be debited together. Stacks
// repeating a resource are checked against their combined quantity.
func (l *Ledger) CanDebitAll(stacks []catalog.Stack) bool {
	for id, qty := range requiredTotals(stacks) {
		if l.quantities[id] < qty {
			return false
		}
	}
	return true
}

// DebitAll removes every stack atomically: either all debits apply or none.
// Quantities are summed per resource first so a requirement that repeats a
// resource cannot pass the check while its total is unsatisfied.
func (l *Ledger) DebitAll(stacks []catalog.Stack) error {
	totals := requiredTotals(stacks)
	for _, s := range stacks {
		qty, checked := totals[s.ResourceID]
		if !checked {
			continue
		}
		if l.quantities[s.ResourceID] < qty {
			return &ErrInsufficientResource{
				ResourceID: s.ResourceID,
				Requested:  qty,
				Available:  l.quantities[s.ResourceID],
			}
		}
		delete(totals, s.ResourceID)
	}
	for _, s := range stacks {
		if err := l.Debit(s.ResourceID, s.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// requiredTotals sums positive stack quantities per resource
func requiredTotals(stacks []catalog.Stack) map[string]int {
	totals := make(map[string]int, len(stacks))
	for _, s := range stacks {
		if s.Quantity > 0 {
			totals[s.ResourceID] += s.Quantity
		}
	}
	return totals
}

// CreditAll adds every stack
func (l *Ledger) CreditAll(stacks []catalog.Stack) {
	for _, s := range stacks {
		l.Credit(s.ResourceID, s.Quantity)
	}
}

// Snapshot returns a copy of the current quantities
func (l *Ledger) Snapshot() map[string]int {
	out := make(map[string]int, len(l.quantities))
	for id, qty := range l.quantities {
		out[id] = qty
	}
	return out
}
