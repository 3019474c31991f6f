package ledger

import (
	"time"
)

// Transaction is the immutable audit record of a market sale or a
// special-order payout. The transaction log is append-only.
type Transaction struct {
	id         TransactionID
	resourceID string
	quantity   int
	unitPrice  int
	totalValue int
	timestamp  time.Time
	txType     TransactionType
	orderID    string // set for order fulfillments only
}

// NewTransaction creates a transaction with validation
func NewTransaction(resourceID string, quantity, unitPrice, totalValue int, timestamp time.Time, txType TransactionType, orderID string) (*Transaction, error) {
	if resourceID == "" {
		return nil, &ErrInvalidTransaction{Field: "resource_id", Reason: "cannot be empty"}
	}
	if quantity <= 0 {
		return nil, &ErrInvalidTransaction{Field: "quantity", Reason: "must be positive"}
	}
	if totalValue < 0 {
		return nil, &ErrInvalidTransaction{Field: "total_value", Reason: "cannot be negative"}
	}
	if !txType.IsValid() {
		return nil, &ErrInvalidTransaction{Field: "type", Reason: "unknown transaction type"}
	}
	if txType == TransactionTypeOrderFulfillment && orderID == "" {
		return nil, &ErrInvalidTransaction{Field: "order_id", Reason: "required for order fulfillments"}
	}
	return &Transaction{
		id:         NewTransactionID(),
		resourceID: resourceID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalValue: totalValue,
		timestamp:  timestamp,
		txType:     txType,
		orderID:    orderID,
	}, nil
}

// Restore rebuilds a transaction from persisted state
func Restore(id TransactionID, resourceID string, quantity, unitPrice, totalValue int, timestamp time.Time, txType TransactionType, orderID string) *Transaction {
	return &Transaction{
		id:         id,
		resourceID: resourceID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalValue: totalValue,
		timestamp:  timestamp,
		txType:     txType,
		orderID:    orderID,
	}
}

func (t *Transaction) ID() TransactionID     { return t.id }
func (t *Transaction) ResourceID() string    { return t.resourceID }
func (t *Transaction) Quantity() int         { return t.quantity }
func (t *Transaction) UnitPrice() int        { return t.unitPrice }
func (t *Transaction) TotalValue() int       { return t.totalValue }
func (t *Transaction) Timestamp() time.Time  { return t.timestamp }
func (t *Transaction) Type() TransactionType { return t.txType }
func (t *Transaction) OrderID() string       { return t.orderID }

// View returns an immutable snapshot of the transaction
func (t *Transaction) View() View {
	return View{
		ID:         t.id.Value(),
		ResourceID: t.resourceID,
		Quantity:   t.quantity,
		UnitPrice:  t.unitPrice,
		TotalValue: t.totalValue,
		Timestamp:  t.timestamp,
		Type:       t.txType,
		OrderID:    t.orderID,
	}
}

// View is an immutable transaction snapshot
type View struct {
	ID         string
	ResourceID string
	Quantity   int
	UnitPrice  int
	TotalValue int
	Timestamp  time.Time
	Type       TransactionType
	OrderID    string
}
