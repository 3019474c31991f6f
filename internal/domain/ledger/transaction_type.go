package ledger

// TransactionType represents the kind of sale a transaction records
type TransactionType string

const (
	// TransactionTypeMarketSale represents a direct market sale
	TransactionTypeMarketSale TransactionType = "MARKET_SALE"

	// TransactionTypeOrderFulfillment represents a special-order payout
	TransactionTypeOrderFulfillment TransactionType = "ORDER_FULFILLMENT"
)

// IsValid reports whether the transaction type is known
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeMarketSale, TransactionTypeOrderFulfillment:
		return true
	}
	return false
}
