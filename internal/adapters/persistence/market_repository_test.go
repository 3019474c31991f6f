package persistence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/adapters/persistence"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/ledger"
	"github.com/factoquest/factoquest-go/internal/domain/market"
	"github.com/factoquest/factoquest-go/test/helpers"
)

func TestMarketRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewMarketRepository(db)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	prices := []*market.Price{
		market.RestorePrice("iron_ore", 10, 9, 0.85, now.Add(-time.Hour)),
	}
	requirements := []catalog.Stack{
		{ResourceID: "iron_plate", Quantity: 25},
		{ResourceID: "gear", Quantity: 12},
	}
	orders := []*market.Order{
		market.RestoreOrder("order_1", "Baron Hammerfall", market.ClientNoble, requirements,
			600, 120, now.Add(2*time.Hour), "A favor for the estate", false, false),
	}
	tx, err := ledger.NewTransaction("iron_ore", 20, 9, 180, now, ledger.TransactionTypeMarketSale, "")
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Save(prices, orders, []*ledger.Transaction{tx}, 2))
	state, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, state.NextOrderID)

	require.Len(t, state.Prices, 1)
	price := state.Prices[0]
	assert.Equal(t, "iron_ore", price.ResourceID())
	assert.Equal(t, 10, price.BasePrice())
	assert.Equal(t, 9, price.CurrentPrice())
	assert.InDelta(t, 0.85, price.Demand(), 1e-9)

	require.Len(t, state.Orders, 1)
	order := state.Orders[0]
	assert.Equal(t, "order_1", order.ID())
	assert.Equal(t, market.ClientNoble, order.ClientType())
	assert.Equal(t, requirements, order.Requirements())
	assert.Equal(t, 600, order.Reward())
	assert.Equal(t, 120, order.Bonus())
	assert.True(t, order.IsOpen())

	require.Len(t, state.Transactions, 1)
	loadedTx := state.Transactions[0]
	assert.Equal(t, tx.ID().Value(), loadedTx.ID().Value())
	assert.Equal(t, "iron_ore", loadedTx.ResourceID())
	assert.Equal(t, 180, loadedTx.TotalValue())
	assert.Equal(t, ledger.TransactionTypeMarketSale, loadedTx.Type())
}

func TestMarketRepository_SkipsOrderWithMalformedRequirements(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewMarketRepository(db)
	row := &persistence.SpecialOrderModel{
		ID:           "order_7",
		ClientName:   "Corrupted",
		ClientType:   string(market.ClientMerchant),
		Requirements: "{not json",
		Deadline:     time.Now().UnixMilli(),
	}
	require.NoError(t, db.Create(row).Error)

	// Act
	state, err := repo.Load()

	// Assert - the bad row is dropped, the load succeeds
	require.NoError(t, err)
	assert.Empty(t, state.Orders)
}

func TestMarketRepository_SkipsTransactionWithMalformedID(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewMarketRepository(db)
	row := &persistence.TransactionModel{
		ID:         "not-a-valid-id",
		ResourceID: "iron_ore",
		Quantity:   1,
		Timestamp:  time.Now().UnixMilli(),
		Type:       string(ledger.TransactionTypeMarketSale),
	}
	require.NoError(t, db.Create(row).Error)

	// Act
	state, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, state.Transactions)
}

func TestMarketRepository_PreservesClosedOrderFlags(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewMarketRepository(db)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := []*market.Order{
		market.RestoreOrder("order_1", "A", market.ClientMerchant,
			[]catalog.Stack{{ResourceID: "coal", Quantity: 10}}, 100, 20, now, "", true, false),
		market.RestoreOrder("order_2", "B", market.ClientMerchant,
			[]catalog.Stack{{ResourceID: "coal", Quantity: 10}}, 100, 20, now, "", false, true),
	}

	// Act
	require.NoError(t, repo.Save(nil, orders, nil, 3))
	state, err := repo.Load()

	// Assert
	require.NoError(t, err)
	require.Len(t, state.Orders, 2)
	assert.True(t, state.Orders[0].IsCompleted())
	assert.True(t, state.Orders[1].IsExpired())
	for _, o := range state.Orders {
		assert.False(t, o.IsOpen())
	}
}
