package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/inventory"
)

func TestLedger_CreditAndQuantity(t *testing.T) {
	// Arrange
	ledger := inventory.NewLedger()

	// Act
	ledger.Credit("iron_ore", 5)
	ledger.Credit("iron_ore", 3)

	// Assert
	assert.Equal(t, 8, ledger.Quantity("iron_ore"))
	assert.Equal(t, 0, ledger.Quantity("coal"))
}

func TestLedger_DebitFailsOnInsufficientStock(t *testing.T) {
	// Arrange
	ledger := inventory.NewLedger()
	ledger.Credit("coal", 2)

	// Act
	err := ledger.Debit("coal", 3)

	// Assert - stock is untouched on failure
	require.Error(t, err)
	var insufficient *inventory.ErrInsufficientResource
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "coal", insufficient.ResourceID)
	assert.Equal(t, 3, insufficient.Requested)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 2, ledger.Quantity("coal"))
}

func TestLedger_DebitPrunesEmptyEntries(t *testing.T) {
	// Arrange
	ledger := inventory.NewLedger()
	ledger.Credit("gear", 4)

	// Act
	require.NoError(t, ledger.Debit("gear", 4))

	// Assert
	assert.Equal(t, 0, ledger.Quantity("gear"))
	assert.NotContains(t, ledger.Snapshot(), "gear")
}

func TestLedger_DebitAllIsAtomic(t *testing.T) {
	// Arrange
	ledger := inventory.NewLedger()
	ledger.Credit("iron_ore", 3)
	ledger.Credit("coal", 0)
	stacks := []catalog.Stack{
		{ResourceID: "iron_ore", Quantity: 3},
		{ResourceID: "coal", Quantity: 1},
	}

	// Act
	err := ledger.DebitAll(stacks)

	// Assert - nothing was taken even though iron_ore alone sufficed
	require.Error(t, err)
	assert.Equal(t, 3, ledger.Quantity("iron_ore"))
	assert.False(t, ledger.CanDebitAll(stacks))

	ledger.Credit("coal", 1)
	require.True(t, ledger.CanDebitAll(stacks))
	require.NoError(t, ledger.DebitAll(stacks))
	assert.Equal(t, 0, ledger.Quantity("iron_ore"))
	assert.Equal(t, 0, ledger.Quantity("coal"))
}

func TestLedger_DebitAllSumsRepeatedResources(t *testing.T) {
	// Arrange - two stacks of the same resource need their combined total
	ledger := inventory.NewLedger()
	ledger.Credit("iron_ore", 4)
	stacks := []catalog.Stack{
		{ResourceID: "iron_ore", Quantity: 3},
		{ResourceID: "iron_ore", Quantity: 3},
	}

	// Act
	err := ledger.DebitAll(stacks)

	// Assert - 4 does not cover the required 6; nothing is taken
	require.Error(t, err)
	var insufficient *inventory.ErrInsufficientResource
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "iron_ore", insufficient.ResourceID)
	assert.Equal(t, 6, insufficient.Requested)
	assert.Equal(t, 4, insufficient.Available)
	assert.Equal(t, 4, ledger.Quantity("iron_ore"))
	assert.False(t, ledger.CanDebitAll(stacks))

	ledger.Credit("iron_ore", 2)
	require.True(t, ledger.CanDebitAll(stacks))
	require.NoError(t, ledger.DebitAll(stacks))
	assert.Equal(t, 0, ledger.Quantity("iron_ore"))
}

func TestLedger_SnapshotIsDetached(t *testing.T) {
	// Arrange
	ledger := inventory.NewLedger()
	ledger.Credit("iron_plate", 7)

	// Act
	snapshot := ledger.Snapshot()
	snapshot["iron_plate"] = 999

	// Assert
	assert.Equal(t, 7, ledger.Quantity("iron_plate"))
}

func TestNewLedgerFromSnapshot_DropsNonPositiveEntries(t *testing.T) {
	// Arrange
	snapshot := map[string]int{
		"iron_ore": 5,
		"coal":     0,
		"gear":     -2,
	}

	// Act
	ledger := inventory.NewLedgerFromSnapshot(snapshot)

	// Assert
	assert.Equal(t, 5, ledger.Quantity("iron_ore"))
	assert.NotContains(t, ledger.Snapshot(), "coal")
	assert.NotContains(t, ledger.Snapshot(), "gear")
}
