package market_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/domain/market"
)

var marketEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewPrice_RejectsNonPositiveBase(t *testing.T) {
	// Act
	_, err := market.NewPrice("iron_ore", 0, 0.5, marketEpoch)

	// Assert
	assert.ErrorIs(t, err, market.ErrInvalidPrice)
}

func TestFluctuate_ClampsDemandToBounds(t *testing.T) {
	// Arrange
	p, err := market.NewPrice("iron_ore", 10, 0.95, marketEpoch)
	require.NoError(t, err)

	// Act - repeated upward drift saturates at the ceiling
	for i := 0; i < 10; i++ {
		p.Fluctuate(0.05, marketEpoch)
	}
	assert.Equal(t, 1.0, p.Demand())

	// Act - repeated downward drift saturates at the floor
	for i := 0; i < 50; i++ {
		p.Fluctuate(-0.05, marketEpoch)
	}

	// Assert
	assert.Equal(t, 0.1, p.Demand())
}

func TestFluctuate_PricesFromDemandAndStaleness(t *testing.T) {
	// Arrange - demand 0.5 on base 100, just sold
	p, err := market.NewPrice("gear", 100, 0.5, marketEpoch)
	require.NoError(t, err)

	// Act - no drift, no staleness
	p.Fluctuate(0, marketEpoch)
	assert.Equal(t, 50, p.CurrentPrice())

	// Act - 6 minutes unsold gives time factor 0.9
	p.Fluctuate(0, marketEpoch.Add(6*time.Minute))
	assert.Equal(t, 45, p.CurrentPrice()) // 100 * 0.5 * 0.9

	// Assert - staleness bottoms out at the 80% floor
	p.Fluctuate(0, marketEpoch.Add(48*time.Hour))
	assert.Equal(t, 40, p.CurrentPrice())
}

func TestRecordSale_DecaysDemandAndResetsTimer(t *testing.T) {
	// Arrange
	p, err := market.NewPrice("iron_plate", 8, 0.9, marketEpoch)
	require.NoError(t, err)
	before := p.CurrentPrice()

	// Act
	saleTime := marketEpoch.Add(3 * time.Hour)
	p.RecordSale(20, saleTime)

	// Assert - demand dropped 0.2, timer reset, price untouched until the
	// next fluctuation
	assert.InDelta(t, 0.7, p.Demand(), 1e-9)
	assert.Equal(t, saleTime, p.LastSold())
	assert.Equal(t, before, p.CurrentPrice())

	p.Fluctuate(0, saleTime)
	assert.Equal(t, 6, p.CurrentPrice()) // round(8 * 0.7)
}

func TestRestorePrice_ClampsPersistedValues(t *testing.T) {
	// Act
	p := market.RestorePrice("coal", 1, -5, 7.0, marketEpoch)

	// Assert
	assert.Equal(t, 0, p.CurrentPrice())
	assert.Equal(t, 1.0, p.Demand())
}
