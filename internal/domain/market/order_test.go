package market_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/market"
)

func newTestOrder(deadline time.Time) *market.Order {
	return market.NewOrder(
		"order_1",
		"Baron Ferrum",
		market.ClientNoble,
		[]catalog.Stack{{ResourceID: "gear", Quantity: 10}},
		300,
		60,
		deadline,
		"A shipment of precision gears",
	)
}

func TestFulfill_OnTimeIncludesBonus(t *testing.T) {
	// Arrange
	deadline := marketEpoch.Add(2 * time.Hour)
	order := newTestOrder(deadline)

	// Act
	total, onTime, err := order.Fulfill(marketEpoch.Add(time.Hour))

	// Assert
	require.NoError(t, err)
	assert.True(t, onTime)
	assert.Equal(t, 360, total)
	assert.True(t, order.IsCompleted())
	assert.False(t, order.IsOpen())
}

func TestFulfill_LateForfeitsBonus(t *testing.T) {
	// Arrange
	deadline := marketEpoch.Add(2 * time.Hour)
	order := newTestOrder(deadline)

	// Act - exactly at the deadline already counts as late
	total, onTime, err := order.Fulfill(deadline)

	// Assert
	require.NoError(t, err)
	assert.False(t, onTime)
	assert.Equal(t, 300, total)
}

func TestFulfill_FailsOnClosedOrder(t *testing.T) {
	// Arrange
	order := newTestOrder(marketEpoch.Add(2 * time.Hour))
	_, _, err := order.Fulfill(marketEpoch)
	require.NoError(t, err)

	// Act
	_, _, err = order.Fulfill(marketEpoch)

	// Assert
	assert.ErrorIs(t, err, market.ErrOrderClosed)
}

func TestMarkExpiredIfOverdue_TransitionsOnce(t *testing.T) {
	// Arrange
	deadline := marketEpoch.Add(2 * time.Hour)
	order := newTestOrder(deadline)

	// Act / Assert
	assert.False(t, order.MarkExpiredIfOverdue(deadline.Add(-time.Minute)))
	assert.True(t, order.MarkExpiredIfOverdue(deadline.Add(time.Minute)))
	assert.False(t, order.MarkExpiredIfOverdue(deadline.Add(2*time.Minute)))
	assert.True(t, order.IsExpired())
	assert.False(t, order.IsOpen())
}

func TestShouldPurge_RequiresRetentionWindow(t *testing.T) {
	// Arrange
	deadline := marketEpoch.Add(2 * time.Hour)
	order := newTestOrder(deadline)
	order.MarkExpiredIfOverdue(deadline.Add(time.Minute))

	// Act / Assert - purge only 24h past the deadline
	assert.False(t, order.ShouldPurge(deadline.Add(23*time.Hour)))
	assert.True(t, order.ShouldPurge(deadline.Add(24*time.Hour)))
}

func TestShouldPurge_NeverPurgesCompletedOrders(t *testing.T) {
	// Arrange
	deadline := marketEpoch.Add(2 * time.Hour)
	order := newTestOrder(deadline)
	_, _, err := order.Fulfill(marketEpoch)
	require.NoError(t, err)

	// Act / Assert
	assert.False(t, order.ShouldPurge(deadline.Add(48*time.Hour)))
}

func TestRequirements_ReturnsDetachedCopy(t *testing.T) {
	// Arrange
	order := newTestOrder(marketEpoch.Add(2 * time.Hour))

	// Act
	reqs := order.Requirements()
	reqs[0].Quantity = 999

	// Assert
	assert.Equal(t, 10, order.Requirements()[0].Quantity)
}
