package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/adapters/persistence"
	"github.com/factoquest/factoquest-go/test/helpers"
)

func TestInventoryRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewInventoryRepository(db)
	snapshot := map[string]int{"iron_ore": 42, "coal": 7}

	// Act
	require.NoError(t, repo.Save(snapshot))
	loaded, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestInventoryRepository_DropsNonPositiveQuantities(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewInventoryRepository(db)

	// Act
	require.NoError(t, repo.Save(map[string]int{"iron_ore": 10, "coal": 0, "gear": -5}))
	loaded, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"iron_ore": 10}, loaded)
}

func TestInventoryRepository_SaveReplacesPreviousSnapshot(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewInventoryRepository(db)
	require.NoError(t, repo.Save(map[string]int{"iron_ore": 10, "coal": 5}))

	// Act - coal was fully consumed since the last save
	require.NoError(t, repo.Save(map[string]int{"iron_ore": 3}))
	loaded, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"iron_ore": 3}, loaded)
}
