package persistence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/adapters/persistence"
	"github.com/factoquest/factoquest-go/test/helpers"
)

func TestGameStateRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGameStateRepository(db)
	snapshot := persistence.GameStateSnapshot{
		Money:         12345,
		LastSaveTime:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TotalPlayTime: 90 * time.Minute,
	}

	// Act
	require.NoError(t, repo.Save(snapshot))
	loaded, found, err := repo.Load()

	// Assert
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snapshot.Money, loaded.Money)
	assert.Equal(t, snapshot.LastSaveTime.UnixMilli(), loaded.LastSaveTime.UnixMilli())
	assert.Equal(t, snapshot.TotalPlayTime, loaded.TotalPlayTime)
}

func TestGameStateRepository_LoadEmptyReportsNotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGameStateRepository(db)

	// Act
	_, found, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGameStateRepository_SaveOverwritesSingleRow(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGameStateRepository(db)
	first := persistence.GameStateSnapshot{Money: 100, LastSaveTime: time.Now()}
	second := persistence.GameStateSnapshot{Money: 999, LastSaveTime: time.Now()}

	// Act
	require.NoError(t, repo.Save(first))
	require.NoError(t, repo.Save(second))
	loaded, found, err := repo.Load()

	// Assert
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 999, loaded.Money)
}
