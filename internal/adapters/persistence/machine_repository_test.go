package persistence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/adapters/persistence"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/machine"
	"github.com/factoquest/factoquest-go/test/helpers"
)

func TestMachineRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewMachineRepository(db)
	anchor := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	machines := []*machine.Machine{
		machine.Restore("mine_1", catalog.MachineTypeMine, "Mine #1", 500, "mine_iron", anchor, 0, true),
		machine.Restore("furnace_1", catalog.MachineTypeFurnace, "Furnace #1", 800, "smelt_iron", anchor, 1.5, false),
	}
	counters := map[catalog.MachineType]int{
		catalog.MachineTypeMine:    2,
		catalog.MachineTypeFurnace: 2,
	}

	// Act
	require.NoError(t, repo.Save(machines, counters))
	loaded, loadedCounters, err := repo.Load()

	// Assert
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	mine := loaded[0]
	if mine.ID() != "mine_1" {
		mine = loaded[1]
	}
	assert.Equal(t, "mine_1", mine.ID())
	assert.Equal(t, catalog.MachineTypeMine, mine.Type())
	assert.Equal(t, "mine_iron", mine.SelectedRecipeID())
	assert.Equal(t, anchor.UnixMilli(), mine.LastProductionTime().UnixMilli())
	assert.True(t, mine.IsActive())

	assert.Equal(t, 2, loadedCounters[catalog.MachineTypeMine])
	assert.Equal(t, 2, loadedCounters[catalog.MachineTypeFurnace])
}

func TestMachineRepository_PreservesPausedProgress(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewMachineRepository(db)
	anchor := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	paused := machine.Restore("mine_1", catalog.MachineTypeMine, "Mine #1", 500, "mine_iron", anchor, 0.7, false)

	// Act
	require.NoError(t, repo.Save([]*machine.Machine{paused}, nil))
	loaded, _, err := repo.Load()

	// Assert
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.InDelta(t, 0.7, loaded[0].PausedProgress(), 1e-9)
	assert.False(t, loaded[0].IsActive())
}

func TestMachineRepository_SkipsUnknownTypeRows(t *testing.T) {
	// Arrange - a row written by a newer version with a type this build
	// does not know
	db := helpers.NewTestDB(t)
	repo := persistence.NewMachineRepository(db)
	row := &persistence.MachineModel{
		ID:   "teleporter_1",
		Type: "teleporter",
		Name: "Teleporter #1",
	}
	require.NoError(t, db.Create(row).Error)

	// Act
	loaded, _, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
