package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/adapters/persistence"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
	"github.com/factoquest/factoquest-go/internal/infrastructure/config"
	"github.com/factoquest/factoquest-go/internal/infrastructure/database"
)

func newRestoreFixture(t *testing.T) *App {
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	cfg := &config.Config{}
	config.SetDefaults(cfg)

	return &App{
		Config:        cfg,
		DB:            db,
		Clock:         shared.NewRealClock(),
		Random:        shared.NewSeededRandom(7),
		Catalog:       catalog.Default(),
		gameStateRepo: persistence.NewGameStateRepository(db),
		inventoryRepo: persistence.NewInventoryRepository(db),
		machineRepo:   persistence.NewMachineRepository(db),
		researchRepo:  persistence.NewResearchRepository(db),
		marketRepo:    persistence.NewMarketRepository(db),
	}
}

func TestRestore_FreshDatabaseStartsNewGame(t *testing.T) {
	// Arrange
	app := newRestoreFixture(t)

	// Act
	app.restore()

	// Assert
	assert.Equal(t, app.Config.Game.StartingMoney, app.State.View().Money)
	assert.Empty(t, app.Inventory.Snapshot())
	assert.NotEmpty(t, app.Market.Orders())
}

func TestRestore_UnreadableSliceDefaultsWithoutLosingOthers(t *testing.T) {
	// Arrange - a valid save, then the inventory table goes missing
	app := newRestoreFixture(t)
	require.NoError(t, app.gameStateRepo.Save(persistence.GameStateSnapshot{
		Money:         4242,
		LastSaveTime:  time.Now().Add(-time.Minute),
		TotalPlayTime: 90 * time.Second,
	}))
	require.NoError(t, app.inventoryRepo.Save(map[string]int{"iron_ore": 50}))
	require.NoError(t, app.DB.Migrator().DropTable(&persistence.InventoryItemModel{}))

	// Act
	app.restore()

	// Assert - inventory falls back to empty, the rest of the save loads
	assert.Empty(t, app.Inventory.Snapshot())
	assert.Equal(t, 4242, app.State.View().Money)
	assert.NotNil(t, app.Machines)
	assert.NotEmpty(t, app.Market.Orders())
}

func TestRestore_UnreadableGameStateStartsFresh(t *testing.T) {
	// Arrange
	app := newRestoreFixture(t)
	require.NoError(t, app.inventoryRepo.Save(map[string]int{"coal": 12}))
	require.NoError(t, app.DB.Migrator().DropTable(&persistence.GameStateModel{}))

	// Act
	app.restore()

	// Assert - money resets, the intact inventory slice still loads
	assert.Equal(t, app.Config.Game.StartingMoney, app.State.View().Money)
	assert.Equal(t, 12, app.Inventory.Quantity("coal"))
}
