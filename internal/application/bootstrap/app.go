// Package bootstrap wires configuration, storage and the engines into a
// ready-to-play game. Both the daemon and the CLI build the same App; the
// daemon keeps it alive and ticking, the CLI uses it for one command.
package bootstrap

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/factoquest/factoquest-go/internal/adapters/persistence"
	"github.com/factoquest/factoquest-go/internal/application/game"
	appmachine "github.com/factoquest/factoquest-go/internal/application/machine"
	appmarket "github.com/factoquest/factoquest-go/internal/application/market"
	"github.com/factoquest/factoquest-go/internal/application/production"
	appresearch "github.com/factoquest/factoquest-go/internal/application/research"
	"github.com/factoquest/factoquest-go/internal/application/session"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/inventory"
	"github.com/factoquest/factoquest-go/internal/domain/market"
	"github.com/factoquest/factoquest-go/internal/domain/research"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
	"github.com/factoquest/factoquest-go/internal/infrastructure/config"
	"github.com/factoquest/factoquest-go/internal/infrastructure/database"
)

// App is the assembled game: engines, session facade and repositories
type App struct {
	Config     *config.Config
	DB         *gorm.DB
	Clock      shared.Clock
	Random     shared.Random
	Catalog    *catalog.Catalog
	State      *game.State
	Inventory  *inventory.Ledger
	Machines   *appmachine.Registry
	Research   *appresearch.Engine
	Market     *appmarket.Engine
	Production *production.Scheduler
	Session    *session.Session

	gameStateRepo *persistence.GameStateRepositoryGORM
	inventoryRepo *persistence.InventoryRepositoryGORM
	machineRepo   *persistence.MachineRepositoryGORM
	researchRepo  *persistence.ResearchRepositoryGORM
	marketRepo    *persistence.MarketRepositoryGORM
}

// New assembles an App from configuration, restoring a previous save when
// one exists
func New(cfg *config.Config) (*App, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	clock := shared.NewRealClock()
	var random shared.Random
	if cfg.Game.Seed != 0 {
		random = shared.NewSeededRandom(cfg.Game.Seed)
	} else {
		random = shared.NewRandom()
	}

	cat := catalog.Default()

	app := &App{
		Config:        cfg,
		DB:            db,
		Clock:         clock,
		Random:        random,
		Catalog:       cat,
		gameStateRepo: persistence.NewGameStateRepository(db),
		inventoryRepo: persistence.NewInventoryRepository(db),
		machineRepo:   persistence.NewMachineRepository(db),
		researchRepo:  persistence.NewResearchRepository(db),
		marketRepo:    persistence.NewMarketRepository(db),
	}
	app.restore()

	app.Production = production.NewScheduler(clock, random, cat, app.Machines, app.Inventory, app.Research)
	app.Session = session.New(app.State, app.Inventory, app.Machines, app.Research, app.Market)
	return app, nil
}

// restore loads the saved game slice by slice. A slice that cannot be read
// is logged and started at its default so one bad table does not take the
// rest of the save with it.
func (a *App) restore() {
	snapshot, found, err := a.gameStateRepo.Load()
	if err != nil {
		log.Printf("restore: game state unreadable, starting fresh: %v", err)
		found = false
	}
	if found {
		a.State = game.RestoreState(a.Clock, snapshot.Money, snapshot.LastSaveTime, snapshot.TotalPlayTime)
	} else {
		a.State = game.NewState(a.Clock, a.Config.Game.StartingMoney)
	}

	items, err := a.inventoryRepo.Load()
	if err != nil {
		log.Printf("restore: inventory unreadable, starting empty: %v", err)
		items = nil
	}
	a.Inventory = inventory.NewLedgerFromSnapshot(items)

	machines, counters, err := a.machineRepo.Load()
	if err != nil {
		log.Printf("restore: machines unreadable, starting empty: %v", err)
		machines, counters = nil, nil
	}
	a.Machines = appmachine.RestoreRegistry(a.Clock, a.Catalog, machines, counters)

	researchState, err := a.researchRepo.Load()
	if err != nil {
		log.Printf("restore: research unreadable, starting fresh: %v", err)
		researchState = appresearch.RestoredState{}
	}
	a.Research = appresearch.RestoreEngine(a.Clock, research.DefaultDefinitions(), researchState)

	marketState, err := a.marketRepo.Load()
	if err != nil {
		log.Printf("restore: market unreadable, starting fresh: %v", err)
		marketState = appmarket.RestoredState{}
	}
	a.Market = appmarket.RestoreEngine(a.Clock, a.Random, market.DefaultBasePrices(), a.Catalog.ResourceIDs(), marketState)
	if len(a.Market.Orders()) == 0 {
		a.Market.GenerateInitialOrders()
	}
}

// CatchUpOffline advances production for the time the game was not running.
// The window is capped by the configured maximum when one is set.
func (a *App) CatchUpOffline() {
	offline := a.State.OfflineTime()
	if offline <= 0 {
		return
	}
	if max := a.Config.Game.MaxOfflineTime; max > 0 && offline > max {
		offline = max
	}
	a.Production.CatchUpOffline(offline)
	a.Research.Advance()
	a.Market.SweepExpired()
}

// SaveAll persists the whole game state
func (a *App) SaveAll() error {
	a.State.UpdatePlayTime()
	a.State.MarkSaved()
	view := a.State.View()

	if err := a.gameStateRepo.Save(persistence.GameStateSnapshot{
		Money:         view.Money,
		LastSaveTime:  view.LastSaveTime,
		TotalPlayTime: view.TotalPlayTime,
	}); err != nil {
		return err
	}
	if err := a.inventoryRepo.Save(a.Inventory.Snapshot()); err != nil {
		return err
	}
	if err := a.machineRepo.Save(a.Machines.AllMachines(), a.Machines.Counters()); err != nil {
		return err
	}
	if err := a.researchRepo.Save(a.Research.Laboratories(), a.Research.Researches(), a.Research.ActiveProgress(), a.Research.NextLabID()); err != nil {
		return err
	}
	return a.marketRepo.Save(a.Market.PriceRecords(), a.Market.OrderRecords(), a.Market.TransactionRecords(), a.Market.NextOrderID())
}

// Close releases the database connection
func (a *App) Close() error {
	return database.Close(a.DB)
}
