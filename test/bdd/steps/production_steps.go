package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	appmachine "github.com/factoquest/factoquest-go/internal/application/machine"
	"github.com/factoquest/factoquest-go/internal/application/production"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/inventory"
	"github.com/factoquest/factoquest-go/internal/domain/research"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
)

// zeroBonuses is a BonusProvider with no completed researches
type zeroBonuses struct{}

func (zeroBonuses) BonusForMachineType(catalog.MachineType) research.Bonus {
	return research.Bonus{}
}

type productionContext struct {
	clock     *shared.MockClock
	registry  *appmachine.Registry
	ledger    *inventory.Ledger
	scheduler *production.Scheduler
	machineID string
}

func (pc *productionContext) reset() {
	pc.clock = shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cat := catalog.Default()
	pc.registry = appmachine.NewRegistry(pc.clock, cat)
	pc.ledger = inventory.NewLedger()
	pc.scheduler = production.NewScheduler(pc.clock, shared.NewSeededRandom(1), cat, pc.registry, pc.ledger, zeroBonuses{})
	pc.machineID = ""
}

func (pc *productionContext) aFactoryWithAMachineRunningRecipe(machineType, recipeID string) error {
	view, err := pc.registry.Purchase(catalog.MachineType(machineType))
	if err != nil {
		return err
	}
	pc.machineID = view.ID
	return pc.registry.AssignRecipe(view.ID, recipeID)
}

func (pc *productionContext) theInventoryHolds(quantity int, resourceID string) error {
	pc.ledger.Credit(resourceID, quantity)
	return nil
}

func (pc *productionContext) theMachineIsPaused() error {
	return pc.registry.Toggle(pc.machineID, pc.scheduler.ProgressSeconds(pc.machineID))
}

func (pc *productionContext) secondsPassAndProductionTicks(seconds string) error {
	d, err := time.ParseDuration(seconds + "s")
	if err != nil {
		return err
	}
	pc.clock.Advance(d)
	pc.scheduler.Tick()
	return nil
}

func (pc *productionContext) theInventoryShouldHold(quantity int, resourceID string) error {
	if got := pc.ledger.Quantity(resourceID); got != quantity {
		return fmt.Errorf("expected %d %s, got %d", quantity, resourceID, got)
	}
	return nil
}

// InitializeProductionScenario registers the production step definitions
func InitializeProductionScenario(sc *godog.ScenarioContext) {
	ctx := &productionContext{}

	sc.Before(func(gCtx context.Context, _ *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return gCtx, nil
	})

	sc.Step(`^a factory with a "([^"]*)" running recipe "([^"]*)"$`, ctx.aFactoryWithAMachineRunningRecipe)
	sc.Step(`^the inventory holds (\d+) "([^"]*)"$`, ctx.theInventoryHolds)
	sc.Step(`^the machine is paused$`, ctx.theMachineIsPaused)
	sc.Step(`^([\d.]+) seconds pass and production ticks$`, ctx.secondsPassAndProductionTicks)
	sc.Step(`^the inventory should hold (\d+) "([^"]*)"$`, ctx.theInventoryShouldHold)
}
