package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/factoquest/factoquest-go/internal/application/game"
	appmachine "github.com/factoquest/factoquest-go/internal/application/machine"
	appmarket "github.com/factoquest/factoquest-go/internal/application/market"
	appresearch "github.com/factoquest/factoquest-go/internal/application/research"
	"github.com/factoquest/factoquest-go/internal/application/session"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/inventory"
	"github.com/factoquest/factoquest-go/internal/domain/market"
	"github.com/factoquest/factoquest-go/internal/domain/research"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
)

type orderContext struct {
	clock   *shared.MockClock
	state   *game.State
	ledger  *inventory.Ledger
	market  *appmarket.Engine
	session *session.Session
	result  session.Result
}

func (oc *orderContext) reset() {
	oc.clock = shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	oc.state = game.NewState(oc.clock, 0)
	oc.ledger = inventory.NewLedger()
	oc.market = nil
	oc.session = nil
	oc.result = session.Result{}
}

func (oc *orderContext) buildSession() {
	cat := catalog.Default()
	machines := appmachine.NewRegistry(oc.clock, cat)
	res := appresearch.NewEngine(oc.clock, research.DefaultDefinitions())
	oc.session = session.New(oc.state, oc.ledger, machines, res, oc.market)
}

func (oc *orderContext) anOpenOrderRequiringPayingWithBonus(orderID string, quantity int, resourceID string, reward, bonus int) error {
	order := market.NewOrder(
		orderID,
		"Baron Von Steam",
		market.ClientNoble,
		[]catalog.Stack{{ResourceID: resourceID, Quantity: quantity}},
		reward,
		bonus,
		oc.clock.Now().Add(2*time.Hour),
		"A standing delivery",
	)
	oc.market = appmarket.RestoreEngine(
		oc.clock,
		shared.NewSeededRandom(1),
		market.DefaultBasePrices(),
		catalog.Default().ResourceIDs(),
		appmarket.RestoredState{Orders: []*market.Order{order}, NextOrderID: 2},
	)
	oc.buildSession()
	return nil
}

func (oc *orderContext) thePlayerHolds(quantity int, resourceID string) error {
	oc.ledger.Credit(resourceID, quantity)
	return nil
}

func (oc *orderContext) hoursPass(hours int) error {
	oc.clock.Advance(time.Duration(hours) * time.Hour)
	return nil
}

func (oc *orderContext) expiredOrdersAreSwept() error {
	oc.market.SweepExpired()
	return nil
}

func (oc *orderContext) thePlayerFulfillsOrder(orderID string) error {
	oc.result = oc.session.FulfillOrder(orderID)
	return nil
}

func (oc *orderContext) theFulfillmentShouldSucceed() error {
	if !oc.result.OK {
		return fmt.Errorf("expected fulfillment to succeed, got: %s", oc.result.Message)
	}
	return nil
}

func (oc *orderContext) theFulfillmentShouldFail() error {
	if oc.result.OK {
		return fmt.Errorf("expected fulfillment to fail, got: %s", oc.result.Message)
	}
	return nil
}

func (oc *orderContext) thePlayerShouldHaveMoney(amount int) error {
	if got := oc.state.Money(); got != amount {
		return fmt.Errorf("expected %d money, got %d", amount, got)
	}
	return nil
}

func (oc *orderContext) thePlayersInventoryShouldHold(quantity int, resourceID string) error {
	if got := oc.ledger.Quantity(resourceID); got != quantity {
		return fmt.Errorf("expected %d %s, got %d", quantity, resourceID, got)
	}
	return nil
}

// InitializeOrderScenario registers the special-order step definitions
func InitializeOrderScenario(sc *godog.ScenarioContext) {
	ctx := &orderContext{}

	sc.Before(func(gCtx context.Context, _ *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return gCtx, nil
	})

	sc.Step(`^an open order "([^"]*)" requiring (\d+) "([^"]*)" paying (\d+) with bonus (\d+)$`, ctx.anOpenOrderRequiringPayingWithBonus)
	sc.Step(`^the player holds (\d+) "([^"]*)"$`, ctx.thePlayerHolds)
	sc.Step(`^(\d+) hours pass$`, ctx.hoursPass)
	sc.Step(`^expired orders are swept$`, ctx.expiredOrdersAreSwept)
	sc.Step(`^the player fulfills order "([^"]*)"$`, ctx.thePlayerFulfillsOrder)
	sc.Step(`^the fulfillment should succeed$`, ctx.theFulfillmentShouldSucceed)
	sc.Step(`^the fulfillment should fail$`, ctx.theFulfillmentShouldFail)
	sc.Step(`^the player should have (\d+) money$`, ctx.thePlayerShouldHaveMoney)
	sc.Step(`^the player's inventory should hold (\d+) "([^"]*)"$`, ctx.thePlayersInventoryShouldHold)
}
