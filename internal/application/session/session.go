// Package session composes the engines into one player-facing facade. The
// production scheduler mutates inventory directly; everything else (market,
// orders, research, purchases) is advisory, and this package is where the
// advice turns into inventory debits and money movements.
package session

import (
	"fmt"

	"github.com/factoquest/factoquest-go/internal/application/game"
	"github.com/factoquest/factoquest-go/internal/application/machine"
	appmarket "github.com/factoquest/factoquest-go/internal/application/market"
	appresearch "github.com/factoquest/factoquest-go/internal/application/research"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/inventory"
	"github.com/factoquest/factoquest-go/internal/domain/research"
)

// Session ties the game state, inventory and engines together
type Session struct {
	state     *game.State
	inventory *inventory.Ledger
	machines  *machine.Registry
	research  *appresearch.Engine
	market    *appmarket.Engine
}

// New creates a session over already-wired components
func New(state *game.State, inv *inventory.Ledger, machines *machine.Registry, res *appresearch.Engine, mkt *appmarket.Engine) *Session {
	return &Session{
		state:     state,
		inventory: inv,
		machines:  machines,
		research:  res,
		market:    mkt,
	}
}

// Result is the uniform outcome reported to presentation
type Result struct {
	OK      bool
	Message string
}

func failure(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

func success(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

// BuyMachine purchases a machine of the given type, charging its cost
func (s *Session) BuyMachine(t catalog.MachineType) Result {
	cost, ok := s.machines.CostFor(t)
	if !ok {
		return failure("unknown machine type %q", t)
	}
	if !s.state.CanAfford(cost) {
		return failure("not enough money: need %d, have %d", cost, s.state.Money())
	}
	view, err := s.machines.Purchase(t)
	if err != nil {
		return failure("%v", err)
	}
	s.state.SpendMoney(cost)
	return success("purchased %s for %d", view.Name, cost)
}

// BuyLaboratory purchases a laboratory of the given type, charging its cost
func (s *Session) BuyLaboratory(labType research.LabType) Result {
	info, ok := research.LabTypeInfoFor(labType)
	if !ok {
		return failure("unknown laboratory type %q", labType)
	}
	if !s.state.CanAfford(info.Cost) {
		return failure("not enough money: need %d, have %d", info.Cost, s.state.Money())
	}
	lab, err := s.research.PurchaseLaboratory(labType)
	if err != nil {
		return failure("%v", err)
	}
	s.state.SpendMoney(info.Cost)
	return success("purchased %s for %d", lab.Name, info.Cost)
}

// StartResearch starts a research in a laboratory, debiting its resource
// requirements on success
func (s *Session) StartResearch(researchID, laboratoryID string) Result {
	res := s.research.StartResearch(researchID, laboratoryID, s.inventory.Snapshot())
	if !res.OK {
		return failure("%s", res.Message)
	}
	if err := s.inventory.DebitAll(res.Requirements); err != nil {
		// StartResearch already validated against a snapshot of this
		// same ledger; on the single dispatch thread this cannot fail.
		return failure("%v", err)
	}
	return success("%s", res.Message)
}

// SellResource sells a quantity of a resource at the current market price,
// debiting inventory and crediting the proceeds
func (s *Session) SellResource(resourceID string, quantity int) Result {
	if quantity <= 0 {
		return failure("quantity must be positive")
	}
	if !s.inventory.CanDebit(resourceID, quantity) {
		return failure("not enough %s: %d/%d", resourceID, s.inventory.Quantity(resourceID), quantity)
	}
	res := s.market.Sell(resourceID, quantity)
	if !res.OK {
		return failure("%s", res.Message)
	}
	if err := s.inventory.Debit(resourceID, quantity); err != nil {
		return failure("%v", err)
	}
	s.state.AddMoney(res.TotalValue)
	return success("sold %d %s for %d (%d each)", quantity, resourceID, res.TotalValue, res.UnitPrice)
}

// FulfillOrder delivers a special order, debiting its requirements and
// crediting the payout
func (s *Session) FulfillOrder(orderID string) Result {
	res := s.market.FulfillOrder(orderID, s.inventory.Snapshot())
	if !res.OK {
		return failure("%s", res.Message)
	}
	if err := s.inventory.DebitAll(res.Requirements); err != nil {
		return failure("%v", err)
	}
	s.state.AddMoney(res.Reward)
	return success("%s: earned %d", res.Message, res.Reward)
}

// AssignRecipe selects a recipe on a machine
func (s *Session) AssignRecipe(machineID, recipeID string) Result {
	if err := s.machines.AssignRecipe(machineID, recipeID); err != nil {
		return failure("%v", err)
	}
	return success("recipe %s assigned to %s", recipeID, machineID)
}

// ToggleMachine pauses a running machine or resumes a paused one, preserving
// in-cycle progress across the pause
func (s *Session) ToggleMachine(machineID string, progressSeconds float64) Result {
	if err := s.machines.Toggle(machineID, progressSeconds); err != nil {
		return failure("%v", err)
	}
	return success("toggled %s", machineID)
}

// DeleteMachine removes a machine. The purchase cost is not refunded.
func (s *Session) DeleteMachine(machineID string) Result {
	if err := s.machines.Delete(machineID); err != nil {
		return failure("%v", err)
	}
	return success("deleted %s", machineID)
}

// State returns the game state component
func (s *Session) State() *game.State { return s.state }

// Inventory returns the inventory ledger
func (s *Session) Inventory() *inventory.Ledger { return s.inventory }

// Machines returns the machine registry
func (s *Session) Machines() *machine.Registry { return s.machines }

// Research returns the research engine
func (s *Session) Research() *appresearch.Engine { return s.research }

// Market returns the market engine
func (s *Session) Market() *appmarket.Engine { return s.market }
