// Package production implements the tick-driven production core. Production
// advances as a function of elapsed wall-clock time, not of tick count, so
// results are identical whether the scheduler runs every second or catches
// up after a long suspension.
package production

import (
	"log"
	"math"
	"time"

	"github.com/factoquest/factoquest-go/internal/application/events"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/inventory"
	"github.com/factoquest/factoquest-go/internal/domain/machine"
	"github.com/factoquest/factoquest-go/internal/domain/research"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
)

// BonusProvider exposes the research bonus vector per machine type
type BonusProvider interface {
	BonusForMachineType(t catalog.MachineType) research.Bonus
}

// MachineSource exposes the machines eligible for production
type MachineSource interface {
	ActiveMachines() []*machine.Machine
	Machine(machineID string) (*machine.Machine, bool)
}

// Scheduler advances every active machine's production cycle. It is the one
// engine that mutates the inventory ledger directly; market and research
// stay advisory.
type Scheduler struct {
	clock     shared.Clock
	random    shared.Random
	catalog   catalog.Reader
	machines  MachineSource
	inventory *inventory.Ledger
	bonuses   BonusProvider
	publisher events.Publisher[map[string]int]
}

// NewScheduler wires the scheduler to its collaborators
func NewScheduler(clock shared.Clock, random shared.Random, cat catalog.Reader, machines MachineSource, ledger *inventory.Ledger, bonuses BonusProvider) *Scheduler {
	return &Scheduler{
		clock:     clock,
		random:    random,
		catalog:   cat,
		machines:  machines,
		inventory: ledger,
		bonuses:   bonuses,
	}
}

// Subscribe registers a consumer for inventory snapshots emitted after each
// tick that produced something.
func (s *Scheduler) Subscribe(fn events.Subscriber[map[string]int]) {
	s.publisher.Subscribe(fn)
}

// Tick processes every active machine once. A fault in one machine's
// processing never blocks the remaining machines.
func (s *Scheduler) Tick() {
	produced := false
	for _, m := range s.machines.ActiveMachines() {
		if s.safeProcess(m) {
			produced = true
		}
	}
	if produced {
		s.publisher.Publish(s.inventory.Snapshot())
	}
}

func (s *Scheduler) safeProcess(m *machine.Machine) (produced bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("production: machine %s processing failed: %v", m.ID(), r)
		}
	}()
	return s.processMachine(m)
}

// processMachine runs the live per-tick path: whole completed cycles are
// granted in one batch, gated by an all-or-nothing input check. A machine
// short on inputs stays active and idle; insufficiency is never an error.
func (s *Scheduler) processMachine(m *machine.Machine) bool {
	recipe, ok := s.catalog.Recipe(m.SelectedRecipeID())
	if !ok {
		return false
	}

	effective := s.effectiveDuration(recipe, m.Type())
	elapsed := s.clock.Now().Sub(m.LastProductionTime()).Seconds()
	cycles := int(elapsed / effective)
	if cycles <= 0 {
		return false
	}

	if !recipe.IsMine() {
		needed := make([]catalog.Stack, len(recipe.Inputs))
		for i, input := range recipe.Inputs {
			needed[i] = catalog.Stack{ResourceID: input.ResourceID, Quantity: input.Quantity * cycles}
		}
		// All-or-nothing per tick: no partial production.
		if err := s.inventory.DebitAll(needed); err != nil {
			return false
		}
	}

	s.produceOutputs(recipe, cycles, m.Type())

	// Advance by whole cycles only; the sub-cycle remainder stays in the
	// anchor for the next tick's elapsed-time computation.
	m.AdvanceProduction(time.Duration(float64(cycles) * effective * float64(time.Second)))
	return true
}

// produceOutputs credits recipe outputs for the given number of completed
// cycles. Each cycle independently rolls the bonus-output chance; every win
// raises the output multiplier by 0.1, and the credited cycle count is
// floor(cycles * multiplier).
func (s *Scheduler) produceOutputs(recipe catalog.Recipe, cycles int, t catalog.MachineType) {
	bonus := s.bonuses.BonusForMachineType(t)
	multiplier := 1.0
	if bonus.BonusOutput > 0 {
		for i := 0; i < cycles; i++ {
			if s.random.Float64()*100 < bonus.BonusOutput {
				multiplier += 0.1
			}
		}
	}
	creditedCycles := int(math.Floor(float64(cycles) * multiplier))
	for _, output := range recipe.Outputs {
		s.inventory.Credit(output.ResourceID, output.Quantity*creditedCycles)
	}
}

// CatchUpOffline reconciles production for time elapsed while the process
// was down. Mines batch-produce every cycle the window allows; recipes with
// inputs are replayed cycle-by-cycle and stop at the first infeasible cycle,
// which yields the maximum feasible cycle count under scarcity. This is
// deliberately stricter than the live batch check and must stay that way.
func (s *Scheduler) CatchUpOffline(offline time.Duration) {
	offlineSeconds := math.Floor(offline.Seconds())
	if offlineSeconds <= 0 {
		return
	}

	produced := false
	for _, m := range s.machines.ActiveMachines() {
		recipe, ok := s.catalog.Recipe(m.SelectedRecipeID())
		if !ok {
			continue
		}
		effective := s.effectiveDuration(recipe, m.Type())
		maxCycles := int(offlineSeconds / effective)
		if maxCycles <= 0 {
			continue
		}

		completed := 0
		if recipe.IsMine() {
			s.produceOutputs(recipe, maxCycles, m.Type())
			completed = maxCycles
		} else {
			for i := 0; i < maxCycles; i++ {
				if !s.inventory.CanDebitAll(recipe.Inputs) {
					break
				}
				_ = s.inventory.DebitAll(recipe.Inputs)
				s.produceOutputs(recipe, 1, m.Type())
				completed++
			}
		}

		if completed > 0 {
			m.AdvanceProduction(time.Duration(float64(completed) * effective * float64(time.Second)))
			produced = true
		}
	}
	if produced {
		s.publisher.Publish(s.inventory.Snapshot())
	}
}

// MachineStats is the read-only production view of one machine
type MachineStats struct {
	Machine         machine.View
	Recipe          catalog.Recipe
	Progress        float64 // 0..1 within the current cycle
	CanProduce      bool
	CyclesPerMinute float64
}

// Stats reports the production state of a machine for display. Progress for
// an active machine is the in-cycle fraction of elapsed time; for a paused
// machine it reflects the snapshotted pause progress.
func (s *Scheduler) Stats(machineID string) (MachineStats, bool) {
	m, ok := s.machines.Machine(machineID)
	if !ok || m.SelectedRecipeID() == "" {
		return MachineStats{}, false
	}
	recipe, ok := s.catalog.Recipe(m.SelectedRecipeID())
	if !ok {
		return MachineStats{}, false
	}

	effective := s.effectiveDuration(recipe, m.Type())
	var progress float64
	if m.IsActive() {
		elapsed := s.clock.Now().Sub(m.LastProductionTime()).Seconds()
		progress = math.Min(math.Mod(elapsed, effective)/effective, 1)
	} else {
		progress = math.Min(m.PausedProgress()/effective, 1)
	}

	return MachineStats{
		Machine:         m.View(),
		Recipe:          recipe,
		Progress:        progress,
		CanProduce:      recipe.IsMine() || s.inventory.CanDebitAll(recipe.Inputs),
		CyclesPerMinute: 60 / effective,
	}, true
}

// ProgressSeconds returns the elapsed-in-cycle seconds for a machine, the
// value the registry snapshots into pausedProgress when toggling.
func (s *Scheduler) ProgressSeconds(machineID string) float64 {
	m, ok := s.machines.Machine(machineID)
	if !ok || m.SelectedRecipeID() == "" {
		return 0
	}
	recipe, ok := s.catalog.Recipe(m.SelectedRecipeID())
	if !ok {
		return 0
	}
	if !m.IsActive() {
		return m.PausedProgress()
	}
	effective := s.effectiveDuration(recipe, m.Type())
	elapsed := s.clock.Now().Sub(m.LastProductionTime()).Seconds()
	return math.Mod(elapsed, effective)
}

// effectiveDuration applies the speed research bonus to a recipe duration
func (s *Scheduler) effectiveDuration(recipe catalog.Recipe, t catalog.MachineType) float64 {
	bonus := s.bonuses.BonusForMachineType(t)
	return recipe.Duration / (1 + bonus.Speed/100)
}
