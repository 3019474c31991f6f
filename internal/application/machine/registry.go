// Package machine hosts the machine registry: ownership of all purchased
// machines and the pause/resume time-anchoring operations.
package machine

import (
	"fmt"

	"github.com/factoquest/factoquest-go/internal/application/events"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/machine"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
)

// Registry owns the set of purchased machines. Machine ids are assigned from
// a monotonically increasing counter scoped by machine type.
type Registry struct {
	clock     shared.Clock
	catalog   catalog.Reader
	machines  []*machine.Machine
	nextID    map[catalog.MachineType]int
	publisher events.Publisher[[]machine.View]
}

// NewRegistry creates an empty registry
func NewRegistry(clock shared.Clock, cat catalog.Reader) *Registry {
	return &Registry{
		clock:   clock,
		catalog: cat,
		nextID:  make(map[catalog.MachineType]int),
	}
}

// RestoreRegistry rebuilds a registry from persisted machines and id counters
func RestoreRegistry(clock shared.Clock, cat catalog.Reader, machines []*machine.Machine, nextIDs map[catalog.MachineType]int) *Registry {
	r := NewRegistry(clock, cat)
	r.machines = append(r.machines, machines...)
	for t, n := range nextIDs {
		if n > 0 {
			r.nextID[t] = n
		}
	}
	return r
}

// Subscribe registers a consumer for machine list snapshots
func (r *Registry) Subscribe(fn events.Subscriber[[]machine.View]) {
	r.publisher.Subscribe(fn)
}

// Purchase creates a new machine of the given type. Charging the purchase
// cost is the caller's responsibility.
func (r *Registry) Purchase(t catalog.MachineType) (machine.View, error) {
	info, ok := machine.TypeInfoFor(t)
	if !ok {
		return machine.View{}, machine.ErrUnknownMachineType
	}

	n := r.nextID[t]
	if n == 0 {
		n = 1
	}
	id := fmt.Sprintf("%s_%d", t, n)
	name := fmt.Sprintf("%s #%d", info.Name, n)
	r.nextID[t] = n + 1

	m, err := machine.NewMachine(id, t, name, info.Cost, r.clock.Now())
	if err != nil {
		return machine.View{}, err
	}
	r.machines = append(r.machines, m)
	r.publishSnapshot()
	return m.View(), nil
}

// AssignRecipe selects a recipe for a machine, activating it and resetting
// its production anchor. The recipe must exist and run on the machine's type.
func (r *Registry) AssignRecipe(machineID, recipeID string) error {
	m, ok := r.find(machineID)
	if !ok {
		return machine.ErrMachineNotFound
	}
	recipe, ok := r.catalog.Recipe(recipeID)
	if !ok {
		return fmt.Errorf("recipe %q: %w", recipeID, catalog.ErrInvalidRecipe)
	}
	if recipe.MachineType != m.Type() {
		return machine.ErrRecipeMismatch
	}
	m.AssignRecipe(recipeID, r.clock.Now())
	r.publishSnapshot()
	return nil
}

// Toggle pauses an active machine (snapshotting the supplied elapsed-in-cycle
// seconds) or resumes a paused one (re-anchoring its production time).
// The current progress is supplied by the production scheduler's stats.
func (r *Registry) Toggle(machineID string, currentProgressSeconds float64) error {
	m, ok := r.find(machineID)
	if !ok {
		return machine.ErrMachineNotFound
	}
	var err error
	if m.IsActive() {
		err = m.Pause(currentProgressSeconds)
	} else {
		err = m.Resume(r.clock.Now())
	}
	if err != nil {
		return err
	}
	r.publishSnapshot()
	return nil
}

// Delete removes a machine from the registry
func (r *Registry) Delete(machineID string) error {
	for i, m := range r.machines {
		if m.ID() == machineID {
			r.machines = append(r.machines[:i], r.machines[i+1:]...)
			r.publishSnapshot()
			return nil
		}
	}
	return machine.ErrMachineNotFound
}

// Machine returns the machine entity with the given id. Mutations must go
// through entity methods on the single dispatch thread.
func (r *Registry) Machine(machineID string) (*machine.Machine, bool) {
	return r.find(machineID)
}

// ActiveMachines returns the machines eligible for production this tick
func (r *Registry) ActiveMachines() []*machine.Machine {
	var out []*machine.Machine
	for _, m := range r.machines {
		if m.IsActive() && m.SelectedRecipeID() != "" {
			out = append(out, m)
		}
	}
	return out
}

// AllMachines returns every machine entity, for persistence
func (r *Registry) AllMachines() []*machine.Machine {
	return append([]*machine.Machine(nil), r.machines...)
}

// Machines returns snapshots of all machines
func (r *Registry) Machines() []machine.View {
	out := make([]machine.View, 0, len(r.machines))
	for _, m := range r.machines {
		out = append(out, m.View())
	}
	return out
}

// MachinesByType returns snapshots of machines of one type
func (r *Registry) MachinesByType(t catalog.MachineType) []machine.View {
	var out []machine.View
	for _, m := range r.machines {
		if m.Type() == t {
			out = append(out, m.View())
		}
	}
	return out
}

// CostFor returns the flat purchase cost for a machine type
func (r *Registry) CostFor(t catalog.MachineType) (int, bool) {
	return machine.CostFor(t)
}

// Counters returns the per-type id counters for persistence
func (r *Registry) Counters() map[catalog.MachineType]int {
	out := make(map[catalog.MachineType]int, len(r.nextID))
	for t, n := range r.nextID {
		out[t] = n
	}
	return out
}

func (r *Registry) find(machineID string) (*machine.Machine, bool) {
	for _, m := range r.machines {
		if m.ID() == machineID {
			return m, true
		}
	}
	return nil, false
}

func (r *Registry) publishSnapshot() {
	r.publisher.Publish(r.Machines())
}
