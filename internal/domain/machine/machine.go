package machine

import (
	"fmt"
	"time"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
)

// Machine is a purchased production machine. Its timing anchor
// (lastProductionTime) and pause bookkeeping implement the time-anchoring
// algebra used by the production scheduler: pausing snapshots the
// elapsed-in-cycle seconds, resuming re-anchors the production time so the
// in-cycle progress is preserved.
type Machine struct {
	id                 string
	machineType        catalog.MachineType
	name               string
	cost               int
	selectedRecipeID   string
	lastProductionTime time.Time
	pausedProgress     float64 // seconds elapsed in the current cycle at pause time
	isActive           bool
}

// NewMachine creates a machine at purchase time. A new machine has no recipe
// and is inactive.
func NewMachine(id string, machineType catalog.MachineType, name string, cost int, purchasedAt time.Time) (*Machine, error) {
	if id == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if !machineType.IsValid() {
		return nil, ErrUnknownMachineType
	}
	if cost < 0 {
		return nil, fmt.Errorf("machine cost cannot be negative")
	}
	return &Machine{
		id:                 id,
		machineType:        machineType,
		name:               name,
		cost:               cost,
		lastProductionTime: purchasedAt,
	}, nil
}

// Restore rebuilds a machine from persisted state. Invariants are enforced:
// a machine without a recipe is never restored active.
func Restore(id string, machineType catalog.MachineType, name string, cost int, selectedRecipeID string, lastProductionTime time.Time, pausedProgress float64, isActive bool) *Machine {
	if selectedRecipeID == "" {
		isActive = false
	}
	if pausedProgress < 0 {
		pausedProgress = 0
	}
	return &Machine{
		id:                 id,
		machineType:        machineType,
		name:               name,
		cost:               cost,
		selectedRecipeID:   selectedRecipeID,
		lastProductionTime: lastProductionTime,
		pausedProgress:     pausedProgress,
		isActive:           isActive,
	}
}

func (m *Machine) ID() string                       { return m.id }
func (m *Machine) Type() catalog.MachineType        { return m.machineType }
func (m *Machine) Name() string                     { return m.name }
func (m *Machine) Cost() int                        { return m.cost }
func (m *Machine) SelectedRecipeID() string         { return m.selectedRecipeID }
func (m *Machine) LastProductionTime() time.Time    { return m.lastProductionTime }
func (m *Machine) PausedProgress() float64          { return m.pausedProgress }
func (m *Machine) IsActive() bool                   { return m.isActive }

// AssignRecipe selects a recipe, activates the machine and resets the
// production anchor to now.
func (m *Machine) AssignRecipe(recipeID string, now time.Time) {
	m.selectedRecipeID = recipeID
	m.isActive = true
	m.lastProductionTime = now
	m.pausedProgress = 0
}

// Pause deactivates the machine, snapshotting the elapsed-in-cycle seconds
func (m *Machine) Pause(progressSeconds float64) error {
	if m.selectedRecipeID == "" {
		return ErrNoRecipeSelected
	}
	if progressSeconds < 0 {
		progressSeconds = 0
	}
	m.pausedProgress = progressSeconds
	m.isActive = false
	return nil
}

// Resume reactivates the machine, re-anchoring the production time so the
// paused progress carries into the current cycle.
func (m *Machine) Resume(now time.Time) error {
	if m.selectedRecipeID == "" {
		return ErrNoRecipeSelected
	}
	m.lastProductionTime = now.Add(-time.Duration(m.pausedProgress * float64(time.Second)))
	m.isActive = true
	return nil
}

// AdvanceProduction moves the production anchor forward by the given
// duration. The scheduler advances by whole completed cycles only, which
// preserves the sub-cycle remainder.
func (m *Machine) AdvanceProduction(d time.Duration) {
	m.lastProductionTime = m.lastProductionTime.Add(d)
}

// View returns an immutable snapshot of the machine for consumers outside
// the core.
func (m *Machine) View() View {
	return View{
		ID:                 m.id,
		Type:               m.machineType,
		Name:               m.name,
		Cost:               m.cost,
		SelectedRecipeID:   m.selectedRecipeID,
		LastProductionTime: m.lastProductionTime,
		PausedProgress:     m.pausedProgress,
		IsActive:           m.isActive,
	}
}

// View is an immutable machine snapshot
type View struct {
	ID                 string
	Type               catalog.MachineType
	Name               string
	Cost               int
	SelectedRecipeID   string
	LastProductionTime time.Time
	PausedProgress     float64
	IsActive           bool
}
