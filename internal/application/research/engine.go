// Package research hosts the research engine: laboratory ownership, the
// research tree state machine and the bonus vector consumed by the
// production scheduler.
package research

import (
	"fmt"
	"time"

	"github.com/factoquest/factoquest-go/internal/application/events"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/research"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
)

// StartResult is the discriminated outcome of a start-research request.
// On success Requirements carries the stacks the caller must debit; the
// engine itself never mutates inventory.
type StartResult struct {
	OK           bool
	Message      string
	Requirements []catalog.Stack
}

// Engine owns laboratories, the research tree and the active progress set
type Engine struct {
	clock      shared.Clock
	labs       []*research.Laboratory
	researches map[string]*research.Research
	order      []string // research ids in definition order
	active     []*research.Progress
	completed  []string
	nextLabID  int
	publisher  events.Publisher[[]research.View]
}

// NewEngine builds an engine over the given research definitions, unlocking
// every node whose prerequisites are already satisfied.
func NewEngine(clock shared.Clock, definitions []research.Definition) *Engine {
	e := &Engine{
		clock:      clock,
		researches: make(map[string]*research.Research, len(definitions)),
		nextLabID:  1,
	}
	for _, def := range definitions {
		e.researches[def.ID] = research.New(def)
		e.order = append(e.order, def.ID)
	}
	e.refreshAvailability()
	return e
}

// RestoredState carries the persisted dynamic state of the research slice
type RestoredState struct {
	Laboratories []*research.Laboratory
	NextLabID    int
	Completed    []string
	Active       []*research.Progress
	// ResearchStates maps research id to its persisted flags
	ResearchStates map[string]PersistedResearch
}

// PersistedResearch is the saved dynamic state of one research node
type PersistedResearch struct {
	Unlocked     bool
	Completed    bool
	InProgress   bool
	StartTime    *time.Time
	LaboratoryID string
}

// RestoreEngine rebuilds an engine from definitions plus persisted state.
// Definitions are static code data; only dynamic flags are merged in.
func RestoreEngine(clock shared.Clock, definitions []research.Definition, state RestoredState) *Engine {
	e := NewEngine(clock, definitions)
	e.labs = append(e.labs, state.Laboratories...)
	if state.NextLabID > 0 {
		e.nextLabID = state.NextLabID
	}
	e.completed = append(e.completed, state.Completed...)
	e.active = append(e.active, state.Active...)
	for id, ps := range state.ResearchStates {
		if r, ok := e.researches[id]; ok {
			r.RestoreState(ps.Unlocked, ps.Completed, ps.InProgress, ps.StartTime, ps.LaboratoryID)
		}
	}
	e.refreshAvailability()
	return e
}

// Subscribe registers a consumer for research tree snapshots
func (e *Engine) Subscribe(fn events.Subscriber[[]research.View]) {
	e.publisher.Subscribe(fn)
}

// PurchaseLaboratory creates a laboratory of the given type. Charging the
// purchase cost is the caller's responsibility. Laboratories are never
// destroyed.
func (e *Engine) PurchaseLaboratory(labType research.LabType) (research.Laboratory, error) {
	info, ok := research.LabTypeInfoFor(labType)
	if !ok {
		return research.Laboratory{}, research.ErrUnknownLaboratoryType
	}
	lab := &research.Laboratory{
		ID:                      fmt.Sprintf("lab_%d", e.nextLabID),
		Name:                    fmt.Sprintf("%s #%d", info.Name, e.nextLabID),
		Type:                    labType,
		Cost:                    info.Cost,
		ResearchSpeed:           info.ResearchSpeed,
		MaxSimultaneousResearch: info.MaxSimultaneous,
		Specialization:          info.Specialization,
		PurchaseTime:            e.clock.Now(),
	}
	e.nextLabID++
	e.labs = append(e.labs, lab)
	return *lab, nil
}

// StartResearch validates the full precondition chain and, on acceptance,
// records an active progress entry. Resource requirements are checked
// against the caller-supplied availability but never consumed here: the
// caller debits them after a successful start.
func (e *Engine) StartResearch(researchID, laboratoryID string, available map[string]int) StartResult {
	r, ok := e.researches[researchID]
	if !ok {
		return StartResult{Message: research.ErrResearchNotFound.Error()}
	}
	lab := e.findLab(laboratoryID)
	if lab == nil {
		return StartResult{Message: research.ErrLaboratoryNotFound.Error()}
	}
	if !r.IsUnlocked() {
		return StartResult{Message: research.ErrNotUnlocked.Error()}
	}
	if r.IsCompleted() || r.IsInProgress() {
		return StartResult{Message: research.ErrAlreadyDone.Error()}
	}
	if !lab.CanHost(r.Category()) {
		return StartResult{Message: research.ErrSpecializationMismatch.Error()}
	}
	if e.activeCountIn(laboratoryID) >= lab.MaxSimultaneousResearch {
		return StartResult{Message: research.ErrLaboratoryBusy.Error()}
	}
	for _, req := range r.Requirements() {
		if available[req.ResourceID] < req.Quantity {
			return StartResult{Message: fmt.Sprintf("not enough %s", req.ResourceID)}
		}
	}

	now := e.clock.Now()
	effective := r.Duration() / lab.ResearchSpeed
	if err := r.Start(laboratoryID, now); err != nil {
		return StartResult{Message: err.Error()}
	}
	e.active = append(e.active, &research.Progress{
		ResearchID:       researchID,
		LaboratoryID:     laboratoryID,
		StartTime:        now,
		EstimatedEndTime: now.Add(time.Duration(effective * float64(time.Second))),
	})
	e.publishSnapshot()

	return StartResult{
		OK:           true,
		Message:      "research started",
		Requirements: r.Requirements(),
	}
}

// Advance updates every active progress record, completing researches whose
// progress reached 1 and cascading unlock re-evaluation. Returns the ids of
// researches completed by this pass. Invoked once per research tick.
func (e *Engine) Advance() []string {
	now := e.clock.Now()
	var finished []string
	remaining := e.active[:0]
	for _, p := range e.active {
		if p.UpdateFraction(now) {
			e.complete(p.ResearchID)
			finished = append(finished, p.ResearchID)
		} else {
			remaining = append(remaining, p)
		}
	}
	e.active = remaining

	if len(finished) > 0 {
		e.refreshAvailability()
		e.publishSnapshot()
	}
	return finished
}

// BonusForMachineType aggregates the effects of all completed researches
// targeting the given machine type (or all types) into the additive bonus
// vector consumed by the production scheduler.
func (e *Engine) BonusForMachineType(t catalog.MachineType) research.Bonus {
	var bonus research.Bonus
	for _, id := range e.completed {
		r, ok := e.researches[id]
		if !ok {
			continue
		}
		for _, effect := range r.Effects() {
			if effect.AppliesTo(t) {
				bonus.Accumulate(effect)
			}
		}
	}
	return bonus
}

// Laboratories returns copies of all owned laboratories
func (e *Engine) Laboratories() []research.Laboratory {
	out := make([]research.Laboratory, 0, len(e.labs))
	for _, lab := range e.labs {
		out = append(out, *lab)
	}
	return out
}

// Laboratory returns a copy of the laboratory with the given id
func (e *Engine) Laboratory(id string) (research.Laboratory, error) {
	lab := e.findLab(id)
	if lab == nil {
		return research.Laboratory{}, research.ErrLaboratoryNotFound
	}
	return *lab, nil
}

// Researches returns snapshots of the research tree in definition order
func (e *Engine) Researches() []research.View {
	out := make([]research.View, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.researches[id].View())
	}
	return out
}

// ActiveProgress returns copies of the active progress records
func (e *Engine) ActiveProgress() []research.Progress {
	out := make([]research.Progress, 0, len(e.active))
	for _, p := range e.active {
		out = append(out, *p)
	}
	return out
}

// CompletedIDs returns the completed research ids in completion order
func (e *Engine) CompletedIDs() []string {
	return append([]string(nil), e.completed...)
}

// NextLabID returns the laboratory id counter for persistence
func (e *Engine) NextLabID() int {
	return e.nextLabID
}

func (e *Engine) complete(researchID string) {
	r, ok := e.researches[researchID]
	if !ok {
		return
	}
	r.Complete()
	e.completed = append(e.completed, researchID)
}

// refreshAvailability unlocks every locked research whose prerequisites are
// all in the completed set. Re-evaluated after each completion so unlock
// chains cascade.
func (e *Engine) refreshAvailability() {
	done := make(map[string]bool, len(e.completed))
	for _, id := range e.completed {
		done[id] = true
	}
	for _, id := range e.order {
		r := e.researches[id]
		if r.IsCompleted() || r.IsUnlocked() {
			continue
		}
		satisfied := true
		for _, prereq := range r.Prerequisites() {
			if !done[prereq] {
				satisfied = false
				break
			}
		}
		if satisfied {
			r.Unlock()
		}
	}
}

func (e *Engine) activeCountIn(laboratoryID string) int {
	count := 0
	for _, p := range e.active {
		if p.LaboratoryID == laboratoryID {
			count++
		}
	}
	return count
}

func (e *Engine) findLab(id string) *research.Laboratory {
	for _, lab := range e.labs {
		if lab.ID == id {
			return lab
		}
	}
	return nil
}

func (e *Engine) publishSnapshot() {
	e.publisher.Publish(e.Researches())
}
