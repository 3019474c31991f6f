package research

import (
	"time"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
)

// Research is one node of the research tree. Its state machine is
// locked → unlocked → in-progress → completed (terminal); unlocking is
// monotone and completed/in-progress are mutually exclusive.
type Research struct {
	id            string
	name          string
	description   string
	category      string // machine type category, or "general"
	requirements  []catalog.Stack
	duration      float64 // seconds, before laboratory speed
	prerequisites []string
	effects       []Effect
	icon          string

	unlocked     bool
	completed    bool
	inProgress   bool
	startTime    *time.Time
	laboratoryID string
}

// Definition is the static portion of a research node, used to build the tree
type Definition struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Requirements  []catalog.Stack
	Duration      float64
	Prerequisites []string
	Effects       []Effect
	Icon          string
	// Unlocked marks roots of the tree that start available
	Unlocked bool
}

// New creates a research node from its definition
func New(def Definition) *Research {
	return &Research{
		id:            def.ID,
		name:          def.Name,
		description:   def.Description,
		category:      def.Category,
		requirements:  append([]catalog.Stack(nil), def.Requirements...),
		duration:      def.Duration,
		prerequisites: append([]string(nil), def.Prerequisites...),
		effects:       append([]Effect(nil), def.Effects...),
		icon:          def.Icon,
		unlocked:      def.Unlocked,
	}
}

func (r *Research) ID() string                    { return r.id }
func (r *Research) Name() string                  { return r.name }
func (r *Research) Category() string              { return r.category }
func (r *Research) Duration() float64             { return r.duration }
func (r *Research) IsUnlocked() bool              { return r.unlocked }
func (r *Research) IsCompleted() bool             { return r.completed }
func (r *Research) IsInProgress() bool            { return r.inProgress }
func (r *Research) LaboratoryID() string          { return r.laboratoryID }

// Requirements returns a copy of the resource requirements
func (r *Research) Requirements() []catalog.Stack {
	return append([]catalog.Stack(nil), r.requirements...)
}

// Prerequisites returns a copy of the prerequisite research ids
func (r *Research) Prerequisites() []string {
	return append([]string(nil), r.prerequisites...)
}

// Effects returns a copy of the granted effects
func (r *Research) Effects() []Effect {
	return append([]Effect(nil), r.effects...)
}

// Unlock marks the research available. Unlocking is monotone: a completed or
// already-unlocked research is unaffected.
func (r *Research) Unlock() {
	if !r.completed {
		r.unlocked = true
	}
}

// Start transitions the research to in-progress in the given laboratory
func (r *Research) Start(laboratoryID string, now time.Time) error {
	if !r.unlocked {
		return ErrNotUnlocked
	}
	if r.completed || r.inProgress {
		return ErrAlreadyDone
	}
	r.inProgress = true
	t := now
	r.startTime = &t
	r.laboratoryID = laboratoryID
	return nil
}

// Complete transitions the research to its terminal completed state
func (r *Research) Complete() {
	r.completed = true
	r.inProgress = false
	r.unlocked = true
}

// RestoreState applies persisted dynamic state onto the definition.
// The completed/in-progress exclusivity invariant is enforced on load.
func (r *Research) RestoreState(unlocked, completed, inProgress bool, startTime *time.Time, laboratoryID string) {
	if completed {
		inProgress = false
		unlocked = true
	}
	r.unlocked = unlocked
	r.completed = completed
	r.inProgress = inProgress
	r.startTime = startTime
	r.laboratoryID = laboratoryID
}

// View returns an immutable snapshot of the research node
func (r *Research) View() View {
	return View{
		ID:            r.id,
		Name:          r.name,
		Description:   r.description,
		Category:      r.category,
		Requirements:  r.Requirements(),
		Duration:      r.duration,
		Prerequisites: r.Prerequisites(),
		Effects:       r.Effects(),
		Icon:          r.icon,
		IsUnlocked:    r.unlocked,
		IsCompleted:   r.completed,
		IsInProgress:  r.inProgress,
		StartTime:     r.startTime,
		LaboratoryID:  r.laboratoryID,
	}
}

// View is an immutable research snapshot
type View struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Requirements  []catalog.Stack
	Duration      float64
	Prerequisites []string
	Effects       []Effect
	Icon          string
	IsUnlocked    bool
	IsCompleted   bool
	IsInProgress  bool
	StartTime     *time.Time
	LaboratoryID  string
}
