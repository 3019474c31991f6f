// Package game owns the top-level game state: the money balance, total play
// time and the save anchor used for offline catch-up.
package game

import (
	"time"

	"github.com/factoquest/factoquest-go/internal/application/events"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
)

// StateView is an immutable snapshot of the game state
type StateView struct {
	Money         int
	LastSaveTime  time.Time
	TotalPlayTime time.Duration
}

// State is the authority over money and play-time bookkeeping
type State struct {
	clock         shared.Clock
	money         int
	lastSaveTime  time.Time
	totalPlayTime time.Duration
	publisher     events.Publisher[StateView]
}

// NewState creates a fresh game state with the configured starting money
func NewState(clock shared.Clock, startingMoney int) *State {
	return &State{
		clock:        clock,
		money:        startingMoney,
		lastSaveTime: clock.Now(),
	}
}

// RestoreState rebuilds game state from a persisted snapshot. The save
// anchor is kept as persisted so offline time can be computed before the
// first play-time update re-anchors it.
func RestoreState(clock shared.Clock, money int, lastSaveTime time.Time, totalPlayTime time.Duration) *State {
	if money < 0 {
		money = 0
	}
	return &State{
		clock:         clock,
		money:         money,
		lastSaveTime:  lastSaveTime,
		totalPlayTime: totalPlayTime,
	}
}

// Subscribe registers a consumer for state snapshots
func (s *State) Subscribe(fn events.Subscriber[StateView]) {
	s.publisher.Subscribe(fn)
}

// Money returns the current balance
func (s *State) Money() int {
	return s.money
}

// CanAfford reports whether the balance covers the amount
func (s *State) CanAfford(amount int) bool {
	return s.money >= amount
}

// AddMoney credits the balance. Non-positive amounts are ignored.
func (s *State) AddMoney(amount int) {
	if amount <= 0 {
		return
	}
	s.money += amount
	s.publisher.Publish(s.View())
}

// SpendMoney debits the balance, reporting false without mutation when the
// balance is insufficient. Non-positive amounts succeed as a no-op.
func (s *State) SpendMoney(amount int) bool {
	if amount <= 0 {
		return true
	}
	if s.money < amount {
		return false
	}
	s.money -= amount
	s.publisher.Publish(s.View())
	return true
}

// UpdatePlayTime accumulates wall-clock time since the last anchor into the
// total play time and re-anchors. Invoked once per production tick.
func (s *State) UpdatePlayTime() {
	now := s.clock.Now()
	if elapsed := now.Sub(s.lastSaveTime); elapsed > 0 {
		s.totalPlayTime += elapsed
	}
	s.lastSaveTime = now
}

// OfflineTime returns the wall-clock time since the last save anchor.
// Computed once at startup before the first UpdatePlayTime.
func (s *State) OfflineTime() time.Duration {
	offline := s.clock.Now().Sub(s.lastSaveTime)
	if offline < 0 {
		return 0
	}
	return offline
}

// MarkSaved re-anchors the save time after a successful persistence write
func (s *State) MarkSaved() {
	s.lastSaveTime = s.clock.Now()
}

// View returns an immutable snapshot of the state
func (s *State) View() StateView {
	return StateView{
		Money:         s.money,
		LastSaveTime:  s.lastSaveTime,
		TotalPlayTime: s.totalPlayTime,
	}
}
