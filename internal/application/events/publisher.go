// Package events provides the subscribe-for-snapshot-changes capability the
// engines expose to presentation. Subscribers receive immutable snapshots,
// never references into engine-owned state.
package events

import "sync"

// Subscriber receives each published snapshot
type Subscriber[T any] func(snapshot T)

// Publisher fans immutable snapshots out to subscribers. Publishing happens
// on the single dispatch thread; the mutex only guards subscription from
// other goroutines (CLI, tests).
type Publisher[T any] struct {
	mu   sync.Mutex
	subs []Subscriber[T]
}

// Subscribe registers a subscriber for future snapshots
func (p *Publisher[T]) Subscribe(fn Subscriber[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

// Publish delivers a snapshot to every subscriber in registration order
func (p *Publisher[T]) Publish(snapshot T) {
	p.mu.Lock()
	subs := make([]Subscriber[T], len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
