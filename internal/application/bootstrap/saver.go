package bootstrap

import (
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Saver coalesces event-driven saves. Engines publish snapshots on every
// state change; persisting on each one would hammer the database, so saves
// triggered by events pass through a rate limiter while Flush remains
// unconditional for shutdown.
type Saver struct {
	app     *App
	limiter *rate.Limiter
}

// NewSaver creates a saver allowing at most one event-driven save per
// interval
func NewSaver(app *App, minInterval time.Duration) *Saver {
	return &Saver{
		app:     app,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// MaybeSave persists the game if the rate limiter allows it
func (s *Saver) MaybeSave() {
	if !s.limiter.Allow() {
		return
	}
	if err := s.app.SaveAll(); err != nil {
		log.Printf("save failed: %v", err)
	}
}

// Flush persists the game unconditionally
func (s *Saver) Flush() error {
	return s.app.SaveAll()
}
