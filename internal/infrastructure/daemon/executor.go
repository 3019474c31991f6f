// Package daemon runs the game's periodic tasks. All tasks execute on one
// goroutine so the engines never see concurrent mutation; isolation between
// tasks comes from per-run panic recovery, not from locking.
package daemon

import (
	"context"
	"log"
	"runtime/debug"
	"time"
)

// Task is a named periodic unit of work
type Task struct {
	Name   string
	Period time.Duration
	Run    func()
}

// Executor serializes periodic tasks on a single goroutine
type Executor struct {
	tasks []Task
}

// NewExecutor creates an executor over the given tasks
func NewExecutor(tasks []Task) *Executor {
	return &Executor{tasks: tasks}
}

// Run executes tasks at their periods until the context is cancelled.
// Scheduling picks the earliest due task each iteration; a slow task delays
// the others rather than overlapping them.
func (e *Executor) Run(ctx context.Context) {
	if len(e.tasks) == 0 {
		<-ctx.Done()
		return
	}

	next := make([]time.Time, len(e.tasks))
	now := time.Now()
	for i := range e.tasks {
		next[i] = now.Add(e.tasks[i].Period)
	}

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		// Find the earliest due task
		earliest := 0
		for i := range next {
			if next[i].Before(next[earliest]) {
				earliest = i
			}
		}

		wait := time.Until(next[earliest])
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		task := e.tasks[earliest]
		runTask(task)
		next[earliest] = time.Now().Add(task.Period)
	}
}

// runTask shields the dispatch loop from a panicking task
func runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("daemon: task %s panicked: %v\n%s", task.Name, r, debug.Stack())
		}
	}()
	task.Run()
}
