package daemon_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/factoquest/factoquest-go/internal/infrastructure/daemon"
)

func TestRun_ExecutesTasksAtTheirPeriods(t *testing.T) {
	// Arrange
	var fast, slow atomic.Int64
	executor := daemon.NewExecutor([]daemon.Task{
		{Name: "fast", Period: 10 * time.Millisecond, Run: func() { fast.Add(1) }},
		{Name: "slow", Period: 80 * time.Millisecond, Run: func() { slow.Add(1) }},
	})
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// Act
	done := make(chan struct{})
	go func() {
		executor.Run(ctx)
		close(done)
	}()
	<-done

	// Assert - the fast task fires far more often than the slow one
	assert.Greater(t, fast.Load(), slow.Load())
	assert.GreaterOrEqual(t, fast.Load(), int64(5))
	assert.GreaterOrEqual(t, slow.Load(), int64(1))
}

func TestRun_SurvivesPanickingTask(t *testing.T) {
	// Arrange - the panicking task must not take the healthy one down
	var healthy atomic.Int64
	executor := daemon.NewExecutor([]daemon.Task{
		{Name: "broken", Period: 10 * time.Millisecond, Run: func() { panic("boom") }},
		{Name: "healthy", Period: 10 * time.Millisecond, Run: func() { healthy.Add(1) }},
	})
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	// Act
	done := make(chan struct{})
	go func() {
		executor.Run(ctx)
		close(done)
	}()
	<-done

	// Assert
	assert.GreaterOrEqual(t, healthy.Load(), int64(3))
}

func TestRun_StopsOnCancellation(t *testing.T) {
	// Arrange
	executor := daemon.NewExecutor([]daemon.Task{
		{Name: "noop", Period: time.Hour, Run: func() {}},
	})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		executor.Run(ctx)
		close(done)
	}()

	// Act
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("executor did not stop after cancellation")
	}
}

func TestRun_NoTasksBlocksUntilCancelled(t *testing.T) {
	// Arrange
	executor := daemon.NewExecutor(nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		executor.Run(ctx)
		close(done)
	}()

	// Act
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("executor did not stop after cancellation")
	}
}
