package machine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/machine"
)

var anchor = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestMachine(t *testing.T) *machine.Machine {
	m, err := machine.NewMachine("mine_1", catalog.MachineTypeMine, "Mine #1", 500, anchor)
	require.NoError(t, err)
	return m
}

func TestNewMachine_StartsInactiveWithoutRecipe(t *testing.T) {
	// Act
	m := newTestMachine(t)

	// Assert
	assert.False(t, m.IsActive())
	assert.Empty(t, m.SelectedRecipeID())
}

func TestNewMachine_RejectsInvalidType(t *testing.T) {
	// Act
	_, err := machine.NewMachine("x_1", catalog.MachineType("reactor"), "X", 1, anchor)

	// Assert
	assert.ErrorIs(t, err, machine.ErrUnknownMachineType)
}

func TestAssignRecipe_ActivatesAndResetsAnchor(t *testing.T) {
	// Arrange
	m := newTestMachine(t)
	later := anchor.Add(90 * time.Second)

	// Act
	m.AssignRecipe("mine_iron", later)

	// Assert
	assert.True(t, m.IsActive())
	assert.Equal(t, "mine_iron", m.SelectedRecipeID())
	assert.Equal(t, later, m.LastProductionTime())
	assert.Zero(t, m.PausedProgress())
}

func TestPauseResume_RoundTripPreservesProgress(t *testing.T) {
	// Arrange - 0.4s into a cycle when paused
	m := newTestMachine(t)
	m.AssignRecipe("mine_iron", anchor)

	// Act
	require.NoError(t, m.Pause(0.4))
	assert.False(t, m.IsActive())
	assert.Equal(t, 0.4, m.PausedProgress())

	resumeAt := anchor.Add(2 * time.Hour)
	require.NoError(t, m.Resume(resumeAt))

	// Assert - the anchor is back-dated so 0.4s already count as elapsed
	assert.True(t, m.IsActive())
	elapsed := resumeAt.Sub(m.LastProductionTime()).Seconds()
	assert.InDelta(t, 0.4, elapsed, 1e-9)
	assert.Zero(t, m.PausedProgress())
}

func TestPause_FailsWithoutRecipe(t *testing.T) {
	// Arrange
	m := newTestMachine(t)

	// Act / Assert
	assert.ErrorIs(t, m.Pause(0.5), machine.ErrNoRecipeSelected)
}

func TestPause_ClampsNegativeProgress(t *testing.T) {
	// Arrange
	m := newTestMachine(t)
	m.AssignRecipe("mine_iron", anchor)

	// Act
	require.NoError(t, m.Pause(-3))

	// Assert
	assert.Zero(t, m.PausedProgress())
}

func TestResume_FailsWithoutRecipe(t *testing.T) {
	// Arrange
	m := newTestMachine(t)

	// Act / Assert
	assert.ErrorIs(t, m.Resume(anchor), machine.ErrNoRecipeSelected)
}

func TestAdvanceProduction_MovesAnchorForward(t *testing.T) {
	// Arrange
	m := newTestMachine(t)
	m.AssignRecipe("mine_iron", anchor)

	// Act
	m.AdvanceProduction(3 * time.Second)

	// Assert
	assert.Equal(t, anchor.Add(3*time.Second), m.LastProductionTime())
}

func TestRestore_ForcesInactiveWithoutRecipe(t *testing.T) {
	// Act - persisted state claims active but carries no recipe
	m := machine.Restore("mine_1", catalog.MachineTypeMine, "Mine #1", 500, "", anchor, 0, true)

	// Assert
	assert.False(t, m.IsActive())
}
