package persistence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/adapters/persistence"
	"github.com/factoquest/factoquest-go/internal/domain/research"
	"github.com/factoquest/factoquest-go/test/helpers"
)

func TestResearchRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewResearchRepository(db)
	purchased := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	started := purchased.Add(time.Minute)

	labs := []research.Laboratory{{
		ID: "lab_1", Name: "Basic Laboratory #1", Type: research.LabTypeBasic,
		Cost: 5000, ResearchSpeed: 1.0, MaxSimultaneousResearch: 1,
		PurchaseTime: purchased,
	}}
	views := []research.View{
		{ID: "mining_speed_1", IsUnlocked: true},
		{ID: "smelting_speed_1", IsUnlocked: true, IsCompleted: true},
		{ID: "mining_efficiency_1"},
	}
	active := []research.Progress{{
		ResearchID:       "mining_speed_1",
		LaboratoryID:     "lab_1",
		StartTime:        started,
		EstimatedEndTime: started.Add(300 * time.Second),
		Fraction:         0.25,
	}}

	// Act
	require.NoError(t, repo.Save(labs, views, active, 2))
	state, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, state.NextLabID)

	require.Len(t, state.Laboratories, 1)
	lab := state.Laboratories[0]
	assert.Equal(t, "lab_1", lab.ID)
	assert.Equal(t, "Basic Laboratory #1", lab.Name)
	assert.Equal(t, research.LabTypeBasic, lab.Type)
	assert.Equal(t, 1.0, lab.ResearchSpeed)
	assert.Equal(t, purchased.UnixMilli(), lab.PurchaseTime.UnixMilli())

	assert.Equal(t, []string{"smelting_speed_1"}, state.Completed)

	require.Len(t, state.Active, 1)
	progress := state.Active[0]
	assert.Equal(t, "mining_speed_1", progress.ResearchID)
	assert.Equal(t, started.UnixMilli(), progress.StartTime.UnixMilli())
	assert.InDelta(t, 0.25, progress.Fraction, 1e-9)

	ps := state.ResearchStates["mining_speed_1"]
	assert.True(t, ps.Unlocked)
	assert.True(t, ps.InProgress)
	require.NotNil(t, ps.StartTime)
	assert.Equal(t, "lab_1", ps.LaboratoryID)
}

func TestResearchRepository_SkipsUnknownLabTypeRows(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewResearchRepository(db)
	row := &persistence.LaboratoryModel{ID: "lab_9", Type: "quantum"}
	require.NoError(t, db.Create(row).Error)

	// Act
	state, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, state.Laboratories)
}

func TestResearchRepository_LoadEmptyGivesZeroState(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewResearchRepository(db)

	// Act
	state, err := repo.Load()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, state.Laboratories)
	assert.Empty(t, state.Active)
	assert.Empty(t, state.Completed)
	assert.Zero(t, state.NextLabID)
}
