package persistence

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gameStateRowID is the fixed primary key of the single save row
const gameStateRowID = 1

// GameStateSnapshot is the persisted top-level save state
type GameStateSnapshot struct {
	Money         int
	LastSaveTime  time.Time
	TotalPlayTime time.Duration
}

// GameStateRepositoryGORM implements game state persistence using GORM
type GameStateRepositoryGORM struct {
	db *gorm.DB
}

// NewGameStateRepository creates a new GORM-based game state repository
func NewGameStateRepository(db *gorm.DB) *GameStateRepositoryGORM {
	return &GameStateRepositoryGORM{db: db}
}

// Save upserts the single save row
func (r *GameStateRepositoryGORM) Save(snapshot GameStateSnapshot) error {
	model := &GameStateModel{
		ID:              gameStateRowID,
		Money:           snapshot.Money,
		LastSaveTime:    snapshot.LastSaveTime.UnixMilli(),
		TotalPlayTimeMS: snapshot.TotalPlayTime.Milliseconds(),
	}
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

// Load reads the save row. The second return is false when no save exists.
func (r *GameStateRepositoryGORM) Load() (GameStateSnapshot, bool, error) {
	var model GameStateModel
	err := r.db.First(&model, gameStateRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GameStateSnapshot{}, false, nil
	}
	if err != nil {
		return GameStateSnapshot{}, false, fmt.Errorf("failed to load game state: %w", err)
	}
	return GameStateSnapshot{
		Money:         model.Money,
		LastSaveTime:  time.UnixMilli(model.LastSaveTime),
		TotalPlayTime: time.Duration(model.TotalPlayTimeMS) * time.Millisecond,
	}, true, nil
}
