package persistence

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveCounter upserts one named counter
func saveCounter(tx *gorm.DB, name string, value int) error {
	model := &CounterModel{Name: name, Value: value}
	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save counter %s: %w", name, err)
	}
	return nil
}

// loadCounter reads one named counter, zero if absent
func loadCounter(db *gorm.DB, name string) (int, error) {
	var model CounterModel
	err := db.First(&model, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load counter %s: %w", name, err)
	}
	return model.Value, nil
}
