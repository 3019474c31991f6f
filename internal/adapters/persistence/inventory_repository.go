package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// InventoryRepositoryGORM implements inventory persistence using GORM
type InventoryRepositoryGORM struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new GORM-based inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepositoryGORM {
	return &InventoryRepositoryGORM{db: db}
}

// Save replaces the stored inventory with the given snapshot. Zero and
// negative quantities are not written.
func (r *InventoryRepositoryGORM) Save(snapshot map[string]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&InventoryItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear inventory: %w", err)
		}
		for resourceID, quantity := range snapshot {
			if quantity <= 0 {
				continue
			}
			model := &InventoryItemModel{ResourceID: resourceID, Quantity: quantity}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save inventory item %s: %w", resourceID, err)
			}
		}
		return nil
	})
}

// Load reads the stored inventory. Rows with non-positive quantities are
// dropped.
func (r *InventoryRepositoryGORM) Load() (map[string]int, error) {
	var models []InventoryItemModel
	if err := r.db.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	snapshot := make(map[string]int, len(models))
	for _, m := range models {
		if m.Quantity > 0 {
			snapshot[m.ResourceID] = m.Quantity
		}
	}
	return snapshot, nil
}
