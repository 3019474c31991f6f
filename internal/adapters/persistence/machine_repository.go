package persistence

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/machine"
)

// machineCounterPrefix namespaces machine ID counters in the counters table
const machineCounterPrefix = "machine_next_id_"

// MachineRepositoryGORM implements machine persistence using GORM
type MachineRepositoryGORM struct {
	db *gorm.DB
}

// NewMachineRepository creates a new GORM-based machine repository
func NewMachineRepository(db *gorm.DB) *MachineRepositoryGORM {
	return &MachineRepositoryGORM{db: db}
}

// Save replaces the stored machine park and its ID counters
func (r *MachineRepositoryGORM) Save(machines []*machine.Machine, counters map[catalog.MachineType]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&MachineModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear machines: %w", err)
		}
		for _, m := range machines {
			model := &MachineModel{
				ID:                 m.ID(),
				Type:               string(m.Type()),
				Name:               m.Name(),
				Cost:               m.Cost(),
				SelectedRecipeID:   m.SelectedRecipeID(),
				LastProductionTime: m.LastProductionTime().UnixMilli(),
				PausedProgress:     m.PausedProgress(),
				IsActive:           m.IsActive(),
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save machine %s: %w", m.ID(), err)
			}
		}
		for t, value := range counters {
			if err := saveCounter(tx, machineCounterPrefix+string(t), value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load reads the stored machine park and counters. A row with an unknown
// machine type is skipped with a log line rather than failing the load.
func (r *MachineRepositoryGORM) Load() ([]*machine.Machine, map[catalog.MachineType]int, error) {
	var models []MachineModel
	if err := r.db.Order("id").Find(&models).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load machines: %w", err)
	}

	var machines []*machine.Machine
	for _, m := range models {
		t := catalog.MachineType(m.Type)
		if !t.IsValid() {
			log.Printf("persistence: skipping machine %s with unknown type %q", m.ID, m.Type)
			continue
		}
		machines = append(machines, machine.Restore(
			m.ID, t, m.Name, m.Cost, m.SelectedRecipeID,
			time.UnixMilli(m.LastProductionTime), m.PausedProgress, m.IsActive,
		))
	}

	counters := make(map[catalog.MachineType]int)
	for _, t := range catalog.AllMachineTypes() {
		value, err := loadCounter(r.db, machineCounterPrefix+string(t))
		if err != nil {
			return nil, nil, err
		}
		if value > 0 {
			counters[t] = value
		}
	}
	return machines, counters, nil
}
