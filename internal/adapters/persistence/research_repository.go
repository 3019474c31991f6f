package persistence

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	appresearch "github.com/factoquest/factoquest-go/internal/application/research"
	"github.com/factoquest/factoquest-go/internal/domain/research"
)

// labCounterName keys the laboratory ID sequence in the counters table
const labCounterName = "laboratory_next_id"

// ResearchRepositoryGORM implements research persistence using GORM
type ResearchRepositoryGORM struct {
	db *gorm.DB
}

// NewResearchRepository creates a new GORM-based research repository
func NewResearchRepository(db *gorm.DB) *ResearchRepositoryGORM {
	return &ResearchRepositoryGORM{db: db}
}

// Save replaces the stored research slice: laboratories, per-node dynamic
// flags, active progress records and the laboratory ID counter.
func (r *ResearchRepositoryGORM) Save(
	labs []research.Laboratory,
	researches []research.View,
	active []research.Progress,
	nextLabID int,
) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&LaboratoryModel{}, &ResearchModel{}, &ActiveResearchModel{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear research tables: %w", err)
			}
		}
		for _, lab := range labs {
			model := &LaboratoryModel{
				ID:           lab.ID,
				Type:         string(lab.Type),
				PurchaseTime: lab.PurchaseTime.UnixMilli(),
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save laboratory %s: %w", lab.ID, err)
			}
		}
		for _, view := range researches {
			model := &ResearchModel{
				ID:          view.ID,
				IsUnlocked:  view.IsUnlocked,
				IsCompleted: view.IsCompleted,
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save research %s: %w", view.ID, err)
			}
		}
		for _, p := range active {
			model := &ActiveResearchModel{
				ResearchID:       p.ResearchID,
				LaboratoryID:     p.LaboratoryID,
				StartTime:        p.StartTime.UnixMilli(),
				EstimatedEndTime: p.EstimatedEndTime.UnixMilli(),
				Progress:         p.Fraction,
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save active research %s: %w", p.ResearchID, err)
			}
		}
		return saveCounter(tx, labCounterName, nextLabID)
	})
}

// Load reads the stored research slice into the shape the engine restores
// from. Laboratories are rebuilt from their type info; a row with an unknown
// laboratory type is skipped with a log line.
func (r *ResearchRepositoryGORM) Load() (appresearch.RestoredState, error) {
	state := appresearch.RestoredState{
		ResearchStates: make(map[string]appresearch.PersistedResearch),
	}

	var labModels []LaboratoryModel
	if err := r.db.Order("id").Find(&labModels).Error; err != nil {
		return state, fmt.Errorf("failed to load laboratories: %w", err)
	}
	for _, m := range labModels {
		lab, ok := restoreLaboratory(m)
		if !ok {
			log.Printf("persistence: skipping laboratory %s with unknown type %q", m.ID, m.Type)
			continue
		}
		state.Laboratories = append(state.Laboratories, lab)
	}

	var researchModels []ResearchModel
	if err := r.db.Find(&researchModels).Error; err != nil {
		return state, fmt.Errorf("failed to load researches: %w", err)
	}
	for _, m := range researchModels {
		state.ResearchStates[m.ID] = appresearch.PersistedResearch{
			Unlocked:  m.IsUnlocked,
			Completed: m.IsCompleted,
		}
		if m.IsCompleted {
			state.Completed = append(state.Completed, m.ID)
		}
	}

	var activeModels []ActiveResearchModel
	if err := r.db.Find(&activeModels).Error; err != nil {
		return state, fmt.Errorf("failed to load active researches: %w", err)
	}
	for _, m := range activeModels {
		start := time.UnixMilli(m.StartTime)
		state.Active = append(state.Active, &research.Progress{
			ResearchID:       m.ResearchID,
			LaboratoryID:     m.LaboratoryID,
			StartTime:        start,
			EstimatedEndTime: time.UnixMilli(m.EstimatedEndTime),
			Fraction:         m.Progress,
		})
		ps := state.ResearchStates[m.ResearchID]
		ps.InProgress = true
		ps.StartTime = &start
		ps.LaboratoryID = m.LaboratoryID
		state.ResearchStates[m.ResearchID] = ps
	}

	nextLabID, err := loadCounter(r.db, labCounterName)
	if err != nil {
		return state, err
	}
	state.NextLabID = nextLabID
	return state, nil
}

// restoreLaboratory rebuilds a laboratory entity from its stored row plus
// the static type info
func restoreLaboratory(m LaboratoryModel) (*research.Laboratory, bool) {
	labType := research.LabType(m.Type)
	info, ok := research.LabTypeInfoFor(labType)
	if !ok {
		return nil, false
	}
	name := info.Name
	if n, err := strconv.Atoi(strings.TrimPrefix(m.ID, "lab_")); err == nil {
		name = fmt.Sprintf("%s #%d", info.Name, n)
	}
	return &research.Laboratory{
		ID:                      m.ID,
		Name:                    name,
		Type:                    labType,
		Cost:                    info.Cost,
		ResearchSpeed:           info.ResearchSpeed,
		MaxSimultaneousResearch: info.MaxSimultaneous,
		Specialization:          info.Specialization,
		PurchaseTime:            time.UnixMilli(m.PurchaseTime),
	}, true
}
