package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	appmarket "github.com/factoquest/factoquest-go/internal/application/market"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/ledger"
	"github.com/factoquest/factoquest-go/internal/domain/market"
)

// orderCounterName keys the special-order ID sequence in the counters table
const orderCounterName = "order_next_id"

// MarketRepositoryGORM implements market persistence using GORM
type MarketRepositoryGORM struct {
	db *gorm.DB
}

// NewMarketRepository creates a new GORM-based market repository
func NewMarketRepository(db *gorm.DB) *MarketRepositoryGORM {
	return &MarketRepositoryGORM{db: db}
}

// Save replaces the stored market slice: prices, the order working set, the
// transaction log and the order ID counter.
func (r *MarketRepositoryGORM) Save(
	prices []*market.Price,
	orders []*market.Order,
	transactions []*ledger.Transaction,
	nextOrderID int,
) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&MarketPriceModel{}, &SpecialOrderModel{}, &TransactionModel{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear market tables: %w", err)
			}
		}
		for _, p := range prices {
			model := &MarketPriceModel{
				ResourceID:   p.ResourceID(),
				BasePrice:    p.BasePrice(),
				CurrentPrice: p.CurrentPrice(),
				Demand:       p.Demand(),
				LastSold:     p.LastSold().UnixMilli(),
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save price %s: %w", p.ResourceID(), err)
			}
		}
		for _, o := range orders {
			requirementsJSON, err := json.Marshal(o.Requirements())
			if err != nil {
				return fmt.Errorf("failed to serialize requirements for order %s: %w", o.ID(), err)
			}
			model := &SpecialOrderModel{
				ID:           o.ID(),
				ClientName:   o.ClientName(),
				ClientType:   string(o.ClientType()),
				Requirements: string(requirementsJSON),
				Reward:       o.Reward(),
				Bonus:        o.Bonus(),
				Deadline:     o.Deadline().UnixMilli(),
				Description:  o.Description(),
				IsCompleted:  o.IsCompleted(),
				IsExpired:    o.IsExpired(),
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save order %s: %w", o.ID(), err)
			}
		}
		for _, t := range transactions {
			model := &TransactionModel{
				ID:         t.ID().Value(),
				ResourceID: t.ResourceID(),
				Quantity:   t.Quantity(),
				UnitPrice:  t.UnitPrice(),
				TotalValue: t.TotalValue(),
				Timestamp:  t.Timestamp().UnixMilli(),
				Type:       string(t.Type()),
				OrderID:    t.OrderID(),
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save transaction %s: %w", t.ID().Value(), err)
			}
		}
		return saveCounter(tx, orderCounterName, nextOrderID)
	})
}

// Load reads the stored market slice. A malformed order or transaction row
// is skipped with a log line rather than failing the load.
func (r *MarketRepositoryGORM) Load() (appmarket.RestoredState, error) {
	var state appmarket.RestoredState

	var priceModels []MarketPriceModel
	if err := r.db.Find(&priceModels).Error; err != nil {
		return state, fmt.Errorf("failed to load prices: %w", err)
	}
	for _, m := range priceModels {
		state.Prices = append(state.Prices, market.RestorePrice(
			m.ResourceID, m.BasePrice, m.CurrentPrice, m.Demand, time.UnixMilli(m.LastSold),
		))
	}

	var orderModels []SpecialOrderModel
	if err := r.db.Order("id").Find(&orderModels).Error; err != nil {
		return state, fmt.Errorf("failed to load orders: %w", err)
	}
	for _, m := range orderModels {
		var requirements []catalog.Stack
		if err := json.Unmarshal([]byte(m.Requirements), &requirements); err != nil {
			log.Printf("persistence: skipping order %s with malformed requirements: %v", m.ID, err)
			continue
		}
		state.Orders = append(state.Orders, market.RestoreOrder(
			m.ID, m.ClientName, market.ClientType(m.ClientType), requirements,
			m.Reward, m.Bonus, time.UnixMilli(m.Deadline), m.Description,
			m.IsCompleted, m.IsExpired,
		))
	}

	var txModels []TransactionModel
	if err := r.db.Order("timestamp").Find(&txModels).Error; err != nil {
		return state, fmt.Errorf("failed to load transactions: %w", err)
	}
	for _, m := range txModels {
		id, err := ledger.ParseTransactionID(m.ID)
		if err != nil {
			log.Printf("persistence: skipping transaction with malformed id %q: %v", m.ID, err)
			continue
		}
		state.Transactions = append(state.Transactions, ledger.Restore(
			id, m.ResourceID, m.Quantity, m.UnitPrice, m.TotalValue,
			time.UnixMilli(m.Timestamp), ledger.TransactionType(m.Type), m.OrderID,
		))
	}

	nextOrderID, err := loadCounter(r.db, orderCounterName)
	if err != nil {
		return state, err
	}
	state.NextOrderID = nextOrderID
	return state, nil
}
