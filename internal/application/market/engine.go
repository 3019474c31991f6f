// Package market hosts the economy engine: price discovery over drifting
// demand and the special-order lifecycle. The engine is advisory over
// inventory: it computes values and validates requirements, but inventory
// debits and money credits happen one level up, in the session.
package market

import (
	"fmt"
	"log"
	"time"

	"github.com/factoquest/factoquest-go/internal/application/events"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
	"github.com/factoquest/factoquest-go/internal/domain/ledger"
	"github.com/factoquest/factoquest-go/internal/domain/market"
	"github.com/factoquest/factoquest-go/internal/domain/shared"
)

const (
	// initialOrderCount is how many special orders are generated at startup
	initialOrderCount = 3

	// replacementDelay is how long after a fulfillment the replacement
	// order becomes due
	replacementDelay = 10 * time.Second

	// orderDeadlineWindow is how long a client waits for delivery
	orderDeadlineWindow = 2 * time.Hour
)

// SellResult is the discriminated outcome of a market sale
type SellResult struct {
	OK         bool
	Message    string
	UnitPrice  int
	TotalValue int
}

// FulfillResult is the discriminated outcome of an order fulfillment.
// On success Requirements carries the stacks the caller must debit.
type FulfillResult struct {
	OK           bool
	Message      string
	Reward       int
	OnTime       bool
	Requirements []catalog.Stack
}

// Engine owns market prices, special orders and the transaction log
type Engine struct {
	clock        shared.Clock
	random       shared.Random
	basePrices   map[string]int
	priceOrder   []string
	prices       map[string]*market.Price
	orders       []*market.Order
	transactions []*ledger.Transaction
	nextOrderID  int
	// pendingOrders holds the due times of replacement orders scheduled
	// after fulfillments; ReplenishDue generates them once due.
	pendingOrders []time.Time

	pricesPub events.Publisher[[]market.PriceView]
	ordersPub events.Publisher[[]market.OrderView]
}

// NewEngine creates a market over the given base prices, with demand drawn
// uniformly from [0.5, 1.0) per resource.
func NewEngine(clock shared.Clock, random shared.Random, basePrices map[string]int, resourceOrder []string) *Engine {
	e := &Engine{
		clock:       clock,
		random:      random,
		basePrices:  basePrices,
		prices:      make(map[string]*market.Price, len(basePrices)),
		nextOrderID: 1,
	}
	now := clock.Now()
	for _, id := range resourceOrder {
		base, ok := basePrices[id]
		if !ok {
			continue
		}
		demand := 0.5 + random.Float64()*0.5
		p, err := market.NewPrice(id, base, demand, now)
		if err != nil {
			log.Printf("market: skipping %s: %v", id, err)
			continue
		}
		e.prices[id] = p
		e.priceOrder = append(e.priceOrder, id)
	}
	return e
}

// RestoredState carries the persisted market slice
type RestoredState struct {
	Prices       []*market.Price
	Orders       []*market.Order
	Transactions []*ledger.Transaction
	NextOrderID  int
}

// RestoreEngine rebuilds a market engine from persisted state. Prices absent
// from the snapshot keep their freshly initialized values.
func RestoreEngine(clock shared.Clock, random shared.Random, basePrices map[string]int, resourceOrder []string, state RestoredState) *Engine {
	e := NewEngine(clock, random, basePrices, resourceOrder)
	for _, p := range state.Prices {
		if _, ok := e.prices[p.ResourceID()]; ok {
			e.prices[p.ResourceID()] = p
		}
	}
	e.orders = append(e.orders, state.Orders...)
	e.transactions = append(e.transactions, state.Transactions...)
	if state.NextOrderID > 0 {
		e.nextOrderID = state.NextOrderID
	}
	// Stale expirations are applied on load so the working set is clean
	// before the first sweep.
	e.SweepExpired()
	return e
}

// SubscribePrices registers a consumer for price snapshots
func (e *Engine) SubscribePrices(fn events.Subscriber[[]market.PriceView]) {
	e.pricesPub.Subscribe(fn)
}

// SubscribeOrders registers a consumer for order snapshots
func (e *Engine) SubscribeOrders(fn events.Subscriber[[]market.OrderView]) {
	e.ordersPub.Subscribe(fn)
}

// GenerateInitialOrders seeds the order book at startup
func (e *Engine) GenerateInitialOrders() {
	for i := 0; i < initialOrderCount; i++ {
		e.generateOrder()
	}
	e.ordersPub.Publish(e.Orders())
}

// UpdatePrices applies one demand drift step to every price. Runs on the
// market fluctuation period (nominally 30s), but correctness does not
// depend on the cadence.
func (e *Engine) UpdatePrices() {
	now := e.clock.Now()
	for _, id := range e.priceOrder {
		// Uniform drift in [-0.05, +0.05]
		delta := (e.random.Float64() - 0.5) * 0.1
		e.prices[id].Fluctuate(delta, now)
	}
	e.pricesPub.Publish(e.Prices())
}

// CurrentPrice returns the quoted price for a resource, zero if not traded
func (e *Engine) CurrentPrice(resourceID string) int {
	if p, ok := e.prices[resourceID]; ok {
		return p.CurrentPrice()
	}
	return 0
}

// Sell quotes and records a market sale: appends a transaction, decays
// demand and resets the unsold timer. The inventory debit is the caller's
// responsibility and must precede the money credit.
func (e *Engine) Sell(resourceID string, quantity int) SellResult {
	if quantity <= 0 {
		return SellResult{Message: "quantity must be positive"}
	}
	p, ok := e.prices[resourceID]
	if !ok {
		return SellResult{Message: market.ErrResourceNotTraded.Error()}
	}

	now := e.clock.Now()
	unitPrice := p.CurrentPrice()
	totalValue := unitPrice * quantity

	tx, err := ledger.NewTransaction(resourceID, quantity, unitPrice, totalValue, now, ledger.TransactionTypeMarketSale, "")
	if err != nil {
		return SellResult{Message: err.Error()}
	}
	e.transactions = append(e.transactions, tx)
	p.RecordSale(quantity, now)
	e.pricesPub.Publish(e.Prices())

	return SellResult{OK: true, Message: "sold", UnitPrice: unitPrice, TotalValue: totalValue}
}

// FulfillOrder validates and completes a special order. Requirement
// availability is checked against the caller-supplied amounts and the first
// insufficient resource is named; the caller debits the requirements and
// credits the payout after success. A replacement order is scheduled.
func (e *Engine) FulfillOrder(orderID string, available map[string]int) FulfillResult {
	order := e.findOrder(orderID)
	if order == nil {
		return FulfillResult{Message: market.ErrOrderNotFound.Error()}
	}
	if !order.IsOpen() {
		return FulfillResult{Message: market.ErrOrderClosed.Error()}
	}
	// Cumulative check so requirements repeating a resource (possible in a
	// restored order) are validated against their combined quantity.
	needed := make(map[string]int, len(order.Requirements()))
	for _, req := range order.Requirements() {
		needed[req.ResourceID] += req.Quantity
		if available[req.ResourceID] < needed[req.ResourceID] {
			return FulfillResult{Message: fmt.Sprintf(
				"not enough %s: %d/%d", req.ResourceID, available[req.ResourceID], needed[req.ResourceID])}
		}
	}

	now := e.clock.Now()
	totalReward, onTime, err := order.Fulfill(now)
	if err != nil {
		return FulfillResult{Message: err.Error()}
	}

	tx, err := ledger.NewTransaction("special_order", 1, totalReward, totalReward, now, ledger.TransactionTypeOrderFulfillment, orderID)
	if err != nil {
		log.Printf("market: recording order transaction: %v", err)
	} else {
		e.transactions = append(e.transactions, tx)
	}

	// Steady replenishment: one new order shortly after each fulfillment.
	e.pendingOrders = append(e.pendingOrders, now.Add(replacementDelay))
	e.ordersPub.Publish(e.Orders())

	message := "order delivered late, bonus forfeited"
	if onTime {
		message = "order delivered on time, bonus included"
	}
	return FulfillResult{
		OK:           true,
		Message:      message,
		Reward:       totalReward,
		OnTime:       onTime,
		Requirements: order.Requirements(),
	}
}

// ReplenishDue generates any replacement orders whose due time has passed.
// Runs on a short period so the nominal 10s delay is honored.
func (e *Engine) ReplenishDue() {
	now := e.clock.Now()
	remaining := e.pendingOrders[:0]
	generated := false
	for _, due := range e.pendingOrders {
		if !due.After(now) {
			e.generateOrder()
			generated = true
		} else {
			remaining = append(remaining, due)
		}
	}
	e.pendingOrders = remaining
	if generated {
		e.ordersPub.Publish(e.Orders())
	}
}

// SweepExpired marks overdue incomplete orders expired and purges orders
// expired past the retention window.
func (e *Engine) SweepExpired() {
	now := e.clock.Now()
	changed := false
	remaining := e.orders[:0]
	for _, o := range e.orders {
		if o.MarkExpiredIfOverdue(now) {
			changed = true
		}
		if o.ShouldPurge(now) {
			changed = true
			continue
		}
		remaining = append(remaining, o)
	}
	e.orders = remaining
	if changed {
		e.ordersPub.Publish(e.Orders())
	}
}

// Prices returns snapshots of all market prices in catalog order
func (e *Engine) Prices() []market.PriceView {
	out := make([]market.PriceView, 0, len(e.priceOrder))
	for _, id := range e.priceOrder {
		out = append(out, e.prices[id].View())
	}
	return out
}

// Orders returns snapshots of the order working set
func (e *Engine) Orders() []market.OrderView {
	out := make([]market.OrderView, 0, len(e.orders))
	for _, o := range e.orders {
		out = append(out, o.View())
	}
	return out
}

// OpenOrders returns snapshots of the orders still fulfillable
func (e *Engine) OpenOrders() []market.OrderView {
	var out []market.OrderView
	for _, o := range e.orders {
		if o.IsOpen() {
			out = append(out, o.View())
		}
	}
	return out
}

// Transactions returns snapshots of the append-only transaction log
func (e *Engine) Transactions() []ledger.View {
	out := make([]ledger.View, 0, len(e.transactions))
	for _, t := range e.transactions {
		out = append(out, t.View())
	}
	return out
}

// TransactionRecords returns the transaction entities for persistence
func (e *Engine) TransactionRecords() []*ledger.Transaction {
	return append([]*ledger.Transaction(nil), e.transactions...)
}

// PriceRecords returns the price entities for persistence
func (e *Engine) PriceRecords() []*market.Price {
	out := make([]*market.Price, 0, len(e.priceOrder))
	for _, id := range e.priceOrder {
		out = append(out, e.prices[id])
	}
	return out
}

// OrderRecords returns the order entities for persistence
func (e *Engine) OrderRecords() []*market.Order {
	return append([]*market.Order(nil), e.orders...)
}

// NextOrderID returns the order id counter for persistence
func (e *Engine) NextOrderID() int {
	return e.nextOrderID
}

// generateOrder creates one special order: a random client archetype, one to
// three distinct required resources with quantities in [10, 60), a reward
// weighted by the archetype multiplier and a 20% on-time bonus.
func (e *Engine) generateOrder() {
	clientType, clientName := market.PickClient(e.random)

	resourceIDs := e.priceOrder
	if len(resourceIDs) == 0 {
		return
	}
	wanted := 1 + e.random.Intn(3)
	var requirements []catalog.Stack
	for i := 0; i < wanted; i++ {
		resourceID := resourceIDs[e.random.Intn(len(resourceIDs))]
		quantity := 10 + e.random.Intn(50)
		duplicate := false
		for _, req := range requirements {
			if req.ResourceID == resourceID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			requirements = append(requirements, catalog.Stack{ResourceID: resourceID, Quantity: quantity})
		}
	}

	baseReward := 0
	for _, req := range requirements {
		baseReward += e.basePrices[req.ResourceID] * req.Quantity
	}
	reward := int(float64(baseReward)*clientType.RewardMultiplier() + 0.5)
	bonus := int(float64(reward)*0.2 + 0.5)

	now := e.clock.Now()
	order := market.NewOrder(
		fmt.Sprintf("order_%d", e.nextOrderID),
		clientName,
		clientType,
		requirements,
		reward,
		bonus,
		now.Add(orderDeadlineWindow),
		market.PickDescription(e.random, clientType),
	)
	e.nextOrderID++
	e.orders = append(e.orders, order)
}

func (e *Engine) findOrder(orderID string) *market.Order {
	for _, o := range e.orders {
		if o.ID() == orderID {
			return o
		}
	}
	return nil
}
