package market

import (
	"math"
	"time"
)

// Demand bounds. Demand is a bounded scalar driving price, orthogonal to
// sales volume except for its own decay-on-sale rule.
const (
	DemandFloor   = 0.1
	DemandCeiling = 1.0
)

// priceFloorFactor bounds how far the unsold-time decay can push a price
// below its demand-adjusted value.
const priceFloorFactor = 0.8

// Price is the mutable market state for one tradable resource
type Price struct {
	resourceID   string
	basePrice    int
	currentPrice int
	demand       float64
	lastSold     time.Time
}

// NewPrice creates the market entry for a resource. The initial current
// price equals the base price; the fluctuation timer adjusts it afterwards.
func NewPrice(resourceID string, basePrice int, demand float64, now time.Time) (*Price, error) {
	if basePrice <= 0 {
		return nil, ErrInvalidPrice
	}
	return &Price{
		resourceID:   resourceID,
		basePrice:    basePrice,
		currentPrice: basePrice,
		demand:       clampDemand(demand),
		lastSold:     now,
	}, nil
}

// RestorePrice rebuilds a market entry from persisted state
func RestorePrice(resourceID string, basePrice, currentPrice int, demand float64, lastSold time.Time) *Price {
	if currentPrice < 0 {
		currentPrice = 0
	}
	return &Price{
		resourceID:   resourceID,
		basePrice:    basePrice,
		currentPrice: currentPrice,
		demand:       clampDemand(demand),
		lastSold:     lastSold,
	}
}

func (p *Price) ResourceID() string   { return p.resourceID }
func (p *Price) BasePrice() int       { return p.basePrice }
func (p *Price) CurrentPrice() int    { return p.currentPrice }
func (p *Price) Demand() float64      { return p.demand }
func (p *Price) LastSold() time.Time  { return p.lastSold }

// Fluctuate applies one demand drift step and reprices. The price decays
// toward 80% of the demand-adjusted value the longer the resource goes
// unsold.
func (p *Price) Fluctuate(demandDelta float64, now time.Time) {
	p.demand = clampDemand(p.demand + demandDelta)
	hoursSinceSold := now.Sub(p.lastSold).Hours()
	timeFactor := math.Max(priceFloorFactor, 1-hoursSinceSold)
	p.currentPrice = int(math.Round(float64(p.basePrice) * p.demand * timeFactor))
}

// RecordSale decays demand by quantity*0.01 (floored) and resets the unsold
// timer. The quoted price is not recomputed until the next fluctuation.
func (p *Price) RecordSale(quantity int, now time.Time) {
	p.lastSold = now
	p.demand = clampDemand(p.demand - float64(quantity)*0.01)
}

// View returns an immutable snapshot of the price entry
func (p *Price) View() PriceView {
	return PriceView{
		ResourceID:   p.resourceID,
		BasePrice:    p.basePrice,
		CurrentPrice: p.currentPrice,
		Demand:       p.demand,
		LastSold:     p.lastSold,
	}
}

// PriceView is an immutable market price snapshot
type PriceView struct {
	ResourceID   string
	BasePrice    int
	CurrentPrice int
	Demand       float64
	LastSold     time.Time
}

func clampDemand(d float64) float64 {
	if d < DemandFloor {
		return DemandFloor
	}
	if d > DemandCeiling {
		return DemandCeiling
	}
	return d
}
