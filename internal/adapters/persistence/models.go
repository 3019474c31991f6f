package persistence

// Database models for the save file. Timestamps are stored as Unix epoch
// milliseconds so saves stay portable across dialects.

// GameStateModel represents the game_state table. A save holds exactly one
// row, keyed by the fixed ID 1.
type GameStateModel struct {
	ID              int   `gorm:"column:id;primaryKey"`
	Money           int   `gorm:"column:money;not null"`
	LastSaveTime    int64 `gorm:"column:last_save_time;not null"`
	TotalPlayTimeMS int64 `gorm:"column:total_play_time_ms;not null;default:0"`
}

func (GameStateModel) TableName() string {
	return "game_state"
}

// InventoryItemModel represents the inventory_items table
type InventoryItemModel struct {
	ResourceID string `gorm:"column:resource_id;primaryKey"`
	Quantity   int    `gorm:"column:quantity;not null"`
}

func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// MachineModel represents the machines table
type MachineModel struct {
	ID                 string  `gorm:"column:id;primaryKey"`
	Type               string  `gorm:"column:type;not null"`
	Name               string  `gorm:"column:name;not null"`
	Cost               int     `gorm:"column:cost;not null"`
	SelectedRecipeID   string  `gorm:"column:selected_recipe_id"`
	LastProductionTime int64   `gorm:"column:last_production_time;not null"`
	PausedProgress     float64 `gorm:"column:paused_progress;not null;default:0"`
	IsActive           bool    `gorm:"column:is_active;not null;default:0"`
}

func (MachineModel) TableName() string {
	return "machines"
}

// CounterModel represents the counters table holding the per-type machine
// and laboratory ID sequences
type CounterModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int    `gorm:"column:value;not null"`
}

func (CounterModel) TableName() string {
	return "counters"
}

// LaboratoryModel represents the laboratories table
type LaboratoryModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Type         string `gorm:"column:type;not null"`
	PurchaseTime int64  `gorm:"column:purchase_time;not null"`
}

func (LaboratoryModel) TableName() string {
	return "laboratories"
}

// ResearchModel represents the researches table. Only the dynamic flags are
// stored; definitions (costs, effects, prerequisites) live in code.
type ResearchModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	IsUnlocked  bool   `gorm:"column:is_unlocked;not null;default:0"`
	IsCompleted bool   `gorm:"column:is_completed;not null;default:0"`
}

func (ResearchModel) TableName() string {
	return "researches"
}

// ActiveResearchModel represents the active_researches table
type ActiveResearchModel struct {
	ResearchID       string  `gorm:"column:research_id;primaryKey"`
	LaboratoryID     string  `gorm:"column:laboratory_id;not null"`
	StartTime        int64   `gorm:"column:start_time;not null"`
	EstimatedEndTime int64   `gorm:"column:estimated_end_time;not null"`
	Progress         float64 `gorm:"column:progress;not null;default:0"`
}

func (ActiveResearchModel) TableName() string {
	return "active_researches"
}

// MarketPriceModel represents the market_prices table
type MarketPriceModel struct {
	ResourceID   string  `gorm:"column:resource_id;primaryKey"`
	BasePrice    int     `gorm:"column:base_price;not null"`
	CurrentPrice int     `gorm:"column:current_price;not null"`
	Demand       float64 `gorm:"column:demand;not null"`
	LastSold     int64   `gorm:"column:last_sold;not null"`
}

func (MarketPriceModel) TableName() string {
	return "market_prices"
}

// SpecialOrderModel represents the special_orders table
type SpecialOrderModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	ClientName   string `gorm:"column:client_name;not null"`
	ClientType   string `gorm:"column:client_type;not null"`
	Requirements string `gorm:"column:requirements;type:text;not null"` // JSON array as text
	Reward       int    `gorm:"column:reward;not null"`
	Bonus        int    `gorm:"column:bonus;not null"`
	Deadline     int64  `gorm:"column:deadline;not null"`
	Description  string `gorm:"column:description;type:text"`
	IsCompleted  bool   `gorm:"column:is_completed;not null;default:0"`
	IsExpired    bool   `gorm:"column:is_expired;not null;default:0"`
}

func (SpecialOrderModel) TableName() string {
	return "special_orders"
}

// TransactionModel represents the transactions table
type TransactionModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	ResourceID string `gorm:"column:resource_id;not null"`
	Quantity   int    `gorm:"column:quantity;not null"`
	UnitPrice  int    `gorm:"column:unit_price;not null"`
	TotalValue int    `gorm:"column:total_value;not null"`
	Timestamp  int64  `gorm:"column:timestamp;not null"`
	Type       string `gorm:"column:type;not null"`
	OrderID    string `gorm:"column:order_id"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}
