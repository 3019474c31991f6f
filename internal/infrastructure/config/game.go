package config

import "time"

// GameConfig holds gameplay tuning configuration
type GameConfig struct {
	// Money a fresh save starts with
	StartingMoney int `mapstructure:"starting_money" validate:"min=0"`

	// Random seed; zero means time-seeded
	Seed int64 `mapstructure:"seed"`

	// Cap on offline catch-up; zero means uncapped
	MaxOfflineTime time.Duration `mapstructure:"max_offline_time"`
}
