package config

import "time"

// DaemonConfig holds daemon service configuration
type DaemonConfig struct {
	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Periodic task intervals
	ProductionInterval time.Duration `mapstructure:"production_interval" validate:"required"`
	ResearchInterval   time.Duration `mapstructure:"research_interval" validate:"required"`
	MarketInterval     time.Duration `mapstructure:"market_interval" validate:"required"`
	OrderSweepInterval time.Duration `mapstructure:"order_sweep_interval" validate:"required"`
	AutosaveInterval   time.Duration `mapstructure:"autosave_interval" validate:"required"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
