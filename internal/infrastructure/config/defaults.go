package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "factoquest"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "factoquest"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "factoquest.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Daemon defaults
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/factoquest-daemon.pid"
	}
	if cfg.Daemon.ProductionInterval == 0 {
		cfg.Daemon.ProductionInterval = 1 * time.Second
	}
	if cfg.Daemon.ResearchInterval == 0 {
		cfg.Daemon.ResearchInterval = 1 * time.Second
	}
	if cfg.Daemon.MarketInterval == 0 {
		cfg.Daemon.MarketInterval = 30 * time.Second
	}
	if cfg.Daemon.OrderSweepInterval == 0 {
		cfg.Daemon.OrderSweepInterval = 5 * time.Second
	}
	if cfg.Daemon.AutosaveInterval == 0 {
		cfg.Daemon.AutosaveInterval = 10 * time.Second
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 30 * time.Second
	}

	// Game defaults
	if cfg.Game.StartingMoney == 0 {
		cfg.Game.StartingMoney = 1000
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}
