package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
	"github.com/factoquest/factoquest-go/internal/application/game"
	"github.com/factoquest/factoquest-go/internal/infrastructure/config"
	"github.com/factoquest/factoquest-go/internal/infrastructure/daemon"
	"github.com/factoquest/factoquest-go/internal/infrastructure/pidfile"
)

func main() {
	// Parse command-line flags
	forceFlag := flag.Bool("force", false, "Kill any existing daemon and start a new one")
	configFlag := flag.String("config", "", "Path to config file (default: search standard paths)")
	flag.Parse()

	fmt.Println("FactoQuest Daemon v0.1.0")
	fmt.Println("========================")

	// Load configuration
	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configFlag)

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)

	if err := pf.Acquire(); err != nil {
		if *forceFlag {
			fmt.Println("Force mode enabled - attempting to kill existing daemon...")
			if killErr := pf.KillExisting(); killErr != nil {
				log.Fatalf("Failed to kill existing daemon: %v", killErr)
			}
			if err := pf.Acquire(); err != nil {
				log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
			}
		} else {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)

	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	fmt.Println("Game loaded")

	// Advance production for the time the daemon was down
	if offline := app.State.OfflineTime(); offline > 0 {
		fmt.Printf("Catching up %s of offline production...\n", offline.Round(0))
		app.CatchUpOffline()
	}

	// Event-driven saves are rate limited; the autosave task below is the
	// floor, this is the ceiling.
	saver := bootstrap.NewSaver(app, cfg.Daemon.AutosaveInterval)
	app.State.Subscribe(func(game.StateView) { saver.MaybeSave() })

	executor := daemon.NewExecutor([]daemon.Task{
		{Name: "production", Period: cfg.Daemon.ProductionInterval, Run: app.Production.Tick},
		{Name: "research", Period: cfg.Daemon.ResearchInterval, Run: func() { app.Research.Advance() }},
		{Name: "market", Period: cfg.Daemon.MarketInterval, Run: app.Market.UpdatePrices},
		{Name: "orders", Period: cfg.Daemon.OrderSweepInterval, Run: func() {
			app.Market.SweepExpired()
			app.Market.ReplenishDue()
		}},
		{Name: "autosave", Period: cfg.Daemon.AutosaveInterval, Run: func() {
			if err := app.SaveAll(); err != nil {
				log.Printf("autosave failed: %v", err)
			}
		}},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("\nDaemon is running")
	fmt.Println("Press Ctrl+C to stop")
	executor.Run(ctx)

	fmt.Println("\nSaving before shutdown...")
	if err := app.SaveAll(); err != nil {
		return fmt.Errorf("final save failed: %w", err)
	}
	fmt.Println("Daemon stopped")
	return nil
}
