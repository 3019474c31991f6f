package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
	"github.com/factoquest/factoquest-go/internal/application/session"
	"github.com/factoquest/factoquest-go/internal/infrastructure/config"
	"github.com/factoquest/factoquest-go/internal/infrastructure/pidfile"
)

// withApp loads the game, runs fn and, when save is set, persists the
// result. Commands that mutate state pass save=true; queries pass false.
func withApp(save bool, fn func(app *bootstrap.App) error) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The daemon owns the save while it runs; warn that a concurrent edit
	// may be overwritten by its next autosave.
	if save {
		if pid, running := pidfile.New(cfg.Daemon.PIDFile).RunningPID(); running {
			fmt.Fprintf(os.Stderr, "warning: daemon is running (PID %d); its next autosave may overwrite this change\n", pid)
		}
	}

	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := fn(app); err != nil {
		return err
	}
	if save {
		return app.SaveAll()
	}
	return nil
}

// printResult renders a session result and returns an error for failures so
// the process exits non-zero
func printResult(res session.Result) error {
	if !res.OK {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return nil
}

// newTabWriter returns the common table writer used by list commands
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// formatDuration renders a duration in compact h/m/s form
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return d.String()
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	return fmt.Sprintf("%dm%ds", m, s)
}
