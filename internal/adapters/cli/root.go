package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "factoquest",
		Short: "FactoQuest CLI - Manage your factory",
		Long: `FactoQuest CLI operates on the shared save database. The daemon keeps
production, research and the market ticking; this tool inspects and changes
the factory between ticks.

Examples:
  factoquest status
  factoquest machines buy --type furnace
  factoquest machines recipe --machine furnace_1 --recipe smelt_iron
  factoquest market sell --resource iron_plate --quantity 20
  factoquest orders fulfill --order order_3
  factoquest research start --research mining_speed_1 --lab lab_1`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search standard paths)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewInventoryCommand())
	rootCmd.AddCommand(NewMachinesCommand())
	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewOrdersCommand())
	rootCmd.AddCommand(NewResearchCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
