package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
	"github.com/factoquest/factoquest-go/internal/domain/catalog"
)

// NewMachinesCommand creates the machines command with subcommands
func NewMachinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "machines",
		Short: "Manage production machines",
		Long: `List, buy and configure the machines in your factory.

Examples:
  factoquest machines list
  factoquest machines buy --type mine
  factoquest machines recipe --machine mine_1 --recipe mine_iron
  factoquest machines toggle --machine mine_1
  factoquest machines delete --machine mine_1`,
	}

	cmd.AddCommand(newMachinesListCommand())
	cmd.AddCommand(newMachinesBuyCommand())
	cmd.AddCommand(newMachinesRecipeCommand())
	cmd.AddCommand(newMachinesToggleCommand())
	cmd.AddCommand(newMachinesDeleteCommand())

	return cmd
}

func newMachinesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List machines and their production state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(app *bootstrap.App) error {
				machines := app.Machines.Machines()
				if len(machines) == 0 {
					fmt.Println("No machines yet. Buy one with: factoquest machines buy --type mine")
					return nil
				}

				w := newTabWriter()
				fmt.Fprintln(w, "ID\tTYPE\tRECIPE\tSTATE\tPROGRESS\tCYCLES/MIN")
				for _, m := range machines {
					state := "paused"
					if m.IsActive {
						state = "running"
					}
					if m.SelectedRecipeID == "" {
						state = "no recipe"
					}
					stats, ok := app.Production.Stats(m.ID)
					if !ok {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t-\t-\n", m.ID, m.Type, m.SelectedRecipeID, state)
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%.1f\n",
						m.ID, m.Type, m.SelectedRecipeID, state, stats.Progress*100, stats.CyclesPerMinute)
				}
				return w.Flush()
			})
		},
	}
}

func newMachinesBuyCommand() *cobra.Command {
	var machineType string

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy a machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := catalog.MachineType(machineType)
			if !t.IsValid() {
				return fmt.Errorf("unknown machine type %q (mine, furnace, assembler)", machineType)
			}
			return withApp(true, func(app *bootstrap.App) error {
				return printResult(app.Session.BuyMachine(t))
			})
		},
	}
	cmd.Flags().StringVar(&machineType, "type", "", "Machine type: mine, furnace or assembler")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newMachinesRecipeCommand() *cobra.Command {
	var machineID, recipeID string

	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Assign a recipe to a machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(app *bootstrap.App) error {
				return printResult(app.Session.AssignRecipe(machineID, recipeID))
			})
		},
	}
	cmd.Flags().StringVar(&machineID, "machine", "", "Machine ID")
	cmd.Flags().StringVar(&recipeID, "recipe", "", "Recipe ID")
	_ = cmd.MarkFlagRequired("machine")
	_ = cmd.MarkFlagRequired("recipe")
	return cmd
}

func newMachinesToggleCommand() *cobra.Command {
	var machineID string

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Pause a running machine or resume a paused one",
		Long: `Pause or resume a machine. Pausing snapshots the progress of the
current cycle; resuming continues from that point instead of restarting the
cycle.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(app *bootstrap.App) error {
				progress := app.Production.ProgressSeconds(machineID)
				return printResult(app.Session.ToggleMachine(machineID, progress))
			})
		},
	}
	cmd.Flags().StringVar(&machineID, "machine", "", "Machine ID")
	_ = cmd.MarkFlagRequired("machine")
	return cmd
}

func newMachinesDeleteCommand() *cobra.Command {
	var machineID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a machine (no refund)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(app *bootstrap.App) error {
				return printResult(app.Session.DeleteMachine(machineID))
			})
		},
	}
	cmd.Flags().StringVar(&machineID, "machine", "", "Machine ID")
	_ = cmd.MarkFlagRequired("machine")
	return cmd
}
