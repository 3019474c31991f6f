package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show an overview of the factory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(app *bootstrap.App) error {
				state := app.State.View()
				fmt.Printf("Money:          %d\n", state.Money)
				fmt.Printf("Play time:      %s\n", formatDuration(state.TotalPlayTime))
				fmt.Printf("Machines:       %d\n", len(app.Machines.Machines()))
				fmt.Printf("Laboratories:   %d\n", len(app.Research.Laboratories()))
				fmt.Printf("Open orders:    %d\n", len(app.Market.OpenOrders()))

				active := app.Research.ActiveProgress()
				if len(active) == 0 {
					fmt.Println("Research:       idle")
					return nil
				}
				for _, p := range active {
					fmt.Printf("Research:       %s in %s (%.0f%%)\n",
						p.ResearchID, p.LaboratoryID, p.Fraction*100)
				}
				return nil
			})
		},
	}
}
