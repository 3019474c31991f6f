package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
)

// NewInventoryCommand creates the inventory command
func NewInventoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "List stored resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(app *bootstrap.App) error {
				snapshot := app.Inventory.Snapshot()
				if len(snapshot) == 0 {
					fmt.Println("Inventory is empty")
					return nil
				}

				w := newTabWriter()
				fmt.Fprintln(w, "RESOURCE\tQUANTITY\tPRICE")
				for _, id := range app.Catalog.ResourceIDs() {
					quantity, ok := snapshot[id]
					if !ok {
						continue
					}
					fmt.Fprintf(w, "%s\t%d\t%d\n", id, quantity, app.Market.CurrentPrice(id))
				}
				return w.Flush()
			})
		},
	}
}
