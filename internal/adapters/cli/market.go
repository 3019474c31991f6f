package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
)

// NewMarketCommand creates the market command with subcommands
func NewMarketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "View prices and sell resources",
		Long: `The market quotes a live price per resource, driven by demand drift and
how long the resource has gone unsold. Selling decays demand, so dumping a
large stock lowers the price for the next sale.

Examples:
  factoquest market prices
  factoquest market sell --resource iron_plate --quantity 20`,
	}

	cmd.AddCommand(newMarketPricesCommand())
	cmd.AddCommand(newMarketSellCommand())

	return cmd
}

func newMarketPricesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prices",
		Short: "List current market prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(app *bootstrap.App) error {
				w := newTabWriter()
				fmt.Fprintln(w, "RESOURCE\tBASE\tCURRENT\tDEMAND")
				for _, p := range app.Market.Prices() {
					fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\n",
						p.ResourceID, p.BasePrice, p.CurrentPrice, p.Demand)
				}
				return w.Flush()
			})
		},
	}
}

func newMarketSellCommand() *cobra.Command {
	var resourceID string
	var quantity int

	cmd := &cobra.Command{
		Use:   "sell",
		Short: "Sell a resource at the current price",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(app *bootstrap.App) error {
				return printResult(app.Session.SellResource(resourceID, quantity))
			})
		},
	}
	cmd.Flags().StringVar(&resourceID, "resource", "", "Resource ID")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Quantity to sell")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}
