package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
)

// NewOrdersCommand creates the orders command with subcommands
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "View and fulfill special orders",
		Long: `Special orders are client requests with a deadline. Delivering before the
deadline earns the reward plus a bonus; late delivery pays the reward only.

Examples:
  factoquest orders list
  factoquest orders fulfill --order order_3`,
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersFulfillCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open special orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(app *bootstrap.App) error {
				orders := app.Market.Orders()
				now := time.Now()
				printed := 0

				w := newTabWriter()
				fmt.Fprintln(w, "ID\tCLIENT\tREQUIREMENTS\tREWARD\tBONUS\tDEADLINE\tSTATE")
				for _, o := range orders {
					state := "open"
					if o.IsCompleted {
						state = "completed"
					} else if o.IsExpired {
						state = "expired"
					}
					if state != "open" && !all {
						continue
					}

					var reqs []string
					for _, req := range o.Requirements {
						reqs = append(reqs, fmt.Sprintf("%dx %s", req.Quantity, req.ResourceID))
					}
					deadline := "passed"
					if remaining := o.Deadline.Sub(now); remaining > 0 {
						deadline = "in " + formatDuration(remaining)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
						o.ID, o.ClientName, strings.Join(reqs, ", "), o.Reward, o.Bonus, deadline, state)
					printed++
				}
				if printed == 0 {
					fmt.Println("No open orders")
					return nil
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include completed and expired orders")
	return cmd
}

func newOrdersFulfillCommand() *cobra.Command {
	var orderID string

	cmd := &cobra.Command{
		Use:   "fulfill",
		Short: "Deliver the resources for an order and collect the payout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(app *bootstrap.App) error {
				return printResult(app.Session.FulfillOrder(orderID))
			})
		},
	}
	cmd.Flags().StringVar(&orderID, "order", "", "Order ID")
	_ = cmd.MarkFlagRequired("order")
	return cmd
}
