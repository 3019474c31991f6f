package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/factoquest/factoquest-go/internal/application/bootstrap"
	"github.com/factoquest/factoquest-go/internal/domain/research"
)

// NewResearchCommand creates the research command with subcommands
func NewResearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research",
		Short: "Manage laboratories and the research tree",
		Long: `Research permanently improves machines. Nodes unlock as their
prerequisites complete; starting one occupies a laboratory slot and consumes
the listed resources.

Examples:
  factoquest research list
  factoquest research labs
  factoquest research buy-lab --type basic
  factoquest research start --research mining_speed_1 --lab lab_1`,
	}

	cmd.AddCommand(newResearchListCommand())
	cmd.AddCommand(newResearchLabsCommand())
	cmd.AddCommand(newResearchBuyLabCommand())
	cmd.AddCommand(newResearchStartCommand())

	return cmd
}

func newResearchListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List research nodes and their state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(app *bootstrap.App) error {
				w := newTabWriter()
				fmt.Fprintln(w, "ID\tCATEGORY\tCOST\tDURATION\tSTATE")
				for _, r := range app.Research.Researches() {
					state := "locked"
					switch {
					case r.IsCompleted:
						state = "completed"
					case r.IsInProgress:
						state = "in progress"
					case r.IsUnlocked:
						state = "available"
					}
					var reqs []string
					for _, req := range r.Requirements {
						reqs = append(reqs, fmt.Sprintf("%dx %s", req.Quantity, req.ResourceID))
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%.0fs\t%s\n",
						r.ID, r.Category, strings.Join(reqs, ", "), r.Duration, state)
				}
				return w.Flush()
			})
		},
	}
}

func newResearchLabsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "labs",
		Short: "List owned laboratories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(app *bootstrap.App) error {
				labs := app.Research.Laboratories()
				if len(labs) == 0 {
					fmt.Println("No laboratories yet. Buy one with: factoquest research buy-lab --type basic")
					return nil
				}

				w := newTabWriter()
				fmt.Fprintln(w, "ID\tNAME\tSPEED\tSLOTS\tSPECIALIZATION")
				for _, lab := range labs {
					fmt.Fprintf(w, "%s\t%s\t%.1fx\t%d\t%s\n",
						lab.ID, lab.Name, lab.ResearchSpeed, lab.MaxSimultaneousResearch, lab.Specialization)
				}
				return w.Flush()
			})
		},
	}
}

func newResearchBuyLabCommand() *cobra.Command {
	var labType string

	cmd := &cobra.Command{
		Use:   "buy-lab",
		Short: "Buy a laboratory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(app *bootstrap.App) error {
				return printResult(app.Session.BuyLaboratory(research.LabType(labType)))
			})
		},
	}
	cmd.Flags().StringVar(&labType, "type", "",
		"Laboratory type: basic, advanced, institute, mining, metallurgy or mechanical")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newResearchStartCommand() *cobra.Command {
	var researchID, labID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a research in a laboratory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(app *bootstrap.App) error {
				return printResult(app.Session.StartResearch(researchID, labID))
			})
		},
	}
	cmd.Flags().StringVar(&researchID, "research", "", "Research ID")
	cmd.Flags().StringVar(&labID, "lab", "", "Laboratory ID")
	_ = cmd.MarkFlagRequired("research")
	_ = cmd.MarkFlagRequired("lab")
	return cmd
}
