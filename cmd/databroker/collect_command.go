package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/collector"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/prompt"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/roster"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/workflow"
)

func newCollectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Review every roster person against the configured sites",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *roster.Store, logger *slog.Logger) error {
				runner, err := newRunner(cmd, cfg, store, logger)
				if err != nil {
					return err
				}
				summary, err := runner.Run(cmd.Context())
				if summary != nil {
					printSummary(cmd.OutOrStdout(), summary)
				}
				return err
			})
		},
	}
}

func newRunner(cmd *cobra.Command, cfg *config.Config, store *roster.Store, logger *slog.Logger) (*workflow.Runner, error) {
	providers := prompt.FromConfig(cfg, os.Stdin, cmd.OutOrStdout(), logger)
	return workflow.NewRunner(cfg, store, collector.FromConfig(cfg, logger), providers, logger)
}

func printSummary(out io.Writer, summary *workflow.Summary) {
	rows := summaryRows(summary)
	if len(rows) == 0 {
		fmt.Fprintln(out, "Roster is empty; add people with `databroker roster add`")
		return
	}
	fmt.Fprint(out, renderTableFor(out,
		[]string{"Person", "Site", "Found", "Ignored", "Accepted", "Rejected", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	))
	fmt.Fprintln(out, summaryFooter(summary))
}
