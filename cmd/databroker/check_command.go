package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/roster"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var flags identityFlags
	var save bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Review one person without running the whole roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			person := flags.identity()
			if person.GivenName == "" || person.FamilyName == "" {
				return fmt.Errorf("check requires --given and --family")
			}
			return ctx.withStore(func(cfg *config.Config, store *roster.Store, logger *slog.Logger) error {
				runner, err := newRunner(cmd, cfg, store, logger)
				if err != nil {
					return err
				}
				summary, err := runner.Check(cmd.Context(), person, save)
				if summary != nil {
					printSummary(cmd.OutOrStdout(), summary)
					if !save {
						for _, person := range summary.People {
							for _, stub := range person.RelativesAdded {
								fmt.Fprintf(cmd.OutOrStdout(), "Relative not saved: %s\n", stub.FullName())
							}
						}
					}
				}
				return err
			})
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "Add the person (and accepted relatives) to the roster")
	return cmd
}
