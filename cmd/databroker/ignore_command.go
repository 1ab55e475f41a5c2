package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/roster"
)

func newIgnoreCommand(ctx *commandContext) *cobra.Command {
	ignoreCmd := &cobra.Command{
		Use:   "ignore",
		Short: "Inspect remembered rejections",
	}
	ignoreCmd.AddCommand(newIgnoreShowCommand(ctx))
	return ignoreCmd
}

func newIgnoreShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the records and relatives a person has rejected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePersonID(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(_ *config.Config, store *roster.Store, _ *slog.Logger) error {
				person, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if person == nil {
					return fmt.Errorf("person %d not found", id)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (ID %d)\n", person.Identity.FullName(), person.ID)
				rows := buildIgnoreRows(person.Identity.IgnoreList)
				if len(rows) == 0 {
					fmt.Fprintln(out, "Nothing ignored yet")
					return nil
				}
				fmt.Fprint(out, renderTableFor(out,
					[]string{"Kind", "Site", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func buildIgnoreRows(list identity.IgnoreList) [][]string {
	var rows [][]string
	for _, site := range list.Sites() {
		for _, id := range list.SearchResults[site] {
			rows = append(rows, []string{"record", site, id})
		}
	}
	for _, raw := range list.Relatives {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		rows = append(rows, []string{"relative", "", raw})
	}
	return rows
}
