package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/fileutil"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/roster"
)

func newRosterCommand(ctx *commandContext) *cobra.Command {
	rosterCmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and manage the people being tracked",
	}

	rosterCmd.AddCommand(newRosterListCommand(ctx))
	rosterCmd.AddCommand(newRosterAddCommand(ctx))
	rosterCmd.AddCommand(newRosterRemoveCommand(ctx))
	rosterCmd.AddCommand(newRosterImportCommand(ctx))
	rosterCmd.AddCommand(newRosterExportCommand(ctx))

	return rosterCmd
}

func newRosterListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List roster people",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *roster.Store, _ *slog.Logger) error {
				people, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(people) == 0 {
					fmt.Fprintln(out, "Roster is empty")
					return nil
				}
				fmt.Fprint(out, renderTableFor(out,
					[]string{"ID", "Name", "Location", "Relatives", "Ignored"},
					buildRosterRows(people),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

func buildRosterRows(people []*roster.Person) [][]string {
	rows := make([][]string, 0, len(people))
	for _, person := range people {
		if person == nil {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(person.ID, 10),
			person.Identity.FullName(),
			person.Identity.Location(),
			yesNo(person.Identity.CheckRelatives),
			strconv.Itoa(person.Identity.IgnoreList.Len()),
		})
	}
	return rows
}

func newRosterAddCommand(ctx *commandContext) *cobra.Command {
	var flags identityFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			person := flags.identity()
			return ctx.withStore(func(_ *config.Config, store *roster.Store, _ *slog.Logger) error {
				stored, err := store.Add(cmd.Context(), person)
				if err != nil {
					if errors.Is(err, roster.ErrNameRequired) {
						return fmt.Errorf("roster add requires --given or --family")
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (ID %d)\n", stored.Identity.FullName(), stored.ID)
				return nil
			})
		},
	}

	flags.bind(cmd)
	return cmd
}

func newRosterRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a person from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePersonID(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(_ *config.Config, store *roster.Store, _ *slog.Logger) error {
				removed, err := store.Remove(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("person %d not found", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed person %d\n", id)
				return nil
			})
		},
	}
}

func newRosterImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv>",
		Short: "Import people from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer file.Close()

			return ctx.withStore(func(_ *config.Config, store *roster.Store, _ *slog.Logger) error {
				stats, err := store.ImportCSV(cmd.Context(), file)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s (%d %s skipped)\n",
					stats.Added, plural(stats.Added, "person", "people"),
					stats.Duplicates, plural(stats.Duplicates, "duplicate", "duplicates"),
				)
				return nil
			})
		},
	}
}

func newRosterExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <csv>",
		Short: "Export the roster to a CSV file ('-' for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *roster.Store, _ *slog.Logger) error {
				target := strings.TrimSpace(args[0])
				if target == "-" {
					return store.ExportCSV(cmd.Context(), cmd.OutOrStdout())
				}
				path, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve path: %w", err)
				}
				var buf bytes.Buffer
				if err := store.ExportCSV(cmd.Context(), &buf); err != nil {
					return err
				}
				if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported roster to %s\n", path)
				return nil
			})
		},
	}
}

func parsePersonID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid person id %q", value)
	}
	return id, nil
}
