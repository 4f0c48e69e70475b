package cli

import (
	"fmt"
	"io"

	"github.com/diegoclair/duty-roster/internal/domain/roster"
	"github.com/diegoclair/duty-roster/internal/metrics"
	"github.com/diegoclair/duty-roster/migrator/sqlite"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := sqlite.AppliedCount(db.DB())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database %s is up to date (%d migrations applied)\n", a.cfg.DatabasePath, applied)
			return nil
		},
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Rebuild both rosters from this week's Monday and resolve leave conflicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := a.services(db, metrics.NewNop()).Roster.Generate(cmd.Context())
			if err != nil {
				return fmt.Errorf("generate roster: %w", err)
			}

			printResult(cmd.OutOrStdout(), "Roster generated", result)
			return nil
		},
	}
}

func newReconcileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Run one conflict resolution pass over the stored roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := a.services(db, metrics.NewNop()).Roster.Reconcile(cmd.Context())
			if err != nil {
				return fmt.Errorf("reconcile roster: %w", err)
			}

			printResult(cmd.OutOrStdout(), "Roster reconciled", result)
			return nil
		},
	}
}

func newCleanupCmd(a *app) *cobra.Command {
	var purgeDays int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Cancel expired pending leave requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			leave := a.services(db, metrics.NewNop()).Leave

			canceled, err := leave.CleanupExpired(cmd.Context())
			if err != nil {
				return fmt.Errorf("cleanup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Canceled %d expired pending request(s)\n", canceled)

			if purgeDays >= 0 {
				purged, err := leave.PurgeCanceled(cmd.Context(), purgeDays)
				if err != nil {
					return fmt.Errorf("purge: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Purged %d canceled request(s) older than %d day(s)\n", purged, purgeDays)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&purgeDays, "purge-days", -1, "Also delete canceled requests older than this many days")
	return cmd
}

func printResult(w io.Writer, title string, result *roster.Result) {
	status := "converged"
	switch {
	case result.Exhausted:
		status = "pass limit reached"
	case !result.Converged:
		status = "conflicts remain"
	}

	fmt.Fprintf(w, "%s: %d slot(s) changed, %d pass(es), %s\n", title, len(result.Changed), result.Iterations, status)
	for _, d := range result.Diagnostics {
		fmt.Fprintf(w, "  %s\n", d.String())
	}
}
