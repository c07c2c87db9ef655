package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mentoring_backend/internals/configs"
	database "mentoring_backend/internals/databases"
	"mentoring_backend/internals/logging"
)

func newMigrateCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		Long: `Apply the embedded SQL migrations in version order.

Applied versions are recorded in schema_migrations, so running the command
again only applies what is new.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), dryRun, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List migrations without applying them")
	return cmd
}

func runMigrate(ctx context.Context, dryRun bool, out io.Writer) error {
	migrations, err := database.LoadMigrations(database.MigrationFS, "migrations")
	if err != nil {
		return err
	}
	if dryRun {
		for _, m := range migrations {
			fmt.Fprintf(out, "%s\t%s\n", m.Version, m.Name)
		}
		return nil
	}

	db, err := database.OpenSQL(configs.App.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := database.RunMigrations(ctx, db, migrations)
	if err != nil {
		return err
	}
	logging.L().Info().Strs("applied", res.Applied).Int("skipped", len(res.Skipped)).Msg("migrations done")
	fmt.Fprintf(out, "applied %d, already present %d\n", len(res.Applied), len(res.Skipped))
	return nil
}
