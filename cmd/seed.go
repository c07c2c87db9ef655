package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mentoring_backend/internals/configs"
	database "mentoring_backend/internals/databases"
	"mentoring_backend/internals/seeds"
)

func newSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample companies, organizations and contacts",
		Long: `Insert seed data from a YAML file (the bundled sample when --file is empty).

Companies and organizations are matched by name and contacts by email, so the
command can be re-run safely.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.ConnectDB(configs.App)
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := seeds.RunAllSeeds(db.WithContext(cmd.Context()), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "companies +%d, organizations +%d, contacts +%d\n",
				res.Companies, res.Organizations, res.Contacts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed YAML file")
	return cmd
}
