package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/leengari/relq/databases"
	"github.com/leengari/relq/internal/fixture"
)

func newSeedCommand(a *app) *cobra.Command {
	var sqlitePath string

	cmd := &cobra.Command{
		Use:   "seed <dir>",
		Short: "Write the embedded school dataset to disk",
		Long:  "Copy the embedded school dataset as JSON into <dir>/school, and optionally export it to a SQLite file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			target, err := fixture.Extract(databases.Content, fixture.EmbeddedRoot, args[0])
			if err != nil {
				return fmt.Errorf("seed %s: %w", args[0], err)
			}
			fmt.Fprintln(w, pterm.Success.Sprintf("dataset written to %s", target))

			if sqlitePath == "" {
				return nil
			}

			ds, err := fixture.LoadFS(databases.Content, fixture.EmbeddedRoot, a.logger)
			if err != nil {
				return err
			}
			db, err := fixture.OpenSQLite(sqlitePath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := fixture.WriteSQL(cmd.Context(), db, ds); err != nil {
				return err
			}
			fmt.Fprintln(w, pterm.Success.Sprintf("dataset exported to %s", sqlitePath))
			return nil
		},
	}

	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Also export the dataset to this SQLite file")

	return cmd
}
