package cli

import (
	"github.com/spf13/cobra"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <table>",
		Short: "Print a fixture table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			rel, err := ds.Relation(args[0])
			if err != nil {
				return err
			}
			ts, _ := ds.Schema(args[0])
			columns := rel.Fields()
			if ts != nil {
				columns = ts.FieldNames()
			}
			return PrintRelation(cmd.OutOrStdout(), rel, columns, ts)
		},
	}
}
