package cli

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/leengari/relq/internal/engine"
	"github.com/leengari/relq/internal/exercises"
	"github.com/leengari/relq/internal/fixture"
	"github.com/leengari/relq/internal/telemetry"
)

func newRunCommand(a *app) *cobra.Command {
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "run [id...]",
		Short: "Run all or selected exercises",
		Long:  "Run exercises by ID (\"q07\" or the full ID) and print their results; no IDs runs the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := exercises.Select(args...)
			if err != nil {
				return err
			}

			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			school, err := fixture.NewSchool(ds)
			if err != nil {
				return err
			}

			eng := engine.New(exercises.Env{School: school, AsOf: a.asOf()})
			eng.AddObserver(engine.NewLoggingObserver(a.logger))
			metrics := telemetry.NewMetricsObserver(nil)
			eng.AddObserver(metrics)

			runs, runErr := eng.RunAll(cmd.Context(), list)

			w := cmd.OutOrStdout()
			if err := printRuns(w, runs); err != nil {
				return err
			}
			if showMetrics {
				if err := metrics.WriteText(w); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print run metrics in Prometheus text format")

	return cmd
}

func printRuns(w io.Writer, runs []*engine.Run) error {
	failed := 0
	for _, run := range runs {
		fmt.Fprintln(w, pterm.DefaultSection.Sprint(run.Exercise.ID+"  "+run.Exercise.Title))
		if !run.OK() {
			failed++
			fmt.Fprintln(w, pterm.Error.Sprint(run.Err))
			continue
		}
		if err := PrintResult(w, run.Result); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d exercises, %d failed", len(runs), failed)
	if failed > 0 {
		fmt.Fprintln(w, pterm.Warning.Sprint(summary))
	} else {
		fmt.Fprintln(w, pterm.Success.Sprint(summary))
	}
	return nil
}
