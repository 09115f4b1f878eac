package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rustickingdom/talentcalc/infrastructure/render"
	"github.com/rustickingdom/talentcalc/internal/application"
	"github.com/rustickingdom/talentcalc/internal/domain"
)

type calculateFlags struct {
	format      string
	concurrency int
}

func newCalculateCmd(root *rootFlags) *cobra.Command {
	f := &calculateFlags{}

	cmd := &cobra.Command{
		Use:   "calculate <scoresheet>...",
		Short: "Score one or more scoresheet files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, root, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")
	flags.IntVar(&f.concurrency, "concurrency", 0, "Files scored at once (default: number of CPUs)")

	return cmd
}

func runCalculate(cmd *cobra.Command, root *rootFlags, f *calculateFlags, paths []string) error {
	if f.format != "text" && f.format != "json" {
		return exitError(exitInput, "unknown format %q (want text or json)", f.format)
	}

	env, err := root.setup(cmd)
	if err != nil {
		return err
	}

	results, err := application.CalculateFiles(cmd.Context(), env.calc, paths, f.concurrency)
	if err != nil {
		return exitError(exitInput, "failed to score: %v", err)
	}

	for _, r := range results {
		if math.IsNaN(r.Result.FinalScore) {
			env.logger.Warn("no judges on scoresheet, final score is undefined", "source", r.Source)
		}
	}

	out := cmd.OutOrStdout()
	switch f.format {
	case "json":
		if len(results) == 1 {
			err = render.JSON(out, results[0].Result)
		} else {
			names := make([]string, len(results))
			scores := make([]domain.CalculationResult, len(results))
			for i, r := range results {
				names[i], scores[i] = r.Source, r.Result
			}
			err = render.JSONBatch(out, names, scores)
		}
	default:
		for i, r := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "== %s ==\n", r.Source)
			}
			if err = render.Text(out, env.rc, r.Result, env.weights); err != nil {
				break
			}
		}
	}
	if err != nil {
		return exitError(exitGeneral, "%v", err)
	}

	if root.metrics {
		if err := env.dumpMetrics(cmd.ErrOrStderr()); err != nil {
			return exitError(exitGeneral, "%v", err)
		}
	}
	return nil
}
