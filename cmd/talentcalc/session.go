package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rustickingdom/talentcalc/internal/application"
)

func newSessionCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "session [scoresheet]",
		Short: "Enter scores interactively",
		Long: "Start an interactive scoring session on stdin. Inputs are edited one " +
			"command at a time and scored only on \"calc\". Type \"help\" for commands.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, root, args)
		},
	}
}

func runSession(cmd *cobra.Command, root *rootFlags, args []string) error {
	env, err := root.setup(cmd)
	if err != nil {
		return err
	}

	opts := []application.SessionOption{
		application.WithLogger(env.logger),
		application.WithMetrics(env.metrics),
	}
	if len(args) == 1 {
		sheet, err := application.LoadScoresheetFile(args[0])
		if err != nil {
			return exitError(exitInput, "failed to load scoresheet: %v", err)
		}
		opts = append(opts, application.WithSheet(sheet))
	}

	session := application.NewSession(env.calc, opts...)
	env.logger.Debug("session started", "session", session.ID())

	in := application.NewInterpreter(session, env.rc, env.weights, cmd.OutOrStdout(), env.logger)
	if err := in.Run(cmd.Context(), cmd.InOrStdin()); err != nil && !errors.Is(err, context.Canceled) {
		return exitError(exitGeneral, "session ended: %v", err)
	}

	if root.metrics {
		if err := env.dumpMetrics(cmd.ErrOrStderr()); err != nil {
			return exitError(exitGeneral, "%v", err)
		}
	}
	return nil
}
