package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/tmuxify/internal/mux"
	"github.com/timvw/tmuxify/internal/process"
	"github.com/timvw/tmuxify/internal/ui"
	"github.com/timvw/tmuxify/internal/wizard"
	"github.com/timvw/tmuxify/internal/writer"
)

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	ctx, span := rt.tel.Start(ctx, "tmuxify.run")
	defer span.End()

	cfg := rt.cfg
	runner := process.NewExec(rt.logger)
	interactive := ui.IsInteractive()

	w := &wizard.Wizard{
		Prompter: ui.NewHuh(rt.theme, ui.NewEditor(cfg.Editor), interactive),
		Env:      rt.env,
		Runner:   runner,
		Tmux:     mux.NewTmux(rt.env, runner),
		Writer: &writer.Writer{
			Env:     rt.env,
			Stdout:  os.Stdout,
			Logger:  rt.logger,
			Metrics: rt.metrics(),
		},
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Theme:   rt.theme,
		Logger:  rt.logger,
		Animate: interactive,
	}

	opts := wizard.Options{
		DryRun:        flagDryRun,
		Force:         flagForce || cfg.Force,
		Project:       flagProject,
		TmuxpLocation: flagTmuxpLocation,
		Session:       flagSession,
		StartDir:      flagStartDir,
		DefaultLayout: cfg.Layout,
		DirenvAllow:   cfg.DirenvAllow,
	}
	if opts.TmuxpLocation == "" && cfg.Location != nil {
		opts.TmuxpLocation = cfg.Location.String()
	}

	err = w.Run(ctx, opts)
	if err != nil {
		span.RecordError(err)
	}
	return err
}
