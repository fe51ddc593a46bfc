package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/tmuxify/internal/doctor"
	"github.com/timvw/tmuxify/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check dependencies and shell configuration",
	Long: `Check that tmux, tmuxp and direnv are installed and that the direnv
hook is present in your shell's RC file.

Exits non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := setup(ctx)
		if err != nil {
			return err
		}
		defer rt.close(ctx)

		ctx, span := rt.tel.Start(ctx, "tmuxify.doctor")
		defer span.End()

		return doctor.Run(ctx, rt.env, os.Stdout, ui.NewStyles(rt.theme), rt.metrics())
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
