package writer

import (
	"context"

	"github.com/timvw/tmuxify/internal/process"
)

// RunDirenvAllow runs `direnv allow` in projectDir so the new .envrc is
// trusted. A non-zero exit returns a *process.SubprocessError carrying
// direnv's stderr.
func RunDirenvAllow(ctx context.Context, r process.Runner, projectDir string) error {
	args := []string{"allow"}
	res, err := r.Run(ctx, "direnv", args, projectDir)
	if err != nil {
		return err
	}
	return process.Check("direnv", args, res)
}
