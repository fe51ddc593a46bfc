// Package placement decides where the tmuxp file and .envrc are written.
package placement

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/timvw/tmuxify/internal/env"
	"github.com/timvw/tmuxify/internal/model"
)

// ErrMissingHome is returned when the home directory cannot be determined
// for a home-scoped tmuxp file.
var ErrMissingHome = errors.New("could not determine home directory")

// Paths are the two artifact locations for one session.
type Paths struct {
	Tmuxp string
	Envrc string
}

// Resolve maps a location and session to artifact paths.
//
// With LocationHome the tmuxp file is $HOME/.tmuxp/<session>.yaml. With
// LocationProject it is <projectDir>/.tmuxp.yaml, or the relative path
// .tmuxp.yaml when projectDir is empty. The .envrc always lives in
// projectDir.
func Resolve(e env.Env, location model.TmuxpLocation, cfg model.Config, projectDir string) (Paths, error) {
	var p Paths
	switch location {
	case model.LocationHome:
		home, err := e.HomeDir()
		if err != nil || home == "" {
			return Paths{}, fmt.Errorf("%w: %v", ErrMissingHome, err)
		}
		p.Tmuxp = filepath.Join(home, ".tmuxp", cfg.SessionName+".yaml")
	case model.LocationProject:
		if projectDir == "" {
			p.Tmuxp = ".tmuxp.yaml"
		} else {
			p.Tmuxp = filepath.Join(projectDir, ".tmuxp.yaml")
		}
	default:
		return Paths{}, fmt.Errorf("unknown tmuxp location %v", location)
	}
	p.Envrc = filepath.Join(projectDir, ".envrc")
	return p, nil
}
