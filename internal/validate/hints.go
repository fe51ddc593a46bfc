package validate

import (
	"fmt"

	"github.com/timvw/tmuxify/internal/env"
)

// packageManagers is probed in order; the first one found on PATH wins.
var packageManagers = []struct {
	binary   string
	template string
}{
	{"brew", "brew install %s"},
	{"apt-get", "sudo apt-get update && sudo apt-get install -y %s"},
	{"apt", "sudo apt update && sudo apt install -y %s"},
	{"dnf", "sudo dnf install -y %s"},
	{"pacman", "sudo pacman -S --noconfirm %s"},
	{"zypper", "sudo zypper install -y %s"},
}

// InstallHint returns the install command for pkg using the first package
// manager available on PATH.
func InstallHint(e env.Env, pkg string) string {
	for _, pm := range packageManagers {
		if _, err := e.LookPath(pm.binary); err == nil {
			return fmt.Sprintf(pm.template, pkg)
		}
	}
	return fmt.Sprintf("Install '%s' using your system's package manager", pkg)
}
