package ui

import "os"

// IsTTY returns true if the given file is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// IsInteractive returns true if both stdin and stdout are terminals.
func IsInteractive() bool {
	return IsTTY(os.Stdin) && IsTTY(os.Stdout)
}
