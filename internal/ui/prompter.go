// Package ui holds the terminal adapters tmuxify's wizard drives:
// prompts, the external editor, styling and the progress spinner.
package ui

import "errors"

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted by user")

// ErrNotInteractive is returned when a prompt is needed but stdin is not
// a terminal.
var ErrNotInteractive = errors.New("prompt requires an interactive terminal")

// Prompter asks the user questions. Implementations block until the user
// answers.
type Prompter interface {
	// AskText reads a line of text, prefilled with def. With allowEmpty
	// false an empty answer is rejected.
	AskText(title, def string, allowEmpty bool) (string, error)
	// AskChoice presents options and returns the chosen index.
	AskChoice(title string, options []string, defaultIndex int) (int, error)
	// EditMultiline opens an editor on initial and returns the saved text.
	// ok is false when the user left the text unchanged.
	EditMultiline(initial string) (text string, ok bool, err error)
	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
}

// ReportedError marks an error whose details were already shown to the
// user. The command layer exits non-zero without printing it again.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// Reported wraps err as a *ReportedError. A nil err stays nil.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &ReportedError{Err: err}
}
