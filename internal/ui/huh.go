package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Huh is a Prompter backed by charmbracelet/huh forms.
type Huh struct {
	Theme       Theme
	Editor      *Editor
	Interactive bool
}

// NewHuh creates a huh prompter. Prompts fail with ErrNotInteractive
// when interactive is false.
func NewHuh(theme Theme, editor *Editor, interactive bool) *Huh {
	return &Huh{Theme: theme, Editor: editor, Interactive: interactive}
}

func (h *Huh) run(title string, field huh.Field) error {
	if !h.Interactive {
		return fmt.Errorf("%w: %s", ErrNotInteractive, strings.TrimSpace(title))
	}
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(HuhTheme(h.Theme)).
		WithShowHelp(false).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// AskText implements Prompter.
func (h *Huh) AskText(title, def string, allowEmpty bool) (string, error) {
	value := def
	input := huh.NewInput().
		Title(title).
		Value(&value)
	if !allowEmpty {
		input = input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		})
	}
	if err := h.run(title, input); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// AskChoice implements Prompter.
func (h *Huh) AskChoice(title string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("%s: no options to choose from", title)
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}
	choice := defaultIndex
	sel := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&choice)
	if err := h.run(title, sel); err != nil {
		return 0, err
	}
	return choice, nil
}

// Confirm implements Prompter.
func (h *Huh) Confirm(title string, def bool) (bool, error) {
	answer := def
	c := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)
	if err := h.run(title, c); err != nil {
		return false, err
	}
	return answer, nil
}

// EditMultiline implements Prompter by spawning the configured editor.
func (h *Huh) EditMultiline(initial string) (string, bool, error) {
	if !h.Interactive {
		return "", false, fmt.Errorf("%w: editor", ErrNotInteractive)
	}
	if h.Editor == nil {
		return "", false, errors.New("no editor configured")
	}
	return h.Editor.Edit(initial)
}
