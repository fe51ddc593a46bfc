package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by tmuxify's terminal output.
type Theme struct {
	Primary   lipgloss.Color // banners, section titles
	Secondary lipgloss.Color // paths, session names
	Error     lipgloss.Color // failed checks, errors
	Warning   lipgloss.Color // warnings, suggested lines
	Success   lipgloss.Color // passed checks
	Text      lipgloss.Color
	TextMuted lipgloss.Color // hints, pane headers
}

// DarkTheme returns the default theme for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#56b6c2"),
		Secondary: lipgloss.Color("#5c9cf5"),
		Error:     lipgloss.Color("#e06c75"),
		Warning:   lipgloss.Color("#f5a742"),
		Success:   lipgloss.Color("#7fd88f"),
		Text:      lipgloss.Color("#eeeeee"),
		TextMuted: lipgloss.Color("#808080"),
	}
}

// LightTheme returns a theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#0969da"),
		Secondary: lipgloss.Color("#0550ae"),
		Error:     lipgloss.Color("#cf222e"),
		Warning:   lipgloss.Color("#bf8700"),
		Success:   lipgloss.Color("#116329"),
		Text:      lipgloss.Color("#1f2328"),
		TextMuted: lipgloss.Color("#656d76"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles builds all styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Accent:  lipgloss.NewStyle().Foreground(t.Secondary),
		Success: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Dim:     lipgloss.NewStyle().Foreground(t.TextMuted),
	}
}

// Tick, Cross and Caution render the status glyphs used in reports.
func (s Styles) Tick() string    { return s.Success.Render("✓") }
func (s Styles) Cross() string   { return s.Error.Render("✗") }
func (s Styles) Caution() string { return s.Warning.Bold(true).Render("⚠") }

// HuhTheme adapts a Theme to huh's form styles.
func HuhTheme(t Theme) *huh.Theme {
	h := huh.ThemeBase()

	h.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(t.Primary)
	h.Focused.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	h.Focused.Description = lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true)
	h.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(t.Warning).SetString(" *")
	h.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(t.Warning)
	h.Focused.SelectSelector = lipgloss.NewStyle().Foreground(t.Primary).SetString("> ")
	h.Focused.Option = lipgloss.NewStyle().Foreground(t.Text)
	h.Focused.SelectedOption = lipgloss.NewStyle().Foreground(t.Secondary)
	h.Focused.FocusedButton = lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		Foreground(lipgloss.Color("#000000")).
		Background(t.Primary)
	h.Focused.BlurredButton = lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		Foreground(t.TextMuted)
	h.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(t.Primary)
	h.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(t.Secondary)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return h
}
