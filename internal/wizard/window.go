package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timvw/tmuxify/internal/model"
)

// editorTemplate seeds the multi-line command editor.
const editorTemplate = "# Enter commands (one per line)\n"

// Pane input methods, in menu order.
var paneInputChoices = []string{"Single line", "Multi-line (editor)", "No commands"}

const (
	inputSingleLine = iota
	inputEditor
	inputNone
)

func (w *Wizard) buildWindow(n int, defaultLayout model.Layout) (model.Window, error) {
	w.println(w.styles.Heading.Render(fmt.Sprintf("Window #%d", n)))

	name, err := w.Prompter.AskText("  Window name (optional, press Enter to skip)", "", true)
	if err != nil {
		return model.Window{}, err
	}

	layouts := model.Layouts()
	names := make([]string, len(layouts))
	def := 0
	for i, l := range layouts {
		names[i] = l.String()
		if l == defaultLayout {
			def = i
		}
	}
	idx, err := w.Prompter.AskChoice("  Layout", names, def)
	if err != nil {
		return model.Window{}, err
	}

	count, err := w.paneCount()
	if err != nil {
		return model.Window{}, err
	}

	panes := make([]model.Pane, 0, count)
	for i := 1; i <= count; i++ {
		p, err := w.buildPane(i)
		if err != nil {
			return model.Window{}, err
		}
		panes = append(panes, p)
	}

	return model.Window{
		Name:   strings.TrimSpace(name),
		Layout: layouts[idx],
		Panes:  panes,
	}, nil
}

func (w *Wizard) paneCount() (int, error) {
	for {
		raw, err := w.Prompter.AskText("  Number of panes", "1", false)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			w.eprintln(w.styles.Warning.Render(fmt.Sprintf("  %q is not a positive number", raw)))
			continue
		}
		return n, nil
	}
}

func (w *Wizard) buildPane(n int) (model.Pane, error) {
	w.println("    " + w.styles.Dim.Render(fmt.Sprintf("Pane #%d", n)))

	method, err := w.Prompter.AskChoice("      Enter commands", paneInputChoices, inputSingleLine)
	if err != nil {
		return model.Pane{}, err
	}

	switch method {
	case inputSingleLine:
		cmd, err := w.Prompter.AskText("      Command", "", true)
		if err != nil {
			return model.Pane{}, err
		}
		if strings.TrimSpace(cmd) == "" {
			return model.Pane{}, nil
		}
		return model.NewPane(strings.TrimSpace(cmd)), nil
	case inputEditor:
		text, ok, err := w.Prompter.EditMultiline(editorTemplate)
		if err != nil {
			return model.Pane{}, err
		}
		if !ok {
			return model.Pane{}, nil
		}
		return model.Pane{ShellCommand: ParseCommands(text)}, nil
	default:
		return model.Pane{}, nil
	}
}

// ParseCommands splits editor output into commands, dropping blank lines
// and lines starting with '#'.
func ParseCommands(text string) []string {
	var cmds []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmds = append(cmds, line)
	}
	return cmds
}
