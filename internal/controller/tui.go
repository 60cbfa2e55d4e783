package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/codelimit/internal/model"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// TUI implements UI using Bubble Tea for interactive display. Non-interactive
// output is delegated to the embedded SimpleUI.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// DisplayReport opens the unit browser. Selecting a unit shows its source.
func (t *TUI) DisplayReport(units []m.ReportUnit, load SourceLoader, thresholds m.Thresholds) error {
	if len(units) == 0 {
		_, err := fmt.Fprintln(t.output, msgHappy)

		return err
	}

	model := newReportModel(units, load, thresholds)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// highlight renders src with terminal colours and splits it into lines.
// The file name selects the lexer; unknown types are returned uncoloured.
func highlight(file m.Path, src []byte) []string {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, string(file), highlightFormatter, highlightStyle); err != nil {
		return strings.Split(text, "\n")
	}

	return strings.Split(buf.String(), "\n")
}

func loadSource(load SourceLoader, file m.Path) tea.Cmd {
	return func() tea.Msg {
		src, err := load(file)
		if err != nil {
			return sourceMsg{file: file, err: err}
		}

		return sourceMsg{file: file, lines: highlight(file, src)}
	}
}
