package controller

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/codelimit/internal/model"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	if got := animateScroll("abcdef", 3, scrollPause+1); got != "bcd" {
		t.Fatalf("animateScroll scrolled = %q, want bcd", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 0, ""},
		{"hello", 10, "hello"},
		{"hello", 1, "…"},
		{"hello", 2, "h…"},
		{"hello", 4, "hel…"},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func testUnits() []m.ReportUnit {
	return []m.ReportUnit{
		unit("src/app.py", "handle", 2, 3),
		unit("src/app.py", "tiny", 6, 1),
	}
}

func fileLoader(calls *int) SourceLoader {
	return func(file m.Path) ([]byte, error) {
		*calls++
		if file != "src/app.py" {
			return nil, errors.New("not found")
		}

		return []byte("import os\ndef handle():\n    x = 1\n    return x\n\ndef tiny(): pass\n"), nil
	}
}

func run(t *testing.T, model reportModel, cmd tea.Cmd) reportModel {
	t.Helper()

	if cmd == nil {
		return model
	}

	updated, _ := model.Update(cmd())

	return updated.(reportModel)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReportModel_ViewListsUnits(t *testing.T) {
	model := newReportModel(testUnits(), nil, m.DefaultThresholds()).resize(100, 30)

	view := model.View()
	for _, want := range []string{"CodeLimit Report", "Functions: 2", "handle", "tiny", "src/app.py:2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestReportModel_OpenSourceAndBack(t *testing.T) {
	calls := 0
	model := newReportModel(testUnits(), fileLoader(&calls), m.DefaultThresholds()).resize(100, 30)

	updated, cmd := model.Update(key("enter"))
	model = run(t, updated.(reportModel), cmd)

	if !model.showCode {
		t.Fatalf("enter did not open the code pane")
	}

	view := model.View()
	if !strings.Contains(view, "handle  src/app.py:2-4 (3 lines)") || !strings.Contains(view, "return") {
		t.Fatalf("code pane missing unit source\n%s", view)
	}

	if strings.Contains(view, "import") {
		t.Fatalf("code pane shows lines outside the unit\n%s", view)
	}

	updated, _ = model.Update(key("esc"))
	model = updated.(reportModel)

	if model.showCode {
		t.Fatalf("esc did not close the code pane")
	}

	// Second unit of the same file comes from the cache
	updated, _ = model.Update(key("down"))
	updated, cmd = updated.(reportModel).Update(key("enter"))
	model = run(t, updated.(reportModel), cmd)

	if !model.showCode || model.current.Name != "tiny" {
		t.Fatalf("second unit not opened, current = %q", model.current.Name)
	}

	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}
}

func TestReportModel_LoadErrorIsShown(t *testing.T) {
	units := []m.ReportUnit{unit("missing.py", "gone", 1, 2)}
	calls := 0
	model := newReportModel(units, fileLoader(&calls), m.DefaultThresholds()).resize(100, 30)

	updated, cmd := model.Update(key("enter"))
	model = run(t, updated.(reportModel), cmd)

	if model.showCode {
		t.Fatalf("code pane opened despite load error")
	}

	if !strings.Contains(model.View(), "not found") {
		t.Fatalf("View() missing load error\n%s", model.View())
	}
}

func TestReportModel_QuitKeys(t *testing.T) {
	model := newReportModel(testUnits(), nil, m.DefaultThresholds())

	for _, k := range []string{"q"} {
		_, cmd := model.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s returned no command", k)
		}

		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s did not quit", k)
		}
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestReportModel_TickAdvancesAnimation(t *testing.T) {
	model := newReportModel(testUnits(), nil, m.DefaultThresholds())

	updated, cmd := model.Update(tickMsg{})
	if cmd == nil {
		t.Fatalf("tick returned no follow-up")
	}

	if got := updated.(reportModel).animOffset; got != 1 {
		t.Fatalf("animOffset = %d, want 1", got)
	}
}

func TestReportModel_Resize(t *testing.T) {
	model := newReportModel(testUnits(), nil, m.DefaultThresholds())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(reportModel)

	if model.width != 120 || model.height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", model.width, model.height)
	}

	if model.code.Height != 31 || model.unitList.Width() != 114 {
		t.Fatalf("body = %dx%d", model.unitList.Width(), model.code.Height)
	}
}

func TestHighlight_KeepsLineCount(t *testing.T) {
	src := []byte("def f():\n    return 1\n")

	lines := highlight("f.py", src)
	if len(lines) != 3 {
		t.Fatalf("highlight returned %d lines, want 3", len(lines))
	}

	if !strings.Contains(lines[1], "return") {
		t.Fatalf("line 2 = %q, want it to contain return", lines[1])
	}
}
