package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/codelimit/internal/model"
)

const (
	lengthWidth = 6
	scrollPause = 5
	scrollGap   = "   "
)

// unitDelegate renders one unit per row: length, name and location.
type unitDelegate struct {
	offset int
}

func (d unitDelegate) Height() int  { return 1 }
func (d unitDelegate) Spacing() int { return 0 }
func (d unitDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d unitDelegate) Render(w io.Writer, model list.Model, index int, item list.Item) {
	unit, ok := item.(unitItem)
	if !ok {
		return
	}

	location := fmt.Sprintf("%s:%d", unit.unit.File, unit.unit.Measurement.Start.Line)
	text := unit.unit.Name + "  " + location
	width := model.Width() - lengthWidth - 2

	lengthStyle := riskStyle(unit.risk).Width(lengthWidth).Align(lipgloss.Right)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	var display string

	if index == model.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		lengthStyle = selected.Width(lengthWidth).Align(lipgloss.Right)
		nameStyle = selected
		display = animateScroll(text, width, d.offset)
	} else {
		display = truncateToWidth(text, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		lengthStyle.Render(fmt.Sprintf("%d", unit.unit.Measurement.Length)),
		nameStyle.Render(display),
	)
}

// animateScroll shows a width-sized window of text that moves by one rune per
// tick after an initial pause. Text that fits is returned unchanged.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	if offset < scrollPause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + scrollGap)
	start := (offset - scrollPause) % len(runes)

	window := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		window = append(window, runes[(start+i)%len(runes)])
	}

	return string(window)
}

// truncateToWidth cuts text to width display cells, ending with an ellipsis
// when something was cut.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	limit := width - lipgloss.Width(ellipsis)
	if limit <= 0 {
		return ellipsis
	}

	var b strings.Builder

	used := 0

	for _, r := range text {
		rw := lipgloss.Width(string(r))
		if used+rw > limit {
			break
		}

		b.WriteRune(r)
		used += rw
	}

	return b.String() + ellipsis
}

// reportModel browses the units of a report. Enter opens the source of the
// selected unit, esc goes back to the list.
type reportModel struct {
	width        int
	height       int
	unitList     list.Model
	delegate     unitDelegate
	code         viewport.Model
	showCode     bool
	current      m.ReportUnit
	load         SourceLoader
	sources      map[m.Path][]string
	totals       map[m.Risk]int
	animOffset   int
	lastSelected int
	err          error
}

func newReportModel(units []m.ReportUnit, load SourceLoader, thresholds m.Thresholds) reportModel {
	items := make([]list.Item, 0, len(units))
	totals := make(map[m.Risk]int)

	for _, unit := range units {
		risk := thresholds.Classify(unit.Measurement.Length)
		totals[risk]++
		items = append(items, unitItem{unit: unit, risk: risk})
	}

	delegate := unitDelegate{}
	unitList := list.New(items, delegate, 80, 20)
	unitList.SetShowPagination(false)
	unitList.SetShowFilter(true)
	unitList.SetShowHelp(false)
	unitList.SetShowTitle(false)
	unitList.SetShowStatusBar(false)
	unitList.FilterInput.Placeholder = "Filter by function or file…"

	model := reportModel{
		unitList:     unitList,
		delegate:     delegate,
		code:         viewport.New(80, 20),
		load:         load,
		sources:      make(map[m.Path][]string),
		totals:       totals,
		lastSelected: 0,
	}

	return model.resize(80, 24)
}

func (r reportModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// resize fits the list and the code pane below the title and summary.
func (r reportModel) resize(width, height int) reportModel {
	r.width = width
	r.height = height

	bodyHeight := max(height-9, 5)
	bodyWidth := max(width-6, 10)

	r.unitList.SetWidth(bodyWidth)
	r.unitList.SetHeight(bodyHeight)
	r.code.Width = bodyWidth
	r.code.Height = bodyHeight

	return r
}

func (r reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return r.resize(msg.Width, msg.Height), nil

	case tickMsg:
		if r.showCode || r.unitList.FilterState() == list.Filtering {
			return r, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		r.animOffset++
		r.delegate.offset = r.animOffset
		r.unitList.SetDelegate(r.delegate)

		return r, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case sourceMsg:
		if msg.err != nil {
			r.err = msg.err

			return r, nil
		}

		r.err = nil
		r.sources[msg.file] = msg.lines

		if msg.file == r.current.File {
			r = r.openCode()
		}

		return r, nil

	case tea.KeyMsg:
		if r.showCode {
			return r.updateCode(msg)
		}

		return r.updateList(msg)
	}

	return r, cmd
}

func (r reportModel) updateCode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return r, tea.Quit
	case "esc", "backspace", "left", "h":
		r.showCode = false

		return r, nil
	}

	var cmd tea.Cmd

	r.code, cmd = r.code.Update(msg)

	return r, cmd
}

func (r reportModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := r.unitList.FilterState() == list.Filtering

	switch msg.String() {
	case "ctrl+c":
		return r, tea.Quit
	case "q":
		if !filtering {
			return r, tea.Quit
		}
	case "enter", "right", "l":
		if !filtering {
			return r.selectUnit()
		}
	}

	var cmd tea.Cmd

	r.unitList, cmd = r.unitList.Update(msg)

	// Reset the animation when the selection moves
	if r.unitList.Index() != r.lastSelected {
		r.lastSelected = r.unitList.Index()
		r.animOffset = 0
		r.delegate.offset = 0
		r.unitList.SetDelegate(r.delegate)
	}

	return r, cmd
}

func (r reportModel) selectUnit() (tea.Model, tea.Cmd) {
	item, ok := r.unitList.SelectedItem().(unitItem)
	if !ok {
		return r, nil
	}

	r.current = item.unit

	if _, ok := r.sources[item.unit.File]; ok {
		return r.openCode(), nil
	}

	if r.load == nil {
		return r, nil
	}

	return r, loadSource(r.load, item.unit.File)
}

// openCode fills the code pane with the numbered lines of the current unit.
func (r reportModel) openCode() reportModel {
	lines := r.sources[r.current.File]
	start := max(r.current.Measurement.Start.Line, 1)
	end := min(r.current.Measurement.End.Line, len(lines))

	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder

	for line := start; line <= end; line++ {
		b.WriteString(numberStyle.Render(fmt.Sprintf("%5d ", line)))
		b.WriteString(lines[line-1])
		b.WriteString("\n")
	}

	r.code.SetContent(b.String())
	r.code.GotoTop()
	r.showCode = true

	return r
}

func (r reportModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("CodeLimit Report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Functions: %s   Hard-to-maintain: %s   Unmaintainable: %s",
		riskStyle(m.Healthy).Render(fmt.Sprintf("%d", len(r.unitList.Items()))),
		riskStyle(m.HardToMaintain).Render(fmt.Sprintf("%d", r.totals[m.HardToMaintain])),
		riskStyle(m.Unmaintainable).Render(fmt.Sprintf("%d", r.totals[m.Unmaintainable])),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(r.width)

	body := r.renderList()
	footer := footerStyle.Render("↑/k up • ↓/j down • enter source • / filter • q quit")

	if r.showCode {
		body = r.renderCode()
		footer = footerStyle.Render("↑/k up • ↓/j down • esc back • q quit")
	}

	if r.err != nil {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(r.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		body,
		footer,
	)
}

func (r reportModel) container() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)
}

func (r reportModel) header(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(r.unitList.Width()).
		Render(text)
}

func (r reportModel) renderList() string {
	headers := r.header(fmt.Sprintf("%*s  %s", lengthWidth, "Length", "Function"))

	return r.container().Render(lipgloss.JoinVertical(lipgloss.Left, headers, r.unitList.View()))
}

func (r reportModel) renderCode() string {
	headers := r.header(fmt.Sprintf("%s  %s:%d-%d (%d lines)",
		r.current.Name, r.current.File,
		r.current.Measurement.Start.Line, r.current.Measurement.End.Line,
		r.current.Measurement.Length))

	return r.container().Render(lipgloss.JoinVertical(lipgloss.Left, headers, r.code.View()))
}
