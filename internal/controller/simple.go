package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/codelimit/internal/languages"
	m "github.com/mouse-blink/codelimit/internal/model"
)

// Messages shared by the text and interactive front ends.
const (
	msgHappy    = "Refactoring not necessary, happy coding!"
	msgMoreRows = "%d more rows, use --full option to get all rows\n"
)

// SimpleUI implements UI by printing to the cobra command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTotals prints one row per language and a footer with the totals.
func (s *SimpleUI) DisplayTotals(delta m.ScanTotalsDelta) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Language", "Files", "Lines of Code", "Functions", "⚠", "✖"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, lt := range delta.Current.Languages() {
		prev := delta.Previous[lt.Language]
		table.Append([]string{
			lt.Language,
			m.FormatDelta(lt.Files, prev.Files),
			m.FormatDelta(lt.LinesOfCode, prev.LinesOfCode),
			m.FormatDelta(lt.Functions, prev.Functions),
			m.FormatDelta(lt.HardToMaintain, prev.HardToMaintain),
			m.FormatDelta(lt.Unmaintainable, prev.Unmaintainable),
		})
	}

	table.SetFooter([]string{
		"Totals",
		delta.TotalFiles(),
		delta.TotalLOC(),
		delta.TotalFunctions(),
		delta.TotalHardToMaintain(),
		delta.TotalUnmaintainable(),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayUnits prints the units with their length coloured by risk.
func (s *SimpleUI) DisplayUnits(units []m.ReportUnit, hidden int, thresholds m.Thresholds) error {
	if len(units) == 0 {
		s.printf("%s\n", msgHappy)

		return nil
	}

	s.printf("%s", renderUnits(units, thresholds))

	if hidden > 0 {
		s.printf(msgMoreRows, hidden)
	}

	return nil
}

// DisplayCheck prints the failing units and a one-line summary.
func (s *SimpleUI) DisplayCheck(result m.CheckResult) error {
	if result.Passed() {
		if !result.Quiet {
			s.printf("Checked %d files, %d functions: %s\n", result.Files, len(result.Units), msgHappy)
		}

		return nil
	}

	for _, unit := range result.Failing {
		s.printf("%s:%d:%d: %s %s (%d lines)\n",
			unit.File, unit.Measurement.Start.Line, unit.Measurement.Start.Column,
			riskStyle(m.Unmaintainable).Render(riskSymbol(m.Unmaintainable)),
			unit.Name, unit.Measurement.Length)
	}

	s.printf("Checked %d files, %d functions: %d unmaintainable (longer than %d lines)\n",
		result.Files, len(result.Units), len(result.Failing), result.Thresholds.Unmaintainable)

	return nil
}

// DisplayJSON writes the report as indented JSON.
func (s *SimpleUI) DisplayJSON(report *m.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	s.printf("%s\n", data)

	return nil
}

// DisplayLanguages prints the supported languages and their extensions.
func (s *SimpleUI) DisplayLanguages(langs []languages.Descriptor) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Language", "Extensions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, lang := range langs {
		table.Append([]string{lang.Name, strings.Join(lang.Extensions, " ")})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayReport lists every unit; browsing needs a terminal.
func (s *SimpleUI) DisplayReport(units []m.ReportUnit, _ SourceLoader, thresholds m.Thresholds) error {
	return s.DisplayUnits(units, 0, thresholds)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderUnits(units []m.ReportUnit, thresholds m.Thresholds) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"", "Length", "Function", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, unit := range units {
		risk := thresholds.Classify(unit.Measurement.Length)
		style := riskStyle(risk)
		table.Append([]string{
			style.Render(riskSymbol(risk)),
			style.Render(fmt.Sprintf("%d", unit.Measurement.Length)),
			unit.Name,
			fmt.Sprintf("%s:%d", unit.File, unit.Measurement.Start.Line),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func riskStyle(risk m.Risk) lipgloss.Style {
	switch risk {
	case m.Unmaintainable:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case m.HardToMaintain:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	}
}

func riskSymbol(risk m.Risk) string {
	switch risk {
	case m.Unmaintainable:
		return "✖"
	case m.HardToMaintain:
		return "⚠"
	default:
		return "✔"
	}
}
