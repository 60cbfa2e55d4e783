// Package controller provides the terminal front ends for scan results.
package controller

import (
	"github.com/mouse-blink/codelimit/internal/languages"
	m "github.com/mouse-blink/codelimit/internal/model"
)

// SourceLoader returns the contents of a file named as in a report.
type SourceLoader func(file m.Path) ([]byte, error)

// UI defines how scan results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayTotals shows the per-language totals and their change since the previous scan.
	DisplayTotals(delta m.ScanTotalsDelta) error
	// DisplayUnits lists units longest first; hidden is the number of units left out.
	DisplayUnits(units []m.ReportUnit, hidden int, thresholds m.Thresholds) error
	// DisplayCheck shows the outcome of a check run.
	DisplayCheck(result m.CheckResult) error
	// DisplayJSON writes the report as JSON.
	DisplayJSON(report *m.Report) error
	// DisplayLanguages lists the supported languages.
	DisplayLanguages(langs []languages.Descriptor) error
	// DisplayReport lets the user browse units and their source.
	DisplayReport(units []m.ReportUnit, load SourceLoader, thresholds m.Thresholds) error
}
