package model

import (
	"fmt"
	"sort"
)

// LanguageTotals aggregates the counters of one language.
type LanguageTotals struct {
	Language       string
	Files          int
	Functions      int
	LinesOfCode    int
	HardToMaintain int
	Unmaintainable int
}

// ScanTotals holds LanguageTotals keyed by language name.
type ScanTotals map[string]LanguageTotals

// Add folds a scanned file into the totals. The fold is commutative.
func (s ScanTotals) Add(entry SourceFileEntry, thresholds Thresholds) {
	lt := s[entry.Language]
	lt.Language = entry.Language
	lt.Files++
	lt.LinesOfCode += entry.LinesOfCode

	for _, unit := range entry.Units {
		lt.Functions++

		switch thresholds.Classify(unit.Measurement.Length) {
		case HardToMaintain:
			lt.HardToMaintain++
		case Unmaintainable:
			lt.Unmaintainable++
		case Healthy:
		}
	}

	s[entry.Language] = lt
}

// Languages returns the language totals sorted by lines of code, largest first.
func (s ScanTotals) Languages() []LanguageTotals {
	out := make([]LanguageTotals, 0, len(s))
	for _, lt := range s {
		out = append(out, lt)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].LinesOfCode != out[j].LinesOfCode {
			return out[i].LinesOfCode > out[j].LinesOfCode
		}

		return out[i].Language < out[j].Language
	})

	return out
}

// Sum returns the totals over every language.
func (s ScanTotals) Sum() LanguageTotals {
	var sum LanguageTotals

	for _, lt := range s {
		sum.Files += lt.Files
		sum.Functions += lt.Functions
		sum.LinesOfCode += lt.LinesOfCode
		sum.HardToMaintain += lt.HardToMaintain
		sum.Unmaintainable += lt.Unmaintainable
	}

	return sum
}

// TotalFiles returns the number of files over all languages.
func (s ScanTotals) TotalFiles() int { return s.Sum().Files }

// TotalFunctions returns the number of units over all languages.
func (s ScanTotals) TotalFunctions() int { return s.Sum().Functions }

// TotalLOC returns the lines of code over all languages.
func (s ScanTotals) TotalLOC() int { return s.Sum().LinesOfCode }

// TotalHardToMaintain returns the hard-to-maintain units over all languages.
func (s ScanTotals) TotalHardToMaintain() int { return s.Sum().HardToMaintain }

// TotalUnmaintainable returns the unmaintainable units over all languages.
func (s ScanTotals) TotalUnmaintainable() int { return s.Sum().Unmaintainable }

// ScanTotalsDelta renders the current totals against a previous snapshot.
// It never modifies either snapshot.
type ScanTotalsDelta struct {
	Current  ScanTotals
	Previous ScanTotals
}

// NewScanTotalsDelta pairs current with previous. A nil previous renders no deltas.
func NewScanTotalsDelta(current, previous ScanTotals) ScanTotalsDelta {
	if previous == nil {
		previous = current
	}

	return ScanTotalsDelta{Current: current, Previous: previous}
}

// TotalFiles renders the file count with its delta.
func (d ScanTotalsDelta) TotalFiles() string {
	return FormatDelta(d.Current.TotalFiles(), d.Previous.TotalFiles())
}

// TotalFunctions renders the unit count with its delta.
func (d ScanTotalsDelta) TotalFunctions() string {
	return FormatDelta(d.Current.TotalFunctions(), d.Previous.TotalFunctions())
}

// TotalLOC renders the lines of code with its delta.
func (d ScanTotalsDelta) TotalLOC() string {
	return FormatDelta(d.Current.TotalLOC(), d.Previous.TotalLOC())
}

// TotalHardToMaintain renders the hard-to-maintain count with its delta.
func (d ScanTotalsDelta) TotalHardToMaintain() string {
	return FormatDelta(d.Current.TotalHardToMaintain(), d.Previous.TotalHardToMaintain())
}

// TotalUnmaintainable renders the unmaintainable count with its delta.
func (d ScanTotalsDelta) TotalUnmaintainable() string {
	return FormatDelta(d.Current.TotalUnmaintainable(), d.Previous.TotalUnmaintainable())
}

// FormatDelta renders current as "N", or "N (+d)" / "N (-d)" when it differs from previous.
func FormatDelta(current, previous int) string {
	delta := current - previous
	if delta == 0 {
		return fmt.Sprintf("%d", current)
	}

	return fmt.Sprintf("%d (%+d)", current, delta)
}
