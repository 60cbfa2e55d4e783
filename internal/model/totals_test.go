package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(path Path, language string, loc int, lengths ...int) SourceFileEntry {
	e := SourceFileEntry{Path: path, Language: language, LinesOfCode: loc}
	for _, length := range lengths {
		e.Units = append(e.Units, ReportUnit{File: path, Name: "f", Measurement: Measurement{Length: length}})
	}

	return e
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		current, previous int
		want              string
	}{
		{5, 5, "5"},
		{7, 5, "7 (+2)"},
		{3, 5, "3 (-2)"},
		{0, 0, "0"},
		{0, 4, "0 (-4)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDelta(tt.current, tt.previous))
	}
}

func TestScanTotals_Add(t *testing.T) {
	thresholds := Thresholds{HardToMaintain: 15, Unmaintainable: 30}

	totals := ScanTotals{}
	totals.Add(entry("a.py", "Python", 100, 10, 20, 35), thresholds)
	totals.Add(entry("b.py", "Python", 50, 16), thresholds)
	totals.Add(entry("c.js", "JavaScript", 300, 31), thresholds)

	assert.Equal(t, LanguageTotals{
		Language: "Python", Files: 2, Functions: 4, LinesOfCode: 150, HardToMaintain: 2, Unmaintainable: 1,
	}, totals["Python"])

	assert.Equal(t, 3, totals.TotalFiles())
	assert.Equal(t, 5, totals.TotalFunctions())
	assert.Equal(t, 450, totals.TotalLOC())
	assert.Equal(t, 2, totals.TotalHardToMaintain())
	assert.Equal(t, 2, totals.TotalUnmaintainable())

	languages := totals.Languages()
	assert.Equal(t, "JavaScript", languages[0].Language)
	assert.Equal(t, "Python", languages[1].Language)
}

func TestScanTotals_AddIsOrderIndependent(t *testing.T) {
	thresholds := DefaultThresholds()
	entries := []SourceFileEntry{
		entry("a.py", "Python", 10, 5, 40),
		entry("b.js", "JavaScript", 20, 70),
		entry("c.py", "Python", 30, 61),
	}

	forward := ScanTotals{}
	for _, e := range entries {
		forward.Add(e, thresholds)
	}

	backward := ScanTotals{}
	for i := len(entries) - 1; i >= 0; i-- {
		backward.Add(entries[i], thresholds)
	}

	assert.Equal(t, forward, backward)
}

func TestScanTotalsDelta(t *testing.T) {
	thresholds := DefaultThresholds()

	previous := ScanTotals{}
	previous.Add(entry("a.py", "Python", 10, 40), thresholds)

	current := ScanTotals{}
	current.Add(entry("a.py", "Python", 12, 40), thresholds)
	current.Add(entry("b.py", "Python", 8, 70), thresholds)

	snapshot := current.Sum()
	delta := NewScanTotalsDelta(current, previous)

	assert.Equal(t, "2 (+1)", delta.TotalFiles())
	assert.Equal(t, "2 (+1)", delta.TotalFunctions())
	assert.Equal(t, "20 (+10)", delta.TotalLOC())
	assert.Equal(t, "1", delta.TotalHardToMaintain())
	assert.Equal(t, "1 (+1)", delta.TotalUnmaintainable())

	assert.Equal(t, snapshot, current.Sum())
	assert.Equal(t, 1, previous.TotalFiles())
}

func TestScanTotalsDelta_WithoutPrevious(t *testing.T) {
	current := ScanTotals{}
	current.Add(entry("a.py", "Python", 10, 40), DefaultThresholds())

	delta := NewScanTotalsDelta(current, nil)

	assert.Equal(t, "1", delta.TotalFiles())
	assert.Equal(t, "10", delta.TotalLOC())
}
