package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitAt(file Path, line, length int) ReportUnit {
	return ReportUnit{File: file, Name: "f", Measurement: Measurement{Start: Location{Line: line, Column: 1}, Length: length}}
}

func TestReport_Units(t *testing.T) {
	report := Report{Codebase: NewCodebase()}
	report.Codebase.Add(SourceFileEntry{Path: "b.py", Units: []ReportUnit{unitAt("b.py", 1, 5)}})
	report.Codebase.Add(SourceFileEntry{Path: "a.py", Units: []ReportUnit{unitAt("a.py", 1, 3), unitAt("a.py", 9, 7)}})

	units := report.Units()
	require.Len(t, units, 3)
	assert.Equal(t, Path("a.py"), units[0].File)
	assert.Equal(t, 9, units[1].Measurement.Start.Line)
	assert.Equal(t, Path("b.py"), units[2].File)
}

func TestReport_UnitsLongerThan(t *testing.T) {
	report := Report{Codebase: NewCodebase()}
	report.Codebase.Add(SourceFileEntry{Path: "a.py", Units: []ReportUnit{unitAt("a.py", 1, 31), unitAt("a.py", 50, 30), unitAt("a.py", 90, 45)}})
	report.Codebase.Add(SourceFileEntry{Path: "b.py", Units: []ReportUnit{unitAt("b.py", 1, 45)}})

	units := report.UnitsLongerThan(30)
	require.Len(t, units, 3)
	assert.Equal(t, []int{45, 45, 31}, []int{units[0].Measurement.Length, units[1].Measurement.Length, units[2].Measurement.Length})
	assert.Equal(t, Path("a.py"), units[0].File)
	assert.Equal(t, Path("b.py"), units[1].File)
}

func TestReport_Totals(t *testing.T) {
	report := Report{Codebase: NewCodebase()}
	report.Codebase.Add(SourceFileEntry{Path: "a.py", Language: "Python", LinesOfCode: 80, Units: []ReportUnit{unitAt("a.py", 1, 61)}})

	totals := report.Totals(DefaultThresholds())
	assert.Equal(t, 1, totals.TotalUnmaintainable())
	assert.Equal(t, 80, totals.TotalLOC())
}

func TestCodebase_AddReplaces(t *testing.T) {
	var codebase Codebase

	codebase.Add(SourceFileEntry{Path: "a.py", Checksum: "1"})
	codebase.Add(SourceFileEntry{Path: "a.py", Checksum: "2"})

	require.Len(t, codebase.Files, 1)
	assert.Equal(t, "2", codebase.Files["a.py"].Checksum)
}

func TestLocation_Before(t *testing.T) {
	assert.True(t, Location{Line: 1, Column: 9}.Before(Location{Line: 2, Column: 1}))
	assert.True(t, Location{Line: 2, Column: 1}.Before(Location{Line: 2, Column: 3}))
	assert.False(t, Location{Line: 2, Column: 3}.Before(Location{Line: 2, Column: 3}))
}

func TestCheckResult_Passed(t *testing.T) {
	assert.True(t, CheckResult{}.Passed())
	assert.False(t, CheckResult{Failing: []ReportUnit{unitAt("a.py", 1, 99)}}.Passed())
}
