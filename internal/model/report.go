package model

import (
	"sort"
)

// ReportVersion is the serialization version written into new reports.
const ReportVersion = "1"

// Report is the persisted result of scanning a codebase.
type Report struct {
	UUID     string   `yaml:"uuid" json:"uuid"`
	Version  string   `yaml:"version" json:"version"`
	Root     Path     `yaml:"root" json:"root"`
	Marker   string   `yaml:"marker" json:"marker"`
	Codebase Codebase `yaml:"codebase" json:"codebase"`
}

// Codebase maps root-relative file paths to their entries.
type Codebase struct {
	Files map[Path]SourceFileEntry `yaml:"files" json:"files"`
}

// NewCodebase returns an empty codebase.
func NewCodebase() Codebase {
	return Codebase{Files: make(map[Path]SourceFileEntry)}
}

// Add stores entry under its path, replacing any previous entry.
func (c *Codebase) Add(entry SourceFileEntry) {
	if c.Files == nil {
		c.Files = make(map[Path]SourceFileEntry)
	}

	c.Files[entry.Path] = entry
}

// Units returns every unit of the report ordered by file path and position.
func (r *Report) Units() []ReportUnit {
	paths := make([]Path, 0, len(r.Codebase.Files))
	for path := range r.Codebase.Files {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	var units []ReportUnit
	for _, path := range paths {
		units = append(units, r.Codebase.Files[path].Units...)
	}

	return units
}

// UnitsLongerThan returns units whose length exceeds threshold, longest first.
func (r *Report) UnitsLongerThan(threshold int) []ReportUnit {
	var units []ReportUnit

	for _, unit := range r.Units() {
		if unit.Measurement.Length > threshold {
			units = append(units, unit)
		}
	}

	SortByLength(units)

	return units
}

// Totals folds the report into per-language totals.
func (r *Report) Totals(thresholds Thresholds) ScanTotals {
	totals := ScanTotals{}

	for _, entry := range r.Codebase.Files {
		totals.Add(entry, thresholds)
	}

	return totals
}

// SortByLength orders units longest first, then by file and start line.
func SortByLength(units []ReportUnit) {
	sort.SliceStable(units, func(i, j int) bool {
		a, b := units[i], units[j]
		if a.Measurement.Length != b.Measurement.Length {
			return a.Measurement.Length > b.Measurement.Length
		}

		if a.File != b.File {
			return a.File < b.File
		}

		return a.Measurement.Start.Before(b.Measurement.Start)
	})
}
