// Package model defines the data structures shared by the scanner, the report
// store and the UI.
package model

// Path represents a file system path.
type Path string

// Location is a 1-based line/column position inside a source file.
type Location struct {
	Line   int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
}

// Before reports whether l comes strictly before other.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}

	return l.Column < other.Column
}

// SourceFile is a discovered file: Path is used to read it, Name is the
// slash-separated name recorded in reports.
type SourceFile struct {
	Path Path
	Name Path
}

// SourceFileEntry holds the measurements of one scanned source file.
type SourceFileEntry struct {
	Path        Path         `yaml:"path" json:"path"`
	Checksum    string       `yaml:"checksum" json:"checksum"`
	Language    string       `yaml:"language" json:"language"`
	LinesOfCode int          `yaml:"loc" json:"loc"`
	Units       []ReportUnit `yaml:"units" json:"units"`
}
