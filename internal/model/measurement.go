package model

// Measurement is the line span of one scope and its non-comment line count.
type Measurement struct {
	Start  Location `yaml:"start" json:"start"`
	End    Location `yaml:"end" json:"end"`
	Length int      `yaml:"length" json:"length"`
}

// ReportUnit is a file-qualified measurement of a single function or method.
type ReportUnit struct {
	File        Path        `yaml:"file" json:"file"`
	Name        string      `yaml:"name" json:"name"`
	Measurement Measurement `yaml:"measurement" json:"measurement"`
}
