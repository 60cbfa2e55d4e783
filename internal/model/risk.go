package model

import "fmt"

// Risk is the maintainability band of a unit.
type Risk int

// Available Risk values.
const (
	Healthy Risk = iota
	HardToMaintain
	Unmaintainable
)

func (r Risk) String() string {
	switch r {
	case Healthy:
		return "healthy"
	case HardToMaintain:
		return "hard-to-maintain"
	case Unmaintainable:
		return "unmaintainable"
	default:
		return fmt.Sprintf("risk(%d)", int(r))
	}
}

// Default classification thresholds.
const (
	DefaultHardToMaintain = 30
	DefaultUnmaintainable = 60
)

// Thresholds are the two upper bounds used to classify a unit length.
type Thresholds struct {
	HardToMaintain int `yaml:"hard_to_maintain" json:"hard_to_maintain"`
	Unmaintainable int `yaml:"unmaintainable" json:"unmaintainable"`
}

// DefaultThresholds returns the thresholds used when nothing is configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HardToMaintain: DefaultHardToMaintain,
		Unmaintainable: DefaultUnmaintainable,
	}
}

// Classify maps a unit length to its risk band.
func (t Thresholds) Classify(length int) Risk {
	switch {
	case length > t.Unmaintainable:
		return Unmaintainable
	case length > t.HardToMaintain:
		return HardToMaintain
	default:
		return Healthy
	}
}

// Valid reports whether the thresholds are positive and ordered.
func (t Thresholds) Valid() bool {
	return t.HardToMaintain > 0 && t.HardToMaintain < t.Unmaintainable
}
