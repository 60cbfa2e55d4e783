package controller

import (
	"time"

	m "github.com/mouse-blink/codelimit/internal/model"
)

// Message types.
type tickMsg time.Time

type sourceMsg struct {
	file  m.Path
	lines []string
	err   error
}

// List item types.
type unitItem struct {
	unit m.ReportUnit
	risk m.Risk
}

func (u unitItem) FilterValue() string {
	return u.unit.Name + " " + string(u.unit.File)
}
