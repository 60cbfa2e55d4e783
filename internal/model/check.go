package model

// CheckResult summarises a check run over a set of files.
type CheckResult struct {
	Files      int
	Units      []ReportUnit
	Failing    []ReportUnit
	Thresholds Thresholds
	Quiet      bool
}

// Passed reports whether no unit is unmaintainable.
func (c CheckResult) Passed() bool {
	return len(c.Failing) == 0
}
