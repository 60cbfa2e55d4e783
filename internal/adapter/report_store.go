package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/codelimit/internal/model"
)

// Report cache location below a codebase root.
const (
	CacheDir   = ".codelimit_cache"
	ReportFile = "codelimit.yaml"
)

// ReportStore persists and retrieves the report of a codebase.
type ReportStore interface {
	// SaveReport writes report below root, replacing any previous one.
	SaveReport(root m.Path, report *m.Report) error
	// LoadReport returns the report stored below root, or nil when there is none.
	LoadReport(root m.Path) (*m.Report, error)
}

// LocalReportStore keeps one YAML report per codebase in its cache directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// ReportPath returns the report file location for root.
func (rs *LocalReportStore) ReportPath(root m.Path) string {
	return filepath.Join(string(root), CacheDir, ReportFile)
}

// SaveReport implements ReportStore.
func (rs *LocalReportStore) SaveReport(root m.Path, report *m.Report) error {
	path := rs.ReportPath(root)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport implements ReportStore.
func (rs *LocalReportStore) LoadReport(root m.Path) (*m.Report, error) {
	// #nosec G304 - path is derived from the codebase root
	data, err := os.ReadFile(rs.ReportPath(root))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", rs.ReportPath(root), err)
	}

	if report.Codebase.Files == nil {
		report.Codebase = m.NewCodebase()
	}

	return &report, nil
}
