package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/codelimit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(root string) *m.Report {
	codebase := m.NewCodebase()
	codebase.Add(m.SourceFileEntry{
		Path:        "app.py",
		Checksum:    "abc123",
		Language:    "Python",
		LinesOfCode: 12,
		Units: []m.ReportUnit{
			{
				File: "app.py",
				Name: "main",
				Measurement: m.Measurement{
					Start:  m.Location{Line: 1, Column: 1},
					End:    m.Location{Line: 9, Column: 15},
					Length: 9,
				},
			},
		},
	})

	return &m.Report{
		UUID:     "4a6c3e8e-0d62-4f0e-9a57-6cbd3c4e7f10",
		Version:  m.ReportVersion,
		Root:     m.Path(root),
		Marker:   m.DefaultMarker,
		Codebase: codebase,
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	rs := NewReportStore()
	report := sampleReport(root)

	require.NoError(t, rs.SaveReport(m.Path(root), report))

	info, err := os.Stat(filepath.Join(root, CacheDir, ReportFile))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	loaded, err := rs.LoadReport(m.Path(root))
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, report, loaded)
}

func TestLocalReportStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	rs := NewReportStore()

	first := sampleReport(root)
	require.NoError(t, rs.SaveReport(m.Path(root), first))

	second := sampleReport(root)
	second.Codebase = m.NewCodebase()
	require.NoError(t, rs.SaveReport(m.Path(root), second))

	loaded, err := rs.LoadReport(m.Path(root))
	require.NoError(t, err)
	assert.Empty(t, loaded.Codebase.Files)

	_, err = os.Stat(filepath.Join(root, CacheDir, ReportFile+".tmp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalReportStore_LoadMissing(t *testing.T) {
	t.Parallel()

	loaded, err := NewReportStore().LoadReport(m.Path(t.TempDir()))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLocalReportStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, CacheDir, ReportFile), "codebase: [unclosed\n")

	_, err := NewReportStore().LoadReport(m.Path(root))
	assert.Error(t, err)
}
