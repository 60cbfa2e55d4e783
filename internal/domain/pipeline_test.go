package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/codelimit/internal/languages"
	m "github.com/mouse-blink/codelimit/internal/model"
	"github.com/mouse-blink/codelimit/internal/scope"
	"github.com/mouse-blink/codelimit/internal/token"
)

const pythonFixture = `import os


def first():
    a = 1
    return a


# nocl
def skipped():
    return 2


def outer():
    def inner():
        return 3
    return inner
`

func TestScanSource_Python(t *testing.T) {
	entry, err := ScanSource("pkg/mod.py", &languages.Python{}, []byte(pythonFixture), m.DefaultMarker)
	require.NoError(t, err)

	assert.Equal(t, m.Path("pkg/mod.py"), entry.Path)
	assert.Equal(t, "Python", entry.Language)
	assert.Equal(t, 10, entry.LinesOfCode)

	names := make([]string, 0, len(entry.Units))
	lengths := make(map[string]int)

	for _, unit := range entry.Units {
		assert.Equal(t, m.Path("pkg/mod.py"), unit.File)
		names = append(names, unit.Name)
		lengths[unit.Name] = unit.Measurement.Length
	}

	assert.Equal(t, []string{"first", "outer", "inner"}, names)
	assert.Equal(t, map[string]int{"first": 3, "outer": 2, "inner": 2}, lengths)
}

func TestScanSource_JavaScript(t *testing.T) {
	src := "function foo() {\n  return 'bar';\n}\n"

	entry, err := ScanSource("foo.js", &languages.JavaScript{}, []byte(src), m.DefaultMarker)
	require.NoError(t, err)

	require.Len(t, entry.Units, 1)
	assert.Equal(t, "foo", entry.Units[0].Name)
	assert.Equal(t, 3, entry.Units[0].Measurement.Length)
	assert.Equal(t, m.Location{Line: 1, Column: 1}, entry.Units[0].Measurement.Start)
	assert.Equal(t, 3, entry.Units[0].Measurement.End.Line)
}

func TestScanSource_CustomMarker(t *testing.T) {
	entry, err := ScanSource("mod.py", &languages.Python{}, []byte(pythonFixture), "skipme")
	require.NoError(t, err)

	assert.Len(t, entry.Units, 4)
}

func TestScanSource_EmptyFile(t *testing.T) {
	entry, err := ScanSource("empty.py", &languages.Python{}, nil, m.DefaultMarker)
	require.NoError(t, err)

	assert.Zero(t, entry.LinesOfCode)
	assert.NotNil(t, entry.Units)
	assert.Empty(t, entry.Units)
}

type brokenLanguage struct{}

func (brokenLanguage) Name() string { return "Broken" }
func (brokenLanguage) Lexer() string { return "no-such-lexer" }
func (brokenLanguage) Extensions() []string { return []string{".broken"} }
func (brokenLanguage) ExtractHeaders(token.Sequence) []scope.Header { return nil }
func (brokenLanguage) ExtractBlocks(token.Sequence, []scope.Header) []*scope.Block { return nil }

func TestScanSource_TokenizeFailure(t *testing.T) {
	entry, err := ScanSource("x.broken", brokenLanguage{}, []byte("anything\n\n  more\r\n"), m.DefaultMarker)
	require.ErrorIs(t, err, token.ErrTokenize)

	assert.Equal(t, "Broken", entry.Language)
	assert.Equal(t, 2, entry.LinesOfCode)
	assert.NotNil(t, entry.Units)
	assert.Empty(t, entry.Units)
}
