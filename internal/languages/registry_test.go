package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ForFile(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		path string
		want string
	}{
		{"src/app.py", "Python"},
		{"src/APP.PY", "Python"},
		{"web/index.js", "JavaScript"},
		{"web/module.mjs", "JavaScript"},
		{"web/view.jsx", "JavaScript"},
	}

	for _, tt := range tests {
		language, err := r.ForFile(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, language.Name())
		assert.True(t, r.Supports(tt.path))
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewRegistry()

	_, err := r.ForFile("main.go")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.False(t, r.Supports("README"))

	_, err = r.ByName("cobol")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestRegistry_ByNameAndLanguages(t *testing.T) {
	r := NewRegistry()

	language, err := r.ByName("python")
	require.NoError(t, err)
	assert.Equal(t, "python", language.Lexer())

	descriptors := r.Languages()
	require.Len(t, descriptors, 2)
	assert.Equal(t, "JavaScript", descriptors[0].Name)
	assert.Equal(t, []string{".cjs", ".js", ".jsx", ".mjs"}, descriptors[0].Extensions)
	assert.Equal(t, "Python", descriptors[1].Name)
}
