// Package languages binds file types to a tokenizer and a scope extractor.
package languages

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mouse-blink/codelimit/internal/scope"
)

// ErrUnsupportedLanguage is returned for files no registered language handles.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language describes one supported language.
type Language interface {
	scope.Extractor
	// Name returns the display name, e.g. Python.
	Name() string
	// Lexer returns the name of the tokenizer for this language.
	Lexer() string
	// Extensions returns the file suffixes handled, dot included.
	Extensions() []string
}

// Descriptor lists a language and its extensions for display.
type Descriptor struct {
	Name       string
	Extensions []string
}

// Registry maps file extensions to languages.
type Registry struct {
	languages []Language
	byExt     map[string]Language
}

// NewRegistry creates a registry holding every built-in language.
func NewRegistry() *Registry {
	return NewRegistryWith(&Python{}, &JavaScript{})
}

// NewRegistryWith creates a registry holding the given languages.
func NewRegistryWith(languages ...Language) *Registry {
	r := &Registry{byExt: make(map[string]Language)}
	for _, language := range languages {
		r.Register(language)
	}

	return r
}

// Register adds language, replacing earlier owners of its extensions.
func (r *Registry) Register(language Language) {
	r.languages = append(r.languages, language)
	for _, ext := range language.Extensions() {
		r.byExt[strings.ToLower(ext)] = language
	}
}

// ForFile returns the language handling path.
func (r *Registry) ForFile(path string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if language, ok := r.byExt[ext]; ok {
		return language, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
}

// ByName returns the language registered under name, ignoring case.
func (r *Registry) ByName(name string) (Language, error) {
	for _, language := range r.languages {
		if strings.EqualFold(language.Name(), name) {
			return language, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, name)
}

// Supports reports whether path has a registered extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(path))]

	return ok
}

// Languages returns the registered languages sorted by name.
func (r *Registry) Languages() []Descriptor {
	result := make([]Descriptor, 0, len(r.languages))

	for _, language := range r.languages {
		extensions := append([]string(nil), language.Extensions()...)
		sort.Strings(extensions)
		result = append(result, Descriptor{Name: language.Name(), Extensions: extensions})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
