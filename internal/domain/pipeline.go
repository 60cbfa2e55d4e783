package domain

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/codelimit/internal/languages"
	m "github.com/mouse-blink/codelimit/internal/model"
	"github.com/mouse-blink/codelimit/internal/scope"
	"github.com/mouse-blink/codelimit/internal/token"
)

// ScanSource measures every function of one source file. name is the path
// recorded in the entry and its units. When src cannot be tokenised the
// entry has no units, counts its non-blank lines and the error wraps
// token.ErrTokenize.
func ScanSource(name m.Path, language languages.Language, src []byte, marker string) (m.SourceFileEntry, error) {
	entry := m.SourceFileEntry{
		Path:     name,
		Language: language.Name(),
		Units:    []m.ReportUnit{},
	}

	tokens, err := token.Lex(language.Lexer(), string(src))
	if err != nil {
		entry.LinesOfCode = nonBlankLines(string(src))

		return entry, fmt.Errorf("%s: %w", name, err)
	}

	entry.LinesOfCode = scope.LinesOfCode(tokens)

	for _, s := range scope.Flatten(scope.Build(tokens, language, marker)) {
		entry.Units = append(entry.Units, m.ReportUnit{
			File:        name,
			Name:        s.Name(),
			Measurement: scope.Measure(s),
		})
	}

	return entry, nil
}

func nonBlankLines(src string) int {
	n := 0

	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}

	return n
}
