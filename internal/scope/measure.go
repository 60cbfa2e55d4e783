package scope

import (
	m "github.com/mouse-blink/codelimit/internal/model"
	"github.com/mouse-blink/codelimit/internal/token"
)

// Measure counts the lines of s holding at least one code token, from the
// start of its lead to the end of its body. Lines holding code of a child
// scope belong to the child and are not counted.
func Measure(s *Scope) m.Measurement {
	lines := codeLines(s.Tokens)
	for _, child := range s.Children {
		for line := range codeLines(child.Tokens) {
			delete(lines, line)
		}
	}

	var (
		first, last token.Token
		seen        bool
	)

	for _, t := range s.Tokens {
		if !t.IsCode() || !spansAny(lines, t) {
			continue
		}

		if !seen {
			first = t
			seen = true
		}

		last = t
	}

	if !seen {
		code := s.Tokens.Code()
		first, last = code.First(), code.Last()
	}

	return m.Measurement{
		Start:  first.Location,
		End:    last.Location,
		Length: len(lines),
	}
}

// LinesOfCode counts the lines of tokens holding at least one code token.
func LinesOfCode(tokens token.Sequence) int {
	return len(codeLines(tokens))
}

func codeLines(tokens token.Sequence) map[int]struct{} {
	lines := make(map[int]struct{})

	for _, t := range tokens {
		if !t.IsCode() {
			continue
		}

		for line := t.Line; line <= t.EndLine(); line++ {
			lines[line] = struct{}{}
		}
	}

	return lines
}

func spansAny(lines map[int]struct{}, t token.Token) bool {
	for line := t.Line; line <= t.EndLine(); line++ {
		if _, ok := lines[line]; ok {
			return true
		}
	}

	return false
}
