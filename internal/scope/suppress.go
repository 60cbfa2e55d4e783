package scope

import (
	"strings"
	"unicode"

	"github.com/mouse-blink/codelimit/internal/token"
)

// Suppressed reports whether header is opted out of measurement by a comment
// containing marker. The comment may sit on the lines of the header up to the
// token opening its body, before the header on its first line, or alone on the
// line directly above it.
func Suppressed(tokens token.Sequence, header Header, marker string) bool {
	if marker == "" || len(header.Tokens) == 0 {
		return false
	}

	first := header.First()
	from := tokens.IndexAt(first.Offset)

	for i := from - 1; i >= 0 && tokens[i].Line == first.Line; i-- {
		if isMarkerComment(tokens[i], marker) {
			return true
		}
	}

	if commentLineHasMarker(tokens, from, first.Line-1, marker) {
		return true
	}

	lastLine := header.Tokens.Last().EndLine()
	for i := tokens.IndexAt(header.Tokens.Last().End()); i < len(tokens); i++ {
		if tokens[i].IsCode() {
			lastLine = tokens[i].Line

			break
		}
	}

	for i := from; i < len(tokens) && tokens[i].Line <= lastLine; i++ {
		if isMarkerComment(tokens[i], marker) {
			return true
		}
	}

	return false
}

// commentLineHasMarker checks the tokens of line, searching backwards from
// index before, and requires the line to hold comments only.
func commentLineHasMarker(tokens token.Sequence, before int, line int, marker string) bool {
	if line < 1 {
		return false
	}

	found := false

	for i := before - 1; i >= 0 && tokens[i].Line >= line; i-- {
		t := tokens[i]
		if t.Line > line {
			continue
		}

		if t.IsCode() {
			return false
		}

		if isMarkerComment(t, marker) {
			found = true
		}
	}

	return found
}

func isMarkerComment(t token.Token, marker string) bool {
	return t.Kind == token.Comment && HasMarker(t.Text, marker)
}

// HasMarker reports whether comment contains marker as a whole word,
// ignoring case and comment delimiters.
func HasMarker(comment string, marker string) bool {
	marker = strings.ToLower(strings.TrimSpace(marker))
	if marker == "" {
		return false
	}

	text := strings.ToLower(stripCommentDelimiters(comment))

	for offset := 0; ; {
		i := strings.Index(text[offset:], marker)
		if i < 0 {
			return false
		}

		start := offset + i
		end := start + len(marker)

		if !wordRuneBefore(text, start) && !wordRuneAt(text, end) {
			return true
		}

		offset = start + 1
	}
}

func stripCommentDelimiters(comment string) string {
	s := strings.TrimSpace(comment)

	switch {
	case strings.HasPrefix(s, "//"):
		s = strings.TrimPrefix(s, "//")
	case strings.HasPrefix(s, "/*"):
		s = strings.TrimSuffix(strings.TrimPrefix(s, "/*"), "*/")
	case strings.HasPrefix(s, "#"):
		s = strings.TrimPrefix(s, "#")
	}

	return strings.TrimSpace(s)
}

func wordRuneBefore(text string, i int) bool {
	if i == 0 {
		return false
	}

	r := []rune(text[:i])

	return isWordRune(r[len(r)-1])
}

func wordRuneAt(text string, i int) bool {
	for _, r := range text[i:] {
		return isWordRune(r)
	}

	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
