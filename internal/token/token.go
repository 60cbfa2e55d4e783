// Package token turns source text into a normalised, located token stream.
package token

import (
	"strings"

	m "github.com/mouse-blink/codelimit/internal/model"
)

// Kind is the coarse class of a token.
type Kind int

// Available Kind values.
const (
	Other Kind = iota
	Keyword
	Name
	Punctuation
	String
	Number
	Comment
	Newline
	Whitespace
)

var kindNames = [...]string{
	Other:       "other",
	Keyword:     "keyword",
	Name:        "name",
	Punctuation: "punctuation",
	String:      "string",
	Number:      "number",
	Comment:     "comment",
	Newline:     "newline",
	Whitespace:  "whitespace",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Token is one lexical unit with its position in the source.
type Token struct {
	Kind Kind
	Text string
	m.Location
	// Offset is the byte offset of the token in the lexed text.
	Offset int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

// EndLine returns the line holding the last character of the token.
func (t Token) EndLine() int {
	return t.Line + strings.Count(strings.TrimSuffix(t.Text, "\n"), "\n")
}

// IsCode reports whether the token is neither a comment nor layout.
func (t Token) IsCode() bool {
	return t.Kind != Comment && t.Kind != Newline && t.Kind != Whitespace
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t Token) String() string {
	return t.Text
}

// Sequence is an ordered view over a contiguous run of tokens.
type Sequence []Token

// First returns the first token, or the zero Token when empty.
func (s Sequence) First() Token {
	if len(s) == 0 {
		return Token{}
	}

	return s[0]
}

// Last returns the last token, or the zero Token when empty.
func (s Sequence) Last() Token {
	if len(s) == 0 {
		return Token{}
	}

	return s[len(s)-1]
}

// Start is the location of the first token.
func (s Sequence) Start() m.Location {
	return s.First().Location
}

// End is the location of the last token.
func (s Sequence) End() m.Location {
	return s.Last().Location
}

// String joins the token texts with single spaces. It is not a round trip of the source.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.Text
	}

	return strings.Join(parts, " ")
}

// Code returns the tokens that are neither comments nor layout.
func (s Sequence) Code() Sequence {
	out := make(Sequence, 0, len(s))

	for _, t := range s {
		if t.IsCode() {
			out = append(out, t)
		}
	}

	return out
}

// Between returns the tokens whose offsets lie in [start, end).
func (s Sequence) Between(start, end int) Sequence {
	lo := s.IndexAt(start)
	hi := s.IndexAt(end)

	return s[lo:hi]
}

// IndexAt returns the index of the first token starting at or after offset.
func (s Sequence) IndexAt(offset int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid].Offset < offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
