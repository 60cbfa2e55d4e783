// Package matcher is a small combinator library of predicates over token
// sequences, used to find declaration headers without a grammar.
package matcher

import (
	"strings"

	"github.com/mouse-blink/codelimit/internal/token"
)

// Predicate is evaluated at a position of a token sequence. On success it
// returns the number of tokens it consumes, which may be zero.
type Predicate interface {
	Match(tokens token.Sequence, pos int) (n int, ok bool)
}

type literal struct {
	kind token.Kind
	text string
}

// Literal matches one token of the given kind and text.
func Literal(kind token.Kind, text string) Predicate {
	return literal{kind: kind, text: text}
}

// Keyword matches one keyword token with the given text.
func Keyword(text string) Predicate {
	return literal{kind: token.Keyword, text: text}
}

func (p literal) Match(tokens token.Sequence, pos int) (int, bool) {
	if pos < len(tokens) && tokens[pos].Is(p.kind, p.text) {
		return 1, true
	}

	return 0, false
}

type anyName struct{}

// Name matches any single name token.
func Name() Predicate {
	return anyName{}
}

func (anyName) Match(tokens token.Sequence, pos int) (int, bool) {
	if pos < len(tokens) && tokens[pos].Kind == token.Name {
		return 1, true
	}

	return 0, false
}

type symbol struct {
	text string
}

// Symbol matches adjacent punctuation tokens whose texts concatenate to text,
// so "->" matches both a single "->" token and "-" directly followed by ">".
func Symbol(text string) Predicate {
	return symbol{text: text}
}

func (p symbol) Match(tokens token.Sequence, pos int) (int, bool) {
	rest := p.text

	for i := pos; i < len(tokens) && rest != ""; i++ {
		t := tokens[i]
		if t.Kind != token.Punctuation || !strings.HasPrefix(rest, t.Text) {
			return 0, false
		}

		if i > pos && tokens[i-1].End() != t.Offset {
			return 0, false
		}

		rest = rest[len(t.Text):]
		if rest == "" {
			return i - pos + 1, true
		}
	}

	return 0, false
}

type lookahead struct {
	inner Predicate
}

// Lookahead matches where inner matches but consumes no tokens.
func Lookahead(inner Predicate) Predicate {
	return lookahead{inner: inner}
}

func (p lookahead) Match(tokens token.Sequence, pos int) (int, bool) {
	if _, ok := p.inner.Match(tokens, pos); ok {
		return 0, true
	}

	return 0, false
}

type sequence []Predicate

// Sequence matches when every predicate matches consecutively.
func Sequence(predicates ...Predicate) Predicate {
	return sequence(predicates)
}

func (s sequence) Match(tokens token.Sequence, pos int) (int, bool) {
	total := 0

	for _, p := range s {
		n, ok := p.Match(tokens, pos+total)
		if !ok {
			return 0, false
		}

		total += n
	}

	return total, true
}

type optional struct {
	inner Predicate
}

// Optional matches inner when possible and otherwise matches nothing.
func Optional(inner Predicate) Predicate {
	return optional{inner: inner}
}

func (p optional) Match(tokens token.Sequence, pos int) (int, bool) {
	if n, ok := p.inner.Match(tokens, pos); ok {
		return n, true
	}

	return 0, true
}

type oneOf []Predicate

// OneOf matches the first alternative that matches.
func OneOf(alternatives ...Predicate) Predicate {
	return oneOf(alternatives)
}

func (o oneOf) Match(tokens token.Sequence, pos int) (int, bool) {
	for _, p := range o {
		if n, ok := p.Match(tokens, pos); ok {
			return n, true
		}
	}

	return 0, false
}

type repeat struct {
	inner Predicate
}

// Repeat matches inner zero or more times.
func Repeat(inner Predicate) Predicate {
	return repeat{inner: inner}
}

func (p repeat) Match(tokens token.Sequence, pos int) (int, bool) {
	total := 0

	for {
		n, ok := p.inner.Match(tokens, pos+total)
		if !ok || n == 0 {
			return total, true
		}

		total += n
	}
}

type balanced struct {
	openText, closeText string
}

// Balanced matches from an open punctuation token through its matching close.
// Delimiters inside strings and comments are never counted because the lexer
// has already classified them.
func Balanced(openText, closeText string) Predicate {
	return balanced{openText: openText, closeText: closeText}
}

func (p balanced) Match(tokens token.Sequence, pos int) (int, bool) {
	if pos >= len(tokens) || !tokens[pos].Is(token.Punctuation, p.openText) {
		return 0, false
	}

	if end := CloseIndex(tokens, pos, p.openText, p.closeText); end >= 0 {
		return end - pos + 1, true
	}

	return 0, false
}

// CloseIndex returns the index of the token closing the delimiter at open, or
// -1 when the stream ends first.
func CloseIndex(tokens token.Sequence, open int, openText, closeText string) int {
	depth := 0

	for i := open; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind != token.Punctuation {
			continue
		}

		switch t.Text {
		case openText:
			depth++
		case closeText:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

type until struct {
	stop Predicate
}

// Until consumes tokens up to, but not including, the first position where
// stop matches. It fails when stop never matches.
func Until(stop Predicate) Predicate {
	return until{stop: stop}
}

func (p until) Match(tokens token.Sequence, pos int) (int, bool) {
	for i := pos; i < len(tokens); i++ {
		if _, ok := p.stop.Match(tokens, i); ok {
			return i - pos, true
		}
	}

	return 0, false
}
