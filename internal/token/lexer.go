package token

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	m "github.com/mouse-blink/codelimit/internal/model"
)

// ErrTokenize is returned when a text cannot be tokenised.
var ErrTokenize = errors.New("tokenize")

// Lex tokenises src with the chroma lexer registered as lexerName and
// normalises the result: layout text is split into Newline and Whitespace
// tokens, comments lose their trailing newline, adjacent name fragments are
// merged and every token gets a 1-based line and column.
func Lex(lexerName string, src string) (Sequence, error) {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		return nil, fmt.Errorf("%w: no lexer named %q", ErrTokenize, lexerName)
	}

	src = strings.ReplaceAll(src, "\r\n", "\n")

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenize, err)
	}

	b := &builder{line: 1, column: 1}
	for _, t := range it.Tokens() {
		b.add(t)
	}

	return b.out, nil
}

type builder struct {
	out    Sequence
	offset int
	line   int
	column int
}

func (b *builder) add(t chroma.Token) {
	if t.Value == "" {
		return
	}

	switch {
	case t.Type.Category() == chroma.Text:
		b.addLayout(t.Value)
	case t.Type.Category() == chroma.Comment && strings.HasSuffix(t.Value, "\n"):
		b.emit(Comment, strings.TrimSuffix(t.Value, "\n"))
		b.emit(Newline, "\n")
	default:
		b.emit(kindOf(t.Type), t.Value)
	}
}

// addLayout splits text into newlines, blank runs and anything else.
func (b *builder) addLayout(text string) {
	for text != "" {
		r, _ := utf8.DecodeRuneInString(text)

		var n int

		switch {
		case r == '\n':
			b.emit(Newline, "\n")

			text = text[1:]

			continue
		case unicode.IsSpace(r):
			n = spanOf(text, func(r rune) bool { return r != '\n' && unicode.IsSpace(r) })
			b.emit(Whitespace, text[:n])
		default:
			n = spanOf(text, func(r rune) bool { return !unicode.IsSpace(r) })
			b.emit(Other, text[:n])
		}

		text = text[n:]
	}
}

func spanOf(text string, keep func(rune) bool) int {
	for i, r := range text {
		if !keep(r) {
			return i
		}
	}

	return len(text)
}

func (b *builder) emit(kind Kind, text string) {
	if text == "" {
		return
	}

	if kind == Name && len(b.out) > 0 {
		prev := &b.out[len(b.out)-1]
		if prev.Kind == Name && prev.End() == b.offset {
			prev.Text += text
			b.advance(text)

			return
		}
	}

	b.out = append(b.out, Token{
		Kind:     kind,
		Text:     text,
		Location: m.Location{Line: b.line, Column: b.column},
		Offset:   b.offset,
	})
	b.advance(text)
}

func (b *builder) advance(text string) {
	b.offset += len(text)

	for _, r := range text {
		if r == '\n' {
			b.line++
			b.column = 1

			continue
		}

		b.column++
	}
}

func kindOf(tt chroma.TokenType) Kind {
	switch tt.Category() {
	case chroma.Keyword:
		return Keyword
	case chroma.Name:
		return Name
	case chroma.Literal:
		switch tt.SubCategory() {
		case chroma.LiteralString:
			return String
		case chroma.LiteralNumber:
			return Number
		}

		return Other
	case chroma.Operator:
		if tt == chroma.OperatorWord {
			return Keyword
		}

		return Punctuation
	case chroma.Punctuation:
		return Punctuation
	case chroma.Comment:
		return Comment
	}

	return Other
}
