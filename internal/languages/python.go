package languages

import (
	"strings"

	"github.com/mouse-blink/codelimit/internal/matcher"
	"github.com/mouse-blink/codelimit/internal/scope"
	"github.com/mouse-blink/codelimit/internal/token"
)

// tabWidth is the tab stop used when comparing indentation.
const tabWidth = 8

var pythonHeader = matcher.OneOf(
	matcher.Sequence(
		matcher.Keyword("def"),
		matcher.Name(),
		matcher.Balanced("(", ")"),
		matcher.Lookahead(matcher.Sequence(
			matcher.Optional(matcher.Sequence(matcher.Symbol("->"), matcher.Until(matcher.Symbol(":")))),
			matcher.Symbol(":"),
		)),
	),
	matcher.Sequence(
		matcher.Keyword("class"),
		matcher.Name(),
		matcher.Optional(matcher.Balanced("(", ")")),
		matcher.Lookahead(matcher.Symbol(":")),
	),
)

// Python extracts scopes from indentation-delimited source.
type Python struct{}

// Name implements Language.
func (p *Python) Name() string { return "Python" }

// Lexer implements Language.
func (p *Python) Lexer() string { return "python" }

// Extensions implements Language.
func (p *Python) Extensions() []string { return []string{".py"} }

// ExtractHeaders returns def and class headers. Decorator lines directly above
// a header at the same indentation become its lead.
func (p *Python) ExtractHeaders(tokens token.Sequence) []scope.Header {
	matches := matcher.Match(tokens.Code(), pythonHeader)
	if len(matches) == 0 {
		return nil
	}

	lines := logicalLines(tokens)
	headers := make([]scope.Header, 0, len(matches))

	for _, match := range matches {
		header := scope.Header{Tokens: match, Name: match[1].Text}

		if k := lineOf(lines, tokens.IndexAt(match.First().Offset)); k >= 0 {
			if lead := decoratorStart(tokens, lines, k); lead < lines[k].first {
				header.Lead = tokens[lead:tokens.IndexAt(match.First().Offset)].Code()
			}
		}

		headers = append(headers, header)
	}

	return headers
}

// ExtractBlocks returns, per header, the lines following it that are indented
// deeper than the header line. A header whose body sits on its own line, such
// as a stub ending in "...", has no block.
func (p *Python) ExtractBlocks(tokens token.Sequence, headers []scope.Header) []*scope.Block {
	lines := logicalLines(tokens)
	blocks := make([]*scope.Block, len(headers))

	for i, header := range headers {
		blocks[i] = pythonBlock(tokens, lines, header)
	}

	return blocks
}

func pythonBlock(tokens token.Sequence, lines []logicalLine, header scope.Header) *scope.Block {
	headerStart := tokens.IndexAt(header.Tokens.First().Offset)

	k := lineOf(lines, headerStart)
	if k < 0 {
		return nil
	}

	colon := -1

	for i := tokens.IndexAt(header.Tokens.Last().End()); i < len(tokens); i++ {
		if tokens[i].Is(token.Punctuation, ":") {
			colon = i

			break
		}
	}

	if colon < 0 || colon > lines[k].last {
		return nil
	}

	last := -1

	for _, line := range lines[k+1:] {
		if line.indent <= lines[k].indent {
			break
		}

		last = line.last
	}

	if last < 0 {
		return nil
	}

	return &scope.Block{Tokens: tokens[lines[k+1].first : last+1]}
}

func nextCode(tokens token.Sequence, from int) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i].IsCode() {
			return i
		}
	}

	return -1
}

// decoratorStart returns the index of the first token of the decorator lines
// directly above logical line k, or lines[k].first when there are none.
func decoratorStart(tokens token.Sequence, lines []logicalLine, k int) int {
	start := lines[k].first

	for j := k - 1; j >= 0; j-- {
		if lines[j].indent != lines[k].indent || !isDecorator(tokens[lines[j].first]) {
			break
		}

		start = lines[j].first
	}

	return start
}

func isDecorator(t token.Token) bool {
	return strings.HasPrefix(t.Text, "@") && t.Kind != token.String && t.Kind != token.Comment
}

// logicalLine is a statement line: physical lines joined by open brackets or
// backslash continuations. Blank and comment-only lines never form one.
type logicalLine struct {
	indent int
	// first and last index the first and last code token in the stream.
	first, last int
}

func logicalLines(tokens token.Sequence) []logicalLine {
	var (
		lines    []logicalLine
		current  logicalLine
		open     bool
		depth    int
		cont     bool
		leading  int
		lineHead = true
	)

	for i, t := range tokens {
		switch {
		case t.Kind == token.Newline:
			if open && depth == 0 && !cont {
				lines = append(lines, current)
				open = false
			}

			cont = false
			leading = 0
			lineHead = true

			continue
		case t.Kind == token.Whitespace:
			if lineHead {
				leading = indentWidth(leading, t.Text)
			}

			continue
		case t.Kind == token.Comment:
			lineHead = false

			continue
		case t.Is(token.Other, "\\"):
			cont = true

			continue
		}

		if !open {
			current = logicalLine{indent: leading, first: i}
			open = true
		}

		current.last = i
		lineHead = false
		cont = false

		if t.Kind == token.Punctuation {
			switch t.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth > 0 {
					depth--
				}
			}
		}
	}

	if open {
		lines = append(lines, current)
	}

	return lines
}

// lineOf returns the logical line holding token index i, or -1.
func lineOf(lines []logicalLine, i int) int {
	for k, line := range lines {
		if i >= line.first && i <= line.last {
			return k
		}
	}

	return -1
}

// indentWidth advances column over whitespace, with tabs moving to the next
// multiple of tabWidth.
func indentWidth(column int, whitespace string) int {
	for _, r := range whitespace {
		switch r {
		case '\t':
			column = (column/tabWidth + 1) * tabWidth
		case '\f':
			column = 0
		default:
			column++
		}
	}

	return column
}
