package languages

import (
	"github.com/mouse-blink/codelimit/internal/matcher"
	"github.com/mouse-blink/codelimit/internal/scope"
	"github.com/mouse-blink/codelimit/internal/token"
)

var (
	jsBindsTo = matcher.OneOf(matcher.Symbol("="), matcher.Symbol(":"))
	jsParams  = matcher.Balanced("(", ")")
	jsBody    = matcher.Lookahead(matcher.Symbol("{"))

	jsHeader = matcher.OneOf(
		// name = (params) => {   and   name: async param => {
		matcher.Sequence(
			matcher.Name(),
			jsBindsTo,
			matcher.Optional(matcher.Keyword("async")),
			matcher.OneOf(jsParams, matcher.Name()),
			matcher.Symbol("=>"),
			jsBody,
		),
		// name = function other(params) {
		matcher.Sequence(
			matcher.Name(),
			jsBindsTo,
			matcher.Optional(matcher.Keyword("async")),
			matcher.Keyword("function"),
			matcher.Optional(matcher.Symbol("*")),
			matcher.Optional(matcher.Name()),
			jsParams,
			jsBody,
		),
		// function name(params) {   and methods   name(params) {
		matcher.Sequence(
			matcher.Optional(matcher.Sequence(matcher.Keyword("function"), matcher.Optional(matcher.Symbol("*")))),
			matcher.Name(),
			jsParams,
			jsBody,
		),
	)
)

// JavaScript extracts scopes from brace-delimited source. Function literals
// that are not bound to a name produce no header.
type JavaScript struct{}

// Name implements Language.
func (j *JavaScript) Name() string { return "JavaScript" }

// Lexer implements Language.
func (j *JavaScript) Lexer() string { return "javascript" }

// Extensions implements Language.
func (j *JavaScript) Extensions() []string { return []string{".js", ".mjs", ".cjs", ".jsx"} }

// ExtractHeaders implements scope.Extractor. A method header without the
// function keyword needs its opening brace on the line of its closing
// parenthesis, otherwise it is a call followed by a block statement.
func (j *JavaScript) ExtractHeaders(tokens token.Sequence) []scope.Header {
	matches := matcher.Match(tokens.Code(), jsHeader)
	headers := make([]scope.Header, 0, len(matches))

	for _, match := range matches {
		if isBareMethod(match) && !bodyOnSameLine(tokens, match) {
			continue
		}

		for _, t := range match {
			if t.Kind == token.Name {
				headers = append(headers, scope.Header{Tokens: match, Name: t.Text})

				break
			}
		}
	}

	return headers
}

func isBareMethod(match token.Sequence) bool {
	return len(match) > 1 && match[0].Kind == token.Name && match[1].Is(token.Punctuation, "(")
}

func bodyOnSameLine(tokens token.Sequence, match token.Sequence) bool {
	open := nextCode(tokens, tokens.IndexAt(match.Last().End()))

	return open >= 0 && tokens[open].Line == match.Last().EndLine()
}

// ExtractBlocks returns, per header, the braces following it and everything
// between them. An unterminated body runs to the end of the stream.
func (j *JavaScript) ExtractBlocks(tokens token.Sequence, headers []scope.Header) []*scope.Block {
	blocks := make([]*scope.Block, len(headers))

	for i, header := range headers {
		open := nextCode(tokens, tokens.IndexAt(header.Tokens.Last().End()))
		if open < 0 || !tokens[open].Is(token.Punctuation, "{") {
			continue
		}

		end := matcher.CloseIndex(tokens, open, "{", "}")
		if end < 0 {
			end = lastCode(tokens)
		}

		blocks[i] = &scope.Block{Tokens: tokens[open : end+1]}
	}

	return blocks
}

func lastCode(tokens token.Sequence) int {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].IsCode() {
			return i
		}
	}

	return -1
}
