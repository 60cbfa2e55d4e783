package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/codelimit/internal/model"
)

func TestLex_UnknownLexer(t *testing.T) {
	_, err := Lex("no-such-language", "x = 1\n")
	require.ErrorIs(t, err, ErrTokenize)
}

func TestLex_PythonLocations(t *testing.T) {
	tokens, err := Lex("python", "def foo():\n  foo = bar\n")
	require.NoError(t, err)

	code := tokens.Code()
	require.Equal(t, "def foo ( ) : foo = bar", code.String())

	assert.Equal(t, Keyword, code[0].Kind)
	assert.Equal(t, Name, code[1].Kind)
	assert.Equal(t, m.Location{Line: 1, Column: 5}, code[1].Location)
	assert.Equal(t, m.Location{Line: 2, Column: 3}, code[5].Location)
	assert.Equal(t, m.Location{Line: 2, Column: 9}, code.Last().Location)
}

func TestLex_LayoutIsSplit(t *testing.T) {
	tokens, err := Lex("javascript", "function foo() {\n    return 1;\n}\n")
	require.NoError(t, err)

	var newlines int

	for _, tok := range tokens {
		switch tok.Kind {
		case Newline:
			newlines++

			assert.Equal(t, "\n", tok.Text)
		case Whitespace:
			assert.NotContains(t, tok.Text, "\n")
		}
	}

	assert.Equal(t, 3, newlines)
}

func TestLex_CommentDropsTrailingNewline(t *testing.T) {
	tokens, err := Lex("javascript", "// nocl\nfoo();\n")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	assert.Equal(t, Comment, tokens[0].Kind)
	assert.Equal(t, "// nocl", tokens[0].Text)
	assert.Equal(t, Newline, tokens[1].Kind)
	assert.Equal(t, 2, tokens[2].Line)
}

func TestLex_MergesNameFragments(t *testing.T) {
	tokens, err := Lex("javascript", "my_func();\n")
	require.NoError(t, err)

	code := tokens.Code()
	require.NotEmpty(t, code)
	assert.Equal(t, Name, code[0].Kind)
	assert.Equal(t, "my_func", code[0].Text)
}

func TestLex_OffsetsCoverSource(t *testing.T) {
	src := "def foo(a,\n        b):\n    return a + b  # sum\n"

	tokens, err := Lex("python", src)
	require.NoError(t, err)

	offset := 0
	for _, tok := range tokens {
		require.Equal(t, offset, tok.Offset, "token %q", tok.Text)
		require.Equal(t, src[tok.Offset:tok.End()], tok.Text)
		offset = tok.End()
	}

	assert.Equal(t, len(src), offset)
}

func TestSequence_Helpers(t *testing.T) {
	var empty Sequence

	assert.Equal(t, Token{}, empty.First())
	assert.Equal(t, Token{}, empty.Last())
	assert.Equal(t, "", empty.String())

	seq := Sequence{
		{Kind: Keyword, Text: "def", Offset: 0, Location: m.Location{Line: 1, Column: 1}},
		{Kind: Whitespace, Text: " ", Offset: 3, Location: m.Location{Line: 1, Column: 4}},
		{Kind: Name, Text: "foo", Offset: 4, Location: m.Location{Line: 1, Column: 5}},
		{Kind: Comment, Text: "# x", Offset: 7, Location: m.Location{Line: 1, Column: 8}},
	}

	assert.Equal(t, m.Location{Line: 1, Column: 1}, seq.Start())
	assert.Equal(t, m.Location{Line: 1, Column: 8}, seq.End())
	assert.Equal(t, "def foo", seq.Code().String())
	assert.Equal(t, 2, seq.IndexAt(4))
	assert.Equal(t, 4, seq.IndexAt(100))
	assert.Equal(t, "  foo", seq.Between(3, 7).String())
}

func TestToken_EndLine(t *testing.T) {
	tok := Token{Kind: String, Text: "\"\"\"a\nb\nc\"\"\"", Location: m.Location{Line: 3, Column: 1}}
	assert.Equal(t, 5, tok.EndLine())

	nl := Token{Kind: String, Text: "\n", Location: m.Location{Line: 7, Column: 4}}
	assert.Equal(t, 7, nl.EndLine())
}
