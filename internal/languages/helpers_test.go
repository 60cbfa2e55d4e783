package languages

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/codelimit/internal/model"
	"github.com/mouse-blink/codelimit/internal/scope"
	"github.com/mouse-blink/codelimit/internal/token"
)

func lex(t *testing.T, language Language, src string) token.Sequence {
	t.Helper()

	tokens, err := token.Lex(language.Lexer(), src)
	require.NoError(t, err)

	return tokens
}

func build(t *testing.T, language Language, src string) []*scope.Scope {
	t.Helper()

	return scope.Build(lex(t, language, src), language, m.DefaultMarker)
}

func lengths(scopes []*scope.Scope) map[string]int {
	out := make(map[string]int)
	for _, s := range scope.Flatten(scopes) {
		out[s.Name()] = scope.Measure(s).Length
	}

	return out
}
