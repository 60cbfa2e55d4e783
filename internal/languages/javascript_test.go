package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/codelimit/internal/scope"
)

func TestJavaScript_SimpleFunction(t *testing.T) {
	src := `
    function foo() {
        return 'bar';
    }
    `

	assert.Equal(t, map[string]int{"foo": 3}, lengths(build(t, &JavaScript{}, src)))
}

func TestJavaScript_HeaderForms(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		header string
		unit   string
	}{
		{name: "declaration", src: "function foo(a, b) {\n  return a + b;\n}\n", header: "function foo ( a , b )", unit: "foo"},
		{name: "generator", src: "function* gen() {\n  yield 1;\n}\n", header: "function * gen ( )", unit: "gen"},
		{name: "arrow", src: "const add = (a, b) => {\n  return a + b;\n};\n", header: "add = ( a , b ) =>", unit: "add"},
		{name: "async arrow", src: "const load = async id => {\n  return fetch(id);\n};\n", header: "load = async id =>", unit: "load"},
		{name: "function expression", src: "var foo = function bar() {\n  return 1;\n};\n", header: "foo = function bar ( )", unit: "foo"},
		{name: "method", src: "class A {\n  render(props) {\n    return props;\n  }\n}\n", header: "render ( props )", unit: "render"},
		{name: "property", src: "const o = {\n  onClick: () => {\n    go();\n  },\n};\n", header: "onClick : ( ) =>", unit: "onClick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &JavaScript{}
			headers := j.ExtractHeaders(lex(t, j, tt.src))

			require.Len(t, headers, 1)
			assert.Equal(t, tt.header, headers[0].Tokens.String())
			assert.Equal(t, tt.unit, headers[0].Name)
		})
	}
}

func TestJavaScript_ControlFlowIsNotAHeader(t *testing.T) {
	src := "function foo(x) {\n  if (x) {\n    while (x) {\n      x--;\n    }\n  }\n  for (;;) {\n  }\n}\n"

	assert.Equal(t, map[string]int{"foo": 9}, lengths(build(t, &JavaScript{}, src)))
}

func TestJavaScript_CallBeforeBlockIsNotAHeader(t *testing.T) {
	src := "function f() {\n  g()\n  {\n    h();\n  }\n}\n"

	scopes := build(t, &JavaScript{}, src)

	require.Len(t, scopes, 1)
	assert.Equal(t, "f", scopes[0].Name())
	assert.Empty(t, scopes[0].Children)
	assert.Equal(t, map[string]int{"f": 6}, lengths(scopes))
}

func TestJavaScript_AllmanDeclaration(t *testing.T) {
	src := "function foo()\n{\n  return 1;\n}\n"

	assert.Equal(t, map[string]int{"foo": 4}, lengths(build(t, &JavaScript{}, src)))
}

func TestJavaScript_AnonymousCallbackIsNotAUnit(t *testing.T) {
	src := `function main(items) {
  items.forEach(function (item) {
    console.log(item);
  });
  items.map((item) => {
    return item * 2;
  });
}
`

	scopes := build(t, &JavaScript{}, src)

	require.Len(t, scopes, 1)
	assert.Equal(t, "main", scopes[0].Name())
	assert.Empty(t, scopes[0].Children)
	assert.Equal(t, 8, scope.Measure(scopes[0]).Length)
}

func TestJavaScript_NestedFunctions(t *testing.T) {
	src := `function outer() {
  function inner() {
    return 1;
  }
  const helper = () => {
    return 2;
  };
  return inner() + helper();
}
`

	scopes := build(t, &JavaScript{}, src)

	require.Len(t, scopes, 1)
	require.Len(t, scopes[0].Children, 2)
	assert.Equal(t, map[string]int{"outer": 3, "inner": 3, "helper": 3}, lengths(scopes))
}

func TestJavaScript_BracesInStringsAndComments(t *testing.T) {
	src := "function foo() {\n  const s = '}';\n  // }\n  /* { */\n  return `${s}}`;\n}\nfunction bar() {\n  return 1;\n}\n"

	assert.Equal(t, map[string]int{"foo": 4, "bar": 3}, lengths(build(t, &JavaScript{}, src)))
}

func TestJavaScript_UnterminatedBlockRunsToEnd(t *testing.T) {
	j := &JavaScript{}
	tokens := lex(t, j, "function foo() {\n  if (x) {\n    return 1;\n")

	blocks := j.ExtractBlocks(tokens, j.ExtractHeaders(tokens))

	require.Len(t, blocks, 1)
	require.NotNil(t, blocks[0])
	assert.Equal(t, 3, blocks[0].Tokens.End().Line)
}

func TestJavaScript_Suppression(t *testing.T) {
	src := "function foo() { // nocl\n  return 1;\n}\n\n/* NOCL */\nfunction bar() {\n  return 2;\n}\n\nfunction baz() {\n  return 3;\n}\n"

	assert.Equal(t, map[string]int{"baz": 3}, lengths(build(t, &JavaScript{}, src)))
}
