package scope

import (
	"github.com/mouse-blink/codelimit/internal/token"
)

// Build extracts headers and blocks with extractor and nests them into a
// tree. Headers carrying marker are removed together with the scopes nested in
// their body; their lines stay with the enclosing scope. Headers without a
// body produce no scope.
func Build(tokens token.Sequence, extractor Extractor, marker string) []*Scope {
	headers := extractor.ExtractHeaders(tokens)
	if len(headers) == 0 {
		return nil
	}

	blocks := extractor.ExtractBlocks(tokens, headers)

	var (
		kept       []*Scope
		suppressed []*Scope
	)

	for i, header := range headers {
		s := &Scope{Header: header}
		if i < len(blocks) && blocks[i] != nil && len(blocks[i].Tokens) > 0 {
			s.Block = blocks[i]
		}

		if Suppressed(tokens, header, marker) {
			suppressed = append(suppressed, s)

			continue
		}

		if s.Block == nil {
			continue
		}

		s.Tokens = tokens.Between(s.Start(), s.End())
		kept = append(kept, s)
	}

	return nest(withoutSuppressed(kept, suppressed))
}

func withoutSuppressed(scopes, suppressed []*Scope) []*Scope {
	if len(suppressed) == 0 {
		return scopes
	}

	out := scopes[:0:0]

	for _, s := range scopes {
		hidden := false

		for _, sup := range suppressed {
			if sup.Contains(s) {
				hidden = true

				break
			}
		}

		if !hidden {
			out = append(out, s)
		}
	}

	return out
}

// nest arranges position-ordered scopes into a tree by offset containment.
func nest(scopes []*Scope) []*Scope {
	var (
		roots []*Scope
		stack []*Scope
	)

	for _, s := range scopes {
		for len(stack) > 0 && !stack[len(stack)-1].Contains(s) {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, s)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, s)
		}

		stack = append(stack, s)
	}

	return roots
}

// Flatten returns the scopes of the tree in depth-first pre-order.
func Flatten(roots []*Scope) []*Scope {
	var out []*Scope

	var walk func([]*Scope)

	walk = func(scopes []*Scope) {
		for _, s := range scopes {
			out = append(out, s)
			walk(s.Children)
		}
	}

	walk(roots)

	return out
}
