// Package scope recovers a tree of function scopes from a token stream and
// measures them.
package scope

import (
	"github.com/mouse-blink/codelimit/internal/token"
)

// Header is the recovered declaration of a callable unit.
type Header struct {
	// Tokens holds the code tokens of the declaration, e.g. "def foo ( bar : str )".
	Tokens token.Sequence
	Name   string
	// Lead holds code tokens attached in front of the declaration, such as decorators.
	Lead token.Sequence
}

// First returns the first token of the unit, including its lead.
func (h Header) First() token.Token {
	if len(h.Lead) > 0 {
		return h.Lead.First()
	}

	return h.Tokens.First()
}

// Block is the token span of a unit body, from its first to its last code token.
type Block struct {
	Tokens token.Sequence
}

// Extractor supplies the language specific parts of scope extraction.
type Extractor interface {
	// ExtractHeaders returns the headers of tokens in position order.
	ExtractHeaders(tokens token.Sequence) []Header
	// ExtractBlocks returns one entry per header; nil means the header has no body.
	ExtractBlocks(tokens token.Sequence, headers []Header) []*Block
}

// Scope is a header with its body and the scopes nested inside the body.
type Scope struct {
	Header   Header
	Block    *Block
	Children []*Scope
	// Tokens is the full token range of the scope, lead and comments included.
	Tokens token.Sequence
}

// Name returns the header name.
func (s *Scope) Name() string {
	return s.Header.Name
}

// Start is the offset of the first token of the scope.
func (s *Scope) Start() int {
	return s.Header.First().Offset
}

// End is the offset just past the last token of the scope.
func (s *Scope) End() int {
	if s.Block == nil || len(s.Block.Tokens) == 0 {
		return s.Header.Tokens.Last().End()
	}

	return s.Block.Tokens.Last().End()
}

// Contains reports whether other lies inside the body of s.
func (s *Scope) Contains(other *Scope) bool {
	if s == other || s.Block == nil || len(s.Block.Tokens) == 0 {
		return false
	}

	return other.Start() >= s.Block.Tokens.First().Offset && other.End() <= s.End()
}
