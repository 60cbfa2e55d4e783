package matcher

import "github.com/mouse-blink/codelimit/internal/token"

// Match scans tokens left to right and returns every non-overlapping match of
// the pattern in position order. Several predicates form an implicit Sequence.
// After a match scanning resumes just past it, otherwise it advances by one
// token. Matches that consume no tokens are not reported.
func Match(tokens token.Sequence, patterns ...Predicate) []token.Sequence {
	if len(patterns) == 0 {
		return nil
	}

	pattern := patterns[0]
	if len(patterns) > 1 {
		pattern = Sequence(patterns...)
	}

	var matches []token.Sequence

	for pos := 0; pos < len(tokens); {
		if n, ok := pattern.Match(tokens, pos); ok && n > 0 {
			matches = append(matches, tokens[pos:pos+n])
			pos += n

			continue
		}

		pos++
	}

	return matches
}
