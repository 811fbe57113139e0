// Package literal extracts the mandatory leading literal run from a
// pattern's AST, for use as a prefilter. It never affects match
// semantics — Extract is a pure optimization hint consulted only by
// callers that want to skip offsets a literal scan has already ruled
// out (see cmd/regexzero).
package literal

import "github.com/coregx/regexzero/parser"

// Config mirrors the shape of the teacher's extractor configuration
// even though this minimal engine only needs one knob today: a cap on
// how long a digest is worth extracting. Very long literals gain
// little over what the backtracking VM already does in a single
// linear pass.
type Config struct {
	// MaxLen caps the length of the extracted digest.
	MaxLen int
}

// DefaultConfig returns sensible defaults: digests up to 64 runes.
func DefaultConfig() Config {
	return Config{MaxLen: 64}
}

// Extract walks ast's leading children and returns the longest prefix
// of literal characters the whole pattern requires every match to
// start with. It stops at the first node that is not a plain
// character: an alternation, a repetition, or the end of a top-level
// Seq. A nil result means no mandatory literal prefix could be
// established (e.g. the pattern starts with "(a|b)" or "a*").
func Extract(ast *parser.Node) []rune {
	return ExtractWithConfig(ast, DefaultConfig())
}

// ExtractWithConfig is Extract with an explicit Config.
func ExtractWithConfig(ast *parser.Node, cfg Config) []rune {
	var digest []rune

	switch ast.Kind {
	case parser.KindChar:
		digest = append(digest, ast.Char)
	case parser.KindSeq:
		for _, child := range ast.Children {
			if child.Kind != parser.KindChar {
				break
			}
			digest = append(digest, child.Char)
			if len(digest) >= cfg.MaxLen {
				break
			}
		}
	default:
		// Or, Plus, Star, Question: none guarantee a literal
		// character at this position.
	}

	if len(digest) > cfg.MaxLen {
		digest = digest[:cfg.MaxLen]
	}
	return digest
}
