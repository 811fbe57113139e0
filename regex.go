// Package regexzero is a minimal regular-expression matcher built
// around a classic Thompson-style virtual machine.
//
// A textual pattern is parsed into an abstract syntax tree, lowered
// into a linear program of four-opcode bytecode, and executed against
// a character sequence by a backtracking evaluator that answers a
// single boolean question: does the input, starting at its first
// character, admit a prefix accepted by the pattern?
//
// Supported syntax: literal characters, concatenation, alternation
// ('|'), and the '*', '+', '?' postfix quantifiers, with '(' ')' for
// grouping only (no capture). There is no escape mechanism, no
// anchors, no character classes, and no Unicode-aware semantics beyond
// matching one rune at a time.
//
// Basic usage:
//
//	ok, err := regexzero.Match("(ab|cd)+", "abcdcd", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ok) // true
//
// Compiling once and matching many times:
//
//	prog, err := regexzero.Compile("q(i+|t)+a")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := prog.MatchMemoized("qiiiiiite")
package regexzero

import (
	"fmt"
	"io"
	"strings"

	"github.com/coregx/regexzero/codegen"
	"github.com/coregx/regexzero/literal"
	"github.com/coregx/regexzero/parser"
	"github.com/coregx/regexzero/vm"
)

// Program is a compiled pattern: its AST, its bytecode, and its
// mandatory-literal-prefix digest. A Program is immutable after
// Compile returns it and is safe to share and evaluate concurrently.
type Program struct {
	pattern string
	ast     *parser.Node
	code    *vm.Program
	digest  []rune
	config  Config
}

// Compile compiles a pattern into a reusable Program.
//
// Syntax is the pattern surface defined by this package's doc comment:
// '(' ')' '|' '*' '+' '?' are metacharacters, everything else is a
// literal.
func Compile(pattern string) (*Program, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Useful for
// patterns known to be valid at compile time.
func MustCompile(pattern string) *Program {
	p, err := Compile(pattern)
	if err != nil {
		panic("regexzero: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles pattern using a custom Config, bounding
// program length and per-path recursion depth.
func CompileWithConfig(pattern string, config Config) (*Program, error) {
	ast, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	code, err := codegen.CompileWithLimit(ast, config.MaxProgramLength)
	if err != nil {
		return nil, err
	}
	return &Program{
		pattern: pattern,
		ast:     ast,
		code:    code,
		digest:  literal.Extract(ast),
		config:  config,
	}, nil
}

// Pattern returns the original pattern text the Program was compiled
// from.
func (p *Program) Pattern() string {
	return p.pattern
}

// LiteralPrefix returns the mandatory literal prefix extracted from
// the pattern, or nil if none could be established. This is exposed
// for callers (such as the CLI) that want to build their own
// literal.Prefilter; it never affects Match/MatchMemoized semantics.
func (p *Program) LiteralPrefix() []rune {
	return p.digest
}

// Match reports whether input, starting at its first character, admits
// a prefix accepted by the pattern, using the plain depth-first
// evaluator. Unlike its package-level counterpart below, it takes no
// preferGreedy argument.
func (p *Program) Match(input string) (bool, error) {
	return vm.EvalWithLimit(p.code, []rune(input), p.config.MaxRecursionDepth)
}

// MatchMemoized is Match using the memoized evaluator, which blocks
// revisiting a (Jump target, SP) pair already seen in this evaluation.
// It stays within a small multiple of program-size × input-length even
// on patterns whose plain evaluation is exponential.
func (p *Program) MatchMemoized(input string) (bool, error) {
	return vm.EvalMemoizedWithLimit(p.code, []rune(input), p.config.MaxRecursionDepth)
}

// DebugString renders the AST dump followed by a numbered bytecode
// listing, the same content DebugPrint writes.
func (p *Program) DebugString() string {
	var b strings.Builder
	writeDebug(&b, p.pattern, p.ast, p.code)
	return b.String()
}

// Match compiles pattern and reports whether input admits an accepted
// prefix, using the plain depth-first evaluator.
//
// preferGreedy is accepted for signature stability but both values
// currently produce identical behavior (greedy depth-first); do not
// rely on preferGreedy=false having any defined meaning.
func Match(pattern, input string, preferGreedy bool) (bool, error) {
	prog, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	_ = preferGreedy
	return prog.Match(input)
}

// MatchMemoized compiles pattern and reports whether input admits an
// accepted prefix, using the memoized evaluator. See Match for the
// preferGreedy caveat.
func MatchMemoized(pattern, input string, preferGreedy bool) (bool, error) {
	prog, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	_ = preferGreedy
	return prog.MatchMemoized(input)
}

// DebugPrint writes a human-readable AST dump followed by a numbered
// bytecode listing, in the form "NNNN: opcode operands", to w.
func DebugPrint(w io.Writer, pattern string) error {
	ast, err := parser.Parse(pattern)
	if err != nil {
		return err
	}
	code, err := codegen.Compile(ast)
	if err != nil {
		return err
	}
	writeDebug(w, pattern, ast, code)
	return nil
}

// writeDebug is the shared body of Program.DebugString and
// DebugPrint.
func writeDebug(w io.Writer, pattern string, ast *parser.Node, code *vm.Program) {
	fmt.Fprintf(w, "pattern: %s\n", pattern)
	fmt.Fprintf(w, "ast: %s\n\n", dumpNode(ast))
	fmt.Fprintf(w, "code:\n%s", code.String())
}
