package vm

import (
	"math"

	"github.com/coregx/regexzero/internal/visitset"
)

// defaultMaxRecursionDepth bounds how deep a single evaluation path may
// recurse before it is reported as a RecursionLimitExceeded error
// instead of risking a host stack overflow. The spec's own work-stack
// note (an implementation may convert Split's recursion into an
// explicit stack) permits either choice; this engine keeps recursion
// but guards its depth.
const defaultMaxRecursionDepth = 10_000

// Eval runs the plain depth-first backtracking evaluator. The match is
// anchored at the start of input: it succeeds as soon as Match is
// reached, and trailing unmatched input is not a failure.
func Eval(p *Program, input []rune) (bool, error) {
	return EvalWithLimit(p, input, defaultMaxRecursionDepth)
}

// EvalWithLimit is Eval with an explicit recursion-depth bound.
func EvalWithLimit(p *Program, input []rune, maxDepth int) (bool, error) {
	e := &evaluator{prog: p, input: input, maxDepth: maxDepth}
	return e.run(0, 0, 0)
}

// EvalMemoized runs the evaluator with one additional rule: before
// following a Jump to addr, if (addr, SP) has already been visited in
// this evaluation, that branch is treated as no-match without
// recursing. This cuts exponential backtracking on ambiguous
// alternations to a low-order polynomial, at the cost of blocking
// revisits that could only ever repeat a search already performed.
func EvalMemoized(p *Program, input []rune) (bool, error) {
	return EvalMemoizedWithLimit(p, input, defaultMaxRecursionDepth)
}

// EvalMemoizedWithLimit is EvalMemoized with an explicit
// recursion-depth bound.
func EvalMemoizedWithLimit(p *Program, input []rune, maxDepth int) (bool, error) {
	e := &evaluator{
		prog:     p,
		input:    input,
		maxDepth: maxDepth,
		visited:  visitset.New(len(p.Insts), len(input)),
	}
	return e.run(0, 0, 0)
}

// evaluator holds the state of one top-level evaluation: the program
// and input being matched, the optional memo, and the recursion-depth
// bound. It is discarded when the evaluation returns.
type evaluator struct {
	prog     *Program
	input    []rune
	maxDepth int
	visited  *visitset.Set // nil in plain mode
}

// run evaluates starting at (pc, sp), recursing into Split's branches
// on the host call stack. depth tracks how many nested Split frames
// are currently on the stack for this call chain; Jump and Char
// continue in the same frame.
func (e *evaluator) run(pc, sp, depth int) (bool, error) {
	if depth > e.maxDepth {
		return false, &Error{Kind: KindRecursionLimitExceeded, PC: pc, SP: sp}
	}

	for {
		if pc < 0 || pc >= len(e.prog.Insts) {
			return false, &Error{Kind: KindInvalidPC, PC: pc, SP: sp}
		}
		inst := e.prog.Insts[pc]

		switch inst.Op {
		case OpChar:
			if sp >= len(e.input) || e.input[sp] != inst.Char {
				return false, nil
			}
			if pc == math.MaxInt32 {
				return false, &Error{Kind: KindPCOverflow, PC: pc, SP: sp}
			}
			if sp == math.MaxInt32 {
				return false, &Error{Kind: KindSPOverflow, PC: pc, SP: sp}
			}
			pc++
			sp++

		case OpMatch:
			return true, nil

		case OpJump:
			target := int(inst.Addr1)
			if e.visited != nil && !e.visited.Visit(target, sp) {
				return false, nil
			}
			pc = target

		case OpSplit:
			ok, err := e.run(int(inst.Addr1), sp, depth+1)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
			return e.run(int(inst.Addr2), sp, depth+1)

		default:
			return false, &Error{Kind: KindInvalidPC, PC: pc, SP: sp}
		}
	}
}
