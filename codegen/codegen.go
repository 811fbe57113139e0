package codegen

import (
	"math"

	"github.com/coregx/regexzero/internal/conv"
	"github.com/coregx/regexzero/parser"
	"github.com/coregx/regexzero/vm"
)

// defaultMaxProgramLength bounds how many instructions a program may
// contain before compilation fails with PCOverflow.
const defaultMaxProgramLength = math.MaxUint32

// Compile lowers ast into a bytecode Program, appending a single
// terminating Match after the root expression.
func Compile(ast *parser.Node) (*vm.Program, error) {
	return CompileWithLimit(ast, defaultMaxProgramLength)
}

// CompileWithLimit is Compile with an explicit maximum program length.
func CompileWithLimit(ast *parser.Node, maxLen uint32) (*vm.Program, error) {
	g := &generator{maxLen: maxLen}
	if err := g.genExpr(ast); err != nil {
		return nil, err
	}
	if err := g.emit(vm.Instruction{Op: vm.OpMatch}); err != nil {
		return nil, err
	}
	return &vm.Program{Insts: g.insts}, nil
}

// generator accumulates instructions for one Compile call. There is no
// stored pc field: the pc method derives it from len(insts), and the
// patch-site bookkeeping below records an index "at the current pc"
// before the instruction at it exists.
type generator struct {
	insts  []vm.Instruction
	maxLen uint32
}

func (g *generator) pc() uint32 {
	return conv.IntToUint32(len(g.insts))
}

// emit appends inst, failing with PCOverflow if that would exceed
// maxLen.
func (g *generator) emit(inst vm.Instruction) error {
	if g.pc() >= g.maxLen {
		return &Error{Kind: KindPCOverflow}
	}
	g.insts = append(g.insts, inst)
	return nil
}

// patch rewrites the instruction at index, verifying it currently has
// opcode want before mutating it. A mismatch signals an internal
// generator invariant violation, reported as failKind.
func (g *generator) patch(index uint32, want vm.Opcode, failKind ErrorKind, set func(*vm.Instruction)) error {
	if int(index) >= len(g.insts) || g.insts[index].Op != want {
		return &Error{Kind: failKind}
	}
	set(&g.insts[index])
	return nil
}

func (g *generator) genExpr(n *parser.Node) error {
	switch n.Kind {
	case parser.KindChar:
		return g.genChar(n.Char)
	case parser.KindSeq:
		return g.genSeq(n.Children)
	case parser.KindOr:
		return g.genOr(n.Left, n.Right)
	case parser.KindPlus:
		return g.genPlus(n.Child)
	case parser.KindStar:
		return g.genStar(n.Child)
	case parser.KindQuestion:
		return g.genQuestion(n.Child)
	default:
		return &Error{Kind: KindPCOverflow} // unreachable: Kind is closed
	}
}

func (g *generator) genChar(c rune) error {
	return g.emit(vm.Instruction{Op: vm.OpChar, Char: c})
}

func (g *generator) genSeq(children []*parser.Node) error {
	for _, c := range children {
		if err := g.genExpr(c); err != nil {
			return err
		}
	}
	return nil
}

// genOr lowers e1|e2:
//
//	    split L1, L2
//	L1: code of e1
//	    jump L3
//	L2: code of e2
//	L3:
func (g *generator) genOr(e1, e2 *parser.Node) error {
	splitAddr := g.pc()
	if err := g.emit(vm.Instruction{Op: vm.OpSplit, Addr1: g.pc() + 1}); err != nil {
		return err
	}

	if err := g.genExpr(e1); err != nil {
		return err
	}

	jumpAddr := g.pc()
	if err := g.emit(vm.Instruction{Op: vm.OpJump}); err != nil {
		return err
	}

	l2 := g.pc()
	if err := g.patch(splitAddr, vm.OpSplit, KindFailOr, func(i *vm.Instruction) { i.Addr2 = l2 }); err != nil {
		return err
	}

	if err := g.genExpr(e2); err != nil {
		return err
	}

	l3 := g.pc()
	return g.patch(jumpAddr, vm.OpJump, KindFailOr, func(i *vm.Instruction) { i.Addr1 = l3 })
}

// genQuestion lowers e?:
//
//	    split L1, L2
//	L1: code of e
//	L2:
func (g *generator) genQuestion(e *parser.Node) error {
	splitAddr := g.pc()
	if err := g.emit(vm.Instruction{Op: vm.OpSplit, Addr1: g.pc() + 1}); err != nil {
		return err
	}

	if err := g.genExpr(e); err != nil {
		return err
	}

	l2 := g.pc()
	return g.patch(splitAddr, vm.OpSplit, KindFailQuestion, func(i *vm.Instruction) { i.Addr2 = l2 })
}

// genPlus lowers e+:
//
//	L1: code of e
//	    split L1, L2
//	L2:
func (g *generator) genPlus(e *parser.Node) error {
	l1 := g.pc()
	if err := g.genExpr(e); err != nil {
		return err
	}
	return g.emit(vm.Instruction{Op: vm.OpSplit, Addr1: l1, Addr2: g.pc() + 1})
}

// genStar lowers e*:
//
//	L1: split L2, L3
//	L2: code of e
//	    jump L1
//	L3:
func (g *generator) genStar(e *parser.Node) error {
	l1 := g.pc()
	if err := g.emit(vm.Instruction{Op: vm.OpSplit, Addr1: g.pc() + 1}); err != nil {
		return err
	}

	if err := g.genExpr(e); err != nil {
		return err
	}

	if err := g.emit(vm.Instruction{Op: vm.OpJump, Addr1: l1}); err != nil {
		return err
	}

	l3 := g.pc()
	return g.patch(l1, vm.OpSplit, KindFailStar, func(i *vm.Instruction) { i.Addr2 = l3 })
}
