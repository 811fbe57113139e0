package literal

import "github.com/coregx/ahocorasick"

// Prefilter narrows the character offsets worth handing to the VM
// evaluator down to those where a pattern's mandatory literal prefix
// actually occurs. It is the same architectural idea as the teacher's
// meta.Engine ahoCorasick field, scaled to a single pattern: build an
// automaton once per compiled program, then consult it once per line.
//
// A Prefilter never changes which offsets match — it only changes how
// many Eval/EvalMemoized calls are needed to find out.
type Prefilter struct {
	auto *ahocorasick.Automaton
}

// NewPrefilter builds a Prefilter for digest, the mandatory literal
// prefix extracted by Extract. It returns nil, nil if digest is empty
// — there is nothing to prefilter against.
func NewPrefilter(digest []rune) (*Prefilter, error) {
	if len(digest) == 0 {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(string(digest)))
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{auto: auto}, nil
}

// CandidateOffsets returns, in ascending order, every byte offset in
// line at which the prefilter's literal occurs. Offsets are reported
// in bytes; a caller matching over runes must translate back to rune
// indices before feeding them to vm.Eval.
func (pf *Prefilter) CandidateOffsets(line []byte) []int {
	var offsets []int
	at := 0
	for at <= len(line) {
		m := pf.auto.Find(line, at)
		if m == nil {
			break
		}
		offsets = append(offsets, m.Start)
		at = m.Start + 1
	}
	return offsets
}
