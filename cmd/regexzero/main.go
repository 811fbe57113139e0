// Command regexzero scans a file line by line for a pattern, trying
// every character offset of each line since the underlying engine
// only matches an anchored prefix.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coregx/regexzero"
	"github.com/coregx/regexzero/literal"
)

var log = logrus.New()

// exit codes, matching the split between a pattern that never
// compiled and a run that failed for some other reason.
const (
	exitOK         = 0
	exitCompileErr = 1
	exitIOErr      = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		useMemo bool
		debug   bool
		verbose bool
		count   bool
	)

	var exitCode int
	cmd := &cobra.Command{
		Use:   "regexzero <pattern> <file>",
		Short: "Scan a file for lines matching a minimal regex pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			code, err := scanFile(args[0], args[1], scanOptions{
				memoized: useMemo,
				debug:    debug,
				count:    count,
			})
			exitCode = code
			return err
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&useMemo, "memo", "m", false, "use the memoized evaluator")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "print the AST and bytecode listing before scanning")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-line scan decisions")
	cmd.Flags().BoolVarP(&count, "count", "c", false, "print only the number of matching lines")

	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("regexzero failed")
		if exitCode == 0 {
			exitCode = exitCompileErr
		}
		return exitCode
	}
	return exitCode
}

type scanOptions struct {
	memoized bool
	debug    bool
	count    bool
}

// scanFile compiles pattern once and scans every line of file at every
// character offset, printing lines (or, with opts.count, the total)
// that match. It returns the process exit code alongside any error,
// since a compile failure and an I/O failure are distinguished at the
// process boundary (§6 of SPEC_FULL.md).
func scanFile(pattern, file string, opts scanOptions) (int, error) {
	prog, err := regexzero.Compile(pattern)
	if err != nil {
		return exitCompileErr, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	if opts.debug {
		fmt.Print(prog.DebugString())
		fmt.Println()
	}

	var prefilter *literal.Prefilter
	if digest := prog.LiteralPrefix(); len(digest) > 0 {
		prefilter, err = literal.NewPrefilter(digest)
		if err != nil {
			log.WithError(err).Warn("literal prefilter unavailable, scanning every offset")
		}
	}

	f, err := os.Open(file)
	if err != nil {
		return exitIOErr, fmt.Errorf("opening %q: %w", file, err)
	}
	defer f.Close()

	matched := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		ok, err := scanLine(prog, prefilter, line, opts.memoized)
		if err != nil {
			return exitIOErr, fmt.Errorf("matching line %q: %w", line, err)
		}
		if ok {
			matched++
			if !opts.count {
				fmt.Println(line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return exitIOErr, fmt.Errorf("reading %q: %w", file, err)
	}

	if opts.count {
		fmt.Println(matched)
	}
	return exitOK, nil
}

// scanLine tries prog at every rune offset of line (unanchored search
// implemented as repeated anchored matches, per SPEC_FULL.md §6), and
// reports whether any offset matched. When a literal prefilter is
// available it first narrows the set of offsets worth trying.
func scanLine(prog *regexzero.Program, pf *literal.Prefilter, line string, memoized bool) (bool, error) {
	runes := []rune(line)

	offsets := allOffsets(len(runes))
	if pf != nil {
		offsets = byteOffsetsToRuneOffsets(line, pf.CandidateOffsets([]byte(line)))
	}
	if offsets == nil {
		return false, nil
	}

	for _, i := range offsets {
		suffix := string(runes[i:])
		var (
			ok  bool
			err error
		)
		if memoized {
			ok, err = prog.MatchMemoized(suffix)
		} else {
			ok, err = prog.Match(suffix)
		}
		if err != nil {
			return false, err
		}
		log.WithFields(logrus.Fields{"offset": i, "matched": ok}).Debug("tried offset")
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// allOffsets returns every rune offset at which a character of an
// n-rune line starts: 0..n-1, mirroring the reference implementation's
// line.char_indices() loop. An empty line (n == 0) yields no offsets,
// so a pattern that accepts the empty string is never tried against
// a line that has no characters to start at.
func allOffsets(n int) []int {
	if n == 0 {
		return nil
	}
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i
	}
	return offsets
}

// byteOffsetsToRuneOffsets converts byte offsets (as reported by the
// Aho-Corasick prefilter, which operates on []byte) into the rune
// offsets the []rune-indexed VM expects. Only offsets where the
// literal digest actually starts are candidates; every other offset
// is safe to skip because the pattern can never match there.
func byteOffsetsToRuneOffsets(line string, byteOffsets []int) []int {
	if len(byteOffsets) == 0 {
		return nil
	}

	byteToRune := make(map[int]int, len(line))
	runeIdx := 0
	for b := range line {
		byteToRune[b] = runeIdx
		runeIdx++
	}
	byteToRune[len(line)] = runeIdx

	offsets := make([]int, 0, len(byteOffsets))
	for _, b := range byteOffsets {
		if r, ok := byteToRune[b]; ok {
			offsets = append(offsets, r)
		}
	}
	return offsets
}
