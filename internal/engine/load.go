// Package engine wires the parser, the CNF converter, and the prover
// into a single run over a text source (spec §6): split premises from
// the query, convert everything to clauses through one shared
// Converter, seed and drive the prover, and render the two output
// artifacts. Nothing in the core packages touches a filesystem; engine
// is where that I/O boundary lives, matching the teacher's split
// between the dependency-free datalog package and its text-driven
// *engine wrapper.
package engine

import (
	"os"
	"strings"

	"github.com/Dani2044/First-order-resolution-engine/internal/errs"
)

// Line is one non-blank input line, carrying its 1-based position in
// the original file for error reporting.
type Line struct {
	Number int
	Text   string
}

// ReadFile loads path, classifying any failure as InputIO (spec §7).
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errs.New(errs.InputIO, err)
	}
	return string(data), nil
}

// SplitLines separates raw input into premise lines and the query line
// (spec §6: blank lines are ignored; the last non-blank line is the
// query). It fails with ParseError if the input has no formulas at
// all.
func SplitLines(raw string) (premises []Line, query Line, err error) {
	var nonBlank []Line
	for i, l := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		nonBlank = append(nonBlank, Line{Number: i + 1, Text: trimmed})
	}
	if len(nonBlank) == 0 {
		return nil, Line{}, errs.Newf(errs.ParseError, "input contains no formulas")
	}
	return nonBlank[:len(nonBlank)-1], nonBlank[len(nonBlank)-1], nil
}
