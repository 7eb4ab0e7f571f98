package engine

import (
	"fmt"
	"strings"

	"github.com/Dani2044/First-order-resolution-engine/internal/errs"
	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
	"github.com/Dani2044/First-order-resolution-engine/internal/parser"
	"github.com/Dani2044/First-order-resolution-engine/internal/prover"
)

// CNFDocument renders the intermediate CNF file (spec §6): one clause
// per line, grouped under comment headers so premises and the negated
// query are distinguishable on inspection. Comment lines and section
// headers are a presentation convenience only — ReadCNFClauses skips
// them on the way back in, so the clause lines themselves still
// round-trip exactly.
func (r *Result) CNFDocument() string {
	return CNFDocument(r.PremiseClauses, r.QueryClauses)
}

// CNFDocument renders premise and negated-query clause lists as a CNF
// intermediate document, independent of a full prover Result — what a
// CNF-only CLI subcommand needs.
func CNFDocument(premiseClauses, queryClauses []*ir.Clause) string {
	var b strings.Builder
	b.WriteString("# premises\n")
	for _, c := range premiseClauses {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	b.WriteString("# negated query\n")
	for _, c := range queryClauses {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// ReadCNFClauses parses a CNF intermediate document back into clauses,
// skipping blank lines and `#`-prefixed comments — the one place in
// this engine where `#` is a comment marker, since spec §6 reserves
// that convention for the CNF file, not the original input.
func ReadCNFClauses(raw string) ([]*ir.Clause, error) {
	var clauses []*ir.Clause
	for i, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		c, err := ParseClauseLine(i+1, trimmed)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

// ParseClauseLine parses one CNF-format clause line: a ∨-chain of
// (possibly negated) literals, with no other connective. It reuses the
// formula grammar — a clause line is a valid formula whose tree never
// has an And, Implies, Iff, or quantifier node — and flattens the
// resulting Or-spine into a literal list.
func ParseClauseLine(line int, text string) (*ir.Clause, error) {
	f, err := parser.Parse(line, text)
	if err != nil {
		return nil, err
	}
	literals, err := flattenClauseFormula(line, f)
	if err != nil {
		return nil, err
	}
	return ir.NewClause(literals...), nil
}

func flattenClauseFormula(line int, f *ir.Formula) ([]*ir.Literal, error) {
	switch f.Kind {
	case ir.LiteralNode:
		return []*ir.Literal{f.Lit}, nil
	case ir.NotNode:
		if f.Left.Kind != ir.LiteralNode {
			return nil, errs.AtLine(errs.ParseError, line, f.Left.String(), fmt.Errorf("negation in a clause line must wrap a literal directly"))
		}
		return []*ir.Literal{f.Left.Lit.Negate()}, nil
	case ir.OrNode:
		left, err := flattenClauseFormula(line, f.Left)
		if err != nil {
			return nil, err
		}
		right, err := flattenClauseFormula(line, f.Right)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	default:
		return nil, errs.AtLine(errs.ParseError, line, f.String(), fmt.Errorf("not a clause: contains a non-disjunctive connective"))
	}
}

// ReportDocument renders the human-readable inference report (spec
// §6): the query and its negation, the step-by-step derivation trace,
// and a terminal RESULT line. Saturated and BoundReached both render
// as RESULT: FALSE but with distinct trailer text, per the original
// source's behavior (SPEC_FULL.md "Resolution step cap surfaced to the
// user").
func (r *Result) ReportDocument() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\n", r.Query.Text)
	b.WriteString("Negation:\n")
	for _, c := range r.QueryClauses {
		fmt.Fprintf(&b, "  %s\n", c.String())
	}
	b.WriteByte('\n')

	for _, step := range r.Trace {
		b.WriteString(step.String())
		b.WriteByte('\n')
	}
	if len(r.Trace) > 0 {
		b.WriteByte('\n')
	}

	switch {
	case r.Proved:
		b.WriteString("RESULT: TRUE\n")
	case r.State == prover.BoundReached:
		b.WriteString("RESULT: FALSE (step bound reached before saturation)\n")
	default:
		b.WriteString("RESULT: FALSE (saturated, no further resolvents)\n")
	}
	return b.String()
}
