package engine

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/Dani2044/First-order-resolution-engine/internal/cnf"
	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
	"github.com/Dani2044/First-order-resolution-engine/internal/parser"
	"github.com/Dani2044/First-order-resolution-engine/internal/prover"
)

// Options configures a single run.
type Options struct {
	MaxSteps int          // 0 means prover.DefaultMaxSteps
	TraceCNF bool         // log the formula after every CNF stage
	Logger   hclog.Logger // nil means no-op logging
}

// Source pairs a parsed formula with the input line it came from, so
// reports can show both the surface syntax and what it compiled to.
type Source struct {
	Line    int
	Text    string
	Formula *ir.Formula
}

// ParseSources parses every premise line and the query line, in order,
// stopping at the first ParseError.
func ParseSources(premiseLines []Line, queryLine Line) ([]Source, Source, error) {
	premises := make([]Source, len(premiseLines))
	for i, l := range premiseLines {
		f, err := parser.Parse(l.Number, l.Text)
		if err != nil {
			return nil, Source{}, err
		}
		premises[i] = Source{Line: l.Number, Text: l.Text, Formula: f}
	}
	qf, err := parser.Parse(queryLine.Number, queryLine.Text)
	if err != nil {
		return nil, Source{}, err
	}
	return premises, Source{Line: queryLine.Number, Text: queryLine.Text, Formula: qf}, nil
}

// Result is the full outcome of one proof attempt.
type Result struct {
	Premises       []Source
	Query          Source
	PremiseClauses []*ir.Clause
	QueryClauses   []*ir.Clause // the negated query, after CNF conversion
	Trace          []prover.Step
	State          prover.State
	Proved         bool
}

// Convert runs premises and the negated query through one shared CNF
// Converter (so Skolem and rename counters stay monotonic across the
// whole input, per spec §4.2 stage 5) without touching the prover —
// this is what a CNF-only CLI subcommand needs.
//
// The query is refuted by negating it whole and routing the result
// through the same pipeline used for the premises, adding every clause
// the pipeline produces — the resolution of spec §9's multi-literal
// query open question (see SPEC_FULL.md).
func Convert(opts Options, premises []Source, query Source) (premiseClauses, queryClauses []*ir.Clause, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var reserved []string
	for _, p := range premises {
		reserved = p.Formula.Names(reserved)
	}
	reserved = query.Formula.Names(reserved)

	conv := cnf.NewConverter(reserved...)
	if opts.TraceCNF {
		conv.Trace = func(stage string, f *ir.Formula) {
			logger.Info("cnf stage", "stage", stage, "formula", f.String())
		}
	}

	for _, p := range premises {
		clauses, err := conv.ToClauses(p.Formula)
		if err != nil {
			return nil, nil, err
		}
		premiseClauses = append(premiseClauses, clauses...)
	}

	queryClauses, err = conv.ToClauses(ir.Not(query.Formula))
	if err != nil {
		return nil, nil, err
	}
	return premiseClauses, queryClauses, nil
}

// Run converts premises and the negated query to clauses (via Convert)
// and drives the prover to a terminal state.
func Run(ctx context.Context, opts Options, premises []Source, query Source) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	premiseClauses, queryClauses, err := Convert(opts, premises, query)
	if err != nil {
		return nil, err
	}

	pr := prover.New(logger, opts.MaxSteps)
	pr.Seed(premiseClauses, queryClauses)

	logger.Info("starting saturation",
		"premise_clauses", len(premiseClauses),
		"negated_query_clauses", len(queryClauses))
	proved, err := pr.Prove(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Premises:       premises,
		Query:          query,
		PremiseClauses: premiseClauses,
		QueryClauses:   queryClauses,
		Trace:          pr.Trace(),
		State:          pr.State(),
		Proved:         proved,
	}
	logger.Info("run complete",
		"state", result.State.String(),
		"proved", result.Proved,
		"steps", len(result.Trace))
	return result, nil
}
