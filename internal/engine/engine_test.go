package engine_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dani2044/First-order-resolution-engine/internal/engine"
	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
)

func run(t *testing.T, premiseText []string, queryText string) *engine.Result {
	t.Helper()
	premiseLines := make([]engine.Line, len(premiseText))
	for i, text := range premiseText {
		premiseLines[i] = engine.Line{Number: i + 1, Text: text}
	}
	queryLine := engine.Line{Number: len(premiseText) + 1, Text: queryText}

	premises, query, err := engine.ParseSources(premiseLines, queryLine)
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), engine.Options{}, premises, query)
	require.NoError(t, err)
	return result
}

// Scenario 1, spec §8: Socrates syllogism.
func TestRunSocratesSyllogism(t *testing.T) {
	result := run(t, []string{
		"∀x (Man(x) → Mortal(x))",
		"Man(Socrates)",
	}, "Mortal(Socrates)")

	assert.True(t, result.Proved)
}

// Scenario 2, spec §8: inconsistent premises entail anything.
func TestRunInconsistentPremises(t *testing.T) {
	result := run(t, []string{
		"∀x (P(x) → Q(x))",
		"P(A)",
		"¬Q(A)",
	}, "Q(A)")

	assert.True(t, result.Proved)
}

// Scenario 3, spec §8: a disjunctive premise does not entail either
// disjunct alone.
func TestRunDisjunctivePremiseDoesNotEntailDisjunct(t *testing.T) {
	result := run(t, []string{
		"P(A) ∨ P(B)",
	}, "P(A)")

	assert.False(t, result.Proved)
}

// Scenario 4, spec §8: an existential premise does not entail a
// specific instance once Skolemized.
func TestRunSkolemizedExistentialDoesNotEntailInstance(t *testing.T) {
	result := run(t, []string{
		"∀x ∃y Loves(x, y)",
	}, "Loves(Alice, Alice)")

	assert.False(t, result.Proved)
}

// Scenario 5, spec §8: conjunctive antecedent with a negated literal.
func TestRunBirdPenguinFlies(t *testing.T) {
	result := run(t, []string{
		"∀x ((Bird(x) ∧ ¬Penguin(x)) → Flies(x))",
		"Bird(Tweety)",
		"¬Penguin(Tweety)",
	}, "Flies(Tweety)")

	assert.True(t, result.Proved)
}

// Scenario 6, spec §8: biconditional premise.
func TestRunBiconditionalPremise(t *testing.T) {
	result := run(t, []string{
		"P(A) ↔ Q(A)",
		"P(A)",
	}, "Q(A)")

	assert.True(t, result.Proved)
}

func TestRunKnownContradictionProvesInOneStep(t *testing.T) {
	result := run(t, []string{
		"P(A)",
		"¬P(A)",
	}, "Q(B)")

	require.True(t, result.Proved)
	assert.Len(t, result.Trace, 1)
	assert.True(t, result.Trace[0].Contradiction)
}

func TestRunIndependentClausesSaturateWithoutProof(t *testing.T) {
	result := run(t, []string{
		"P(A)",
		"Q(B)",
	}, "R(A)")

	assert.False(t, result.Proved)
}

func TestCNFDocumentRoundTrips(t *testing.T) {
	result := run(t, []string{
		"∀x (Man(x) → Mortal(x))",
		"Man(Socrates)",
	}, "Mortal(Socrates)")

	doc := result.CNFDocument()
	clauses, err := engine.ReadCNFClauses(doc)
	require.NoError(t, err)

	want := signatures(append(append([]*ir.Clause{}, result.PremiseClauses...), result.QueryClauses...))
	got := signatures(clauses)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round-tripped clause set differs (-want +got):\n%s", diff)
	}
}

// signatures returns cs's clause signatures, sorted so two clause
// slices that differ only in order compare equal.
func signatures(cs []*ir.Clause) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Signature()
	}
	sort.Strings(out)
	return out
}

func TestReportDocumentEndsWithResultLine(t *testing.T) {
	result := run(t, []string{"P(A)", "¬P(A)"}, "Q(B)")
	doc := result.ReportDocument()
	assert.Contains(t, doc, "RESULT: TRUE")
	assert.True(t, strings.HasSuffix(doc, "RESULT: TRUE\n"), "report must end with the RESULT line, got %q", doc)
}

func TestSplitLinesRejectsEmptyInput(t *testing.T) {
	_, _, err := engine.SplitLines("\n\n   \n")
	assert.Error(t, err)
}

func TestSplitLinesTakesLastNonBlankLineAsQuery(t *testing.T) {
	premises, query, err := engine.SplitLines("P(A)\n\nQ(B)\n\nR(C)\n")
	require.NoError(t, err)
	require.Len(t, premises, 2)
	assert.Equal(t, "P(A)", premises[0].Text)
	assert.Equal(t, "Q(B)", premises[1].Text)
	assert.Equal(t, "R(C)", query.Text)
}
