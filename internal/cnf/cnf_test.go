package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dani2044/First-order-resolution-engine/internal/cnf"
	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
	"github.com/Dani2044/First-order-resolution-engine/internal/parser"
)

func clauses(t *testing.T, input string) []*ir.Clause {
	t.Helper()
	f, err := parser.Parse(1, input)
	require.NoError(t, err)
	cs, err := cnf.NewConverter().ToClauses(f)
	require.NoError(t, err)
	return cs
}

func TestToClausesFlattensConjunctionOfDisjunctions(t *testing.T) {
	cs := clauses(t, "(P(a) ∨ Q(a)) ∧ R(a)")
	require.Len(t, cs, 2)
	assert.Equal(t, "P(a) ∨ Q(a)", cs[0].String())
	assert.Equal(t, "R(a)", cs[1].String())
}

func TestToClausesEliminatesImplicationAndBiconditional(t *testing.T) {
	cs := clauses(t, "∀x (Man(x) → Mortal(x))")
	require.Len(t, cs, 1)
	require.Len(t, cs[0].Literals, 2)
	assert.True(t, cs[0].Literals[0].Negated != cs[0].Literals[1].Negated)
	v := cs[0].Literals[0].Args[0].Name
	assert.Equal(t, v, cs[0].Literals[1].Args[0].Name, "both literals must share the standardized variable")

	biconditional := clauses(t, "P(A) ↔ Q(A)")
	require.Len(t, biconditional, 2)
}

func TestToClausesSkolemizesExistentialWithUniversalArgument(t *testing.T) {
	cs := clauses(t, "∀x ∃y Loves(x, y)")
	require.Len(t, cs, 1)
	require.Len(t, cs[0].Literals, 1)
	lit := cs[0].Literals[0]
	require.Len(t, lit.Args, 2)
	skolem := lit.Args[1]
	assert.Equal(t, ir.FunctionTerm, skolem.Kind)
	assert.Len(t, skolem.Args, 1)
}

func TestToClausesSkolemizesExistentialWithoutUniversalAsConstant(t *testing.T) {
	cs := clauses(t, "∃y Loves(Alice, y)")
	require.Len(t, cs, 1)
	skolem := cs[0].Literals[0].Args[1]
	assert.Equal(t, ir.ConstantTerm, skolem.Kind)
}

func TestToClausesDropsTautologies(t *testing.T) {
	cs := clauses(t, "P(A) ∨ ¬P(A)")
	assert.Len(t, cs, 0)
}

func TestToClausesStandardizesNestedQuantifiersApart(t *testing.T) {
	cs := clauses(t, "(∀x P(x)) ∧ (∀x Q(x))")
	require.Len(t, cs, 2)
	v1 := cs[0].Literals[0].Args[0].Name
	v2 := cs[1].Literals[0].Args[0].Name
	assert.NotEqual(t, v1, v2)
}

// Skolem symbols must not collide with reserved names already present
// in the input (spec §4.2 stage 5).
func TestToClausesSkolemAvoidsReservedNames(t *testing.T) {
	f, err := parser.Parse(1, "∃y Loves(Alice, y)")
	require.NoError(t, err)

	conv := cnf.NewConverter("C0", "C1")
	cs, err := conv.ToClauses(f)
	require.NoError(t, err)
	skolem := cs[0].Literals[0].Args[1]
	assert.NotEqual(t, "C0", skolem.Name)
	assert.NotEqual(t, "C1", skolem.Name)
}

// Idempotence: re-running the pipeline on its own output (re-parsed as
// a formula) yields the same clause set, modulo ordering (spec §8).
func TestToClausesIsIdempotentOnItsOwnOutput(t *testing.T) {
	cs := clauses(t, "∀x (Bird(x) ∧ ¬Penguin(x) → Flies(x))")

	var rewrapped *ir.Formula
	for _, c := range cs {
		var disjunction *ir.Formula
		for _, l := range c.Literals {
			if disjunction == nil {
				disjunction = ir.Lit(l)
			} else {
				disjunction = ir.Or(disjunction, ir.Lit(l))
			}
		}
		if rewrapped == nil {
			rewrapped = disjunction
		} else {
			rewrapped = ir.And(rewrapped, disjunction)
		}
	}

	again, err := cnf.NewConverter().ToClauses(rewrapped)
	require.NoError(t, err)

	sigs1 := make(map[string]bool, len(cs))
	for _, c := range cs {
		sigs1[c.Signature()] = true
	}
	sigs2 := make(map[string]bool, len(again))
	for _, c := range again {
		sigs2[c.Signature()] = true
	}
	assert.Equal(t, sigs1, sigs2)
}

// A chain of → parses right-nested (P → (Q → R), spec §4.1 point 5),
// which distributes to a single three-literal clause. The left-folded
// reading ((P → Q) → R) would instead produce two two-literal clauses,
// so this also pins down the parser's associativity at the CNF stage.
func TestToClausesOnImpliesChainYieldsOneClauseNotTwo(t *testing.T) {
	cs := clauses(t, "P(a) → Q(a) → R(a)")
	require.Len(t, cs, 1)
	require.Len(t, cs[0].Literals, 3)

	var negP, negQ, posR bool
	for _, l := range cs[0].Literals {
		switch {
		case l.Pred == "P" && l.Negated:
			negP = true
		case l.Pred == "Q" && l.Negated:
			negQ = true
		case l.Pred == "R" && !l.Negated:
			posR = true
		}
	}
	assert.True(t, negP && negQ && posR, "expected {¬P(a), ¬Q(a), R(a)}, got %s", cs[0])
}

func TestToClausesTraceHookFiresForEveryStage(t *testing.T) {
	f, err := parser.Parse(1, "P(A) ↔ Q(A)")
	require.NoError(t, err)

	var stages []string
	conv := cnf.NewConverter()
	conv.Trace = func(stage string, _ *ir.Formula) { stages = append(stages, stage) }
	_, err = conv.ToClauses(f)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"eliminate-biconditionals",
		"eliminate-implications",
		"nnf",
		"standardize-apart",
		"skolemize",
		"drop-universals",
		"distribute",
	}, stages)
}
