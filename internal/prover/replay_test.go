package prover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
	"github.com/Dani2044/First-order-resolution-engine/internal/prover"
)

func TestReplayAcceptsGenuineContradictionStep(t *testing.T) {
	left := ir.NewClause(ir.NewLiteral("P", false, ir.NewConstant("A")))
	right := ir.NewClause(ir.NewLiteral("P", true, ir.NewConstant("A")))
	resolvents := prover.ResolvePair(left, right, "#1")

	step := prover.Step{Left: left, Right: right, Resolvent: resolvents[0], Contradiction: true}
	assert.True(t, prover.Replay(step))
}

func TestReplayAcceptsGenuineNonEmptyResolventStep(t *testing.T) {
	left := ir.NewClause(
		ir.NewLiteral("Man", true, ir.NewVariable("x")),
		ir.NewLiteral("Mortal", false, ir.NewVariable("x")),
	)
	right := ir.NewClause(ir.NewLiteral("Man", false, ir.NewConstant("Socrates")))
	resolvents := prover.ResolvePair(left, right, "#1")

	step := prover.Step{Left: left, Right: right, Resolvent: resolvents[0]}
	assert.True(t, prover.Replay(step))
}

func TestReplayRejectsFabricatedResolvent(t *testing.T) {
	left := ir.NewClause(
		ir.NewLiteral("Man", true, ir.NewVariable("x")),
		ir.NewLiteral("Mortal", false, ir.NewVariable("x")),
	)
	right := ir.NewClause(ir.NewLiteral("Man", false, ir.NewConstant("Socrates")))

	fabricated := ir.NewClause(ir.NewLiteral("Nonsense", false, ir.NewConstant("X")))
	step := prover.Step{Left: left, Right: right, Resolvent: fabricated}
	assert.False(t, prover.Replay(step))
}

func TestReplayRejectsContradictionStepWhenParentsAreNotComplementary(t *testing.T) {
	left := ir.NewClause(ir.NewLiteral("P", false, ir.NewConstant("A")))
	right := ir.NewClause(ir.NewLiteral("Q", false, ir.NewConstant("B")))

	step := prover.Step{Left: left, Right: right, Resolvent: ir.NewClause(), Contradiction: true}
	assert.False(t, prover.Replay(step))
}
