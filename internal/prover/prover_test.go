package prover_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
	"github.com/Dani2044/First-order-resolution-engine/internal/prover"
)

// spec §8: a known contradiction proves True in one step.
func TestProveDirectContradictionProvesInOneStep(t *testing.T) {
	p := prover.New(nil, 0)
	p.Seed([]*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", false, ir.NewConstant("A"))),
	}, []*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", true, ir.NewConstant("A"))),
	})

	proved, err := p.Prove(context.Background())
	require.NoError(t, err)
	assert.True(t, proved)
	assert.Equal(t, prover.Proven, p.State())

	trace := p.Trace()
	require.Len(t, trace, 1)
	assert.True(t, trace[0].Contradiction)
	assert.True(t, trace[0].Resolvent.Empty())
}

// spec §8: an independent clause set saturates without proving.
func TestProveIndependentClausesSaturateWithoutProof(t *testing.T) {
	p := prover.New(nil, 0)
	p.Seed([]*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", false, ir.NewConstant("A"))),
		ir.NewClause(ir.NewLiteral("Q", false, ir.NewConstant("B"))),
	}, []*ir.Clause{
		ir.NewClause(ir.NewLiteral("R", true, ir.NewConstant("A"))),
	})

	proved, err := p.Prove(context.Background())
	require.NoError(t, err)
	assert.False(t, proved)
	assert.Equal(t, prover.Saturated, p.State())
	assert.Empty(t, p.Trace())
}

func TestProveStopsAtBoundReachedBeforeSaturating(t *testing.T) {
	// A growing chain P(a)->P(f(a))->P(f(f(a)))->... never saturates and
	// never contradicts, so a tight step bound must cut it off.
	p := prover.New(nil, 1)
	p.Seed([]*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", true, ir.NewVariable("x")), ir.NewLiteral("P", false, ir.NewFunction("f", ir.NewVariable("x")))),
		ir.NewClause(ir.NewLiteral("P", false, ir.NewConstant("A"))),
	}, nil)

	proved, err := p.Prove(context.Background())
	require.NoError(t, err)
	assert.False(t, proved)
	assert.Equal(t, prover.BoundReached, p.State())
}

// A direct contradiction must still be found within a pass even after
// an earlier pair in that same pass has already exhausted the step
// bound by admitting a novel, non-empty resolvent.
func TestProveFindsContradictionInSamePassAfterBoundWouldOtherwiseHaveCutItOff(t *testing.T) {
	p := prover.New(nil, 1)
	p.Seed([]*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", false, ir.NewVariable("x")), ir.NewLiteral("Q", false, ir.NewVariable("x"))),
		ir.NewClause(ir.NewLiteral("Q", true, ir.NewConstant("A"))),
		ir.NewClause(ir.NewLiteral("R", false, ir.NewConstant("B"))),
		ir.NewClause(ir.NewLiteral("R", true, ir.NewConstant("B"))),
	}, nil)

	proved, err := p.Prove(context.Background())
	require.NoError(t, err)
	assert.True(t, proved)
	assert.Equal(t, prover.Proven, p.State())
}

func TestSeedDeduplicatesIdenticalClausesByStructuralSignature(t *testing.T) {
	p := prover.New(nil, 0)
	p.Seed([]*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", false, ir.NewVariable("x"))),
		ir.NewClause(ir.NewLiteral("P", false, ir.NewVariable("y"))),
	}, nil)
	assert.Len(t, p.Clauses(), 1)
}

func TestProveRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := prover.New(nil, 0)
	p.Seed([]*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", false, ir.NewConstant("A"))),
	}, []*ir.Clause{
		ir.NewClause(ir.NewLiteral("P", true, ir.NewConstant("A"))),
	})

	_, err := p.Prove(ctx)
	assert.Error(t, err)
}
