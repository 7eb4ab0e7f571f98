package prover

import "github.com/Dani2044/First-order-resolution-engine/internal/ir"

// Replay recomputes step's resolvent from its recorded parents and
// reports whether the recorded resolvent is among the resolvents
// ResolvePair produces for those parents — the soundness check from
// spec §8 ("every derivation trace is replayable").
//
// ResolvePair is deterministic given the same rename suffix, but the
// suffix only affects generated variable names, not which resolvents
// exist; Replay compares modulo the exact suffix by checking that some
// produced resolvent has the same signature as step.Resolvent, rather
// than requiring the renamed variable names to match exactly.
func Replay(step Step) bool {
	if step.Contradiction {
		return step.Resolvent.Empty() && clauseSetHasEmpty(ResolvePair(step.Left, step.Right, "#replay"))
	}
	wantSig := step.Resolvent.Signature()
	for _, r := range ResolvePair(step.Left, step.Right, "#replay") {
		if r.Signature() == wantSig {
			return true
		}
	}
	return false
}

func clauseSetHasEmpty(clauses []*ir.Clause) bool {
	for _, c := range clauses {
		if c.Empty() {
			return true
		}
	}
	return false
}
