// Package prover implements the resolution engine from spec §4.3: a
// clause workset, Robinson unification with occurs-check, and a
// saturation loop that halts on deriving the empty clause, on a dry
// pass, or on exhausting a step bound.
package prover

import "github.com/Dani2044/First-order-resolution-engine/internal/ir"

// Unify attempts to extend sigma so that s and t become syntactically
// identical, per the Robinson algorithm in spec §4.3.1. It returns the
// extended substitution, or (nil, false) on failure. sigma may be nil,
// meaning the empty substitution.
func Unify(s, t *ir.Term, sigma ir.Substitution) (ir.Substitution, bool) {
	s = sigma.Chase(s)
	t = sigma.Chase(t)

	if s.IsVariable() {
		if t.IsVariable() && s.Name == t.Name {
			return sigma, true
		}
		if ir.Occurs(s.Name, t, sigma) {
			return nil, false
		}
		return sigma.Extend(s.Name, t), true
	}
	if t.IsVariable() {
		if ir.Occurs(t.Name, s, sigma) {
			return nil, false
		}
		return sigma.Extend(t.Name, s), true
	}

	if s.Kind == ir.ConstantTerm && t.Kind == ir.ConstantTerm {
		if s.Name == t.Name {
			return sigma, true
		}
		return nil, false
	}

	if s.Kind == ir.FunctionTerm && t.Kind == ir.FunctionTerm {
		if s.Name != t.Name || len(s.Args) != len(t.Args) {
			return nil, false
		}
		var ok bool
		for i := range s.Args {
			sigma, ok = Unify(s.Args[i], t.Args[i], sigma)
			if !ok {
				return nil, false
			}
		}
		return sigma, true
	}

	return nil, false
}

// UnifyLiterals unifies two literals' argument lists position by
// position, threading the substitution across arguments. It fails when
// the predicate names or arities differ, but does not check sign —
// callers (resolution) test Literal.Complementary first.
func UnifyLiterals(a, b *ir.Literal) (ir.Substitution, bool) {
	if a.Pred != b.Pred || len(a.Args) != len(b.Args) {
		return nil, false
	}
	var sigma ir.Substitution
	var ok bool
	for i := range a.Args {
		sigma, ok = Unify(a.Args[i], b.Args[i], sigma)
		if !ok {
			return nil, false
		}
	}
	return sigma, true
}
