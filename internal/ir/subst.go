package ir

// Substitution is a finite mapping from variable names to Terms. A
// Substitution built during one unification attempt is local to that
// attempt (spec §3); callers should not share a Substitution across
// independent unifications.
type Substitution map[string]*Term

// Chase follows t through sigma until reaching a constant, a function
// term, or an unmapped variable — spec §4.3.1's "apply sigma" step,
// generalized to walk chains of variable-to-variable bindings.
func (sigma Substitution) Chase(t *Term) *Term {
	for t.Kind == VariableTerm {
		bound, ok := sigma[t.Name]
		if !ok {
			return t
		}
		t = bound
	}
	return t
}

// Apply homomorphically substitutes every variable in t according to
// sigma, chasing bound variables to their final value.
func (sigma Substitution) Apply(t *Term) *Term {
	if len(sigma) == 0 {
		return t
	}
	t = sigma.Chase(t)
	if t.Kind != FunctionTerm {
		return t
	}
	args := make([]*Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		args[i] = sigma.Apply(a)
		if args[i] != a {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return NewFunction(t.Name, args...)
}

// Occurs reports whether variable v occurs in t, after applying sigma to
// t's subterms. Mandatory per spec §4.3.1: without this check, cyclic
// bindings can produce infinite terms.
func Occurs(v string, t *Term, sigma Substitution) bool {
	t = sigma.Chase(t)
	switch t.Kind {
	case VariableTerm:
		return t.Name == v
	case FunctionTerm:
		for _, a := range t.Args {
			if Occurs(v, a, sigma) {
				return true
			}
		}
	}
	return false
}

// Extend returns a new Substitution with v bound to t, leaving sigma
// unmodified.
func (sigma Substitution) Extend(v string, t *Term) Substitution {
	out := make(Substitution, len(sigma)+1)
	for k, val := range sigma {
		out[k] = val
	}
	out[v] = t
	return out
}
