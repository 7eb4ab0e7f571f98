package ir

import "strings"

// Literal is a predicate application or its negation. Arity is implicit
// in len(Args); a 0-ary literal has an empty Args slice.
type Literal struct {
	Pred    string
	Args    []*Term
	Negated bool
}

func NewLiteral(pred string, negated bool, args ...*Term) *Literal {
	return &Literal{Pred: pred, Args: args, Negated: negated}
}

// Negate returns a copy of l with its sign flipped.
func (l *Literal) Negate() *Literal {
	return &Literal{Pred: l.Pred, Args: l.Args, Negated: !l.Negated}
}

// String renders "[¬]pred(arg, arg, ...)" per spec §6's intermediate
// file format.
func (l *Literal) String() string {
	var b strings.Builder
	if l.Negated {
		b.WriteRune('¬')
	}
	b.WriteString(l.Pred)
	if len(l.Args) > 0 {
		b.WriteByte('(')
		for i, a := range l.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Key is the literal key used for intra-clause deduplication: (negated?,
// predicate_name, structural_term_key*), per spec §4.3.
func (l *Literal) Key() string {
	var b strings.Builder
	if l.Negated {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	b.WriteString(l.Pred)
	for _, a := range l.Args {
		b.WriteByte('|')
		b.WriteString(a.Key())
	}
	return b.String()
}

// canonicalKey is Key with variable names replaced by first-occurrence
// placeholders — see Term.canonicalKey.
func (l *Literal) canonicalKey(varMap map[string]string, counter *int) string {
	var b strings.Builder
	if l.Negated {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	b.WriteString(l.Pred)
	for _, a := range l.Args {
		b.WriteByte('|')
		b.WriteString(a.canonicalKey(varMap, counter))
	}
	return b.String()
}

// Complementary reports whether l and other share a predicate and arity
// with opposite sign — the precondition for attempting unification
// during resolution.
func (l *Literal) Complementary(other *Literal) bool {
	return l.Pred == other.Pred && l.Negated != other.Negated && len(l.Args) == len(other.Args)
}

// ExactComplement reports whether l and other are structurally identical
// except for sign — used for tautology detection, which compares terms
// as written rather than up to unification.
func (l *Literal) ExactComplement(other *Literal) bool {
	if l.Pred != other.Pred || l.Negated == other.Negated || len(l.Args) != len(other.Args) {
		return false
	}
	for i, a := range l.Args {
		if !a.Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Apply builds a new literal with sigma applied to every argument term.
func (l *Literal) Apply(sigma Substitution) *Literal {
	if len(sigma) == 0 {
		return l
	}
	args := make([]*Term, len(l.Args))
	changed := false
	for i, a := range l.Args {
		args[i] = sigma.Apply(a)
		if args[i] != a {
			changed = true
		}
	}
	if !changed {
		return l
	}
	return &Literal{Pred: l.Pred, Args: args, Negated: l.Negated}
}

// Vars appends the names of every variable occurring in l's arguments to
// out and returns the extended slice.
func (l *Literal) Vars(out []string) []string {
	for _, a := range l.Args {
		out = a.Vars(out)
	}
	return out
}

// RenameVars returns a copy of l with every variable renamed through
// rename.
func (l *Literal) RenameVars(rename map[string]string) *Literal {
	if len(rename) == 0 {
		return l
	}
	args := make([]*Term, len(l.Args))
	changed := false
	for i, a := range l.Args {
		args[i] = a.RenameVars(rename)
		if args[i] != a {
			changed = true
		}
	}
	if !changed {
		return l
	}
	return &Literal{Pred: l.Pred, Args: args, Negated: l.Negated}
}
