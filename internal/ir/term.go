// Package ir holds the logic engine's data model: terms, literals,
// formulas, substitutions, and clauses. Nothing in this package performs
// I/O or parsing; it is the shared vocabulary between the parser, the CNF
// converter, and the prover.
package ir

import (
	"strconv"
	"strings"
)

// Kind discriminates the three shapes a Term can take.
type Kind uint8

const (
	VariableTerm Kind = iota
	ConstantTerm
	FunctionTerm
)

// Term is a tagged value: a variable, a constant, or a compound function
// application. Terms are immutable once constructed; rewrites build new
// Terms rather than mutating existing ones.
type Term struct {
	Kind Kind
	Name string
	Args []*Term // non-empty only for FunctionTerm
}

func NewVariable(name string) *Term { return &Term{Kind: VariableTerm, Name: name} }
func NewConstant(name string) *Term { return &Term{Kind: ConstantTerm, Name: name} }

func NewFunction(name string, args ...*Term) *Term {
	if len(args) == 0 {
		panic("ir: function term requires at least one argument")
	}
	return &Term{Kind: FunctionTerm, Name: name, Args: args}
}

func (t *Term) IsVariable() bool { return t.Kind == VariableTerm }

// String renders a term as "name" or "name(arg, ...)", recursively.
func (t *Term) String() string {
	if t.Kind != FunctionTerm {
		return t.Name
	}
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteByte('(')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports structural equality (same shape and names), without
// resolving any substitution.
func (t *Term) Equal(other *Term) bool {
	if t.Kind != other.Kind || t.Name != other.Name || len(t.Args) != len(other.Args) {
		return false
	}
	for i, a := range t.Args {
		if !a.Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Key is the structural term key used for intra-clause literal
// deduplication, where variable names are significant (two literals in
// the same clause sharing a variable name denote the same variable): a
// recursive tuple distinguishing f(g(x)) from f(x), per spec §4.3.
func (t *Term) Key() string {
	if t.Kind != FunctionTerm {
		return string(rune('0'+t.Kind)) + ":" + t.Name
	}
	var b strings.Builder
	b.WriteString("2:")
	b.WriteString(t.Name)
	b.WriteByte('(')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Key())
	}
	b.WriteByte(')')
	return b.String()
}

// canonicalKey is like Key, except variable names are replaced by a
// placeholder assigned in first-occurrence order via varMap/counter,
// making the result invariant under consistent variable renaming (the
// "variant tag" a clause needs for workset deduplication, per spec §4.3
// and §9 — two clauses that are identical up to renaming must collapse
// to the same signature even though resolution renames clauses apart
// before every attempt).
func (t *Term) canonicalKey(varMap map[string]string, counter *int) string {
	if t.Kind == VariableTerm {
		name, ok := varMap[t.Name]
		if !ok {
			name = "?" + strconv.Itoa(*counter)
			varMap[t.Name] = name
			*counter++
		}
		return "0:" + name
	}
	if t.Kind != FunctionTerm {
		return string(rune('0'+t.Kind)) + ":" + t.Name
	}
	var b strings.Builder
	b.WriteString("2:")
	b.WriteString(t.Name)
	b.WriteByte('(')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.canonicalKey(varMap, counter))
	}
	b.WriteByte(')')
	return b.String()
}

// names appends t's own name (if it has one worth reserving) and every
// name occurring in its arguments to out, skipping variables.
func (t *Term) names(out []string) []string {
	switch t.Kind {
	case ConstantTerm:
		return append(out, t.Name)
	case FunctionTerm:
		out = append(out, t.Name)
		for _, a := range t.Args {
			out = a.names(out)
		}
	}
	return out
}

// Vars appends the names of every variable occurring in t (with
// repetition) to out and returns the extended slice.
func (t *Term) Vars(out []string) []string {
	switch t.Kind {
	case VariableTerm:
		return append(out, t.Name)
	case FunctionTerm:
		for _, a := range t.Args {
			out = a.Vars(out)
		}
	}
	return out
}

// RenameVars returns a copy of t with every variable name rewritten
// through rename. Variables absent from rename are left unchanged.
func (t *Term) RenameVars(rename map[string]string) *Term {
	switch t.Kind {
	case VariableTerm:
		if n, ok := rename[t.Name]; ok {
			return NewVariable(n)
		}
		return t
	case FunctionTerm:
		args := make([]*Term, len(t.Args))
		changed := false
		for i, a := range t.Args {
			args[i] = a.RenameVars(rename)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return NewFunction(t.Name, args...)
	default:
		return t
	}
}
