package ir

import (
	"sort"
	"strings"
)

// Clause is an unordered set of literals, interpreted as their
// disjunction. The empty clause (len(Literals) == 0) denotes
// contradiction.
type Clause struct {
	Literals []*Literal
}

// NewClause builds a clause from literals, deduplicating by structural
// key (spec §3 invariant: "no duplicate literals (by structural key)").
func NewClause(literals ...*Literal) *Clause {
	return &Clause{Literals: dedupLiterals(literals)}
}

func dedupLiterals(literals []*Literal) []*Literal {
	seen := make(map[string]bool, len(literals))
	out := make([]*Literal, 0, len(literals))
	for _, l := range literals {
		k := l.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, l)
	}
	return out
}

func (c *Clause) Empty() bool { return len(c.Literals) == 0 }

// String renders literals joined by " ∨ ", per spec §6's intermediate
// CNF file format. The empty clause renders as "□".
func (c *Clause) String() string {
	if c.Empty() {
		return "□"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// IsTautology reports whether c contains some literal and its exact
// structural complement (spec §4.3: tautologies are pruned, never added
// to the workset).
func (c *Clause) IsTautology() bool {
	for i, l := range c.Literals {
		for _, m := range c.Literals[i+1:] {
			if l.ExactComplement(m) {
				return true
			}
		}
	}
	return false
}

// Signature is the clause key used for duplicate rejection in the
// prover's workset: a sorted tuple of per-literal keys, with variable
// names normalized to first-occurrence placeholders so that two clauses
// identical up to renaming collapse to one signature (spec §4.3
// "Workset"; spec §9 notes resolution renames clauses apart before
// every attempt, so this invariance is required for dedup to work at
// all).
//
// Numbering the placeholders needs a literal processing order — two
// occurrences of "the same" clause built by different code paths can
// list their literals in different order. So variables are numbered in
// two passes: first each literal is given a shape key canonicalized in
// isolation (only its own repeated variables collapse), which is stable
// under renaming and does not depend on the other literals in the
// clause; literals are sorted by that shape key to fix a traversal
// order; then a second pass walks literals in that order to assign the
// real, clause-wide placeholder numbers, which is what captures a
// variable shared across more than one literal. Literals whose shape
// keys are equal keep their slice order, so the signature is invariant
// under literal reordering only when that tie does not matter:
// {P(x), P(y), Q(x)} and {P(y), P(x), Q(x)} get different signatures
// and are not merged.
func (c *Clause) Signature() string {
	order := make([]int, len(c.Literals))
	shapes := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		order[i] = i
		shapes[i] = l.canonicalKey(make(map[string]string), new(int))
	}
	sort.SliceStable(order, func(a, b int) bool { return shapes[order[a]] < shapes[order[b]] })

	varMap := make(map[string]string)
	counter := 0
	keys := make([]string, len(c.Literals))
	for i, idx := range order {
		keys[i] = c.Literals[idx].canonicalKey(varMap, &counter)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}

// Vars returns the distinct variable names occurring anywhere in c.
func (c *Clause) Vars() []string {
	var out []string
	for _, l := range c.Literals {
		out = l.Vars(out)
	}
	return dedupStrings(out)
}

func dedupStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// RenameApart returns a copy of c with every variable renamed to a fresh
// name built from the given suffix. Used to make two clauses' variable
// namespaces disjoint before resolving them (spec §9, "Rename-apart at
// resolution").
func (c *Clause) RenameApart(suffix string) *Clause {
	rename := make(map[string]string, len(c.Literals))
	for _, v := range c.Vars() {
		rename[v] = v + suffix
	}
	literals := make([]*Literal, len(c.Literals))
	for i, l := range c.Literals {
		literals[i] = l.RenameVars(rename)
	}
	return &Clause{Literals: literals}
}

// Apply builds a new clause with sigma applied to every literal, then
// deduplicates the result by structural key.
func (c *Clause) Apply(sigma Substitution) *Clause {
	literals := make([]*Literal, len(c.Literals))
	for i, l := range c.Literals {
		literals[i] = l.Apply(sigma)
	}
	return NewClause(literals...)
}

// Without returns a copy of c's literal slice with the literal at index i
// removed.
func (c *Clause) Without(i int) []*Literal {
	out := make([]*Literal, 0, len(c.Literals)-1)
	out = append(out, c.Literals[:i]...)
	out = append(out, c.Literals[i+1:]...)
	return out
}
