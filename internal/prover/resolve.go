package prover

import "github.com/Dani2044/First-order-resolution-engine/internal/ir"

// ResolvePair computes every resolvent of c1 and c2, per spec §4.3. The
// literal pairing order is lexical by index within each clause, which
// makes derivation traces reproducible (spec §4.3.1 "Tie-break").
//
// c2 is renamed apart with renameSuffix before resolving, so that a
// variable name shared between c1 and c2 (which can happen once both
// clauses have passed through Skolem standardization independently) does
// not cause an unsound resolution — the rename-apart fix recommended in
// spec §9 and required by SPEC_FULL.md.
func ResolvePair(c1, c2 *ir.Clause, renameSuffix string) []*ir.Clause {
	c2 = c2.RenameApart(renameSuffix)

	var resolvents []*ir.Clause
	for i, l1 := range c1.Literals {
		for j, l2 := range c2.Literals {
			if !l1.Complementary(l2) {
				continue
			}
			sigma, ok := UnifyLiterals(l1, l2)
			if !ok {
				continue
			}
			remaining := make([]*ir.Literal, 0, len(c1.Literals)+len(c2.Literals)-2)
			remaining = append(remaining, c1.Without(i)...)
			remaining = append(remaining, c2.Without(j)...)

			applied := make([]*ir.Literal, len(remaining))
			for k, l := range remaining {
				applied[k] = l.Apply(sigma)
			}

			resolvent := ir.NewClause(applied...)
			if resolvent.IsTautology() {
				continue
			}
			resolvents = append(resolvents, resolvent)
		}
	}
	return resolvents
}
