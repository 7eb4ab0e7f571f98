// Package cnf rewrites an arbitrary first-order formula into a list of
// clauses via the seven-stage pipeline from spec §4.2: eliminate
// biconditionals, eliminate implications, push negations to NNF,
// standardize variables apart, Skolemize, drop universal quantifiers,
// and distribute ∨ over ∧.
package cnf

import (
	"fmt"

	"github.com/Dani2044/First-order-resolution-engine/internal/errs"
	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
)

// Converter holds the counters that must stay monotonic across an entire
// formula set: the Skolem symbol counter (spec §4.2 stage 5) and the
// fresh-variable counter used while standardizing apart (stage 4).
// Construct one Converter per input file and reuse it across every
// premise and the (negated) query so Skolem symbols never collide.
type Converter struct {
	varCounter    int
	skolemCounter int
	reserved      map[string]bool

	// Trace, if set, is called with the formula produced by each of the
	// seven rewrite stages (stage names below), in order. Nil by
	// default — the pipeline stays side-effect-free unless a caller
	// opts in (e.g. a CLI's verbose/trace flag).
	Trace func(stage string, f *ir.Formula)
}

// NewConverter returns a Converter whose Skolem symbols are guaranteed
// not to collide with any of the given predicate/function/constant
// names already present in the input (spec §4.2 stage 5).
func NewConverter(reservedNames ...string) *Converter {
	reserved := make(map[string]bool, len(reservedNames))
	for _, n := range reservedNames {
		reserved[n] = true
	}
	return &Converter{reserved: reserved}
}

// ToClauses runs the full seven-stage pipeline over f and flattens the
// result into a clause list, deduplicating literals within each clause
// and discarding tautologies (spec §3, §4.2 "Clause extraction").
func (c *Converter) ToClauses(f *ir.Formula) (clauses []*ir.Clause, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*errs.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	f = c.eliminateBiconditionals(f)
	c.trace("eliminate-biconditionals", f)
	f = c.eliminateImplications(f)
	c.trace("eliminate-implications", f)
	f = c.toNNF(f)
	c.trace("nnf", f)
	f = c.standardizeApart(f, nil)
	c.trace("standardize-apart", f)
	f = c.skolemize(f, nil)
	c.trace("skolemize", f)
	f = c.dropUniversals(f)
	c.trace("drop-universals", f)
	f = distribute(f)
	c.trace("distribute", f)

	clauses = extractClauses(f)
	clauses = filterTautologies(clauses)
	return clauses, nil
}

func (c *Converter) trace(stage string, f *ir.Formula) {
	if c.Trace != nil {
		c.Trace(stage, f)
	}
}

func internalInvariant(format string, args ...interface{}) {
	panic(errs.Newf(errs.InternalInvariant, "cnf: "+format, args...))
}

// eliminateBiconditionals is stage 1: α ↔ β ⇒ (α → β) ∧ (β → α),
// applied bottom-up so nested biconditionals fully expand.
func (c *Converter) eliminateBiconditionals(f *ir.Formula) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return f
	case ir.NotNode:
		return ir.Not(c.eliminateBiconditionals(f.Left))
	case ir.AndNode:
		return ir.And(c.eliminateBiconditionals(f.Left), c.eliminateBiconditionals(f.Right))
	case ir.OrNode:
		return ir.Or(c.eliminateBiconditionals(f.Left), c.eliminateBiconditionals(f.Right))
	case ir.ImpliesNode:
		return ir.Implies(c.eliminateBiconditionals(f.Left), c.eliminateBiconditionals(f.Right))
	case ir.IffNode:
		l := c.eliminateBiconditionals(f.Left)
		r := c.eliminateBiconditionals(f.Right)
		return ir.And(ir.Implies(l, r), ir.Implies(r, l))
	case ir.ForAllNode:
		return ir.ForAll(f.BoundVar, c.eliminateBiconditionals(f.Body))
	case ir.ExistsNode:
		return ir.Exists(f.BoundVar, c.eliminateBiconditionals(f.Body))
	default:
		internalInvariant("unreachable formula kind in stage 1")
		return nil
	}
}

// eliminateImplications is stage 2: α → β ⇒ ¬α ∨ β.
func (c *Converter) eliminateImplications(f *ir.Formula) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return f
	case ir.NotNode:
		return ir.Not(c.eliminateImplications(f.Left))
	case ir.AndNode:
		return ir.And(c.eliminateImplications(f.Left), c.eliminateImplications(f.Right))
	case ir.OrNode:
		return ir.Or(c.eliminateImplications(f.Left), c.eliminateImplications(f.Right))
	case ir.ImpliesNode:
		l := c.eliminateImplications(f.Left)
		r := c.eliminateImplications(f.Right)
		return ir.Or(ir.Not(l), r)
	case ir.ForAllNode:
		return ir.ForAll(f.BoundVar, c.eliminateImplications(f.Body))
	case ir.ExistsNode:
		return ir.Exists(f.BoundVar, c.eliminateImplications(f.Body))
	case ir.IffNode:
		internalInvariant("biconditional survived past stage 1")
		return nil
	default:
		internalInvariant("unreachable formula kind in stage 2")
		return nil
	}
}

// toNNF is stage 3: push negations inward until every negation wraps a
// literal directly, at which point it collapses into the literal's
// Negated flag rather than remaining a Formula node.
func (c *Converter) toNNF(f *ir.Formula) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return f
	case ir.NotNode:
		return c.pushNegation(f.Left)
	case ir.AndNode:
		return ir.And(c.toNNF(f.Left), c.toNNF(f.Right))
	case ir.OrNode:
		return ir.Or(c.toNNF(f.Left), c.toNNF(f.Right))
	case ir.ForAllNode:
		return ir.ForAll(f.BoundVar, c.toNNF(f.Body))
	case ir.ExistsNode:
		return ir.Exists(f.BoundVar, c.toNNF(f.Body))
	case ir.ImpliesNode, ir.IffNode:
		internalInvariant("implication or biconditional survived past stage 2")
		return nil
	default:
		internalInvariant("unreachable formula kind in stage 3")
		return nil
	}
}

// pushNegation applies De Morgan's laws (and quantifier duality) to push
// a negation one level inward, then continues pushing recursively.
func (c *Converter) pushNegation(inner *ir.Formula) *ir.Formula {
	switch inner.Kind {
	case ir.LiteralNode:
		return ir.Lit(inner.Lit.Negate())
	case ir.NotNode:
		return c.toNNF(inner.Left) // ¬¬φ ⇒ φ
	case ir.AndNode:
		return c.toNNF(ir.Or(ir.Not(inner.Left), ir.Not(inner.Right)))
	case ir.OrNode:
		return c.toNNF(ir.And(ir.Not(inner.Left), ir.Not(inner.Right)))
	case ir.ForAllNode:
		return c.toNNF(ir.Exists(inner.BoundVar, ir.Not(inner.Body)))
	case ir.ExistsNode:
		return c.toNNF(ir.ForAll(inner.BoundVar, ir.Not(inner.Body)))
	case ir.ImpliesNode, ir.IffNode:
		internalInvariant("implication or biconditional survived past stage 2")
		return nil
	default:
		internalInvariant("unreachable formula kind under negation in stage 3")
		return nil
	}
}

// standardizeApart is stage 4: rename every bound variable to a name
// unique within the formula, substituting inside literal arguments
// according to the active environment. Must run before Skolemization to
// avoid accidental capture (spec §9).
func (c *Converter) standardizeApart(f *ir.Formula, env map[string]string) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return ir.Lit(f.Lit.RenameVars(env))
	case ir.AndNode:
		return ir.And(c.standardizeApart(f.Left, env), c.standardizeApart(f.Right, env))
	case ir.OrNode:
		return ir.Or(c.standardizeApart(f.Left, env), c.standardizeApart(f.Right, env))
	case ir.ForAllNode:
		fresh := c.freshVarName()
		inner := extendEnv(env, f.BoundVar, fresh)
		return ir.ForAll(fresh, c.standardizeApart(f.Body, inner))
	case ir.ExistsNode:
		fresh := c.freshVarName()
		inner := extendEnv(env, f.BoundVar, fresh)
		return ir.Exists(fresh, c.standardizeApart(f.Body, inner))
	default:
		internalInvariant("formula node survived into stage 4 that NNF should have removed")
		return nil
	}
}

func (c *Converter) freshVarName() string {
	c.varCounter++
	return fmt.Sprintf("_v%d", c.varCounter)
}

func extendEnv(env map[string]string, k, v string) map[string]string {
	out := make(map[string]string, len(env)+1)
	for kk, vv := range env {
		out[kk] = vv
	}
	out[k] = v
	return out
}

// skolemize is stage 5: replace each ∃-bound variable with a Skolem
// term that depends functionally on the universals in scope.
func (c *Converter) skolemize(f *ir.Formula, universals []string) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return f
	case ir.AndNode:
		return ir.And(c.skolemize(f.Left, universals), c.skolemize(f.Right, universals))
	case ir.OrNode:
		return ir.Or(c.skolemize(f.Left, universals), c.skolemize(f.Right, universals))
	case ir.ForAllNode:
		extended := append(append([]string{}, universals...), f.BoundVar)
		return ir.ForAll(f.BoundVar, c.skolemize(f.Body, extended))
	case ir.ExistsNode:
		skolemTerm := c.freshSkolemTerm(universals)
		sigma := ir.Substitution{f.BoundVar: skolemTerm}
		substituted := substituteInFormula(f.Body, sigma)
		return c.skolemize(substituted, universals)
	default:
		internalInvariant("formula node survived into stage 5 that earlier stages should have removed")
		return nil
	}
}

func (c *Converter) freshSkolemTerm(universals []string) *ir.Term {
	isConst := len(universals) == 0
	for {
		k := c.skolemCounter
		c.skolemCounter++
		var name string
		if isConst {
			name = fmt.Sprintf("C%d", k)
		} else {
			name = fmt.Sprintf("F%d", k)
		}
		if c.reserved[name] {
			continue
		}
		c.reserved[name] = true
		if isConst {
			return ir.NewConstant(name)
		}
		args := make([]*ir.Term, len(universals))
		for i, u := range universals {
			args[i] = ir.NewVariable(u)
		}
		return ir.NewFunction(name, args...)
	}
}

func substituteInFormula(f *ir.Formula, sigma ir.Substitution) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return ir.Lit(f.Lit.Apply(sigma))
	case ir.AndNode:
		return ir.And(substituteInFormula(f.Left, sigma), substituteInFormula(f.Right, sigma))
	case ir.OrNode:
		return ir.Or(substituteInFormula(f.Left, sigma), substituteInFormula(f.Right, sigma))
	case ir.ForAllNode:
		return ir.ForAll(f.BoundVar, substituteInFormula(f.Body, sigma))
	case ir.ExistsNode:
		return ir.Exists(f.BoundVar, substituteInFormula(f.Body, sigma))
	default:
		internalInvariant("formula node survived into Skolem substitution that earlier stages should have removed")
		return nil
	}
}

// dropUniversals is stage 6: erase remaining ∀ wrappers; their variables
// become implicitly universal at clause scope.
func (c *Converter) dropUniversals(f *ir.Formula) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return f
	case ir.AndNode:
		return ir.And(c.dropUniversals(f.Left), c.dropUniversals(f.Right))
	case ir.OrNode:
		return ir.Or(c.dropUniversals(f.Left), c.dropUniversals(f.Right))
	case ir.ForAllNode:
		return c.dropUniversals(f.Body)
	case ir.ExistsNode:
		internalInvariant("existential quantifier survived Skolemization")
		return nil
	default:
		internalInvariant("formula node survived into stage 6 that earlier stages should have removed")
		return nil
	}
}

// distribute is stage 7: push ∨ over ∧ until no ∨ has an ∧ child,
// recursing bottom-up so the deepest ∨/∧ pairs distribute first.
func distribute(f *ir.Formula) *ir.Formula {
	switch f.Kind {
	case ir.LiteralNode:
		return f
	case ir.AndNode:
		return ir.And(distribute(f.Left), distribute(f.Right))
	case ir.OrNode:
		return distributeOr(distribute(f.Left), distribute(f.Right))
	default:
		internalInvariant("formula node survived into stage 7 that earlier stages should have removed")
		return nil
	}
}

func distributeOr(l, r *ir.Formula) *ir.Formula {
	if l.Kind == ir.AndNode {
		return ir.And(distributeOr(l.Left, r), distributeOr(l.Right, r))
	}
	if r.Kind == ir.AndNode {
		return ir.And(distributeOr(l, r.Left), distributeOr(l, r.Right))
	}
	return ir.Or(l, r)
}

// extractClauses walks the CNF tree: ∧ is the clause separator, and each
// maximal ∨-subtree yields one clause (spec §4.2 "Clause extraction").
func extractClauses(f *ir.Formula) []*ir.Clause {
	var clauses []*ir.Clause
	var walk func(*ir.Formula)
	walk = func(f *ir.Formula) {
		if f.Kind == ir.AndNode {
			walk(f.Left)
			walk(f.Right)
			return
		}
		clauses = append(clauses, ir.NewClause(collectLiterals(f)...))
	}
	walk(f)
	return clauses
}

func collectLiterals(f *ir.Formula) []*ir.Literal {
	switch f.Kind {
	case ir.LiteralNode:
		return []*ir.Literal{f.Lit}
	case ir.OrNode:
		return append(collectLiterals(f.Left), collectLiterals(f.Right)...)
	default:
		internalInvariant("non-clausal formula node survived to clause extraction")
		return nil
	}
}

func filterTautologies(clauses []*ir.Clause) []*ir.Clause {
	out := clauses[:0:0]
	for _, c := range clauses {
		if !c.IsTautology() {
			out = append(out, c)
		}
	}
	return out
}
