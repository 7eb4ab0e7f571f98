package ir

// FormulaKind discriminates the three node shapes from spec §3: literal
// leaves, connectives, and quantifiers.
type FormulaKind uint8

const (
	LiteralNode FormulaKind = iota
	NotNode
	AndNode
	OrNode
	ImpliesNode
	IffNode
	ForAllNode
	ExistsNode
)

// Formula is an immutable formula tree node. Rewrites build new trees;
// nothing here mutates an existing Formula.
type Formula struct {
	Kind FormulaKind

	Lit *Literal // LiteralNode

	Left  *Formula // NotNode (operand), AndNode/OrNode/ImpliesNode/IffNode
	Right *Formula // AndNode/OrNode/ImpliesNode/IffNode

	BoundVar string   // ForAllNode/ExistsNode
	Body     *Formula // ForAllNode/ExistsNode
}

func Lit(l *Literal) *Formula           { return &Formula{Kind: LiteralNode, Lit: l} }
func Not(f *Formula) *Formula           { return &Formula{Kind: NotNode, Left: f} }
func And(l, r *Formula) *Formula        { return &Formula{Kind: AndNode, Left: l, Right: r} }
func Or(l, r *Formula) *Formula         { return &Formula{Kind: OrNode, Left: l, Right: r} }
func Implies(l, r *Formula) *Formula    { return &Formula{Kind: ImpliesNode, Left: l, Right: r} }
func Iff(l, r *Formula) *Formula        { return &Formula{Kind: IffNode, Left: l, Right: r} }
func ForAll(v string, body *Formula) *Formula { return &Formula{Kind: ForAllNode, BoundVar: v, Body: body} }
func Exists(v string, body *Formula) *Formula { return &Formula{Kind: ExistsNode, BoundVar: v, Body: body} }

func (f *Formula) isAtomic() bool { return f.Kind == LiteralNode }

// String renders f as surface syntax. Non-atomic children are always
// fully parenthesized; this keeps printing unambiguous under the
// splitting rule in spec §4.1 regardless of the child's own precedence,
// which is what the round-trip property in spec §8 requires.
func (f *Formula) String() string {
	switch f.Kind {
	case LiteralNode:
		return f.Lit.String()
	case NotNode:
		return "¬" + f.parenthesized(f.Left)
	case AndNode:
		return f.parenthesized(f.Left) + " ∧ " + f.parenthesized(f.Right)
	case OrNode:
		return f.parenthesized(f.Left) + " ∨ " + f.parenthesized(f.Right)
	case ImpliesNode:
		return f.parenthesized(f.Left) + " → " + f.parenthesized(f.Right)
	case IffNode:
		return f.parenthesized(f.Left) + " ↔ " + f.parenthesized(f.Right)
	case ForAllNode:
		return "∀" + f.BoundVar + " " + f.parenthesized(f.Body)
	case ExistsNode:
		return "∃" + f.BoundVar + " " + f.parenthesized(f.Body)
	default:
		panic("ir: unreachable formula kind")
	}
}

func (f *Formula) parenthesized(child *Formula) string {
	if child.isAtomic() {
		return child.String()
	}
	return "(" + child.String() + ")"
}

// Equal reports structural equality of two formula trees (same shape,
// same bound-variable names, same literals).
func (f *Formula) Equal(other *Formula) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Kind != other.Kind {
		return false
	}
	switch f.Kind {
	case LiteralNode:
		return literalDeepEqual(f.Lit, other.Lit)
	case NotNode:
		return f.Left.Equal(other.Left)
	case AndNode, OrNode, ImpliesNode, IffNode:
		return f.Left.Equal(other.Left) && f.Right.Equal(other.Right)
	case ForAllNode, ExistsNode:
		return f.BoundVar == other.BoundVar && f.Body.Equal(other.Body)
	default:
		return false
	}
}

// Names appends every predicate, constant, and function name occurring
// in f to out (variable names are excluded — they are not candidates
// for Skolem-symbol collision, spec §4.2 stage 5).
func (f *Formula) Names(out []string) []string {
	switch f.Kind {
	case LiteralNode:
		out = append(out, f.Lit.Pred)
		for _, a := range f.Lit.Args {
			out = a.names(out)
		}
	case NotNode:
		out = f.Left.Names(out)
	case AndNode, OrNode, ImpliesNode, IffNode:
		out = f.Left.Names(out)
		out = f.Right.Names(out)
	case ForAllNode, ExistsNode:
		out = f.Body.Names(out)
	}
	return out
}

func literalDeepEqual(a, b *Literal) bool {
	if a.Pred != b.Pred || a.Negated != b.Negated || len(a.Args) != len(b.Args) {
		return false
	}
	for i, t := range a.Args {
		if !t.Equal(b.Args[i]) {
			return false
		}
	}
	return true
}
