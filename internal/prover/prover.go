package prover

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
)

// State is the prover's state machine from spec §4.3.2.
type State int

const (
	Fresh State = iota
	Running
	Proven
	Saturated
	BoundReached
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Running:
		return "Running"
	case Proven:
		return "Proven"
	case Saturated:
		return "Saturated"
	case BoundReached:
		return "BoundReached"
	default:
		return "Unknown"
	}
}

// DefaultMaxSteps is the saturation bound from spec §4.3 when the caller
// does not specify one.
const DefaultMaxSteps = 500

// Step records one resolvent admission in the order it occurred, per
// spec §5's ordering guarantee.
type Step struct {
	Index         int
	Left          *ir.Clause
	Right         *ir.Clause
	Resolvent     *ir.Clause
	Contradiction bool
}

func (s Step) String() string {
	arrow := "⇒"
	if s.Contradiction {
		return fmt.Sprintf("Step %d: Resolve (%s) with (%s) %s □", s.Index, s.Left, s.Right, arrow)
	}
	return fmt.Sprintf("Step %d: Resolve (%s) with (%s) %s %s", s.Index, s.Left, s.Right, arrow, s.Resolvent)
}

// Prover maintains a clause workset and performs saturation via binary
// resolution with unification, per spec §4.3. A Prover instance owns its
// own clause set and trace; there is no shared mutable state across
// instances (spec §5).
type Prover struct {
	logger     hclog.Logger
	maxSteps   int
	clauses    []*ir.Clause
	signatures map[string]bool
	trace      []Step
	state      State
	steps      int
}

// New returns a Fresh Prover bounded by maxSteps (use DefaultMaxSteps
// when the caller has no opinion). A nil logger is replaced with a
// no-op logger.
func New(logger hclog.Logger, maxSteps int) *Prover {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Prover{
		logger:     logger,
		maxSteps:   maxSteps,
		signatures: make(map[string]bool),
	}
}

// Seed adds the premise clauses and the negated-query clauses to the
// workset (spec §4.3 "Seeding"). Call once, before Prove.
func (p *Prover) Seed(premises, negatedQuery []*ir.Clause) {
	for _, c := range premises {
		p.add(c)
	}
	for _, c := range negatedQuery {
		p.add(c)
	}
}

func (p *Prover) add(c *ir.Clause) bool {
	sig := c.Signature()
	if p.signatures[sig] {
		return false
	}
	p.signatures[sig] = true
	p.clauses = append(p.clauses, c)
	return true
}

// Clauses returns the current workset, in admission order.
func (p *Prover) Clauses() []*ir.Clause { return append([]*ir.Clause(nil), p.clauses...) }

// Trace returns the derivation steps recorded so far, in the order they
// occurred.
func (p *Prover) Trace() []Step { return append([]Step(nil), p.trace...) }

// State returns the prover's current state-machine state.
func (p *Prover) State() State { return p.state }

// Prove runs the saturation loop described in spec §4.3: each pass forms
// all unordered pairs from the current workset snapshot, computes their
// resolvents, and admits any unseen ones. It halts with Proven as soon
// as the empty clause is derived, with Saturated once a full pass admits
// nothing new, or with BoundReached once the step budget is exhausted.
func (p *Prover) Prove(ctx context.Context) (bool, error) {
	p.state = Running
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		snapshot := p.clauses
		addedAny := false

		for i := 0; i < len(snapshot); i++ {
			for j := i + 1; j < len(snapshot); j++ {
				c1, c2 := snapshot[i], snapshot[j]
				suffix := fmt.Sprintf("#%d", p.steps)
				for _, resolvent := range ResolvePair(c1, c2, suffix) {
					// The empty clause halts with success unconditionally
					// (spec §4.3 step 3), scanned for across the *whole*
					// pass before the step bound (step 5) is ever
					// consulted: a direct contradiction sitting later in
					// the same pass must still be found even after an
					// earlier pair in that pass has already pushed the
					// step count past max_steps. inference.py's
					// prove_by_refutation folds both checks into one
					// per-resolvent loop and returns as soon as either
					// fires; the numbered steps in spec §4.3 instead read
					// as: finish step 3 for every pair, then apply step 4
					// (saturation) and step 5 (bound) once per pass. That
					// reading is what's implemented here, since the
					// per-resolvent short-circuit can otherwise abandon a
					// pass with an unexamined contradiction still in it.
					if resolvent.Empty() {
						p.steps++
						p.recordStep(c1, c2, resolvent, true)
						p.state = Proven
						p.logger.Debug("empty clause derived", "steps", p.steps)
						return true, nil
					}

					sig := resolvent.Signature()
					if p.signatures[sig] {
						continue
					}
					p.signatures[sig] = true
					p.clauses = append(p.clauses, resolvent)
					p.steps++
					addedAny = true
					p.recordStep(c1, c2, resolvent, false)
				}
			}
		}

		if !addedAny {
			p.state = Saturated
			p.logger.Debug("saturated with no new clauses", "steps", p.steps, "clauses", len(p.clauses))
			return false, nil
		}
		if p.steps >= p.maxSteps {
			p.state = BoundReached
			p.logger.Debug("saturation bound reached", "steps", p.steps, "max_steps", p.maxSteps)
			return false, nil
		}
	}
}

func (p *Prover) recordStep(left, right, resolvent *ir.Clause, contradiction bool) {
	step := Step{
		Index:         len(p.trace) + 1,
		Left:          left,
		Right:         right,
		Resolvent:     resolvent,
		Contradiction: contradiction,
	}
	p.trace = append(p.trace, step)
	p.logger.Trace("resolved", "left", left.String(), "right", right.String(), "resolvent", resolvent.String())
}
