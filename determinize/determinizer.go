// File: determinizer.go
// Role: Determinizer, the weighted powerset construction (Mohri-style)
// driving a Hook to turn an ε-free ImmutableAutomaton into a deterministic
// one.
//
// Precondition: the input must be ε-free (callers run their own
// ε-removal pass; this package does not provide one, per scope).
// Concurrency: synchronous; TryDeterminize does not start goroutines.
package determinize

import "github.com/katalvlaran/wfsa/automaton"

// DefaultLogEps is the default destination-weight pruning threshold used
// by hooks such as DiscreteCharHook. It was a hard-coded constant in the
// covered implementation; here it is a configurable default (see
// WithLogEps).
const DefaultLogEps = -35.0

// config holds the resolved options for a Determinizer.
type config struct {
	logEps    float64
	maxStates int
}

// Option configures a Determinizer.
type Option func(*config)

// WithLogEps overrides the destination-weight pruning threshold passed to
// the hook. Most callers should leave this at DefaultLogEps.
func WithLogEps(logEps float64) Option {
	return func(c *config) { c.logEps = logEps }
}

// WithMaxStates caps the number of states the determinized output may
// have, on top of the spec-mandated min(3·|input states|, automaton.MaxStates)
// bound. Passing a value >= automaton.MaxStates has no additional effect.
func WithMaxStates(n int) Option {
	return func(c *config) { c.maxStates = n }
}

func newConfig(opts []Option) config {
	c := config{logEps: DefaultLogEps, maxStates: automaton.MaxStates}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Determinizer performs weighted powerset determinization, parameterized
// by a Hook supplying the element-distribution-specific outgoing-
// transition computation.
type Determinizer struct {
	hook Hook
	cfg  config
}

// NewDeterminizer returns a Determinizer driven by hook.
func NewDeterminizer(hook Hook, opts ...Option) *Determinizer {
	return &Determinizer{hook: hook, cfg: newConfig(opts)}
}

// LogEps returns the resolved destination-weight pruning threshold.
func (d *Determinizer) LogEps() float64 { return d.cfg.logEps }

// TryDeterminize attempts to determinize a in place. On success it
// installs the result into a via Reassign, marks a's determinization
// state DeterminizationIsDeterminized, and returns true. On refusal
// (a declares groups) it marks a DeterminizationIsNonDeterminizable and
// returns false without otherwise altering a. On state-budget exhaustion
// it leaves a entirely unchanged and returns false.
func (d *Determinizer) TryDeterminize(a *automaton.ImmutableAutomaton) bool {
	for i := 0; i < a.StateCount(); i++ {
		for _, t := range a.TransitionsForState(uint32(i)) {
			if t.Group != automaton.GroupNone {
				a.SetDeterminizationState(automaton.DeterminizationIsNonDeterminizable)

				return false
			}
		}
	}

	maxStates := d.cfg.maxStates
	if bound := 3 * a.StateCount(); bound < maxStates {
		maxStates = bound
	}

	b := automaton.NewBuilder()
	index := newStateSetIndex()

	initBuilder := NewWeightedStateSetBuilder()
	initBuilder.Add(a.StartStateIndex(), automaton.One())
	initSet, _ := initBuilder.Get()
	index.insert(initSet, 0)
	b.State(0).SetEndWeight(setEndWeight(a, initSet))

	queue := []WeightedStateSet{initSet}

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		outState, _ := index.lookup(q)

		outgoing := d.outgoingTransitions(a, q)

		for _, ot := range outgoing {
			destState, existed := index.lookup(ot.Next)
			if !existed {
				if b.StateCount() >= maxStates {
					return false
				}
				sb, err := b.AddState()
				if err != nil {
					return false
				}
				destState = sb.Index()
				index.insert(ot.Next, destState)
				sb.SetEndWeight(setEndWeight(a, ot.Next))
				queue = append(queue, ot.Next)
			}
			b.State(outState).AddTransitionTo(ot.Distribution, ot.Weight, destState)
		}
	}

	automaton.MergeParallelTransitions(b)
	result, err := b.Finalize()
	if err != nil {
		return false
	}
	result.SetDeterminizationState(automaton.DeterminizationIsDeterminized)
	a.Reassign(result)

	return true
}

// outgoingTransitions dispatches to the fast path when q is a singleton
// whose source state's outgoing transitions all share one destination,
// and to the hook otherwise.
func (d *Determinizer) outgoingTransitions(a *automaton.ImmutableAutomaton, q WeightedStateSet) []OutgoingTransition {
	entries := q.Entries()
	if len(entries) == 1 && soleDestinationUniform(a, entries[0].State) {
		return fastPathTransitions(a, entries[0].State)
	}

	return d.hook.OutgoingTransitionsForSet(a, q, d.cfg.logEps)
}

// setEndWeight computes Σ w · end_weight(s) over a WeightedStateSet's
// members.
func setEndWeight(a *automaton.ImmutableAutomaton, set WeightedStateSet) automaton.Weight {
	total := automaton.Zero()
	for _, e := range set.Entries() {
		total = automaton.Sum(total, automaton.Product(e.Weight, a.EndWeight(e.State)))
	}

	return total
}

// soleDestinationUniform reports whether every outgoing transition of
// state shares the same destination (vacuously true with zero outgoing
// transitions).
func soleDestinationUniform(a *automaton.ImmutableAutomaton, state uint32) bool {
	ts := a.TransitionsForState(state)
	if len(ts) == 0 {
		return true
	}
	dest := ts[0].DestinationState
	for _, t := range ts[1:] {
		if t.DestinationState != dest {
			return false
		}
	}

	return true
}

// fastPathTransitions emits one output transition per source transition
// of state, each targeting the singleton set {(dest, One)}.
func fastPathTransitions(a *automaton.ImmutableAutomaton, state uint32) []OutgoingTransition {
	ts := a.TransitionsForState(state)
	out := make([]OutgoingTransition, 0, len(ts))
	for _, t := range ts {
		builder := NewWeightedStateSetBuilder()
		builder.Add(t.DestinationState, automaton.One())
		set, _ := builder.Get()
		out = append(out, OutgoingTransition{Distribution: t.ElementDistribution, Weight: t.Weight, Next: set})
	}

	return out
}
