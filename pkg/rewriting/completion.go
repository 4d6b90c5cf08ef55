package rewriting

import "context"

// OrderingFunc is a reduction ordering over terms, usually RPO bound to a
// fixed Precedence and StatusMap. Completion treats it as an opaque
// comparator so alternative orderings could in principle be plugged in,
// though this package only ever constructs RPO-backed ones.
type OrderingFunc func(s, t Term) Order

// CompletionEventKind classifies the events CompletionOptions.Trace may
// receive while a completion run proceeds.
type CompletionEventKind int

const (
	EventOrient CompletionEventKind = iota
	EventAddRule
	EventDemote
	EventCriticalPair
)

// CompletionEvent reports one step of the completion loop to an optional
// Trace callback — modeled on the teacher's SolverMonitor (solver.go),
// giving callers visibility into the run without imposing a logging
// dependency.
type CompletionEvent struct {
	Kind     CompletionEventKind
	Equation Equation // set for EventOrient, EventDemote, EventCriticalPair
	Rule     *Rule    // set for EventOrient (result), EventAddRule
}

// CompletionOptions configures a Completion run. The zero value is usable
// (no tracing).
type CompletionOptions struct {
	// Trace, if non-nil, is called synchronously for every notable event
	// during completion. It must not retain the Term/Rule values beyond
	// the call if the caller intends to run concurrent completions, since
	// terms are shared, not copied, for the event.
	Trace func(CompletionEvent)
}

func (o CompletionOptions) trace(ev CompletionEvent) {
	if o.Trace != nil {
		o.Trace(ev)
	}
}

// Completion runs the Knuth–Bendix/Huet completion procedure on the given
// equations using cmp as the reduction ordering, returning a convergent
// TRS on success.
//
// Completion maintains the invariant triple (E, S, R) from spec.md §4.6:
// E is pending equations, S is newly added rules not yet processed for
// critical pairs, R is stable, already-processed rules. Each iteration
// drains E via orient, then — if new rules were produced — picks the
// smallest one (by combined LHS+RHS term size, a standard fairness
// heuristic), moves it into R, and generates critical pairs against the
// whole rule set, feeding them back into E. The loop ends when no
// unoriented critical pair remains.
func Completion(ctx context.Context, equations []Equation, cmp OrderingFunc, budget *Budget, opts CompletionOptions) (TRS, error) {
	E := append([]Equation(nil), equations...)
	var S, R TRS

	for {
		var err error
		S, R, err = drainEquations(ctx, budget, E, cmp, S, R, opts)
		if err != nil {
			return nil, err
		}

		if len(S) == 0 {
			return R, nil
		}

		idx := smallestRuleIndex(S)
		rho := S[idx]
		S = append(append(TRS(nil), S[:idx]...), S[idx+1:]...)

		pairs, err := collectCriticalPairs(ctx, budget, rho, R)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			opts.trace(CompletionEvent{Kind: EventCriticalPair, Equation: p})
		}

		R = append(append(TRS(nil), R...), rho)
		E = pairs
	}
}

// collectCriticalPairs computes CP({rho}, R) ∪ CP(R, {rho}) ∪ CP({rho}, {rho}).
func collectCriticalPairs(ctx context.Context, budget *Budget, rho *Rule, R TRS) ([]Equation, error) {
	single := TRS{rho}

	a, err := CriticalPairs(ctx, budget, single, R)
	if err != nil {
		return nil, err
	}
	b, err := CriticalPairs(ctx, budget, R, single)
	if err != nil {
		return nil, err
	}
	c, err := CriticalPairs(ctx, budget, single, single)
	if err != nil {
		return nil, err
	}

	out := make([]Equation, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)
	out = append(out, c...)
	return out, nil
}

// smallestRuleIndex returns the index of the rule in s with the smallest
// combined LHS+RHS term size, breaking ties by earliest index.
func smallestRuleIndex(s TRS) int {
	best := 0
	bestSize := Size(s[0].LHS) + Size(s[0].RHS)
	for i := 1; i < len(s); i++ {
		sz := Size(s[i].LHS) + Size(s[i].RHS)
		if sz < bestSize {
			best = i
			bestSize = sz
		}
	}
	return best
}

// drainEquations repeatedly pops an equation from E and orients it,
// returning the resulting (S, R) once E is empty.
func drainEquations(ctx context.Context, budget *Budget, E []Equation, cmp OrderingFunc, S, R TRS, opts CompletionOptions) (TRS, TRS, error) {
	for _, eq := range E {
		newS, newR, err := orient(ctx, budget, eq, cmp, S, R, opts)
		if err != nil {
			return nil, nil, err
		}
		S, R = newS, newR
	}
	return S, R, nil
}

// orient pops one equation, normalizes both sides with R ∪ S, and
// installs an oriented rule via addRule — or discards the equation if
// both sides are already equal, or fails with ErrUnorientable if neither
// side is greater than the other under cmp.
func orient(ctx context.Context, budget *Budget, eq Equation, cmp OrderingFunc, S, R TRS, opts CompletionOptions) (TRS, TRS, error) {
	if err := budget.Step(ctx); err != nil {
		return nil, nil, err
	}

	combined := append(append(TRS(nil), R...), S...)

	s, err := NormalForm(ctx, budget, combined, eq.LHS)
	if err != nil {
		return nil, nil, err
	}
	t, err := NormalForm(ctx, budget, combined, eq.RHS)
	if err != nil {
		return nil, nil, err
	}

	if StructuralEq(s, t) {
		return S, R, nil
	}

	var rule *Rule
	switch cmp(s, t) {
	case OrderGreater:
		rule, err = NewRule(s, t)
	default:
		if cmp(t, s) == OrderGreater {
			rule, err = NewRule(t, s)
		} else {
			return nil, nil, ErrUnorientable
		}
	}
	if err != nil {
		return nil, nil, err
	}

	opts.trace(CompletionEvent{Kind: EventOrient, Equation: eq, Rule: rule})
	return addRule(ctx, budget, rule, cmp, S, R, opts)
}

// addRule installs rule into S, restoring the inter-reduced invariant from
// spec.md §3: every existing rule whose left-hand side is rewritten by
// rule alone is demoted back to a (normalized) equation rather than kept;
// every surviving rule has its right-hand side tightened against the full
// updated rule set. Demoted equations are re-oriented immediately,
// recursively, before addRule returns, so callers always receive a fully
// inter-reduced (S, R).
func addRule(ctx context.Context, budget *Budget, rule *Rule, cmp OrderingFunc, S, R TRS, opts CompletionOptions) (TRS, TRS, error) {
	if err := budget.Step(ctx); err != nil {
		return nil, nil, err
	}

	singleton := TRS{rule}

	var demoted []Equation
	keptS := make(TRS, 0, len(S))
	keptR := make(TRS, 0, len(R))

	reduce := func(existing *Rule, into *TRS) error {
		// existing.LHS is reducible by rule alone — possibly at a proper
		// subterm, not just the root — iff normalizing it against rule in
		// isolation changes it. That makes it demote to an equation rather
		// than survive as a rule: a convergent TRS never contains a rule
		// whose own left-hand side some other rule can still rewrite.
		reducedLHS, err := NormalForm(ctx, budget, singleton, existing.LHS)
		if err != nil {
			return err
		}

		full := append(append(TRS(nil), keptR...), keptS...)
		full = append(full, singleton...)

		if !StructuralEq(reducedLHS, existing.LHS) {
			gNorm, err := NormalForm(ctx, budget, full, reducedLHS)
			if err != nil {
				return err
			}
			dNorm, err := NormalForm(ctx, budget, full, existing.RHS)
			if err != nil {
				return err
			}
			demoted = append(demoted, Equation{LHS: gNorm, RHS: dNorm})
			opts.trace(CompletionEvent{Kind: EventDemote, Equation: Equation{LHS: existing.LHS, RHS: existing.RHS}})
			return nil
		}

		newRHS, err := NormalForm(ctx, budget, full, existing.RHS)
		if err != nil {
			return err
		}
		*into = append(*into, &Rule{LHS: existing.LHS, RHS: newRHS})
		return nil
	}

	for _, r := range R {
		if err := reduce(r, &keptR); err != nil {
			return nil, nil, err
		}
	}
	for _, s := range S {
		if err := reduce(s, &keptS); err != nil {
			return nil, nil, err
		}
	}

	opts.trace(CompletionEvent{Kind: EventAddRule, Rule: rule})
	keptS = append(keptS, rule)

	for _, eq := range demoted {
		newS, newR, err := orient(ctx, budget, eq, cmp, keptS, keptR, opts)
		if err != nil {
			return nil, nil, err
		}
		keptS, keptR = newS, newR
	}

	return keptS, keptR, nil
}
