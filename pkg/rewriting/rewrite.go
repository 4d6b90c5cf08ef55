package rewriting

import (
	"context"
	"strings"
)

// Rule is a directed rewrite rule L ==> R. Every variable occurring in R
// must also occur in L, and L must not be a bare variable — both are
// enforced by validateRule, called whenever a rule is installed by the
// completion machinery.
type Rule struct {
	LHS Term
	RHS Term
}

// NewRule constructs a rule after checking spec.md §3's well-formedness
// conditions, returning ErrMalformedRule if they are violated.
func NewRule(lhs, rhs Term) (*Rule, error) {
	r := &Rule{LHS: lhs, RHS: rhs}
	if err := validateRule(r); err != nil {
		return nil, err
	}
	return r, nil
}

func validateRule(r *Rule) error {
	if r.LHS.IsVar() {
		return ErrMalformedRule
	}
	lhsVars := make(map[int64]bool)
	for _, v := range VariablesOf(r.LHS) {
		lhsVars[v.ID()] = true
	}
	for _, v := range VariablesOf(r.RHS) {
		if !lhsVars[v.ID()] {
			return ErrMalformedRule
		}
	}
	return nil
}

func (r *Rule) String() string {
	return r.LHS.String() + " ==> " + r.RHS.String()
}

// TRS is a finite ordered sequence of rewrite rules. Order only matters
// for rewriting (Step uses first-match policy); a convergent TRS's normal
// forms don't depend on it. A TRS value is never reordered in place by
// this package — NormalForm and Step always read it as given, per
// spec.md §9's explicit warning against "optimizing" by reordering rules
// mid-traversal.
type TRS []*Rule

func (t TRS) String() string {
	lines := make([]string, len(t))
	for i, r := range t {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Step attempts to rewrite t at the root using the first rule in rules
// whose (freshly renamed) left-hand side matches t. It returns the
// correspondingly instantiated right-hand side and true on success, or
// (nil, false) if no rule matches — "irreducible at root" is an ordinary
// outcome, never an error. Only root rewriting is attempted; traversal
// into subterms is NormalForm's responsibility.
func Step(ctx context.Context, budget *Budget, rules TRS, t Term) (Term, bool, error) {
	for _, rule := range rules {
		if err := budget.Step(ctx); err != nil {
			return nil, false, err
		}
		renamed := freshRenameRule(rule)
		sub, ok := Matches(renamed.LHS, t)
		if !ok {
			continue
		}
		return Substitute(renamed.RHS, sub), true, nil
	}
	return nil, false, nil
}

// NormalForm reduces t to a normal form under rules using the innermost
// strategy: each argument is normalized first, then root rewriting is
// attempted on the result; a successful root rewrite is normalized again.
// Variables are their own normal forms.
//
// Termination is only guaranteed when rules were produced by Completion
// under a reduction ordering; called on an arbitrary, non-convergent TRS,
// NormalForm may not terminate — the caller's Budget is the only defense
// (spec.md §4.3, §7's NoNormalForm).
func NormalForm(ctx context.Context, budget *Budget, rules TRS, t Term) (Term, error) {
	if err := budget.Step(ctx); err != nil {
		return nil, err
	}

	app, ok := t.(*App)
	if !ok {
		return t, nil // variables are normal forms of themselves
	}

	normalizedArgs := make([]Term, len(app.Args))
	changed := false
	for i, arg := range app.Args {
		na, err := NormalForm(ctx, budget, rules, arg)
		if err != nil {
			return nil, err
		}
		normalizedArgs[i] = na
		if na != arg {
			changed = true
		}
	}

	current := Term(app)
	if changed {
		current = &App{Sym: app.Sym, Args: normalizedArgs}
	}

	next, rewritten, err := Step(ctx, budget, rules, current)
	if err != nil {
		return nil, err
	}
	if !rewritten {
		return current, nil
	}
	return NormalForm(ctx, budget, rules, next)
}
