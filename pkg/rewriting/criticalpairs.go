package rewriting

import "context"

// Equation is an unordered pair of terms sharing a variable scope,
// asserted equal under the theory being completed.
type Equation struct {
	LHS Term
	RHS Term
}

func (e Equation) String() string {
	return e.LHS.String() + " = " + e.RHS.String()
}

// frame records the context of a position inside a term during the
// descent used by CriticalPairs: the symbol at that position and the
// argument terms to its left and right. Folding frames outward from
// innermost to outermost rebuilds the whole term with the hole at that
// position replaced — this is the "reversed stack of (symbol,
// left-siblings, right-siblings) frames" approach spec.md §9 calls for,
// chosen specifically to avoid re-walking the whole term on every
// position visited (a naive "replace at path" helper would do exactly
// that).
type frame struct {
	sym   Symbol
	left  []Term
	right []Term
}

// contextPath is the sequence of frames collected while descending into a
// term, outermost frame first.
type contextPath []frame

// rebuild reconstructs the full term given a replacement for the position
// this path was collected for, folding frames from innermost (the last
// one pushed) back out to the root.
func (p contextPath) rebuild(replacement Term) Term {
	result := replacement
	for i := len(p) - 1; i >= 0; i-- {
		f := p[i]
		args := make([]Term, 0, len(f.left)+1+len(f.right))
		args = append(args, f.left...)
		args = append(args, result)
		args = append(args, f.right...)
		result = &App{Sym: f.sym, Args: args}
	}
	return result
}

// CriticalPairs enumerates every critical pair arising from overlaps
// between rules in r1s and rules in r2s: for each ordered pair of rules
// (l1 ==> r1, l2 ==> r2) — independently fresh-renamed so their variables
// never collide, even when r1s and r2s are the same set or a rule
// overlaps with itself — and each non-variable position p in l1, if
// unify(l1|p, l2) = sigma succeeds, the pair
//
//	u = sigma(r1)
//	v = sigma(l1[r2]_p)
//
// is emitted as an equation. Positions occupied by a variable are
// skipped entirely (spec.md §9's "the source's handling of a variable
// LHS ... is to skip it"), never unified — unifying at a variable
// position would only ever reproduce instances already covered by
// l1 itself and would admit spurious pairs.
func CriticalPairs(ctx context.Context, budget *Budget, r1s, r2s TRS) ([]Equation, error) {
	var out []Equation

	for _, rule1 := range r1s {
		for _, rule2 := range r2s {
			renamed1 := freshRenameRule(rule1)
			renamed2 := freshRenameRule(rule2)

			pairs, err := overlapsAt(ctx, budget, renamed1, renamed2, renamed1.LHS, nil)
			if err != nil {
				return nil, err
			}
			out = append(out, pairs...)
		}
	}

	return out, nil
}

// overlapsAt walks sub (a subterm of rule1.LHS reached via path) looking
// for unifiable overlaps with rule2.LHS, recursing into every argument
// position and accumulating results.
func overlapsAt(ctx context.Context, budget *Budget, rule1, rule2 *Rule, sub Term, path contextPath) ([]Equation, error) {
	if err := budget.Step(ctx); err != nil {
		return nil, err
	}

	var out []Equation

	if !sub.IsVar() {
		if sigma, ok := Unify(sub, rule2.LHS); ok {
			u := Substitute(rule1.RHS, sigma)
			replaced := path.rebuild(rule2.RHS)
			v := Substitute(replaced, sigma)
			out = append(out, Equation{LHS: u, RHS: v})
		}
	}

	app, ok := sub.(*App)
	if !ok {
		return out, nil
	}

	for i, arg := range app.Args {
		childPath := append(append(contextPath(nil), path...), frame{
			sym:   app.Sym,
			left:  append([]Term(nil), app.Args[:i]...),
			right: append([]Term(nil), app.Args[i+1:]...),
		})
		childPairs, err := overlapsAt(ctx, budget, rule1, rule2, arg, childPath)
		if err != nil {
			return nil, err
		}
		out = append(out, childPairs...)
	}

	return out, nil
}
