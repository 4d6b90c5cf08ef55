// Command example runs Knuth-Bendix completion on the group axioms and
// prints the resulting convergent rewrite system, then uses it to decide
// a couple of word-problem instances. It is meant as a five-minute tour
// of the pkg/rewriting API, not a general-purpose tool.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/kbcomplete/pkg/rewriting"
)

func main() {
	fmt.Println("=== Knuth-Bendix completion: group axioms ===")

	x := rewriting.NewVar("X")
	y := rewriting.NewVar("Y")
	z := rewriting.NewVar("Z")

	mul := func(a, b rewriting.Term) rewriting.Term { return rewriting.NewApp("*", a, b) }
	inv := func(a rewriting.Term) rewriting.Term { return rewriting.NewApp("i", a) }
	e := rewriting.NewConst("e")

	equations := []rewriting.Equation{
		{LHS: mul(e, x), RHS: x},
		{LHS: mul(inv(x), x), RHS: e},
		{LHS: mul(x, mul(y, z)), RHS: mul(mul(x, y), z)},
	}

	prec := rewriting.Precedence{"*", "i", "e"}
	stats := rewriting.StatusMap{"*": rewriting.StatusLex, "i": rewriting.StatusLex, "e": rewriting.StatusLex}
	cmp := func(s, t rewriting.Term) rewriting.Order { return rewriting.RPO(prec, stats, s, t) }

	budget := rewriting.NewBudget(0, 5*time.Second)
	ctx := context.Background()

	trace := func(ev rewriting.CompletionEvent) {
		switch ev.Kind {
		case rewriting.EventAddRule:
			fmt.Printf("  added rule: %s\n", ev.Rule)
		case rewriting.EventDemote:
			fmt.Printf("  demoted back to equation: %s\n", ev.Equation)
		}
	}

	trs, err := rewriting.Completion(ctx, equations, cmp, budget, rewriting.CompletionOptions{Trace: trace})
	if err != nil {
		fmt.Println("completion failed:", err)
		return
	}

	fmt.Println()
	fmt.Println("convergent TRS:")
	fmt.Println(trs)

	fmt.Println()
	fmt.Println("=== word problem ===")

	lhs := mul(e, inv(inv(e)))
	nf, err := rewriting.NormalForm(ctx, budget, trs, lhs)
	if err != nil {
		fmt.Println("normal_form failed:", err)
		return
	}
	fmt.Printf("normal_form(e*i(i(e))) = %s (expect e)\n", nf)

	a := rewriting.NewConst("a")
	left := inv(inv(a))
	right := inv(inv(inv(inv(a))))
	nfLeft, err := rewriting.NormalForm(ctx, budget, trs, left)
	if err != nil {
		fmt.Println("normal_form failed:", err)
		return
	}
	nfRight, err := rewriting.NormalForm(ctx, budget, trs, right)
	if err != nil {
		fmt.Println("normal_form failed:", err)
		return
	}
	fmt.Printf("normal_form(i(i(a))) = %s, normal_form(i(i(i(i(a))))) = %s, equal = %v\n",
		nfLeft, nfRight, rewriting.StructuralEq(nfLeft, nfRight))
}
