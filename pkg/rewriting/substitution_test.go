package rewriting

import "testing"

func TestWalk(t *testing.T) {
	x := NewVar("X")
	y := NewVar("Y")
	a := NewConst("a")

	sub := Subst{x.ID(): y, y.ID(): a}

	if got := Walk(x, sub); !got.Equal(a) {
		t.Errorf("Walk chased X -> Y -> a, got %s", got)
	}
	if got := Walk(a, sub); !got.Equal(a) {
		t.Errorf("Walk on a non-variable must return it unchanged, got %s", got)
	}

	unbound := NewVar("Z")
	if got := Walk(unbound, sub); !got.Equal(unbound) {
		t.Error("Walk on an unbound variable must return the variable itself")
	}
}

func TestSubstitute(t *testing.T) {
	x := NewVar("X")
	y := NewVar("Y")
	a := NewConst("a")
	term := NewApp("f", x, NewApp("g", y))

	sub := Subst{x.ID(): a, y.ID(): a}
	got := Substitute(term, sub)
	want := NewApp("f", a, NewApp("g", a))

	if !got.Equal(want) {
		t.Errorf("Substitute() = %s, want %s", got, want)
	}

	// Substitution preserves structure: a term with no bound variables is
	// returned as an equal (same-shape) term.
	unbound := NewApp("h", NewVar("W"))
	if got := Substitute(unbound, Subst{}); !got.Equal(unbound) {
		t.Error("Substitute with an empty Subst must leave the term unchanged")
	}
}

func TestFreshRenamePreservesSharing(t *testing.T) {
	x := NewVar("X")
	term := NewApp("f", x, x) // same variable occurs twice

	renamed := FreshRename(term)
	app, ok := renamed.(*App)
	if !ok || len(app.Args) != 2 {
		t.Fatalf("FreshRename changed term shape: %v", renamed)
	}

	v0, ok0 := app.Args[0].(*Var)
	v1, ok1 := app.Args[1].(*Var)
	if !ok0 || !ok1 {
		t.Fatal("FreshRename must map a variable to a variable")
	}
	if v0.ID() != v1.ID() {
		t.Error("FreshRename must map two occurrences of the same variable to the same fresh variable")
	}
	if v0.ID() == x.ID() {
		t.Error("FreshRename must allocate a variable distinct from the original")
	}
}

func TestFreshRenameRuleSharesVarMapAcrossSides(t *testing.T) {
	x := NewVar("X")
	rule := &Rule{LHS: NewApp("f", x), RHS: x}

	renamed := freshRenameRule(rule)
	rhsVar, ok := renamed.RHS.(*Var)
	if !ok {
		t.Fatal("renamed RHS must still be a variable")
	}
	lhsApp := renamed.LHS.(*App)
	lhsVar := lhsApp.Args[0].(*Var)

	if rhsVar.ID() != lhsVar.ID() {
		t.Error("freshRenameRule must rename the shared variable consistently across LHS and RHS")
	}
}

func TestStructuralEq(t *testing.T) {
	x := NewVar("X")
	y := NewVar("Y")

	if !StructuralEq(NewConst("a"), NewConst("a")) {
		t.Error("identical constants must be StructuralEq")
	}
	if StructuralEq(x, y) {
		t.Error("distinct variables must not be StructuralEq")
	}
}
