package rewriting

import "testing"

func TestVarIdentity(t *testing.T) {
	x := NewVar("X")
	y := NewVar("X") // same name, distinct identity

	if !x.Equal(x) {
		t.Error("a variable must equal itself")
	}
	if x.Equal(y) {
		t.Error("distinct Var allocations must not be Equal even with the same name")
	}
	if x.ID() == y.ID() {
		t.Error("NewVar must allocate a fresh id each call")
	}
}

func TestAppEqual(t *testing.T) {
	x := NewVar("X")

	tests := []struct {
		name string
		a, b Term
		want bool
	}{
		{"same constant", NewConst("a"), NewConst("a"), true},
		{"different symbol", NewConst("a"), NewConst("b"), false},
		{"same structure", NewApp("f", NewConst("a"), x), NewApp("f", NewConst("a"), x), true},
		{"different arity", NewApp("f", NewConst("a")), NewApp("f", NewConst("a"), x), false},
		{"app vs var", NewConst("a"), x, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeAndDepth(t *testing.T) {
	x := NewVar("X")
	a := NewConst("a")
	term := NewApp("f", NewApp("g", a), x) // f(g(a), X)

	if got := Size(term); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
	if got := Depth(term); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
	if got := Size(x); got != 1 {
		t.Errorf("Size(var) = %d, want 1", got)
	}
	if got := Depth(NewConst("a")); got != 0 {
		t.Errorf("Depth(const) = %d, want 0", got)
	}
}

func TestGround(t *testing.T) {
	x := NewVar("X")
	a := NewConst("a")

	if !Ground(a) {
		t.Error("a constant must be Ground")
	}
	if !Ground(NewApp("f", a, NewConst("b"))) {
		t.Error("an application of only constants must be Ground")
	}
	if Ground(x) {
		t.Error("a bare variable must not be Ground")
	}
	if Ground(NewApp("f", a, x)) {
		t.Error("an application containing a variable must not be Ground")
	}
}

func TestVariablesOf(t *testing.T) {
	x := NewVar("X")
	y := NewVar("Y")
	term := NewApp("f", x, NewApp("g", x, y))

	vars := VariablesOf(term)
	if len(vars) != 2 {
		t.Fatalf("VariablesOf returned %d vars, want 2 (deduplicated)", len(vars))
	}

	seen := map[int64]bool{}
	for _, v := range vars {
		seen[v.ID()] = true
	}
	if !seen[x.ID()] || !seen[y.ID()] {
		t.Error("VariablesOf missed a variable that occurs in the term")
	}
}

func TestTermString(t *testing.T) {
	x := NewVar("X")
	term := NewApp("f", NewConst("a"), x)
	if got := term.String(); got == "" {
		t.Error("String() must not be empty")
	}
	if got := NewConst("a").String(); got != "a" {
		t.Errorf("NewConst(\"a\").String() = %q, want %q", got, "a")
	}
}
