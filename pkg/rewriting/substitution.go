package rewriting

// Subst is a finite binding environment mapping variable ids to the terms
// they are bound to. It plays the role of the teacher's Substitution
// (core.go), but as a plain map rather than a mutex-guarded struct: every
// Subst produced by this package is either fresh-built in a single
// goroutine (unification, matching) or treated as an immutable value once
// returned, so no internal locking is needed.
type Subst map[int64]Term

// Walk follows variable bindings in sub until it reaches a term that is
// either not a variable or is an unbound variable. It does not descend
// into compound terms — callers that need every variable resolved
// recursively should use Substitute.
func Walk(term Term, sub Subst) Term {
	for {
		v, ok := term.(*Var)
		if !ok {
			return term
		}
		bound, found := sub[v.id]
		if !found {
			return term
		}
		term = bound
	}
}

// Substitute returns a copy of term with every variable replaced by its
// binding in sub (resolved transitively via Walk), recursively applied to
// the arguments of compound terms. Variables absent from sub pass
// through unchanged.
func Substitute(term Term, sub Subst) Term {
	walked := Walk(term, sub)
	app, ok := walked.(*App)
	if !ok {
		return walked
	}
	if len(app.Args) == 0 {
		return app
	}
	newArgs := make([]Term, len(app.Args))
	changed := false
	for i, arg := range app.Args {
		newArgs[i] = Substitute(arg, sub)
		if newArgs[i] != arg {
			changed = true
		}
	}
	if !changed {
		return app
	}
	return &App{Sym: app.Sym, Args: newArgs}
}

// StructuralEq reports whether s and t have identical tree shape and
// identical variable identities — a thin, named wrapper around Term.Equal
// used at call sites (orient's "s ≡ t: discard" check) where spelling out
// the equational-logic intent reads better than a bare method call.
func StructuralEq(s, t Term) bool {
	return s.Equal(t)
}

// FreshRename returns a copy of term with every variable replaced by a
// newly allocated variable. Two occurrences of the same original variable
// map to the same fresh variable, preserving sharing within the copy.
// Every rule application and unification attempt fresh-renames first, so
// distinct instantiations of the same rule never alias.
func FreshRename(term Term) Term {
	return freshRenameWith(term, make(map[int64]*Var))
}

func freshRenameWith(term Term, varMap map[int64]*Var) Term {
	switch t := term.(type) {
	case *Var:
		if fresh, ok := varMap[t.id]; ok {
			return fresh
		}
		fresh := NewVar(t.name)
		varMap[t.id] = fresh
		return fresh
	case *App:
		if len(t.Args) == 0 {
			return t
		}
		newArgs := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			newArgs[i] = freshRenameWith(arg, varMap)
		}
		return &App{Sym: t.Sym, Args: newArgs}
	default:
		return term
	}
}

// freshRenameRule fresh-renames a rule's LHS and RHS together, sharing one
// variable map so that variables common to both sides (every RHS variable
// must occur in the LHS, by construction) are renamed consistently.
func freshRenameRule(r *Rule) *Rule {
	varMap := make(map[int64]*Var)
	return &Rule{
		LHS: freshRenameWith(r.LHS, varMap),
		RHS: freshRenameWith(r.RHS, varMap),
	}
}

// freshRenameEquation fresh-renames both sides of an equation together,
// for the same reason freshRenameRule does.
func freshRenameEquation(e Equation) Equation {
	varMap := make(map[int64]*Var)
	return Equation{
		LHS: freshRenameWith(e.LHS, varMap),
		RHS: freshRenameWith(e.RHS, varMap),
	}
}
