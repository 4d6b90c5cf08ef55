package rewriting

// Unify computes a most general unifier of s and t with a mandatory
// occurs check: it returns a binding environment such that substituting
// it into both s and t yields structurally equal terms, or (nil, false)
// if no unifier exists.
//
// The occurs check is never skippable. Without it, a term like unifying
// X with f(X) would silently accept a binding that makes X stand for an
// infinite term; critical-pair generation would then admit infinite
// terms and corrupt completion (spec.md §4.2).
func Unify(s, t Term) (Subst, bool) {
	sub := make(Subst)
	if unify(s, t, sub) {
		return sub, true
	}
	return nil, false
}

// unify attempts to extend sub in place so that s and t become equal
// under it, returning false (leaving sub in an undefined intermediate
// state) on failure. Callers that need a clean failure should start from
// a fresh Subst, as Unify does.
func unify(s, t Term, sub Subst) bool {
	ws := Walk(s, sub)
	wt := Walk(t, sub)

	if ws.Equal(wt) {
		return true
	}

	if v, ok := ws.(*Var); ok {
		return bindVar(v, wt, sub)
	}
	if v, ok := wt.(*Var); ok {
		return bindVar(v, ws, sub)
	}

	as, ok1 := ws.(*App)
	at, ok2 := wt.(*App)
	if !ok1 || !ok2 || as.Sym != at.Sym || len(as.Args) != len(at.Args) {
		return false
	}
	for i := range as.Args {
		if !unify(as.Args[i], at.Args[i], sub) {
			return false
		}
	}
	return true
}

// bindVar binds v to term in sub, after checking that v does not occur
// free in term (the occurs check). v and term are assumed already walked.
func bindVar(v *Var, term Term, sub Subst) bool {
	if tv, ok := term.(*Var); ok && tv.id == v.id {
		return true
	}
	if occursIn(v, term, sub) {
		return false
	}
	sub[v.id] = term
	return true
}

// occursIn reports whether v occurs free in term, resolving any variable
// bindings already present in sub along the way.
func occursIn(v *Var, term Term, sub Subst) bool {
	w := Walk(term, sub)
	switch t := w.(type) {
	case *Var:
		return t.id == v.id
	case *App:
		for _, arg := range t.Args {
			if occursIn(v, arg, sub) {
				return true
			}
		}
	}
	return false
}
