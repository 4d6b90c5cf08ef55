package rewriting

// Matches computes a one-sided unifier (subsumption match): it succeeds
// iff there is a binding sigma, touching only variables of pattern, such
// that sigma(pattern) is structurally equal to term. Variables occurring
// in term are treated as opaque constants — only pattern's variables may
// ever be bound, which is what makes this "one-sided" rather than a
// two-way Unify.
func Matches(pattern, term Term) (Subst, bool) {
	sub := make(Subst)
	if matches(pattern, term, sub) {
		return sub, true
	}
	return nil, false
}

func matches(pattern, term Term, sub Subst) bool {
	if v, ok := pattern.(*Var); ok {
		if bound, found := sub[v.id]; found {
			return bound.Equal(term)
		}
		sub[v.id] = term
		return true
	}

	p := pattern.(*App)
	a, ok := term.(*App)
	if !ok || a.Sym != p.Sym || len(a.Args) != len(p.Args) {
		return false
	}
	for i := range p.Args {
		if !matches(p.Args[i], a.Args[i], sub) {
			return false
		}
	}
	return true
}
