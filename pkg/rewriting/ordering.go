package rewriting

// Order is the result of comparing two terms (or two symbols): one of
// less, equal, greater, or incomparable.
type Order int

const (
	OrderLess Order = iota
	OrderEqual
	OrderGreater
	OrderIncomparable
)

func (o Order) String() string {
	switch o {
	case OrderLess:
		return "<"
	case OrderEqual:
		return "="
	case OrderGreater:
		return ">"
	default:
		return "incomparable"
	}
}

// Precedence is a total order on the function symbols appearing in the
// input, represented as a sequence where earlier means smaller. Symbols
// absent from the sequence compare incomparable with everything.
type Precedence []Symbol

// Compare implements position-based total order lookup: the symbol
// appearing earlier in the sequence is smaller.
func (p Precedence) Compare(f, g Symbol) Order {
	fi, fok := p.index(f)
	gi, gok := p.index(g)
	if !fok || !gok {
		return OrderIncomparable
	}
	switch {
	case fi < gi:
		return OrderLess
	case fi > gi:
		return OrderGreater
	default:
		return OrderEqual
	}
}

func (p Precedence) index(s Symbol) (int, bool) {
	for i, sym := range p {
		if sym == s {
			return i, true
		}
	}
	return 0, false
}

// Status selects the extension used to compare the argument sequences of
// two applications of the same function symbol under RPO.
type Status int

const (
	// StatusLex compares argument sequences lexicographically.
	StatusLex Status = iota
	// StatusMul compares argument sequences as multisets (Dershowitz).
	StatusMul
)

// StatusMap assigns a Status to each function symbol. Symbols absent from
// the map default to StatusLex.
type StatusMap map[Symbol]Status

func (m StatusMap) of(s Symbol) Status {
	if st, ok := m[s]; ok {
		return st
	}
	return StatusLex
}

// elemCompare is the comparator signature used by Lex and Mul: it
// compares two elements of the sequences being extended.
type elemCompare func(a, b Term) Order

// Lex lifts cmp to a lexicographic order over two equal-length sequences:
// the first position where the elements differ under cmp decides the
// result; if every position compares equal, the sequences compare equal.
// Sequences of differing length are incomparable (RPO always calls this
// with argument lists of matching arity, since it only lexicographically
// compares arguments of two applications of the very same symbol).
func Lex(cmp elemCompare, xs, ys []Term) Order {
	if len(xs) != len(ys) {
		return OrderIncomparable
	}
	for i := range xs {
		switch cmp(xs[i], ys[i]) {
		case OrderEqual:
			continue
		case OrderLess:
			return OrderLess
		case OrderGreater:
			return OrderGreater
		default:
			return OrderIncomparable
		}
	}
	return OrderEqual
}

// Mul lifts cmp to the Dershowitz multiset extension over two sequences
// (treated as multisets, ignoring order and allowing duplicates): compute
// the multiset differences X = xs \ ys and Y = ys \ xs (removing matched
// pairs one at a time using cmp-equality); if both differences are empty
// the multisets are equal; otherwise the side whose difference is
// entirely dominated — every element of the other side's difference is
// cmp-less than some element of this side's difference — is the greater
// multiset.
func Mul(cmp elemCompare, xs, ys []Term) Order {
	diffX, diffY := multisetDiff(cmp, xs, ys)

	if len(diffX) == 0 && len(diffY) == 0 {
		return OrderEqual
	}
	if len(diffX) == 0 {
		return OrderLess
	}
	if len(diffY) == 0 {
		return OrderGreater
	}

	if everyDominatedBySome(cmp, diffY, diffX) {
		return OrderGreater
	}
	if everyDominatedBySome(cmp, diffX, diffY) {
		return OrderLess
	}
	return OrderIncomparable
}

// multisetDiff removes, one at a time, pairs (x, y) with cmp(x, y) ==
// OrderEqual from the working copies of xs and ys, returning what's left
// of each side.
func multisetDiff(cmp elemCompare, xs, ys []Term) (left, right []Term) {
	left = append([]Term(nil), xs...)
	right = append([]Term(nil), ys...)

	for i := 0; i < len(left); {
		matched := -1
		for j := range right {
			if cmp(left[i], right[j]) == OrderEqual {
				matched = j
				break
			}
		}
		if matched == -1 {
			i++
			continue
		}
		left = append(left[:i], left[i+1:]...)
		right = append(right[:matched], right[matched+1:]...)
	}
	return left, right
}

// everyDominatedBySome reports whether every element of smaller is
// cmp-less than some element of larger.
func everyDominatedBySome(cmp elemCompare, smaller, larger []Term) bool {
	for _, s := range smaller {
		dominated := false
		for _, l := range larger {
			if cmp(s, l) == OrderLess {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

// RPO is the recursive path ordering with per-symbol status, parameterized
// by a symbol precedence and a status map. It is well-founded whenever
// the precedence is well-founded and the status assignment is fixed,
// which is exactly what makes it usable as completion's reduction
// ordering (spec.md §4.4).
func RPO(prec Precedence, stats StatusMap, s, t Term) Order {
	// Structurally identical terms compare equal. This generalizes case
	// 1's "s = t iff s is the same variable" to compound terms too, and
	// it is what makes the subterm property below recognize that a
	// literal subterm of s (sᵢ syntactically equal to t) makes s > t,
	// not just a subterm that's strictly rpo-greater than t.
	if s.Equal(t) {
		return OrderEqual
	}

	if tv, ok := t.(*Var); ok {
		if containsVar(s, tv) {
			return OrderGreater
		}
		return OrderLess
	}

	if _, ok := s.(*Var); ok {
		// s is a variable, t is not (handled above).
		return OrderLess
	}

	sApp := s.(*App)
	tApp := t.(*App)

	// Subterm property: if some argument of s is >= t, then s > t.
	for _, si := range sApp.Args {
		cmp := RPO(prec, stats, si, t)
		if cmp == OrderGreater || cmp == OrderEqual {
			return OrderGreater
		}
	}

	switch prec.Compare(sApp.Sym, tApp.Sym) {
	case OrderGreater:
		if allArgsLessThan(prec, stats, tApp.Args, s) {
			return OrderGreater
		}
		return OrderLess

	case OrderEqual:
		cmp := func(a, b Term) Order { return RPO(prec, stats, a, b) }
		var argCmp Order
		if stats.of(sApp.Sym) == StatusMul {
			argCmp = Mul(cmp, sApp.Args, tApp.Args)
		} else {
			argCmp = Lex(cmp, sApp.Args, tApp.Args)
		}
		if allArgsLessThan(prec, stats, tApp.Args, s) && argCmp == OrderGreater {
			return OrderGreater
		}
		return OrderLess

	case OrderLess:
		return OrderLess

	default: // incomparable precedence
		return OrderIncomparable
	}
}

// containsVar reports whether v occurs anywhere within term.
func containsVar(term Term, v *Var) bool {
	switch t := term.(type) {
	case *Var:
		return t.id == v.id
	case *App:
		for _, arg := range t.Args {
			if containsVar(arg, v) {
				return true
			}
		}
	}
	return false
}

// allArgsLessThan reports whether every term in args is strictly less
// than bound under RPO.
func allArgsLessThan(prec Precedence, stats StatusMap, args []Term, bound Term) bool {
	for _, a := range args {
		if RPO(prec, stats, a, bound) != OrderLess {
			return false
		}
	}
	return true
}
