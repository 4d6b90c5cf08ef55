package rewriting

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Symbol is an opaque function symbol identifier. Two symbols are equal
// iff their names are equal; symbols carry no intrinsic order among
// themselves beyond what a Precedence externally imposes.
type Symbol string

// Term is any first-order term: a logic variable or the application of a
// function symbol to an ordered (possibly empty) sequence of argument
// terms. Constants are applications with zero arguments; arity is
// determined by occurrence, never declared up front.
//
// Terms are immutable values once constructed: there is no API that
// mutates a Term in place, so subterms may be freely shared between
// larger terms without defensive copying.
type Term interface {
	// String renders the term for debugging and test failure messages.
	// This is not a parser-facing pretty-printer; it exists purely so
	// terms are readable in error output, the way every teacher Term
	// implementation carries a String method.
	String() string

	// Equal reports strict structural equality: identical tree shape and,
	// for variables, identical identity. This is distinct from
	// unification, which may succeed by extending a substitution.
	Equal(other Term) bool

	// IsVar reports whether this term is a logic variable.
	IsVar() bool
}

// varCounter hands out globally unique variable identifiers. Using an
// atomically incremented counter (rather than pointer identity) keeps
// variables comparable, usable as map keys, and trivially serializable
// for tracing — see SPEC_FULL.md's Open Question decision on this point.
var varCounter int64

// Var is a logic variable. Variables are distinguished from one another
// by id, never by name; name is carried only for debugging output.
type Var struct {
	id   int64
	name string
}

// NewVar allocates a fresh variable with an optional debugging name.
// Every call returns a variable distinct from every other, including
// prior calls with the same name.
func NewVar(name string) *Var {
	id := atomic.AddInt64(&varCounter, 1)
	return &Var{id: id, name: name}
}

// ID returns the variable's unique identifier.
func (v *Var) ID() int64 { return v.id }

// Name returns the variable's debugging name, which may be empty.
func (v *Var) Name() string { return v.name }

func (v *Var) String() string {
	if v.name != "" {
		return fmt.Sprintf("_%s%d", v.name, v.id)
	}
	return fmt.Sprintf("_%d", v.id)
}

func (v *Var) Equal(other Term) bool {
	ov, ok := other.(*Var)
	return ok && ov.id == v.id
}

func (v *Var) IsVar() bool { return true }

// App is the application of a function symbol to an ordered sequence of
// argument terms. A constant is an App with an empty Args slice.
type App struct {
	Sym  Symbol
	Args []Term
}

// NewApp constructs an application of sym to args. The args slice is
// retained by reference, not copied; callers should not mutate it
// afterwards (terms are meant to be treated as immutable).
func NewApp(sym Symbol, args ...Term) *App {
	return &App{Sym: sym, Args: args}
}

// NewConst constructs a zero-arity application: a constant.
func NewConst(sym Symbol) *App {
	return &App{Sym: sym}
}

func (a *App) String() string {
	if len(a.Args) == 0 {
		return string(a.Sym)
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", a.Sym, strings.Join(parts, ", "))
}

func (a *App) Equal(other Term) bool {
	oa, ok := other.(*App)
	if !ok || oa.Sym != a.Sym || len(oa.Args) != len(a.Args) {
		return false
	}
	for i, arg := range a.Args {
		if !arg.Equal(oa.Args[i]) {
			return false
		}
	}
	return true
}

func (a *App) IsVar() bool { return false }

// Arity returns the number of arguments of the application.
func (a *App) Arity() int { return len(a.Args) }

// Size returns the number of symbol/variable occurrences in a term: 1 for
// a variable or a nullary constant, plus the sizes of all arguments
// otherwise. Used by completion's "smallest rule first" fairness
// heuristic (spec.md §4.6).
func Size(t Term) int {
	a, ok := t.(*App)
	if !ok {
		return 1
	}
	n := 1
	for _, arg := range a.Args {
		n += Size(arg)
	}
	return n
}

// Depth returns the height of a term: 0 for a variable or a nullary
// constant, one more than the deepest argument otherwise.
func Depth(t Term) int {
	a, ok := t.(*App)
	if !ok || len(a.Args) == 0 {
		return 0
	}
	max := 0
	for _, arg := range a.Args {
		if d := Depth(arg); d > max {
			max = d
		}
	}
	return max + 1
}

// VariablesOf returns the distinct variables occurring in term, in order
// of first occurrence (a depth-first, left-to-right walk).
func VariablesOf(term Term) []*Var {
	seen := make(map[int64]bool)
	var out []*Var
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case *Var:
			if !seen[v.id] {
				seen[v.id] = true
				out = append(out, v)
			}
		case *App:
			for _, arg := range v.Args {
				walk(arg)
			}
		}
	}
	walk(term)
	return out
}

// Ground reports whether term contains no variables at all. It does not
// consult any substitution — callers that need to check groundness after
// resolving bindings should call Walk or Substitute first and test the
// result.
func Ground(term Term) bool {
	switch t := term.(type) {
	case *Var:
		return false
	case *App:
		for _, arg := range t.Args {
			if !Ground(arg) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
