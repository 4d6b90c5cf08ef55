package rewriting

import (
	"context"
	"sort"
	"sync"

	"github.com/gitrdm/kbcomplete/internal/parallel"
)

// CollectSymbols returns every function symbol appearing in the given
// equations, ordered by first occurrence (scanning each equation's LHS
// then RHS, in order). The result is the symbol universe a Precedence
// must rank in order to attempt completion.
func CollectSymbols(equations []Equation) []Symbol {
	seen := make(map[Symbol]bool)
	var order []Symbol

	var walk func(t Term)
	walk = func(t Term) {
		app, ok := t.(*App)
		if !ok {
			return
		}
		if !seen[app.Sym] {
			seen[app.Sym] = true
			order = append(order, app.Sym)
		}
		for _, arg := range app.Args {
			walk(arg)
		}
	}

	for _, eq := range equations {
		walk(eq.LHS)
		walk(eq.RHS)
	}

	return order
}

// OrderingCandidate pairs a concrete symbol precedence with a status
// assignment, ready to be bound into an OrderingFunc via RPO.
type OrderingCandidate struct {
	Precedence Precedence
	Status     StatusMap
}

// Func returns the RPO-backed OrderingFunc this candidate denotes.
func (c OrderingCandidate) Func() OrderingFunc {
	prec, stat := c.Precedence, c.Status
	return func(s, t Term) Order {
		return RPO(prec, stat, s, t)
	}
}

// OrderingCandidates enumerates every (permutation of symbols) x (status
// assignment) pair over a fixed symbol universe, in a deterministic order
// so repeated searches over the same equations are reproducible. With n
// symbols there are n! permutations and 2^n status assignments per
// permutation; callers are expected to bound the search (e.g. via Budget,
// or by capping n) rather than rely on this type to do so itself.
type OrderingCandidates struct {
	symbols   []Symbol
	permState []int // Heap's algorithm state
	current   []Symbol
	permIndex int
	statIndex int
	statCount int
	started   bool
	done      bool
}

// NewOrderingCandidates creates an iterator over every precedence
// permutation of symbols crossed with every Lex/Mul status assignment.
func NewOrderingCandidates(symbols []Symbol) *OrderingCandidates {
	n := len(symbols)
	cur := append([]Symbol(nil), symbols...)
	return &OrderingCandidates{
		symbols:   cur,
		permState: make([]int, n),
		current:   append([]Symbol(nil), cur...),
		statCount: 1 << uint(n),
		statIndex: 0,
	}
}

// Next returns the next candidate and true, or a zero value and false once
// every permutation x status combination has been produced. Implements
// Heap's algorithm to step through permutations in place, generating
// every status assignment for each permutation before advancing it.
func (it *OrderingCandidates) Next() (OrderingCandidate, bool) {
	if it.done {
		return OrderingCandidate{}, false
	}

	n := len(it.current)

	if !it.started {
		it.started = true
		return it.emit(), true
	}

	it.statIndex++
	if it.statIndex < it.statCount {
		return it.emit(), true
	}
	it.statIndex = 0

	if !it.advancePermutation(n) {
		it.done = true
		return OrderingCandidate{}, false
	}
	return it.emit(), true
}

// advancePermutation steps Heap's algorithm by one permutation, returning
// false once the sequence is exhausted.
func (it *OrderingCandidates) advancePermutation(n int) bool {
	for it.permIndex < n {
		if it.permState[it.permIndex] < it.permIndex {
			if it.permIndex%2 == 0 {
				it.current[0], it.current[it.permIndex] = it.current[it.permIndex], it.current[0]
			} else {
				it.current[it.permState[it.permIndex]], it.current[it.permIndex] = it.current[it.permIndex], it.current[it.permState[it.permIndex]]
			}
			it.permState[it.permIndex]++
			it.permIndex = 0
			return true
		}
		it.permState[it.permIndex] = 0
		it.permIndex++
	}
	return false
}

// emit builds the OrderingCandidate for the current permutation and
// status index, treating statIndex's bits as a Lex/Mul choice per symbol
// position.
func (it *OrderingCandidates) emit() OrderingCandidate {
	prec := append(Precedence(nil), it.current...)
	stat := make(StatusMap, len(it.symbols))
	for i, sym := range it.symbols {
		if it.statIndex&(1<<uint(i)) != 0 {
			stat[sym] = StatusMul
		} else {
			stat[sym] = StatusLex
		}
	}
	return OrderingCandidate{Precedence: prec, Status: stat}
}

// searchResult carries one candidate's outcome back to EquationsTRS.
type searchResult struct {
	trs TRS
	err error
}

// EquationsTRS searches ordering candidates over the symbols occurring in
// equations, attempting Completion under each until one succeeds,
// returning the first convergent TRS found. Candidates are independent of
// one another, so the search fans them out across a small worker pool —
// spec.md §9 calls this "trivial and recommended" to parallelize. The
// first candidate to report success wins; workers still in flight are
// cancelled through searchCtx (their own Budget.Step calls observe it),
// and the deferred pool shutdown waits for them to return. Nothing about
// cancelling them corrupts shared state, since each candidate normalizes
// against its own independent rule-building state and its own forked
// Budget.
//
// Candidate submission and result collection run concurrently (submission
// happens on its own goroutine, draining into results as workers finish)
// rather than submitting every candidate up front: with n!*2^n candidates
// and a bounded pool, submitting them all before reading any result would
// deadlock as soon as the candidate count exceeds the pool's capacity.
//
// Each candidate also runs against its own Budget, forked from the
// caller's via Budget.Fork, rather than sharing one *Budget across
// concurrently running candidates: with a single shared step counter,
// whether a candidate observes ErrBudgetExhausted would depend on how many
// steps the other candidates happened to consume. Which successful
// candidate wins still depends on which one finishes first, so with more
// than one worker the returned TRS is not guaranteed to be the same
// across runs.
//
// If every candidate exhausts without producing a convergent system,
// EquationsTRS returns the last error observed (typically
// ErrUnorientable or ErrBudgetExhausted).
func EquationsTRS(ctx context.Context, equations []Equation, budget *Budget, workers int) (TRS, error) {
	symbols := CollectSymbols(equations)
	if len(symbols) == 0 {
		return nil, nil
	}

	pool := parallel.NewPool(workers)
	defer pool.Shutdown()

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan searchResult)

	go func() {
		var wg sync.WaitGroup
		it := NewOrderingCandidates(symbols)
		for cand, ok := it.Next(); ok; cand, ok = it.Next() {
			cand := cand
			candBudget := budget.Fork()
			wg.Add(1)
			err := pool.Submit(searchCtx, func() {
				defer wg.Done()
				// Each candidate gets its own fresh-renamed copy of the
				// input equations: candidates run concurrently, and
				// Completion mutates no shared state, but fresh-renaming
				// up front keeps every candidate's variable identities
				// wholly disjoint from every other's, which is one less
				// thing to reason about when diagnosing a candidate's
				// trace in isolation.
				local := make([]Equation, len(equations))
				for i, eq := range equations {
					local[i] = freshRenameEquation(eq)
				}
				trs, err := Completion(searchCtx, local, cand.Func(), candBudget, CompletionOptions{})
				select {
				case results <- searchResult{trs: trs, err: err}:
				case <-searchCtx.Done():
				}
			})
			if err != nil {
				wg.Done()
				break
			}
		}
		wg.Wait()
		close(results)
	}()

	var lastErr error
collect:
	for {
		select {
		case r, ok := <-results:
			if !ok {
				break collect
			}
			if r.err == nil {
				cancel()
				return r.trs, nil
			}
			lastErr = r.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if lastErr == nil {
		lastErr = ErrUnorientable
	}
	return nil, lastErr
}

// SymbolTable renders the symbols of a set of equations as a sorted,
// deduplicated slice — useful for diagnostics and for presenting a
// deterministic ordering-candidate universe to a user choosing a
// precedence by hand instead of searching one.
func SymbolTable(equations []Equation) []Symbol {
	syms := CollectSymbols(equations)
	out := append([]Symbol(nil), syms...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
