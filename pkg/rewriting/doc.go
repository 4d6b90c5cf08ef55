// Package rewriting decides the word problem for equational theories.
//
// Version: 0.1.0
//
// Given a finite set of equations over first-order terms, such as the
// group axioms
//
//	{ e*X = X, i(X)*X = e, X*(Y*Z) = (X*Y)*Z }
//
// rewriting turns them into an equivalent convergent term rewriting
// system (TRS): a set of oriented rules that is both terminating and
// confluent, so any two terms equal under the original equations reduce
// to the same normal form. Word-problem decisions then reduce to
// computing and comparing normal forms.
//
// # Architecture Overview
//
// The package is layered bottom-up:
//
//	Term & Substitution  — first-order terms, variables, fresh renaming
//	Unification/Matching — most general unifiers (occurs-checked), one-sided matching
//	Rewriter              — root rewriting (Step) and innermost normal forms (NormalForm)
//	Orderings              — precedence, lexicographic/multiset extensions, RPO
//	Critical Pairs          — overlap enumeration between rule left-hand sides
//	Completion              — the Knuth–Bendix/Huet fixed-point loop tying it together
//
// # How Completion Works
//
//  1. Pop a pending equation and normalize both sides against the current rules.
//  2. Orient the normalized pair using the supplied reduction ordering.
//  3. Install the oriented rule, inter-reducing every other rule against it.
//  4. Generate critical pairs between the new rule and all existing rules.
//  5. Feed the critical pairs back in as equations; repeat until none remain.
//
// The engine is single-threaded and synchronous: every operation here is a
// pure function of its inputs plus an explicit step budget, so a caller can
// bound runaway completion attempts without the package doing any I/O or
// holding shared mutable state. The only place concurrency appears is the
// ordering-candidate search driver (EquationsTRS), which may try several
// precedence/status candidates in parallel — completion itself never
// spawns goroutines.
//
// Out of scope: parsing of user-facing term syntax, pretty-printing beyond
// a debugging String() method, the specific strategy used to pick a next
// ordering candidate beyond the bundled iterator, and any notion of
// AC-completion, ordered/unfailing completion, or confluence checking
// beyond what the completion loop itself establishes.
package rewriting
