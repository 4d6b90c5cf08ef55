package rewriting

import "errors"

// ErrUnorientable is returned by Completion when a pending equation
// normalizes to two distinct terms neither of which is greater than the
// other under the active reduction ordering. The attempt is aborted; a
// caller may retry with a different precedence or status assignment.
var ErrUnorientable = errors.New("rewriting: equation is not orientable under the given ordering")

// ErrBudgetExhausted is returned when a step counter or wall-clock
// deadline threaded through a long-running operation (Completion,
// NormalForm, CriticalPairs) is exceeded. Any in-progress state is
// discarded; nothing is observable from a partially completed attempt.
var ErrBudgetExhausted = errors.New("rewriting: step or time budget exhausted")

// ErrMalformedRule is returned by add_rule-family operations when asked
// to install a rule whose left-hand side is a bare variable, or whose
// right-hand side mentions a variable absent from the left-hand side.
// This indicates a programming error upstream (never a property of valid
// input equations after orientation), so it is treated as fatal for the
// current completion run rather than retried.
var ErrMalformedRule = errors.New("rewriting: malformed rule")
