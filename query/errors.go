package query

import "errors"

// ErrInvalidShape reports an input clan or relation that does not satisfy
// the triple or graph invariant where one is required.
var ErrInvalidShape = errors.New("invalid shape")

// ErrArity reports the wrong number of arguments to a variadic operation,
// e.g. Join with fewer than two inputs.
var ErrArity = errors.New("arity error")
