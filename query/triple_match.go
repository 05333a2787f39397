package query

import (
	"strings"

	"github.com/tripodql/tripod/algebra"
)

// TermArg is one position of a triple pattern, tagged at construction
// rather than sniffed from its textual form: a position is a required match
// value (Bound), an output column (Var), or unconstrained (the zero value).
type TermArg struct {
	kind  argKind
	value algebra.Value
	name  string
}

type argKind int

const (
	argIgnore argKind = iota
	argBound
	argVar
)

// Any is the unconstrained position: neither matched nor projected
var Any = TermArg{}

// Bound constrains a position to a required element value
func Bound(v algebra.Value) TermArg {
	return TermArg{kind: argBound, value: v}
}

// Var projects a position into the output under the given column name
func Var(name string) TermArg {
	return TermArg{kind: argVar, name: name}
}

// Arg classifies a textual argument using the variable-sigil convention: a
// leading '?' or '$' marks an output column (sigil stripped), anything else
// is a required match value. A data value that legitimately begins with a
// sigil character cannot be expressed through Arg; use Bound directly.
func Arg(s string) TermArg {
	if len(s) > 1 && (strings.HasPrefix(s, "?") || strings.HasPrefix(s, "$")) {
		return Var(s[1:])
	}
	return Bound(s)
}

// TripleMatch selects and projects over a graph of triples. Each position
// argument either constrains the match (Bound), names an output column
// (Var), or is ignored (Any). The graph must satisfy the graph invariant:
// every member a triple; otherwise the call fails with ErrInvalidShape.
func TripleMatch(graph *algebra.Clan, subject, predicate, object TermArg) (*algebra.Clan, error) {
	if err := checkGraph(graph); err != nil {
		return nil, err
	}

	pattern := Pattern{}
	projection := Projection{}
	positions := []struct {
		label string
		arg   TermArg
	}{
		{SubjectKey, subject},
		{PredicateKey, predicate},
		{ObjectKey, object},
	}
	for _, pos := range positions {
		switch pos.arg.kind {
		case argBound:
			pattern[pos.label] = pos.arg.value
		case argVar:
			projection[pos.label] = pos.arg.name
		}
	}

	return MatchAndProject(graph, pattern, projection)
}
