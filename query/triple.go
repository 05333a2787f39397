// Package query implements pattern matching, projection, and equi-joins
// over graphs of labeled triples. A graph is an algebra.Clan whose members
// are triples: relations carrying exactly the three fixed labels s, p, o.
//
// The engine operates purely on substrate values and performs no I/O.
// Results are fresh clans sharing no mutable state with their inputs.
package query

import (
	"fmt"

	"github.com/tripodql/tripod/algebra"
)

// The three fixed labels of a triple
const (
	SubjectKey   = "s"
	PredicateKey = "p"
	ObjectKey    = "o"
)

// MakeTriple constructs the fixed three-label relation for one
// subject/predicate/object fact. Each argument must be an element;
// otherwise the call fails with algebra.ErrTypeMismatch.
func MakeTriple(subject, predicate, object algebra.Value) (*algebra.Relation, error) {
	return algebra.NewRelation(
		algebra.Pair{Left: SubjectKey, Right: subject},
		algebra.Pair{Left: PredicateKey, Right: predicate},
		algebra.Pair{Left: ObjectKey, Right: object},
	)
}

// MustTriple is MakeTriple that panics on error. Intended for literals in
// tests and examples.
func MustTriple(subject, predicate, object algebra.Value) *algebra.Relation {
	t, err := MakeTriple(subject, predicate, object)
	if err != nil {
		panic(err)
	}
	return t
}

// IsTriple reports whether a relation carries exactly the labels s, p, o
func IsTriple(r *algebra.Relation) bool {
	if r == nil || r.Size() != 3 {
		return false
	}
	for _, label := range []string{SubjectKey, PredicateKey, ObjectKey} {
		if _, ok := r.Get(label); !ok {
			return false
		}
	}
	return true
}

// IsGraph reports whether every member of the clan is a triple
func IsGraph(c *algebra.Clan) bool {
	if c == nil {
		return false
	}
	for _, rel := range c.Members() {
		if !IsTriple(rel) {
			return false
		}
	}
	return true
}

// checkGraph returns ErrInvalidShape unless c satisfies the graph invariant
func checkGraph(c *algebra.Clan) error {
	if c == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidShape)
	}
	for _, rel := range c.Members() {
		if !IsTriple(rel) {
			return fmt.Errorf("%w: member %s is not a triple", ErrInvalidShape, rel)
		}
	}
	return nil
}
