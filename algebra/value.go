// Package algebra implements the relational substrate the query engine is
// built on: immutable set-valued data types (elements, pairs, functional
// relations, and clans) together with the algebraic operations the engine
// composes: superset restriction, renaming/composition, and cross union.
//
// All values are immutable once constructed. Operations never mutate their
// inputs; they return fresh values. Equality is structural throughout.
package algebra

import (
	"errors"
	"time"

	"github.com/tripodql/tripod/term"
)

// Value represents any element that can appear in a relation.
// Left components (labels) must be atoms; right components may additionally
// be nested relational values.
type Value interface{}

// Valid atom types:
// - string
// - int64
// - float64
// - bool
// - time.Time
// - term.IRI (reference to a resource)
// - term.Blank (blank-node placeholder)
// - term.Literal (typed or language-tagged literal)
//
// Valid nested types (right components only):
// - *Relation
// - *Clan

// ErrTypeMismatch reports a value handed to a typed constructor that is not
// an element and not convertible to one.
var ErrTypeMismatch = errors.New("type mismatch")

// IsAtom reports whether v is an atomic element (hashable, totally ordered,
// usable as a label).
func IsAtom(v Value) bool {
	switch v.(type) {
	case string, int64, float64, bool, time.Time,
		term.IRI, term.Blank, term.Literal:
		return true
	case int:
		return true
	}
	return false
}

// NormalizeAtom converts convertible atoms to their canonical representation
// (int widens to int64). It returns ErrTypeMismatch for anything that is not
// an atom.
func NormalizeAtom(v Value) (Value, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case string, int64, float64, bool, time.Time,
		term.IRI, term.Blank, term.Literal:
		return val, nil
	}
	return nil, ErrTypeMismatch
}
