package algebra

import (
	"fmt"
	"sort"
	"strings"
)

// Pair is an ordered (left, right) couple. The left component acts as a
// label; the right component is the value bound to it.
type Pair struct {
	Left  Value
	Right Value
}

// Relation is a functional set of pairs: no two pairs share a left
// component. It represents one matched tuple: one triple, or one row of a
// query result. Relations are immutable after construction.
type Relation struct {
	pairs map[Value]Value
	key   string
}

// NewRelation creates a relation from pairs. Left components must be atoms;
// a duplicate left component with a different right value violates the
// functional invariant and is rejected. A duplicate pair (same left, same
// right) collapses, set-style.
func NewRelation(pairs ...Pair) (*Relation, error) {
	m := make(map[Value]Value, len(pairs))
	for _, p := range pairs {
		left, err := NormalizeAtom(p.Left)
		if err != nil {
			return nil, fmt.Errorf("%w: relation label %v is not an atom", ErrTypeMismatch, p.Left)
		}
		right := p.Right
		if _, nested := right.(*Relation); !nested {
			if _, nested := right.(*Clan); !nested {
				right, err = NormalizeAtom(right)
				if err != nil {
					return nil, fmt.Errorf("%w: relation value %v is not an element", ErrTypeMismatch, p.Right)
				}
			}
		}
		if existing, ok := m[left]; ok {
			if !ValuesEqual(existing, right) {
				return nil, fmt.Errorf("duplicate left component %v with conflicting values", left)
			}
			continue
		}
		m[left] = right
	}
	return &Relation{pairs: m, key: relationKey(m)}, nil
}

// MustRelation is NewRelation that panics on error. Intended for literals
// in tests and examples.
func MustRelation(pairs ...Pair) *Relation {
	r, err := NewRelation(pairs...)
	if err != nil {
		panic(err)
	}
	return r
}

// newRelationFromMap wraps an already-validated pair map. Internal fast
// path for operations that derive relations from existing ones.
func newRelationFromMap(m map[Value]Value) *Relation {
	return &Relation{pairs: m, key: relationKey(m)}
}

// Get returns the right component bound to a label
func (r *Relation) Get(label Value) (Value, bool) {
	if n, err := NormalizeAtom(label); err == nil {
		label = n
	}
	v, ok := r.pairs[label]
	return v, ok
}

// Size returns the number of pairs
func (r *Relation) Size() int {
	return len(r.pairs)
}

// IsEmpty returns true if the relation has no pairs
func (r *Relation) IsEmpty() bool {
	return len(r.pairs) == 0
}

// Labels returns the left components sorted by CompareValues
func (r *Relation) Labels() []Value {
	labels := make([]Value, 0, len(r.pairs))
	for l := range r.pairs {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		return CompareValues(labels[i], labels[j]) < 0
	})
	return labels
}

// Pairs returns the pairs sorted by left component
func (r *Relation) Pairs() []Pair {
	labels := r.Labels()
	pairs := make([]Pair, len(labels))
	for i, l := range labels {
		pairs[i] = Pair{Left: l, Right: r.pairs[l]}
	}
	return pairs
}

// Key returns the canonical key identifying this relation's pair set
func (r *Relation) Key() string {
	return r.key
}

// Equal checks structural equality of two relations
func (r *Relation) Equal(other *Relation) bool {
	if r == other {
		return true
	}
	if other == nil {
		return false
	}
	return r.key == other.key
}

// HasAll reports whether this relation's pair set is a superset of the
// pattern's: every pattern label is present with an equal value.
func (r *Relation) HasAll(pattern *Relation) bool {
	if pattern == nil {
		return true
	}
	for left, want := range pattern.pairs {
		got, ok := r.pairs[left]
		if !ok || !ValuesEqual(got, want) {
			return false
		}
	}
	return true
}

// Merge unions this relation's pairs with another's. The second return is
// false when the two conflict: a shared left component bound to differing
// values. Merge is the pairing step of CrossUnion.
func (r *Relation) Merge(other *Relation) (*Relation, bool) {
	m := make(map[Value]Value, len(r.pairs)+len(other.pairs))
	for l, v := range r.pairs {
		m[l] = v
	}
	for l, v := range other.pairs {
		if existing, ok := m[l]; ok {
			if !ValuesEqual(existing, v) {
				return nil, false
			}
			continue
		}
		m[l] = v
	}
	return newRelationFromMap(m), true
}

// Rename re-keys every left component found in the mapping's domain to its
// mapped value; labels not mentioned pass through unchanged. The second
// return is false when renaming collides two labels onto one with differing
// values (the result would not be functional).
func (r *Relation) Rename(mapping map[Value]Value) (*Relation, bool) {
	m := make(map[Value]Value, len(r.pairs))
	for l, v := range r.pairs {
		label := l
		if to, ok := mapping[l]; ok {
			label = to
		}
		if existing, ok := m[label]; ok && !ValuesEqual(existing, v) {
			return nil, false
		}
		m[label] = v
	}
	return newRelationFromMap(m), true
}

// Compose keeps only the pairs whose left component is in the projection's
// domain, re-keyed to the mapped value. It realizes transpose-then-compose
// against a projection relation: output rows carry exactly the projected
// labels. The second return is false when two projected labels collide onto
// one new label with differing values (non-functional results are excluded
// from composition).
func (r *Relation) Compose(projection map[Value]Value) (*Relation, bool) {
	m := make(map[Value]Value, len(projection))
	for from, to := range projection {
		v, ok := r.pairs[from]
		if !ok {
			continue
		}
		if existing, ok := m[to]; ok && !ValuesEqual(existing, v) {
			return nil, false
		}
		m[to] = v
	}
	return newRelationFromMap(m), true
}

// String returns a compact set-style representation, pairs in label order
func (r *Relation) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, p := range r.Pairs() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", p.Left, p.Right)
	}
	b.WriteString("}")
	return b.String()
}
