package algebra

import (
	"errors"
	"testing"

	"github.com/tripodql/tripod/term"
)

func TestNewRelation(t *testing.T) {
	r, err := NewRelation(
		Pair{Left: "s", Right: term.NewIRI("jeff")},
		Pair{Left: "p", Right: term.NewIRI("name")},
		Pair{Left: "o", Right: term.NewLiteral("jeff")},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Size() != 3 {
		t.Errorf("expected size 3, got %d", r.Size())
	}

	v, ok := r.Get("s")
	if !ok {
		t.Fatal("expected s label")
	}
	if v != term.NewIRI("jeff") {
		t.Errorf("unexpected s value: %v", v)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("expected missing label to be absent")
	}
}

func TestNewRelationRejectsConflictingLefts(t *testing.T) {
	_, err := NewRelation(
		Pair{Left: "a", Right: int64(1)},
		Pair{Left: "a", Right: int64(2)},
	)
	if err == nil {
		t.Fatal("expected error for conflicting duplicate left component")
	}
}

func TestNewRelationCollapsesEqualPairs(t *testing.T) {
	r, err := NewRelation(
		Pair{Left: "a", Right: int64(1)},
		Pair{Left: "a", Right: int64(1)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Size() != 1 {
		t.Errorf("expected size 1, got %d", r.Size())
	}
}

func TestNewRelationTypeMismatch(t *testing.T) {
	type opaque struct{ x int }

	_, err := NewRelation(Pair{Left: opaque{1}, Right: "v"})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch for non-atom label, got %v", err)
	}

	_, err = NewRelation(Pair{Left: "a", Right: opaque{1}})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch for non-element value, got %v", err)
	}
}

func TestIntLabelsNormalize(t *testing.T) {
	r := MustRelation(Pair{Left: "a", Right: 7})
	v, ok := r.Get("a")
	if !ok {
		t.Fatal("expected a label")
	}
	if v != int64(7) {
		t.Errorf("expected int64(7), got %T(%v)", v, v)
	}
}

func TestRelationEqual(t *testing.T) {
	a := MustRelation(Pair{Left: "x", Right: int64(1)}, Pair{Left: "y", Right: "two"})
	b := MustRelation(Pair{Left: "y", Right: "two"}, Pair{Left: "x", Right: int64(1)})
	c := MustRelation(Pair{Left: "x", Right: int64(2)})

	if !a.Equal(b) {
		t.Error("expected pair order not to affect equality")
	}
	if a.Equal(c) {
		t.Error("expected differing relations to be unequal")
	}
	if a.Key() != b.Key() {
		t.Error("expected equal relations to share a canonical key")
	}
}

func TestRelationHasAll(t *testing.T) {
	row := MustRelation(
		Pair{Left: "s", Right: term.NewIRI("james")},
		Pair{Left: "p", Right: term.NewIRI("type")},
		Pair{Left: "o", Right: term.NewIRI("engineer")},
	)

	match := MustRelation(Pair{Left: "p", Right: term.NewIRI("type")})
	miss := MustRelation(Pair{Left: "p", Right: term.NewIRI("name")})
	extra := MustRelation(Pair{Left: "q", Right: term.NewIRI("type")})

	if !row.HasAll(match) {
		t.Error("expected superset match")
	}
	if row.HasAll(miss) {
		t.Error("expected value mismatch to fail")
	}
	if row.HasAll(extra) {
		t.Error("expected unknown label to fail")
	}
	if !row.HasAll(MustRelation()) {
		t.Error("expected empty pattern to match any relation")
	}
}

func TestRelationMerge(t *testing.T) {
	a := MustRelation(Pair{Left: "e", Right: term.NewIRI("james")}, Pair{Left: "n", Right: "james"})
	b := MustRelation(Pair{Left: "e", Right: term.NewIRI("james")}, Pair{Left: "f", Right: term.NewIRI("couplet")})
	c := MustRelation(Pair{Left: "e", Right: term.NewIRI("jeff")})

	merged, ok := a.Merge(b)
	if !ok {
		t.Fatal("expected compatible merge")
	}
	if merged.Size() != 3 {
		t.Errorf("expected merged size 3, got %d", merged.Size())
	}
	if _, ok := merged.Get("f"); !ok {
		t.Error("expected merged relation to carry f")
	}

	if _, ok := a.Merge(c); ok {
		t.Error("expected conflicting merge to fail")
	}
}

func TestRelationRename(t *testing.T) {
	r := MustRelation(Pair{Left: "s", Right: term.NewIRI("x")}, Pair{Left: "o", Right: "v"})

	renamed, ok := r.Rename(map[Value]Value{"s": "e"})
	if !ok {
		t.Fatal("expected rename to succeed")
	}
	if _, ok := renamed.Get("e"); !ok {
		t.Error("expected renamed label e")
	}
	if _, ok := renamed.Get("s"); ok {
		t.Error("expected old label s to be gone")
	}
	if _, ok := renamed.Get("o"); !ok {
		t.Error("expected unmentioned label o to pass through")
	}

	// Collision onto one label with differing values is not functional
	if _, ok := r.Rename(map[Value]Value{"s": "o"}); ok {
		t.Error("expected colliding rename to fail")
	}
}

func TestRelationCompose(t *testing.T) {
	r := MustRelation(
		Pair{Left: "s", Right: term.NewIRI("james")},
		Pair{Left: "o", Right: "james"},
	)

	composed, ok := r.Compose(map[Value]Value{"s": "e"})
	if !ok {
		t.Fatal("expected compose to succeed")
	}
	if composed.Size() != 1 {
		t.Errorf("expected only projected labels, got size %d", composed.Size())
	}
	if v, _ := composed.Get("e"); v != term.NewIRI("james") {
		t.Errorf("unexpected e value: %v", v)
	}

	// Projecting an absent label contributes nothing
	composed, ok = r.Compose(map[Value]Value{"missing": "m"})
	if !ok {
		t.Fatal("expected compose to succeed")
	}
	if !composed.IsEmpty() {
		t.Errorf("expected empty result, got %v", composed)
	}
}
