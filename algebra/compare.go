package algebra

import (
	"strings"
	"time"

	"github.com/tripodql/tripod/term"
)

// CompareValues compares two values and returns:
//
//	-1 if left < right
//	 0 if left == right
//	 1 if left > right
//
// Values of different types order by type rank (nil < bool < numeric <
// time < string < IRI < blank < literal < relation < clan); values of the
// same type order by their natural ordering. Numerics form one rank so
// int64 and float64 compare by magnitude.
func CompareValues(left, right Value) int {
	lr, rr := typeRank(left), typeRank(right)
	if lr != rr {
		if lr < rr {
			return -1
		}
		return 1
	}

	switch l := left.(type) {
	case nil:
		return 0

	case bool:
		r := right.(bool)
		if !l && r {
			return -1
		} else if l && !r {
			return 1
		}
		return 0

	case int, int64, float64:
		return compareNumeric(left, right)

	case time.Time:
		r := right.(time.Time)
		if l.Before(r) {
			return -1
		} else if l.After(r) {
			return 1
		}
		return 0

	case string:
		return strings.Compare(l, right.(string))

	case term.IRI:
		return strings.Compare(l.Value(), right.(term.IRI).Value())

	case term.Blank:
		return strings.Compare(l.ID(), right.(term.Blank).ID())

	case term.Literal:
		r := right.(term.Literal)
		if c := strings.Compare(l.Value(), r.Value()); c != 0 {
			return c
		}
		if c := strings.Compare(l.Datatype(), r.Datatype()); c != 0 {
			return c
		}
		return strings.Compare(l.Lang(), r.Lang())

	case *Relation:
		return strings.Compare(l.Key(), right.(*Relation).Key())

	case *Clan:
		return strings.Compare(l.Key(), right.(*Clan).Key())
	}

	// Unknown types fall back to key comparison
	return strings.Compare(KeyOf(left), KeyOf(right))
}

// ValuesEqual checks if two values are equal using the same semantics as
// CompareValues.
func ValuesEqual(a, b Value) bool {
	return CompareValues(a, b) == 0
}

func typeRank(v Value) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int, int64, float64:
		return 2
	case time.Time:
		return 3
	case string:
		return 4
	case term.IRI:
		return 5
	case term.Blank:
		return 6
	case term.Literal:
		return 7
	case *Relation:
		return 8
	case *Clan:
		return 9
	}
	return 10
}

// 2^63 bounds for the int64 range, both exact in float64. maxInt64Float is
// the first float64 strictly above math.MaxInt64.
const (
	minInt64Float = -9.223372036854775808e+18
	maxInt64Float = 9.223372036854775808e+18
)

// compareNumeric orders int, int64 and float64 on one numeric line.
// Integer pairs compare exactly so large int64 values that would collapse
// under a float64 conversion stay distinct.
func compareNumeric(left, right Value) int {
	li, lInt := asInt64(left)
	ri, rInt := asInt64(right)
	switch {
	case lInt && rInt:
		return compareInt64s(li, ri)
	case lInt:
		return compareIntFloat(li, right.(float64))
	case rInt:
		return -compareIntFloat(ri, left.(float64))
	}
	return compareFloats(left.(float64), right.(float64))
}

func asInt64(v Value) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func compareInt64s(a, b int64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// compareIntFloat compares an int64 against a float64 without widening the
// integer, which is lossy past 2^53.
func compareIntFloat(i int64, f float64) int {
	if f < minInt64Float {
		return 1
	}
	if f >= maxInt64Float {
		return -1
	}
	t := int64(f)
	if i != t {
		return compareInt64s(i, t)
	}
	switch frac := f - float64(t); {
	case frac > 0:
		return -1
	case frac < 0:
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
