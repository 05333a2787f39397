package algebra

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tripodql/tripod/term"
)

// Canonical keys give every value a stable byte-string identity under
// structural equality. Relations and clans use them for set membership and
// deduplication, and for a deterministic (if arbitrary) iteration order.

const (
	keySep   = "\x1f" // separates fields within one encoded value
	pairSep  = "\x1e" // separates pairs within a relation key
	unitSep  = "\x1d" // separates left from right in a pair key
)

// KeyOf returns the canonical key of a value. Two values have the same key
// exactly when ValuesEqual reports them equal.
func KeyOf(v Value) string {
	switch val := v.(type) {
	case nil:
		return "_"
	case bool:
		if val {
			return "b" + keySep + "t"
		}
		return "b" + keySep + "f"
	case int:
		return "n" + keySep + strconv.FormatInt(int64(val), 10)
	case int64:
		return "n" + keySep + strconv.FormatInt(val, 10)
	case float64:
		// An integral float shares its key with the equal int64 so keys
		// track ValuesEqual across the numeric rank.
		if val == math.Trunc(val) && val >= minInt64Float && val < maxInt64Float {
			return "n" + keySep + strconv.FormatInt(int64(val), 10)
		}
		return "n" + keySep + strconv.FormatFloat(val, 'g', -1, 64)
	case time.Time:
		return "t" + keySep + val.UTC().Format(time.RFC3339Nano)
	case string:
		return "s" + keySep + val
	case term.IRI:
		return "u" + keySep + val.Value()
	case term.Blank:
		return "k" + keySep + val.ID()
	case term.Literal:
		return "l" + keySep + val.Value() + keySep + val.Datatype() + keySep + val.Lang()
	case *Relation:
		return "r" + keySep + val.Key()
	case *Clan:
		return "c" + keySep + val.Key()
	}
	return "?" + keySep
}

// relationKey builds the canonical key of a pair set: each pair encoded as
// left-key unitSep right-key, sorted, joined with pairSep.
func relationKey(pairs map[Value]Value) string {
	encoded := make([]string, 0, len(pairs))
	for left, right := range pairs {
		encoded = append(encoded, KeyOf(left)+unitSep+KeyOf(right))
	}
	sort.Strings(encoded)
	return strings.Join(encoded, pairSep)
}

// clanKey builds the canonical key of a set of relations from their sorted
// member keys.
func clanKey(members map[string]*Relation) string {
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, pairSep)
}
