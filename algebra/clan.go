package algebra

import (
	"fmt"
	"sort"
	"strings"
)

// Clan is a set of relations. It represents a graph (set of triples) or a
// tabular query result (set of rows). Membership is by structural equality;
// duplicate relations collapse at construction. Clans are immutable.
type Clan struct {
	members map[string]*Relation
	key     string
}

// NewClan creates a clan from member relations, deduplicating structurally
// equal members.
func NewClan(members ...*Relation) *Clan {
	m := make(map[string]*Relation, len(members))
	for _, rel := range members {
		if rel == nil {
			continue
		}
		m[rel.Key()] = rel
	}
	return &Clan{members: m, key: clanKey(m)}
}

// Size returns the number of member relations
func (c *Clan) Size() int {
	return len(c.members)
}

// IsEmpty returns true if the clan has no members
func (c *Clan) IsEmpty() bool {
	return len(c.members) == 0
}

// Has reports whether a structurally equal relation is a member
func (c *Clan) Has(rel *Relation) bool {
	if rel == nil {
		return false
	}
	_, ok := c.members[rel.Key()]
	return ok
}

// Members returns the member relations in canonical-key order. The order is
// arbitrary but stable for a given clan, which keeps downstream
// serialization byte-deterministic.
func (c *Clan) Members() []*Relation {
	keys := make([]string, 0, len(c.members))
	for k := range c.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rels := make([]*Relation, len(keys))
	for i, k := range keys {
		rels[i] = c.members[k]
	}
	return rels
}

// Key returns the canonical key identifying this clan's member set
func (c *Clan) Key() string {
	return c.key
}

// Equal checks structural equality of two clans
func (c *Clan) Equal(other *Clan) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	return c.key == other.key
}

// Labels returns the sorted union of all member labels. Export uses this as
// the default column set when the caller supplies none.
func (c *Clan) Labels() []Value {
	seen := make(map[string]Value)
	for _, rel := range c.members {
		for _, l := range rel.Labels() {
			seen[KeyOf(l)] = l
		}
	}
	labels := make([]Value, 0, len(seen))
	for _, l := range seen {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		return CompareValues(labels[i], labels[j]) < 0
	})
	return labels
}

// String returns a compact summary like Clan(3 relations)
func (c *Clan) String() string {
	if len(c.members) <= 3 {
		parts := make([]string, 0, len(c.members))
		for _, rel := range c.Members() {
			parts = append(parts, rel.String())
		}
		return "Clan{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("Clan(%d relations)", len(c.members))
}

// RestrictSuperset returns every relation in the clan whose pair set is a
// superset of the pattern relation's pair set. An empty pattern matches
// everything, so the result equals the input clan.
func RestrictSuperset(c *Clan, pattern *Relation) *Clan {
	m := make(map[string]*Relation)
	for k, rel := range c.members {
		if rel.HasAll(pattern) {
			m[k] = rel
		}
	}
	return &Clan{members: m, key: clanKey(m)}
}

// Rename re-keys every member relation's labels per the mapping; labels not
// mentioned pass through. Members whose renaming collides are dropped (the
// substrate excludes non-functional results).
func Rename(c *Clan, mapping map[Value]Value) *Clan {
	m := make(map[string]*Relation, len(c.members))
	for _, rel := range c.members {
		renamed, ok := rel.Rename(mapping)
		if !ok {
			continue
		}
		m[renamed.Key()] = renamed
	}
	return &Clan{members: m, key: clanKey(m)}
}

// Compose projects every member relation through the projection mapping
// (old label to new label), dropping unprojected labels. Members whose
// projection collides are excluded.
func Compose(c *Clan, projection map[Value]Value) *Clan {
	m := make(map[string]*Relation, len(c.members))
	for _, rel := range c.members {
		composed, ok := rel.Compose(projection)
		if !ok {
			continue
		}
		m[composed.Key()] = composed
	}
	return &Clan{members: m, key: clanKey(m)}
}

// CrossUnion produces one relation per compatible pairing of a member from
// each clan: the union of both pair sets where no shared label carries
// differing values. Incompatible pairings contribute nothing. This is the
// natural-join step the engine folds over.
func CrossUnion(a, b *Clan) *Clan {
	m := make(map[string]*Relation)
	for _, ra := range a.members {
		for _, rb := range b.members {
			merged, ok := ra.Merge(rb)
			if !ok {
				continue
			}
			m[merged.Key()] = merged
		}
	}
	return &Clan{members: m, key: clanKey(m)}
}
