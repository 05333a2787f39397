package query

import (
	"fmt"

	"github.com/tripodql/tripod/algebra"
)

// Pattern maps a left-component label to a required element value. Rows
// survive a match only if every bound label appears with an equal value.
type Pattern map[algebra.Value]algebra.Value

// Projection maps an existing left-component label to a new label. Labels
// absent from the projection are dropped from output rows.
type Projection map[algebra.Value]algebra.Value

// PatternMatch selects every relation in the clan that is a superset match
// of the pattern. An empty (or nil) pattern is the identity: the result
// equals the input.
func PatternMatch(graph *algebra.Clan, pattern Pattern) (*algebra.Clan, error) {
	if graph == nil {
		return nil, fmt.Errorf("%w: input clan is nil", ErrInvalidShape)
	}
	filter, err := patternFilter(pattern)
	if err != nil {
		return nil, err
	}
	return algebra.RestrictSuperset(graph, filter), nil
}

// MatchAndProject selects superset matches of the pattern, then projects
// each matched relation through the projection: output rows carry exactly
// the projected labels, re-keyed old to new. A nil pattern applies no
// filter; a nil projection applies no renaming and the matches pass through
// unchanged.
func MatchAndProject(graph *algebra.Clan, pattern Pattern, projection Projection) (*algebra.Clan, error) {
	matched, err := PatternMatch(graph, pattern)
	if err != nil {
		return nil, err
	}
	if len(projection) == 0 {
		return matched, nil
	}
	return algebra.Compose(matched, projection), nil
}

// Join folds CrossUnion left to right over the input clans, producing the
// natural equi-join of all of them: one output row per compatible
// combination, where compatibility means no shared label with differing
// values. At least two inputs are required; fewer fail with ErrArity.
//
// The result is the same set of rows regardless of evaluation order; only
// performance depends on it.
func Join(clans ...*algebra.Clan) (*algebra.Clan, error) {
	if len(clans) < 2 {
		return nil, fmt.Errorf("%w: join requires at least two clans, got %d", ErrArity, len(clans))
	}
	for i, c := range clans {
		if c == nil {
			return nil, fmt.Errorf("%w: join input %d is nil", ErrInvalidShape, i)
		}
	}
	result := clans[0]
	for _, c := range clans[1:] {
		result = algebra.CrossUnion(result, c)
	}
	return result, nil
}

// patternFilter builds the single-relation pattern filter used for superset
// restriction
func patternFilter(pattern Pattern) (*algebra.Relation, error) {
	pairs := make([]algebra.Pair, 0, len(pattern))
	for label, value := range pattern {
		pairs = append(pairs, algebra.Pair{Left: label, Right: value})
	}
	filter, err := algebra.NewRelation(pairs...)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return filter, nil
}
