package export

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/tripodql/tripod/algebra"
	"github.com/tripodql/tripod/term"
)

// goldenRows is a small result with a row that misses a column, pinning
// absence handling alongside ordinary values
func goldenRows() *algebra.Clan {
	return algebra.NewClan(
		row(
			algebra.Pair{Left: "e", Right: term.NewIRI("james")},
			algebra.Pair{Left: "n", Right: term.NewLiteral("James")},
		),
		row(
			algebra.Pair{Left: "e", Right: term.NewIRI("jeff")},
			algebra.Pair{Left: "n", Right: term.NewLiteral("Jeff")},
		),
		row(algebra.Pair{Left: "e", Right: term.NewIRI("bob")}),
	)
}

func TestGoldenFlat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(goldenRows(), Options{
		Format:  FormatCSV,
		Columns: []string{"e", "n"},
		Sink:    &buf,
	}))

	g := goldie.New(t)
	g.Assert(t, "flat", buf.Bytes())
}

func TestGoldenNested(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(goldenRows(), Options{
		Format:  FormatJSON,
		Columns: []string{"e", "n"},
		Sink:    &buf,
	}))

	g := goldie.New(t)
	g.Assert(t, "nested", buf.Bytes())
}
