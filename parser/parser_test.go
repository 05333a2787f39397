package parser

import (
	"strings"
	"testing"

	"github.com/tripodql/tripod/query"
	"github.com/tripodql/tripod/term"
)

func TestParseGraph(t *testing.T) {
	input := `
# people
<jeff> <name> "Jeff" .
<jeff> <type> <engineer> .
_:b0 <name> "Anon"@en .
<jeff> <age> "39"^^<http://www.w3.org/2001/XMLSchema#integer> .
`
	graph, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if graph.Size() != 4 {
		t.Fatalf("expected 4 triples, got %d", graph.Size())
	}
	if !query.IsGraph(graph) {
		t.Error("expected parsed clan to satisfy the graph invariant")
	}

	if !graph.Has(query.MustTriple(term.NewIRI("jeff"), term.NewIRI("name"), term.NewLiteral("Jeff"))) {
		t.Error("missing plain literal triple")
	}
	if !graph.Has(query.MustTriple(term.NewBlank("b0"), term.NewIRI("name"), term.NewLangLiteral("Anon", "en"))) {
		t.Error("missing blank-node triple with language tag")
	}
	if !graph.Has(query.MustTriple(
		term.NewIRI("jeff"),
		term.NewIRI("age"),
		term.NewTypedLiteral("39", "http://www.w3.org/2001/XMLSchema#integer"),
	)) {
		t.Error("missing typed literal triple")
	}
}

func TestParseGraphDeduplicates(t *testing.T) {
	graph, err := ParseString("<a> <b> <c> .\n<a> <b> <c> .\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if graph.Size() != 1 {
		t.Errorf("expected duplicate triples to collapse, got %d", graph.Size())
	}
}

func TestParseLiteralEscapes(t *testing.T) {
	graph, err := ParseString(`<a> <b> "line\nbreak \"quoted\" tab\there" .`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := term.NewLiteral("line\nbreak \"quoted\" tab\there")
	if !graph.Has(query.MustTriple(term.NewIRI("a"), term.NewIRI("b"), want)) {
		t.Errorf("escape handling broken: %v", graph)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing terminator", `<a> <b> <c>`},
		{"unterminated iri", `<a> <b> <c .`},
		{"unterminated literal", `<a> <b> "oops .`},
		{"too few terms", `<a> <b> .`},
		{"trailing content", `<a> <b> <c> . <d>`},
		{"bad escape", `<a> <b> "\q" .`},
		{"empty blank label", `_: <b> <c> .`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseString(tt.input); err == nil {
				t.Errorf("expected parse error for %q", tt.input)
			}
		})
	}
}

func TestParseLineNumbersInErrors(t *testing.T) {
	_, err := ParseString("<a> <b> <c> .\nbroken line\n")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to name line 2, got %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	graph, err := ParseString("\n# only a comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !graph.IsEmpty() {
		t.Errorf("expected empty graph, got %d members", graph.Size())
	}
}
