// Package term provides the RDF term types used as elements in graphs:
// IRIs (references), blank nodes, and literals. All term types are small
// comparable structs so they can be used directly as map keys and compared
// with ==.
package term

import "fmt"

// Kind classifies a value for serialization purposes.
// Reference-like values (IRIs) and blank nodes are distinguished from
// plain literals so exporters can report provenance.
type Kind int

const (
	// KindLiteral covers literals and any plain Go value (string, int64, ...)
	KindLiteral Kind = iota
	// KindIRI covers IRI references
	KindIRI
	// KindBlank covers blank-node placeholders
	KindBlank
)

// String returns the SPARQL results vocabulary name for the kind
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "uri"
	case KindBlank:
		return "bnode"
	default:
		return "literal"
	}
}

// IRI is an identifier reference (e.g., <http://example.org/jeff>)
type IRI struct {
	value string
}

// NewIRI creates an IRI from its string form (without angle brackets)
func NewIRI(s string) IRI {
	return IRI{value: s}
}

// Value returns the IRI string without angle brackets
func (i IRI) Value() string {
	return i.value
}

// String returns the N-Triples form
func (i IRI) String() string {
	return "<" + i.value + ">"
}

// Blank is a blank-node placeholder (e.g., _:b0)
type Blank struct {
	id string
}

// NewBlank creates a blank node with the given local identifier
func NewBlank(id string) Blank {
	return Blank{id: id}
}

// ID returns the local identifier without the _: prefix
func (b Blank) ID() string {
	return b.id
}

// String returns the N-Triples form
func (b Blank) String() string {
	return "_:" + b.id
}

// Literal is a literal value with an optional datatype IRI and language tag.
// The lexical form is kept as a string; typed interpretation is left to the
// caller (the engine matches literals structurally).
type Literal struct {
	value    string
	datatype string
	lang     string
}

// NewLiteral creates a plain literal
func NewLiteral(value string) Literal {
	return Literal{value: value}
}

// NewTypedLiteral creates a literal with a datatype IRI
func NewTypedLiteral(value, datatype string) Literal {
	return Literal{value: value, datatype: datatype}
}

// NewLangLiteral creates a language-tagged literal
func NewLangLiteral(value, lang string) Literal {
	return Literal{value: value, lang: lang}
}

// Value returns the lexical form
func (l Literal) Value() string {
	return l.value
}

// Datatype returns the datatype IRI, or "" for plain literals
func (l Literal) Datatype() string {
	return l.datatype
}

// Lang returns the language tag, or "" if untagged
func (l Literal) Lang() string {
	return l.lang
}

// String returns the N-Triples form
func (l Literal) String() string {
	s := fmt.Sprintf("%q", l.value)
	if l.datatype != "" {
		return s + "^^<" + l.datatype + ">"
	}
	if l.lang != "" {
		return s + "@" + l.lang
	}
	return s
}

// KindOf classifies an arbitrary value. IRIs are references, blank nodes
// are blanks, and everything else (Literal or a plain Go value) is a
// literal.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case IRI, *IRI:
		return KindIRI
	case Blank, *Blank:
		return KindBlank
	default:
		return KindLiteral
	}
}
