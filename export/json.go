package export

import (
	"bufio"
	"encoding/json"

	"github.com/tripodql/tripod/algebra"
	"github.com/tripodql/tripod/term"
)

// jsonBackend is the nested key-typed form, shaped like SPARQL query
// results: a head.vars array of column names in order and a
// results.bindings array of row objects. A row object carries one key per
// column present in that row; absent columns are omitted entirely. Each
// value object classifies its scalar's provenance (uri / bnode / literal)
// and carries the datatype and language tag when the literal has one.
type jsonBackend struct{}

func (b *jsonBackend) BeginDocument(w *bufio.Writer) error {
	_, err := w.WriteString(`{"head":{"vars":[`)
	return err
}

func (b *jsonBackend) HeaderValue(w *bufio.Writer, name string, first bool) error {
	if !first {
		if err := w.WriteByte(','); err != nil {
			return err
		}
	}
	return writeJSONString(w, name)
}

func (b *jsonBackend) EndHeader(w *bufio.Writer) error {
	_, err := w.WriteString(`]},"results":{"bindings":[`)
	return err
}

func (b *jsonBackend) BeginRow(w *bufio.Writer, first bool) error {
	if !first {
		if err := w.WriteByte(','); err != nil {
			return err
		}
	}
	return w.WriteByte('{')
}

func (b *jsonBackend) WriteValue(w *bufio.Writer, column string, value algebra.Value, present, first bool) (bool, error) {
	if !present {
		// Absent columns are omitted, never emitted as null
		return false, nil
	}
	if !first {
		if err := w.WriteByte(','); err != nil {
			return false, err
		}
	}
	if err := writeJSONString(w, column); err != nil {
		return false, err
	}
	if err := w.WriteByte(':'); err != nil {
		return false, err
	}
	if err := b.writeBinding(w, value); err != nil {
		return false, err
	}
	return true, nil
}

func (b *jsonBackend) EndRow(w *bufio.Writer) error {
	return w.WriteByte('}')
}

func (b *jsonBackend) EndDocument(w *bufio.Writer) error {
	_, err := w.WriteString("]}}\n")
	return err
}

// writeBinding writes one value object: type, optional datatype and
// language tag, then the lexical value
func (b *jsonBackend) writeBinding(w *bufio.Writer, value algebra.Value) error {
	if _, err := w.WriteString(`{"type":`); err != nil {
		return err
	}
	if err := writeJSONString(w, term.KindOf(value).String()); err != nil {
		return err
	}

	if lit, ok := value.(term.Literal); ok {
		if lit.Datatype() != "" {
			if _, err := w.WriteString(`,"datatype":`); err != nil {
				return err
			}
			if err := writeJSONString(w, lit.Datatype()); err != nil {
				return err
			}
		}
		if lit.Lang() != "" {
			if _, err := w.WriteString(`,"xml:lang":`); err != nil {
				return err
			}
			if err := writeJSONString(w, lit.Lang()); err != nil {
				return err
			}
		}
	}

	if _, err := w.WriteString(`,"value":`); err != nil {
		return err
	}
	if err := writeJSONString(w, valueText(value)); err != nil {
		return err
	}
	return w.WriteByte('}')
}

// writeJSONString writes a JSON-escaped string token
func writeJSONString(w *bufio.Writer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}
