package export

import (
	"bufio"
	"strings"

	"github.com/tripodql/tripod/algebra"
)

// csvBackend is the flat delimited form: a header line of quoted,
// comma-separated column names, then one quoted line per row, each
// newline-terminated. Absent values render as an empty quoted field.
type csvBackend struct{}

const csvSeparator = ", "

func (b *csvBackend) BeginDocument(w *bufio.Writer) error {
	return nil
}

func (b *csvBackend) HeaderValue(w *bufio.Writer, name string, first bool) error {
	if !first {
		if _, err := w.WriteString(csvSeparator); err != nil {
			return err
		}
	}
	return b.writeQuoted(w, name)
}

func (b *csvBackend) EndHeader(w *bufio.Writer) error {
	return w.WriteByte('\n')
}

func (b *csvBackend) BeginRow(w *bufio.Writer, first bool) error {
	return nil
}

func (b *csvBackend) WriteValue(w *bufio.Writer, column string, value algebra.Value, present, first bool) (bool, error) {
	if !first {
		if _, err := w.WriteString(csvSeparator); err != nil {
			return false, err
		}
	}
	text := ""
	if present {
		text = valueText(value)
	}
	if err := b.writeQuoted(w, text); err != nil {
		return false, err
	}
	return true, nil
}

func (b *csvBackend) EndRow(w *bufio.Writer) error {
	return w.WriteByte('\n')
}

func (b *csvBackend) EndDocument(w *bufio.Writer) error {
	return nil
}

// writeQuoted writes a double-quoted field, doubling embedded quotes
func (b *csvBackend) writeQuoted(w *bufio.Writer, s string) error {
	if err := w.WriteByte('"'); err != nil {
		return err
	}
	if _, err := w.WriteString(strings.ReplaceAll(s, `"`, `""`)); err != nil {
		return err
	}
	return w.WriteByte('"')
}
