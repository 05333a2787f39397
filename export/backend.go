package export

import (
	"bufio"
	"fmt"
	"strconv"
	"time"

	"github.com/tripodql/tripod/algebra"
	"github.com/tripodql/tripod/term"
)

// Backend is the capability interface one serialization format implements.
// The set of backends is closed: formats are selected by name through the
// export options, not registered externally, which keeps the driving loop's
// behavior fixed and testable.
//
// WriteValue owns escaping and quoting, and reports whether it emitted
// anything: a backend may represent an absent value by omitting the cell
// entirely, in which case the loop skips the separator too.
type Backend interface {
	// BeginDocument writes any document preamble
	BeginDocument(w *bufio.Writer) error

	// HeaderValue writes one header entry, preceded by the inter-item
	// separator unless it is the first
	HeaderValue(w *bufio.Writer, name string, first bool) error

	// EndHeader closes the header section
	EndHeader(w *bufio.Writer) error

	// BeginRow opens one row, preceded by the row separator unless it is
	// the first
	BeginRow(w *bufio.Writer, first bool) error

	// WriteValue writes one scalar cell. present is false when the row
	// has no entry for the column, which is distinct from an empty value.
	WriteValue(w *bufio.Writer, column string, value algebra.Value, present, first bool) (bool, error)

	// EndRow closes one row
	EndRow(w *bufio.Writer) error

	// EndDocument writes any document trailer
	EndDocument(w *bufio.Writer) error
}

// backendFor selects a backend by format name
func backendFor(format string) (Backend, error) {
	switch format {
	case FormatCSV:
		return &csvBackend{}, nil
	case FormatJSON:
		return &jsonBackend{}, nil
	}
	return nil, fmt.Errorf("%w: unsupported format %q", ErrConfiguration, format)
}

// valueText renders a scalar's lexical form shared by the flat backend and
// the nested backend's value field. IRIs render without angle brackets,
// blank nodes with the _: prefix, literals as their bare lexical form.
func valueText(v algebra.Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case term.IRI:
		return val.Value()
	case term.Blank:
		return val.String()
	case term.Literal:
		return val.Value()
	}
	return fmt.Sprintf("%v", v)
}
