// Package export serializes tabular query results (clans of uniformly
// keyed relations) into textual table formats through a small set of
// format backends.
//
// The driving loop is fixed: write the header once (caller-ordered
// columns), then one row per member relation. Backends own only the
// format-specific hooks: document start/end, header and row items,
// separators, and scalar rendering including escaping. Column order is
// always the caller's explicit order; row order is the clan's canonical
// iteration order, which callers must treat as unspecified but which is
// stable for a given clan, making output byte-deterministic.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tripodql/tripod/algebra"
)

// ErrConfiguration reports ill-formed caller configuration: an empty column
// list, an unsupported format name, or a bad sink specification.
var ErrConfiguration = errors.New("configuration error")

// Supported format names
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Options configures one export
type Options struct {
	// Format selects the backend: FormatCSV or FormatJSON
	Format string

	// Columns is the ordered output column list. Empty means the sorted
	// set of all labels observed across the clan's relations.
	Columns []string

	// Path is a destination file, opened and closed by the export.
	// Exactly one of Path and Sink must be set.
	Path string

	// Sink is an already-open destination; closing is the caller's
	// responsibility.
	Sink io.Writer
}

// Export serializes the rows per the options. All validation happens
// before the sink is opened or written: once bytes flow, only sink-level
// failures can occur.
func Export(rows *algebra.Clan, opts Options) error {
	if rows == nil {
		return fmt.Errorf("%w: rows clan is nil", ErrConfiguration)
	}

	backend, err := backendFor(opts.Format)
	if err != nil {
		return err
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = defaultColumns(rows)
	}
	if len(columns) == 0 {
		return fmt.Errorf("%w: no columns to export", ErrConfiguration)
	}

	switch {
	case opts.Path != "" && opts.Sink != nil:
		return fmt.Errorf("%w: both path and sink given", ErrConfiguration)
	case opts.Path == "" && opts.Sink == nil:
		return fmt.Errorf("%w: neither path nor sink given", ErrConfiguration)
	}

	if opts.Path != "" {
		f, err := os.Create(opts.Path)
		if err != nil {
			return err
		}
		werr := write(f, backend, columns, rows)
		cerr := f.Close()
		if werr != nil {
			return werr
		}
		return cerr
	}

	return write(opts.Sink, backend, columns, rows)
}

// write runs the driving loop against one backend
func write(dst io.Writer, b Backend, columns []string, rows *algebra.Clan) error {
	w := bufio.NewWriter(dst)

	if err := b.BeginDocument(w); err != nil {
		return err
	}
	for i, col := range columns {
		if err := b.HeaderValue(w, col, i == 0); err != nil {
			return err
		}
	}
	if err := b.EndHeader(w); err != nil {
		return err
	}

	firstRow := true
	for _, rel := range rows.Members() {
		if err := b.BeginRow(w, firstRow); err != nil {
			return err
		}
		firstRow = false

		firstValue := true
		for _, col := range columns {
			v, present := rel.Get(col)
			wrote, err := b.WriteValue(w, col, v, present, firstValue)
			if err != nil {
				return err
			}
			if wrote {
				firstValue = false
			}
		}
		if err := b.EndRow(w); err != nil {
			return err
		}
	}

	if err := b.EndDocument(w); err != nil {
		return err
	}
	return w.Flush()
}

// defaultColumns returns the sorted set of all labels observed across the
// clan's relations, rendered as column names
func defaultColumns(rows *algebra.Clan) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, label := range rows.Labels() {
		name := fmt.Sprintf("%v", label)
		if !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}
	sort.Strings(columns)
	return columns
}
