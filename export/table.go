package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tripodql/tripod/algebra"
)

// TableFormatter renders result clans as markdown tables for interactive
// display. It sits outside the streaming backend set: tables need the whole
// result to size columns, so this path materializes rather than streams.
type TableFormatter struct {
	// MaxWidth is the maximum width for a cell
	MaxWidth int
	// TruncateString is appended when a cell is cut at MaxWidth
	TruncateString string
}

// NewTableFormatter creates a table formatter with default settings
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		MaxWidth:       50,
		TruncateString: "...",
	}
}

// FormatClan formats a clan as a markdown table over the given columns.
// Empty columns default the same way exports do.
func (tf *TableFormatter) FormatClan(rows *algebra.Clan, columns []string) string {
	if rows == nil || rows.IsEmpty() {
		return "_Empty result_"
	}
	if len(columns) == 0 {
		columns = defaultColumns(rows)
	}

	tableString := &strings.Builder{}

	alignment := make([]tw.Align, len(columns))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}

	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(columns)

	count := 0
	for _, rel := range rows.Members() {
		row := make([]string, len(columns))
		for i, col := range columns {
			v, present := rel.Get(col)
			row[i] = tf.formatCell(v, present)
		}
		table.Append(row)
		count++
	}
	table.Render()

	tableString.WriteString(fmt.Sprintf("\n_%d rows_\n", count))
	return tableString.String()
}

// formatCell renders one cell, truncating at MaxWidth. Absent cells render
// empty.
func (tf *TableFormatter) formatCell(v algebra.Value, present bool) string {
	if !present {
		return ""
	}
	text := valueText(v)
	if tf.MaxWidth > 0 && utf8.RuneCountInString(text) > tf.MaxWidth {
		runes := []rune(text)
		return string(runes[:tf.MaxWidth]) + tf.TruncateString
	}
	return text
}

// Summary returns a compact colored description of a result clan, sized
// count colored by magnitude
func Summary(rows *algebra.Clan, columns []string) string {
	if len(columns) == 0 && rows != nil {
		columns = defaultColumns(rows)
	}

	count := 0
	if rows != nil {
		count = rows.Size()
	}
	var countStr string
	switch {
	case count == 0:
		countStr = color.RedString("%d", count)
	case count < 100:
		countStr = color.GreenString("%d", count)
	case count < 10000:
		countStr = color.YellowString("%d", count)
	default:
		countStr = color.RedString("%d", count)
	}

	return fmt.Sprintf("%s%s%s%s%s %s%s",
		color.BlueString("Result(["),
		color.CyanString(strings.Join(columns, " ")),
		color.BlueString("]"),
		color.BlueString(", "),
		countStr,
		"rows",
		color.BlueString(")"))
}
