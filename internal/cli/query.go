package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripodql/tripod/algebra"
	"github.com/tripodql/tripod/export"
	"github.com/tripodql/tripod/parser"
	"github.com/tripodql/tripod/query"
	"github.com/tripodql/tripod/term"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Graph    string
	Patterns []string
	Format   string
	Columns  []string
	Output   string
	Config   string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Match triple patterns and export the result",
		Long: `Run one or more triple patterns against a graph file and export the
joined result.

Each --pattern is three terms: an IRI (<iri> or bare), a quoted literal,
a blank node (_:b), a variable (?name marks an output column), or _ to
leave the position unconstrained. Multiple patterns are joined on their
shared variables.

Example:
  tripod query --graph people.nt --pattern '?e <name> ?n' --pattern '?e <type> <engineer>' --format csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Graph, "graph", "", "path to triple graph file (required)")
	cmd.Flags().StringArrayVar(&opts.Patterns, "pattern", nil, "triple pattern 's p o' (repeatable; repeats are joined)")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (csv|json|table)")
	cmd.Flags().StringSliceVar(&opts.Columns, "columns", nil, "ordered output columns (default: all, sorted)")
	cmd.Flags().StringVar(&opts.Output, "out", "", "destination path (default: stdout)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "YAML export configuration file")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	if opts.Config != "" {
		cfg, err := export.LoadConfig(opts.Config)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("format") {
			opts.Format = cfg.Format
		}
		if len(opts.Columns) == 0 {
			opts.Columns = cfg.Columns
		}
		if opts.Output == "" {
			opts.Output = cfg.Output
		}
	}

	f, err := os.Open(opts.Graph)
	if err != nil {
		return err
	}
	graph, err := parser.ParseGraph(f)
	f.Close()
	if err != nil {
		return err
	}
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "loaded %d triples from %s\n", graph.Size(), opts.Graph)
	}

	if len(opts.Patterns) == 0 {
		return fmt.Errorf("at least one --pattern is required")
	}

	result, err := runPatterns(graph, opts.Patterns)
	if err != nil {
		return err
	}
	if opts.Verbose {
		fmt.Fprintln(os.Stderr, export.Summary(result, opts.Columns))
	}

	if opts.Format == "table" {
		out := os.Stdout
		if opts.Output != "" {
			out, err = os.Create(opts.Output)
			if err != nil {
				return err
			}
			defer out.Close()
		}
		_, err = fmt.Fprint(out, export.NewTableFormatter().FormatClan(result, opts.Columns))
		return err
	}

	exportOpts := export.Options{
		Format:  opts.Format,
		Columns: opts.Columns,
	}
	if opts.Output != "" {
		exportOpts.Path = opts.Output
	} else {
		exportOpts.Sink = os.Stdout
	}
	return export.Export(result, exportOpts)
}

// runPatterns matches each pattern and joins the partial results
func runPatterns(graph *algebra.Clan, patterns []string) (*algebra.Clan, error) {
	partials := make([]*algebra.Clan, 0, len(patterns))
	for _, p := range patterns {
		s, pr, o, err := parsePattern(p)
		if err != nil {
			return nil, err
		}
		matched, err := query.TripleMatch(graph, s, pr, o)
		if err != nil {
			return nil, err
		}
		partials = append(partials, matched)
	}
	if len(partials) == 1 {
		return partials[0], nil
	}
	return query.Join(partials...)
}

// parsePattern splits a pattern string into its three position arguments
func parsePattern(p string) (s, pr, o query.TermArg, err error) {
	fields := strings.Fields(p)
	if len(fields) != 3 {
		return s, pr, o, fmt.Errorf("pattern %q: want 3 terms, got %d", p, len(fields))
	}
	args := make([]query.TermArg, 3)
	for i, tok := range fields {
		args[i], err = parsePatternTerm(tok)
		if err != nil {
			return s, pr, o, fmt.Errorf("pattern %q: %v", p, err)
		}
	}
	return args[0], args[1], args[2], nil
}

// parsePatternTerm classifies one pattern token
func parsePatternTerm(tok string) (query.TermArg, error) {
	switch {
	case tok == "_":
		return query.Any, nil
	case strings.HasPrefix(tok, "?") || strings.HasPrefix(tok, "$"):
		if len(tok) == 1 {
			return query.Any, fmt.Errorf("empty variable name %q", tok)
		}
		return query.Var(tok[1:]), nil
	case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
		return query.Bound(term.NewIRI(tok[1 : len(tok)-1])), nil
	case strings.HasPrefix(tok, "_:"):
		return query.Bound(term.NewBlank(tok[2:])), nil
	case strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) && len(tok) >= 2:
		return query.Bound(term.NewLiteral(tok[1 : len(tok)-1])), nil
	default:
		// Bare tokens read as IRIs for convenience
		return query.Bound(term.NewIRI(tok)), nil
	}
}
