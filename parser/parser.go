// Package parser reads a line-oriented subset of the N-Triples syntax into
// a graph clan: one triple per line, terms separated by whitespace, lines
// terminated by '.', comments introduced by '#'. Supported terms are
// <iri>, _:blank, "literal", "literal"^^<datatype>, and "literal"@lang.
//
// This is a front end for loading test and demo data, not a conforming
// N-Triples parser: IRI validation, numeric literals, and Unicode escapes
// are out of scope.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tripodql/tripod/algebra"
	"github.com/tripodql/tripod/query"
	"github.com/tripodql/tripod/term"
)

// ParseGraph reads triples from r until EOF and returns them as a graph
// clan
func ParseGraph(r io.Reader) (*algebra.Clan, error) {
	var triples []*algebra.Relation

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		triple, err := parseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		if triple != nil {
			triples = append(triples, triple)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return algebra.NewClan(triples...), nil
}

// ParseString parses triples from a string
func ParseString(s string) (*algebra.Clan, error) {
	return ParseGraph(strings.NewReader(s))
}

// parseLine parses one line into a triple, or nil for blank lines and
// comments
func parseLine(line string, lineNo int) (*algebra.Relation, error) {
	pos := skipSpace(line, 0)
	if pos >= len(line) || line[pos] == '#' {
		return nil, nil
	}

	subject, pos, err := parseTerm(line, pos, lineNo)
	if err != nil {
		return nil, err
	}
	pos = skipSpace(line, pos)

	predicate, pos, err := parseTerm(line, pos, lineNo)
	if err != nil {
		return nil, err
	}
	pos = skipSpace(line, pos)

	object, pos, err := parseTerm(line, pos, lineNo)
	if err != nil {
		return nil, err
	}
	pos = skipSpace(line, pos)

	if pos >= len(line) || line[pos] != '.' {
		return nil, fmt.Errorf("line %d: expected '.' terminator", lineNo)
	}
	rest := skipSpace(line, pos+1)
	if rest < len(line) && line[rest] != '#' {
		return nil, fmt.Errorf("line %d: trailing content after '.'", lineNo)
	}

	return query.MakeTriple(subject, predicate, object)
}

// parseTerm parses one term starting at pos and returns the value and the
// position after it
func parseTerm(line string, pos, lineNo int) (algebra.Value, int, error) {
	if pos >= len(line) {
		return nil, pos, fmt.Errorf("line %d: unexpected end of line", lineNo)
	}

	switch {
	case line[pos] == '<':
		end := strings.IndexByte(line[pos:], '>')
		if end < 0 {
			return nil, pos, fmt.Errorf("line %d: unterminated IRI", lineNo)
		}
		return term.NewIRI(line[pos+1 : pos+end]), pos + end + 1, nil

	case strings.HasPrefix(line[pos:], "_:"):
		end := pos + 2
		for end < len(line) && !isSpace(line[end]) {
			end++
		}
		if end == pos+2 {
			return nil, pos, fmt.Errorf("line %d: empty blank node label", lineNo)
		}
		return term.NewBlank(line[pos+2 : end]), end, nil

	case line[pos] == '"':
		return parseLiteral(line, pos, lineNo)
	}

	return nil, pos, fmt.Errorf("line %d: unrecognized term at column %d", lineNo, pos+1)
}

// parseLiteral parses a quoted literal with optional ^^<datatype> or @lang
// suffix
func parseLiteral(line string, pos, lineNo int) (algebra.Value, int, error) {
	var b strings.Builder
	i := pos + 1
	for {
		if i >= len(line) {
			return nil, pos, fmt.Errorf("line %d: unterminated literal", lineNo)
		}
		c := line[i]
		if c == '"' {
			i++
			break
		}
		if c == '\\' {
			if i+1 >= len(line) {
				return nil, pos, fmt.Errorf("line %d: dangling escape", lineNo)
			}
			i++
			switch line[i] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				return nil, pos, fmt.Errorf("line %d: unsupported escape \\%c", lineNo, line[i])
			}
			i++
			continue
		}
		b.WriteByte(c)
		i++
	}

	value := b.String()

	if strings.HasPrefix(line[i:], "^^<") {
		end := strings.IndexByte(line[i+3:], '>')
		if end < 0 {
			return nil, pos, fmt.Errorf("line %d: unterminated datatype IRI", lineNo)
		}
		return term.NewTypedLiteral(value, line[i+3:i+3+end]), i + 3 + end + 1, nil
	}
	if i < len(line) && line[i] == '@' {
		end := i + 1
		for end < len(line) && !isSpace(line[end]) {
			end++
		}
		if end == i+1 {
			return nil, pos, fmt.Errorf("line %d: empty language tag", lineNo)
		}
		return term.NewLangLiteral(value, line[i+1:end]), end, nil
	}

	return term.NewLiteral(value), i, nil
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
