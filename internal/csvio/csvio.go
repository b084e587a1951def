// Package csvio parses Trello CSV exports into header-keyed rows.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Column names produced by Trello's CSV export. All are optional: a row
// missing a column reads as the empty string.
const (
	ColListName        = "List Name"
	ColArchived        = "Archived"
	ColLabels          = "Labels"
	ColCardID          = "Card ID"
	ColCardName        = "Card Name"
	ColCardDescription = "Card Description"
	ColCardURL         = "Card URL"
	ColDueDate         = "Due Date"
	ColBoardName       = "Board Name"
)

// LoadError operations.
const (
	OpRead  = "read"
	OpParse = "parse"
)

// LoadError reports why a CSV file could not be turned into rows.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Row maps a header name to the field value for one CSV line.
type Row map[string]string

// Get returns the value for the column, or "" when absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Has reports whether the column was present in this row.
func (r Row) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// Parser reads one CSV export and caches the parsed rows so repeated
// pipeline calls do not re-read the file.
type Parser struct {
	path   string
	rows   []Row
	loaded bool
}

// NewParser binds a parser to a CSV file path. Nothing is read until Rows.
func NewParser(path string) *Parser {
	return &Parser{path: path}
}

// Rows parses the file on first use and returns cached rows afterwards.
func (p *Parser) Rows() ([]Row, error) {
	if p.loaded {
		return p.rows, nil
	}
	rows, err := parseFile(p.path)
	if err != nil {
		return nil, err
	}
	p.rows = rows
	p.loaded = true
	return rows, nil
}

func parseFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Op: OpRead, Path: path, Err: err}
	}
	defer f.Close()
	return parse(f, path)
}

func parse(r io.Reader, path string) ([]Row, error) {
	reader := csv.NewReader(r)
	// Short rows are valid: missing trailing columns read as absent.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Op: OpParse, Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
