// Package report implements the card pipeline: filtering raw rows,
// extracting cards with a derived team, and rendering the grouped report.
package report

import (
	"strings"

	"github.com/akyairhashvil/trellomd/internal/csvio"
)

// FilterOptions selects which rows from an export become report cards.
type FilterOptions struct {
	ListName        string
	ReportableLabel string
	IncludeArchived bool
}

// Filter keeps the rows on the requested list that carry the reportable
// label, preserving input order. Archived rows are dropped unless
// IncludeArchived is set.
func Filter(rows []csvio.Row, opts FilterOptions) []csvio.Row {
	kept := make([]csvio.Row, 0, len(rows))
	for _, row := range rows {
		if row.Get(csvio.ColListName) != opts.ListName {
			continue
		}
		if !opts.IncludeArchived && strings.EqualFold(row.Get(csvio.ColArchived), "true") {
			continue
		}
		if !hasLabel(row.Get(csvio.ColLabels), opts.ReportableLabel) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// hasLabel reports whether the comma-separated label list contains label as
// an exact token after trimming. Near-misses (different internal spacing or
// case) do not match.
func hasLabel(labels, label string) bool {
	for _, token := range strings.Split(labels, ",") {
		if strings.TrimSpace(token) == label {
			return true
		}
	}
	return false
}
