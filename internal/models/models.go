// Package models defines the entities extracted from a Trello CSV export.
package models

// UncategorizedTeam is the team assigned to cards with no team label.
const UncategorizedTeam = "Uncategorized"

// Card is one unit of tracked work extracted from a CSV row. It is built
// once per filtered row and never mutated afterwards.
type Card struct {
	ID          string
	Name        string
	Description string
	URL         string
	Labels      []string // trimmed, non-empty tokens in original order
	Team        string   // never empty; falls back to UncategorizedTeam
	DueDate     *string  // nil when the export has no Due Date column
	ListName    string
	BoardName   string
}
