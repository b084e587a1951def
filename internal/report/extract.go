package report

import (
	"strings"

	"github.com/akyairhashvil/trellomd/internal/csvio"
	"github.com/akyairhashvil/trellomd/internal/models"
	"github.com/akyairhashvil/trellomd/internal/util"
)

// SplitLabels breaks the raw Labels column into trimmed, non-empty tokens
// in their original order.
func SplitLabels(raw string) []string {
	tokens := strings.Split(raw, ",")
	labels := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			labels = append(labels, token)
		}
	}
	return labels
}

// Extract builds one Card per filtered row, preserving row order.
func Extract(rows []csvio.Row, reportableLabel string) []models.Card {
	cards := make([]models.Card, 0, len(rows))
	for _, row := range rows {
		labels := SplitLabels(row.Get(csvio.ColLabels))
		card := models.Card{
			ID:          row.Get(csvio.ColCardID),
			Name:        row.Get(csvio.ColCardName),
			Description: row.Get(csvio.ColCardDescription),
			URL:         row.Get(csvio.ColCardURL),
			Labels:      labels,
			Team:        TeamOf(labels, reportableLabel),
			ListName:    row.Get(csvio.ColListName),
			BoardName:   row.Get(csvio.ColBoardName),
		}
		if row.Has(csvio.ColDueDate) {
			card.DueDate = util.Ptr(row.Get(csvio.ColDueDate))
		}
		cards = append(cards, card)
	}
	return cards
}
