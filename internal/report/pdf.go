package report

import (
	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/trellomd/internal/config"
	"github.com/akyairhashvil/trellomd/internal/models"
	"github.com/akyairhashvil/trellomd/internal/util"
)

// RenderPDF writes the grouped report as a PDF document at path. Grouping,
// ordering, and placeholder substitution match RenderMarkdown.
func RenderPDF(cards []models.Card, opts RenderOptions, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, opts.title(), "", "", false)
	pdf.Ln(4)

	if len(cards) == 0 {
		pdf.SetFont("Arial", "I", 12)
		pdf.Cell(0, 8, "No cards found matching the criteria.")
		return pdf.OutputFileAndClose(path)
	}

	if opts.IncludeMetadata {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 6, "Generated on: "+opts.now().Format(config.MetadataTimeLayout))
		pdf.Ln(10)
	}

	groups := GroupByTeam(cards)
	for _, team := range OrderedTeams(groups) {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, team)
		pdf.Ln(10)

		for _, card := range groups[team] {
			pdf.SetFont("Arial", "B", 12)
			pdf.MultiCell(0, 8, ReplacePlaceholders(card.Name), "", "", false)
			if card.Description != "" {
				pdf.SetFont("Arial", "", 11)
				pdf.MultiCell(0, 6, ReplacePlaceholders(card.Description), "", "", false)
			} else {
				pdf.SetFont("Arial", "I", 11)
				pdf.MultiCell(0, 6, "No description provided", "", "", false)
			}
			if due := util.Deref(card.DueDate); due != "" {
				pdf.SetFont("Arial", "I", 10)
				pdf.Cell(0, 6, "Due: "+due)
				pdf.Ln(6)
			}
			pdf.Ln(4)
		}
		pdf.Ln(4)
	}
	return pdf.OutputFileAndClose(path)
}
