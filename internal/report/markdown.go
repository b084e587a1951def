package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/trellomd/internal/config"
	"github.com/akyairhashvil/trellomd/internal/models"
)

// RenderOptions controls document-level rendering.
type RenderOptions struct {
	Title           string
	IncludeMetadata bool
	// Now supplies the metadata timestamp; nil means time.Now. Tests
	// inject a frozen clock here.
	Now func() time.Time
}

func (o RenderOptions) title() string {
	if o.Title == "" {
		return config.DefaultReportTitle
	}
	return o.Title
}

func (o RenderOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Placeholder substitutions applied to card names and descriptions.
var placeholders = [...][2]string{
	{":question:", "(needs clarification)"},
	{":warning:", "(important note)"},
}

// ReplacePlaceholders rewrites emoji shortcodes into their plain-text
// equivalents.
func ReplacePlaceholders(text string) string {
	for _, pair := range placeholders {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}
	return text
}

// RenderMarkdown serializes cards into the report document, grouped by team
// in presentation order. An empty card set renders the fixed fallback
// document with no metadata line.
func RenderMarkdown(cards []models.Card, opts RenderOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", opts.title())

	if len(cards) == 0 {
		b.WriteString("*No cards found matching the criteria.*")
		return b.String()
	}

	if opts.IncludeMetadata {
		fmt.Fprintf(&b, "*Generated on: %s*\n\n", opts.now().Format(config.MetadataTimeLayout))
		b.WriteString("\n")
	}

	groups := GroupByTeam(cards)
	for _, team := range OrderedTeams(groups) {
		fmt.Fprintf(&b, "## %s\n\n", team)
		for _, card := range groups[team] {
			writeCard(&b, card)
		}
	}
	return b.String()
}

func writeCard(b *strings.Builder, card models.Card) {
	fmt.Fprintf(b, "### %s\n\n", ReplacePlaceholders(card.Name))
	if card.Description != "" {
		fmt.Fprintf(b, "%s\n\n", ReplacePlaceholders(card.Description))
	} else {
		b.WriteString("*No description provided*\n\n")
	}
	// Section separator instead of a horizontal rule.
	b.WriteString("\n")
}
