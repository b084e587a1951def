package testutil

import (
	"github.com/akyairhashvil/trellomd/internal/models"
)

// CardBuilder provides fluent API for creating test cards.
type CardBuilder struct {
	card models.Card
}

func NewCard() *CardBuilder {
	return &CardBuilder{
		card: models.Card{
			ID:       "card-1",
			Name:     "Test Card",
			Team:     "TMM",
			Labels:   []string{"Reportable (black_dark)", "TMM (red)"},
			ListName: "Project List",
		},
	}
}

func (b *CardBuilder) WithName(name string) *CardBuilder {
	b.card.Name = name
	return b
}

func (b *CardBuilder) WithDescription(d string) *CardBuilder {
	b.card.Description = d
	return b
}

func (b *CardBuilder) WithTeam(team string) *CardBuilder {
	b.card.Team = team
	return b
}

func (b *CardBuilder) WithLabels(labels ...string) *CardBuilder {
	b.card.Labels = labels
	return b
}

func (b *CardBuilder) Build() models.Card {
	return b.card
}
