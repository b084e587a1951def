package report

import (
	"sort"

	"github.com/akyairhashvil/trellomd/internal/models"
)

// Teams with dedicated sections at the top of every report.
const (
	TeamTMM = "TMM"
	TeamSRE = "SRE"
)

// GroupByTeam buckets cards by team. Within a team, cards keep their
// filtered order.
func GroupByTeam(cards []models.Card) map[string][]models.Card {
	groups := make(map[string][]models.Card)
	for _, card := range cards {
		team := card.Team
		if team == "" {
			team = models.UncategorizedTeam
		}
		groups[team] = append(groups[team], card)
	}
	return groups
}

// OrderedTeams returns team names in presentation order: TMM first, SRE
// second, then the remaining teams in ascending order.
func OrderedTeams(groups map[string][]models.Card) []string {
	ordered := make([]string, 0, len(groups))
	for _, team := range []string{TeamTMM, TeamSRE} {
		if _, ok := groups[team]; ok {
			ordered = append(ordered, team)
		}
	}
	rest := make([]string, 0, len(groups))
	for team := range groups {
		if team != TeamTMM && team != TeamSRE {
			rest = append(rest, team)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
