package report

import (
	"regexp"
	"strings"

	"github.com/akyairhashvil/trellomd/internal/models"
)

var colorSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// StripColorSuffix removes a trailing parenthesized color group from a
// label, e.g. "SRE (green)" -> "SRE". Labels without one pass through.
func StripColorSuffix(label string) string {
	return strings.TrimSpace(colorSuffix.ReplaceAllString(label, ""))
}

// TeamOf returns the team for a set of labels: the first non-empty label
// that is not the reportable label, color suffix stripped. Cards with no
// such label fall back to models.UncategorizedTeam.
//
// The comparison against reportableLabel is exact, so a token differing
// only in spacing or case is treated as a regular team label.
func TeamOf(labels []string, reportableLabel string) string {
	for _, label := range labels {
		if label == reportableLabel || strings.TrimSpace(label) == "" {
			continue
		}
		return StripColorSuffix(label)
	}
	return models.UncategorizedTeam
}
