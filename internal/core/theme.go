package core

import (
	"strings"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

// ClassifyTheme infers an interest theme by case-insensitive substring
// match against the query. Themes are tried in the fixed model.Themes
// order, so a query naming several themes gets the first one.
func ClassifyTheme(query string) (model.Theme, bool) {
	q := strings.ToLower(query)
	for _, theme := range model.Themes {
		if strings.Contains(q, string(theme)) {
			return theme, true
		}
	}
	return "", false
}

// FilterByTheme keeps facts whose tags, description or name mention a
// theme keyword. An unknown theme is the identity. When nothing
// matches, the first 10 unfiltered facts come back instead, so a theme
// mismatch never starves the model of grounding context.
func FilterByTheme(facts []model.GraphFact, theme model.Theme) []model.GraphFact {
	keywords := model.ThemeKeywords[theme]
	if len(keywords) == 0 {
		return facts
	}

	var filtered []model.GraphFact
	for _, fact := range facts {
		if factMatchesAny(fact, keywords) {
			filtered = append(filtered, fact)
		}
	}

	if len(filtered) == 0 {
		if len(facts) > 10 {
			return facts[:10]
		}
		return facts
	}
	return filtered
}

func factMatchesAny(fact model.GraphFact, keywords []string) bool {
	tags := strings.ToLower(strings.Join(fact.TargetTags, " "))
	desc := strings.ToLower(fact.TargetDesc)
	name := strings.ToLower(fact.TargetName)

	for _, kw := range keywords {
		if strings.Contains(tags, kw) || strings.Contains(desc, kw) || strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
