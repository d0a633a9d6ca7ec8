package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

func TestClassifyTheme(t *testing.T) {
	theme, ok := ClassifyTheme("Create a ROMANTIC 4-day itinerary")
	assert.True(t, ok)
	assert.Equal(t, model.ThemeRomantic, theme)

	theme, ok = ClassifyTheme("family trip with kids")
	assert.True(t, ok)
	assert.Equal(t, model.ThemeFamily, theme)

	_, ok = ClassifyTheme("cheapest way to get around")
	assert.False(t, ok)
}

func TestClassifyTheme_FirstMatchWins(t *testing.T) {
	// Both themes literally present; fixed order picks romantic.
	theme, ok := ClassifyTheme("a romantic yet adventure filled week")
	assert.True(t, ok)
	assert.Equal(t, model.ThemeRomantic, theme)
}

func TestFilterByTheme_MatchesTagsDescAndName(t *testing.T) {
	facts := []model.GraphFact{
		{TargetID: "a1", TargetTags: []string{"sunset", "viewpoint"}},
		{TargetID: "a2", TargetDesc: "Candlelit DINNER on the river"},
		{TargetID: "a3", TargetName: "Beach Resort"},
		{TargetID: "a4", TargetDesc: "Cable car up the mountain"},
	}

	filtered := FilterByTheme(facts, model.ThemeRomantic)

	ids := make([]string, 0, len(filtered))
	for _, f := range filtered {
		ids = append(ids, f.TargetID)
	}
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids)
}

func TestFilterByTheme_FallbackNeverEmpty(t *testing.T) {
	var facts []model.GraphFact
	for i := 0; i < 15; i++ {
		facts = append(facts, model.GraphFact{TargetName: "Nothing thematic"})
	}

	filtered := FilterByTheme(facts, model.ThemeAdventure)
	assert.Len(t, filtered, 10)
	assert.Equal(t, facts[:10], filtered)

	// Smaller input falls back to the whole set.
	short := facts[:3]
	assert.Equal(t, short, FilterByTheme(short, model.ThemeAdventure))
}

func TestFilterByTheme_UnknownThemeIsIdentity(t *testing.T) {
	facts := []model.GraphFact{{TargetID: "x"}, {TargetID: "y"}}
	assert.Equal(t, facts, FilterByTheme(facts, model.Theme("luxury")))
	assert.Equal(t, facts, FilterByTheme(facts, ""))
}

func TestFilterByTheme_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterByTheme(nil, model.ThemeRomantic))
}
