package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

const (
	maxRenderedMatches = 8
	maxMatchLines      = 10
	maxRenderedFacts   = 20
	maxPromptDescLen   = 200
	maxRenderedTags    = 3
)

const systemPrompt = `You are an expert Vietnam travel assistant specializing in creating personalized itineraries.

Your approach:
1. ANALYZE the user's preferences (duration, theme, interests)
2. IDENTIFY the most relevant cities and attractions from the provided context
3. STRUCTURE a day-by-day itinerary with logical flow
4. INCLUDE specific node IDs as references (e.g., [attraction_123])
5. PROVIDE practical tips (travel time, best times to visit)

Format your response as:
- Brief introduction matching the theme
- Day-by-day breakdown with morning/afternoon/evening activities
- Accommodation suggestions
- Practical travel tips

Be concise but detailed. Cite node IDs for credibility.`

// BuildPrompt assembles the two-message prompt: the fixed system
// instruction plus one user message fusing the query, semantic
// matches, theme-filtered graph facts and city connectivity. Pure
// data transformation; deterministic for identical inputs.
func BuildPrompt(query string, matches []model.VectorMatch, facts []model.GraphFact, connections []model.CityConnection) []model.PromptMessage {
	if theme, ok := ClassifyTheme(query); ok && len(facts) > 0 {
		facts = FilterByTheme(facts, theme)
	}

	var matchLines []string
	for _, m := range matches {
		if len(matchLines) == maxRenderedMatches {
			break
		}
		matchLines = append(matchLines, renderMatch(m))
	}
	// A second cap survives from the original design; it only bites
	// if the render bound above is ever raised past it.
	if len(matchLines) > maxMatchLines {
		matchLines = matchLines[:maxMatchLines]
	}

	var factLines []string
	for _, f := range facts {
		if len(factLines) == maxRenderedFacts {
			break
		}
		factLines = append(factLines, renderFact(f))
	}

	var cityBlock string
	if len(connections) > 0 {
		var lines []string
		for _, c := range connections {
			lines = append(lines, fmt.Sprintf("- %s → %s", c.FromCity, c.ToCityName))
		}
		cityBlock = "\n\nCity Connections (for multi-day planning):\n" + strings.Join(lines, "\n")
	}

	user := fmt.Sprintf(
		"User Query: %s\n\n"+
			"=== TOP SEMANTIC MATCHES (from vector search) ===\n%s\n\n"+
			"=== KNOWLEDGE GRAPH RELATIONSHIPS ===\n%s%s\n\n"+
			"Based on the above context, create a detailed response. "+
			"Use node IDs in [brackets] when referencing specific places.",
		query,
		strings.Join(matchLines, "\n"),
		strings.Join(factLines, "\n"),
		cityBlock,
	)

	return []model.PromptMessage{
		{Role: model.RoleSystem, Content: systemPrompt},
		{Role: model.RoleUser, Content: user},
	}
}

func renderMatch(m model.VectorMatch) string {
	line := fmt.Sprintf("- [%s] %s (%s) in %s - Score: %.3f",
		m.ID,
		orNA(m.Metadata.Name),
		orNA(m.Metadata.Type),
		orNA(m.Metadata.City),
		m.Score,
	)
	if len(m.Metadata.Tags) > 0 {
		line += " | Tags: " + strings.Join(capTags(m.Metadata.Tags), ", ")
	}
	return line
}

func renderFact(f model.GraphFact) string {
	desc := truncateRunes(f.TargetDesc, maxPromptDescLen)
	line := fmt.Sprintf("- [%s] --%s--> [%s] %s (%s): %s",
		f.Source, f.Rel, f.TargetID, f.TargetName, f.TargetType, desc)
	if len(f.TargetTags) > 0 {
		line += " | Tags: " + strings.Join(capTags(f.TargetTags), ", ")
	}
	return line
}

func capTags(tags []string) []string {
	if len(tags) > maxRenderedTags {
		return tags[:maxRenderedTags]
	}
	return tags
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// truncateRunes caps a string at max characters, never splitting a
// multi-byte rune. Descriptions here are Vietnamese text, so byte
// slicing would routinely cut a rune in half.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
