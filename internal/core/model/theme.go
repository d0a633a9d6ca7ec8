package model

// Theme is a coarse interest category inferred from the query text and
// used to bias which graph facts are surfaced to the model.
type Theme string

const (
	ThemeRomantic  Theme = "romantic"
	ThemeAdventure Theme = "adventure"
	ThemeCultural  Theme = "cultural"
	ThemeFamily    Theme = "family"
)

// Themes lists every known theme in classification order. When a query
// mentions several themes, the first one in this order wins.
var Themes = []Theme{ThemeRomantic, ThemeAdventure, ThemeCultural, ThemeFamily}

// ThemeKeywords maps each theme to the keywords matched against fact
// tags, descriptions and names during filtering.
var ThemeKeywords = map[Theme][]string{
	ThemeRomantic:  {"romantic", "couple", "sunset", "beach", "spa", "dinner", "cruise"},
	ThemeAdventure: {"hiking", "trekking", "mountain", "adventure", "rafting", "cycling"},
	ThemeCultural:  {"temple", "museum", "historical", "culture", "heritage", "traditional"},
	ThemeFamily:    {"family", "kids", "zoo", "park", "entertainment"},
}
