package model

// MatchMetadata carries the recognized metadata fields stored alongside
// each vector in the index. Unknown fields are dropped at decode time.
type MatchMetadata struct {
	Name string   `json:"name"`
	Type string   `json:"type"`
	City string   `json:"city"`
	Tags []string `json:"tags,omitempty"`
}

// VectorMatch is one scored result from the similarity index, ordered
// by descending score within a result set.
type VectorMatch struct {
	ID       string        `json:"id"`
	Score    float64       `json:"score"`
	Metadata MatchMetadata `json:"metadata"`
}
