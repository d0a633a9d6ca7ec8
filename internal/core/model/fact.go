package model

// GraphFact is one first-hop relationship pulled from the knowledge
// graph: source entity, typed relationship, and the target node's
// descriptive fields. TargetDesc is truncated to 400 characters at
// fetch time.
type GraphFact struct {
	Source     string   `json:"source"`
	Rel        string   `json:"rel"`
	TargetID   string   `json:"target_id"`
	TargetName string   `json:"target_name"`
	TargetType string   `json:"target_type"`
	TargetDesc string   `json:"target_desc"`
	TargetTags []string `json:"target_tags,omitempty"`
	Labels     []string `json:"labels,omitempty"`
}

// CityConnection is a directed Connected_To edge between two city
// nodes, used for multi-stop itinerary reasoning.
type CityConnection struct {
	FromCity   string `json:"from_city"`
	ToCity     string `json:"to_city"`
	ToCityName string `json:"to_city_name"`
}
