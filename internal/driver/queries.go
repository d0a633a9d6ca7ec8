package driver

const (
	// NeighborQuery fetches first-hop relationships for one entity in
	// either direction, any relationship type.
	NeighborQuery = `
		MATCH (n:Entity {id: $nid})-[r]-(m:Entity)
		RETURN type(r) AS rel, labels(m) AS labels, m.id AS id,
			m.name AS name, m.type AS type, m.description AS description,
			m.tags AS tags
		LIMIT 10
	`

	// CityConnectionsQuery fetches directed Connected_To edges out of
	// the given city ids, for multi-stop itinerary planning.
	CityConnectionsQuery = `
		MATCH (c1:City)-[r:Connected_To]->(c2:City)
		WHERE c1.id IN $city_ids
		RETURN c1.id AS from_city, c2.id AS to_city, c2.name AS to_city_name
		LIMIT 5
	`
)
