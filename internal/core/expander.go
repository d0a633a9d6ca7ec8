package core

import (
	"context"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tripgraph/tripgraph/internal/core/model"
	"github.com/tripgraph/tripgraph/internal/driver"
)

const maxDescLen = 400

// Expander widens a set of matched entities with their first-hop graph
// relationships, then with city-to-city connectivity for any source
// entity that turned out to neighbor a City node. The two-phase shape
// (per-entity fan-out, one connectivity batch) keeps the query count
// linear in the number of entities.
type Expander struct {
	Driver driver.GraphDriver
}

func NewExpander(d driver.GraphDriver) *Expander {
	return &Expander{Driver: d}
}

// Expand fetches facts for each id in input order, ids not
// deduplicated. A failure for one id is logged and skipped so the rest
// of the expansion still lands; a connectivity failure yields an empty
// connection list. Expand never fails outright.
func (e *Expander) Expand(ctx context.Context, entityIDs []string) ([]model.GraphFact, []model.CityConnection) {
	var facts []model.GraphFact

	for _, nid := range entityIDs {
		result, err := e.Driver.ExecuteQuery(ctx, driver.NeighborQuery, map[string]interface{}{"nid": nid})
		if err != nil {
			log.Printf("Error fetching graph context for %s: %v", nid, err)
			continue
		}
		for _, rec := range result.Records {
			facts = append(facts, factFromRecord(nid, rec))
		}
	}

	var connections []model.CityConnection
	cityIDs := citySourceIDs(facts)
	if len(cityIDs) > 0 {
		result, err := e.Driver.ExecuteQuery(ctx, driver.CityConnectionsQuery, map[string]interface{}{"city_ids": cityIDs})
		if err != nil {
			log.Printf("Error fetching city connections: %v", err)
		} else {
			for _, rec := range result.Records {
				connections = append(connections, connectionFromRecord(rec))
			}
		}
	}

	return facts, connections
}

func factFromRecord(source string, rec *neo4j.Record) model.GraphFact {
	desc := truncateRunes(stringValue(rec, "description"), maxDescLen)
	return model.GraphFact{
		Source:     source,
		Rel:        stringValue(rec, "rel"),
		TargetID:   stringValue(rec, "id"),
		TargetName: stringValue(rec, "name"),
		TargetType: stringValue(rec, "type"),
		TargetDesc: desc,
		TargetTags: stringSliceValue(rec, "tags"),
		Labels:     stringSliceValue(rec, "labels"),
	}
}

func connectionFromRecord(rec *neo4j.Record) model.CityConnection {
	return model.CityConnection{
		FromCity:   stringValue(rec, "from_city"),
		ToCity:     stringValue(rec, "to_city"),
		ToCityName: stringValue(rec, "to_city_name"),
	}
}

// citySourceIDs collects, in first-seen order, the source ids whose
// neighbors included a City-labeled node.
func citySourceIDs(facts []model.GraphFact) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range facts {
		for _, label := range f.Labels {
			if label == "City" {
				if !seen[f.Source] {
					seen[f.Source] = true
					ids = append(ids, f.Source)
				}
				break
			}
		}
	}
	return ids
}

func stringValue(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func stringSliceValue(rec *neo4j.Record, key string) []string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
