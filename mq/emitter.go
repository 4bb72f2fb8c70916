package mq

import (
	"log"
)

type Index struct {
	EntityType string `json:"entity_type"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	ActorID    string `json:"actor_id"`
}

// Emit publishes a domain event. Currently a log sink; the search indexer
// consumes these from stdout shipping in the deployed setup.
func Emit(eventName string, content Index) error {
	log.Printf("event %s: %s %s %s by %s", eventName, content.EntityType, content.Action, content.EntityID, content.ActorID)
	return nil
}
