package mq

import (
	"context"
	"encoding/json"
	"log"

	"wayfare/rdx"
)

const eventsChannel = "wayfare-events"

// Event is an application event published over Redis pub/sub.
type Event struct {
	Name        string `json:"name"`
	EntityID    string `json:"entity_id,omitempty"`
	Destination string `json:"destination,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

// Emit publishes an event to the events channel. Failures are logged,
// never propagated; event delivery is best-effort.
func Emit(ctx context.Context, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Emit] failed to marshal event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish event: %v", err)
	}
}

// StartPopularityWorker consumes group events and keeps the destination
// popularity ranking current. Runs until the process exits.
func StartPopularityWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[PopularityWorker] listening for events...")

	for msg := range ch {
		var ev Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Printf("[PopularityWorker] failed to parse event: %v", err)
			continue
		}
		if ev.Name != "group-created" || ev.Destination == "" {
			continue
		}
		if err := rdx.BumpDestination(ev.Destination); err != nil {
			log.Printf("[PopularityWorker] bump error: %v", err)
		}
	}
}
