package models

import "time"

type Group struct {
	GroupID     string    `json:"group_id" bson:"group_id"`
	Name        string    `json:"group_name" bson:"group_name"`
	Description string    `json:"group_description,omitempty" bson:"group_description,omitempty"`
	Type        string    `json:"group_type" bson:"group_type"` // Public or Private
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	Destination string    `json:"destination_name" bson:"destination_name"`
	Members     []string  `json:"members" bson:"members"`
	MaxMembers  int       `json:"max_members" bson:"max_members"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Destination tracks a place groups travel to, with a popularity counter
// maintained by the events worker.
type Destination struct {
	DestinationID string `json:"destination_id" bson:"destination_id"`
	Name          string `json:"destination_name" bson:"destination_name"`
}
