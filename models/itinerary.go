package models

import "time"

// DaySchedule is one calendar day of a built itinerary. Items are ordered
// by descending interest-match score, then ascending duration, then id.
type DaySchedule struct {
	Date         string            `json:"date" bson:"date"`
	Items        []PointOfInterest `json:"items" bson:"items"`
	TotalMinutes int               `json:"totalMinutes" bson:"totalMinutes"`
}

// Itinerary spans every calendar date of a trip, in chronological order,
// including days that received no items.
type Itinerary struct {
	Days []DaySchedule `json:"days" bson:"days"`
	// HasLocalData is false when the destination matched zero catalog POIs,
	// so callers can distinguish "no curated data yet" from a sparse plan.
	HasLocalData bool `json:"hasLocalData" bson:"hasLocalData"`
}

// SavedItinerary is a built plan persisted for a user.
type SavedItinerary struct {
	ItineraryID string        `json:"itineraryid" bson:"itineraryid"`
	UserID      string        `json:"user_id" bson:"user_id"`
	Origin      string        `json:"origin" bson:"origin"`
	Destination string        `json:"destination" bson:"destination"`
	StartDate   string        `json:"start_date" bson:"start_date"`
	EndDate     string        `json:"end_date" bson:"end_date"`
	Days        []DaySchedule `json:"days" bson:"days"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}
