package models

// PointOfInterest is one visitable place from the curated dataset.
// Records are immutable once loaded; the catalog owns them for the
// lifetime of the process (or until the dataset is reloaded).
type PointOfInterest struct {
	ID                   string   `json:"id" bson:"id"`
	Name                 string   `json:"name" bson:"name"`
	City                 string   `json:"city" bson:"city"`
	Description          string   `json:"description" bson:"description"`
	Image                string   `json:"image,omitempty" bson:"image,omitempty"`
	SuggestedDurationMin int      `json:"suggestedDurationMin" bson:"suggestedDurationMin"`
	Tags                 []string `json:"tags" bson:"tags"`
}
