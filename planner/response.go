package planner

import "wayfare/models"

// Format shapes a built schedule into the externally consumed structure.
// Nil item slices are normalized so days always serialize as arrays.
func Format(days []models.DaySchedule, hasLocalData bool) models.Itinerary {
	if days == nil {
		days = []models.DaySchedule{}
	}
	for i := range days {
		if days[i].Items == nil {
			days[i].Items = []models.PointOfInterest{}
		}
	}
	return models.Itinerary{
		Days:         days,
		HasLocalData: hasLocalData,
	}
}
