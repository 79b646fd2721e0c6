package planner

import (
	"sort"
	"strings"

	"wayfare/models"
)

// scoredPOI pairs a candidate with its interest-match score for sorting.
type scoredPOI struct {
	poi   models.PointOfInterest
	score int
}

// Schedule partitions the candidate POIs into one DaySchedule per calendar
// date of the trip, greedy first-fit under the daily minute budget.
//
// Candidates are ranked by descending interest-match score, then ascending
// duration, then ascending id, and each is placed into the first day that
// still has room. A candidate that fits nowhere is dropped; that is a
// normal outcome, not an error. The result is fully deterministic for a
// given request and candidate list.
func Schedule(req *TripRequest, candidates []models.PointOfInterest) []models.DaySchedule {
	numDays := req.NumDays()
	days := make([]models.DaySchedule, numDays)
	for i := range days {
		days[i].Date = req.Start.AddDate(0, 0, i).Format(dateLayout)
		days[i].Items = []models.PointOfInterest{}
	}

	if len(candidates) == 0 {
		return days
	}

	interests := make(map[string]bool, len(req.Interests))
	for _, tag := range req.Interests {
		interests[tag] = true
	}

	scored := make([]scoredPOI, len(candidates))
	for i, poi := range candidates {
		scored[i] = scoredPOI{poi: poi, score: matchScore(poi, interests)}
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.poi.SuggestedDurationMin != b.poi.SuggestedDurationMin {
			return a.poi.SuggestedDurationMin < b.poi.SuggestedDurationMin
		}
		return a.poi.ID < b.poi.ID
	})

	used := make(map[string]bool, len(scored))
	for _, cand := range scored {
		if used[cand.poi.ID] {
			continue
		}
		for di := range days {
			if days[di].TotalMinutes+cand.poi.SuggestedDurationMin > req.BudgetMinutes {
				continue
			}
			days[di].Items = append(days[di].Items, cand.poi)
			days[di].TotalMinutes += cand.poi.SuggestedDurationMin
			used[cand.poi.ID] = true
			break
		}
		// no day had room: the candidate is dropped
	}

	return days
}

// matchScore counts the POI tags overlapping the traveler's interests.
// With no stated interests every POI scores 1, so the ranking falls back
// to duration and id.
func matchScore(poi models.PointOfInterest, interests map[string]bool) int {
	if len(interests) == 0 {
		return 1
	}
	score := 0
	for _, tag := range poi.Tags {
		if interests[strings.ToLower(strings.TrimSpace(tag))] {
			score++
		}
	}
	return score
}
