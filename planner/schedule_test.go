package planner

import (
	"reflect"
	"testing"

	"wayfare/models"
)

func testOpts() Options {
	return Options{DailyBudgetMinutes: 360, MaxTripDays: 30}
}

func mustValidate(t *testing.T, raw RawTripRequest) *TripRequest {
	t.Helper()
	req, verr := Validate(raw, testOpts())
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	return req
}

func agraCatalog() []models.PointOfInterest {
	return []models.PointOfInterest{
		{ID: "t1", Name: "Taj Mahal", City: "Agra", SuggestedDurationMin: 120, Tags: []string{"history"}},
		{ID: "t2", Name: "Kalakriti Show", City: "Agra", SuggestedDurationMin: 300, Tags: []string{"culture"}},
	}
}

func TestScheduleInterestMatchDropsOverBudget(t *testing.T) {
	req := mustValidate(t, RawTripRequest{
		To:        "Agra",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
		Interests: []string{"history"},
	})

	days := Schedule(req, agraCatalog())

	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if len(days[0].Items) != 1 || days[0].Items[0].ID != "t1" {
		t.Fatalf("expected only t1 on day 1, got %+v", days[0].Items)
	}
	if days[0].TotalMinutes != 120 {
		t.Fatalf("totalMinutes = %d, want 120", days[0].TotalMinutes)
	}
}

func TestScheduleUnknownDestinationIsEmptySuccess(t *testing.T) {
	req := mustValidate(t, RawTripRequest{
		To:        "Atlantis",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})

	days := Schedule(req, nil)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, d := range days {
		if len(d.Items) != 0 || d.TotalMinutes != 0 {
			t.Fatalf("day %d should be empty, got %+v", i, d)
		}
	}

	itinerary := Format(days, false)
	if itinerary.HasLocalData {
		t.Fatal("hasLocalData should be false with no candidates")
	}
}

func TestScheduleEmptyInterestsFallsBackToDurationThenID(t *testing.T) {
	pois := []models.PointOfInterest{
		{ID: "c", Name: "C", City: "X", SuggestedDurationMin: 60, Tags: []string{"food"}},
		{ID: "a", Name: "A", City: "X", SuggestedDurationMin: 90, Tags: []string{"history"}},
		{ID: "b", Name: "B", City: "X", SuggestedDurationMin: 60, Tags: []string{"nature"}},
	}
	req := mustValidate(t, RawTripRequest{
		To:        "X",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
	})

	days := Schedule(req, pois)

	got := []string{}
	for _, item := range days[0].Items {
		got = append(got, item.ID)
	}
	// equal scores: ascending duration, then ascending id
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestScheduleCoversEveryDateInOrder(t *testing.T) {
	req := mustValidate(t, RawTripRequest{
		To:        "Agra",
		StartDate: "2026-02-27",
		EndDate:   "2026-03-02",
	})

	days := Schedule(req, agraCatalog())

	want := []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i, d := range days {
		if d.Date != want[i] {
			t.Fatalf("day %d date = %s, want %s", i, d.Date, want[i])
		}
	}
}

func TestScheduleNoRepeatsAndBudgetInvariant(t *testing.T) {
	pois := []models.PointOfInterest{
		{ID: "p1", Name: "P1", City: "X", SuggestedDurationMin: 200, Tags: []string{"a"}},
		{ID: "p2", Name: "P2", City: "X", SuggestedDurationMin: 200, Tags: []string{"a"}},
		{ID: "p3", Name: "P3", City: "X", SuggestedDurationMin: 200, Tags: []string{"b"}},
		{ID: "p4", Name: "P4", City: "X", SuggestedDurationMin: 700, Tags: []string{"a"}}, // never fits
		{ID: "p5", Name: "P5", City: "X", SuggestedDurationMin: 100},
	}
	req := mustValidate(t, RawTripRequest{
		To:        "X",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Interests: []string{"a"},
	})

	days := Schedule(req, pois)

	seen := make(map[string]bool)
	for _, d := range days {
		sum := 0
		for _, item := range d.Items {
			if seen[item.ID] {
				t.Fatalf("POI %s placed more than once", item.ID)
			}
			seen[item.ID] = true
			sum += item.SuggestedDurationMin
		}
		if sum != d.TotalMinutes {
			t.Fatalf("totalMinutes %d does not match item sum %d", d.TotalMinutes, sum)
		}
		if d.TotalMinutes > req.BudgetMinutes {
			t.Fatalf("day over budget: %d > %d", d.TotalMinutes, req.BudgetMinutes)
		}
	}
	if seen["p4"] {
		t.Fatal("p4 exceeds the daily budget on its own and should be dropped")
	}
}

func TestScheduleFirstFitFillsEarlyDays(t *testing.T) {
	pois := []models.PointOfInterest{
		{ID: "a", Name: "A", City: "X", SuggestedDurationMin: 180},
		{ID: "b", Name: "B", City: "X", SuggestedDurationMin: 180},
		{ID: "c", Name: "C", City: "X", SuggestedDurationMin: 180},
	}
	req := mustValidate(t, RawTripRequest{
		To:        "X",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
	})

	days := Schedule(req, pois)

	if len(days[0].Items) != 2 {
		t.Fatalf("day 1 should receive two items before day 2 gets any, got %d", len(days[0].Items))
	}
	if len(days[1].Items) != 1 {
		t.Fatalf("day 2 should receive the remaining item, got %d", len(days[1].Items))
	}
}

func TestScheduleDeterminism(t *testing.T) {
	pois := agraCatalog()
	req := mustValidate(t, RawTripRequest{
		To:        "Agra",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Interests: []string{"history", "culture"},
	})

	first := Schedule(req, pois)
	second := Schedule(req, pois)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different schedules")
	}
}

func TestSchedulePerRequestBudgetOverride(t *testing.T) {
	req := mustValidate(t, RawTripRequest{
		To:            "Agra",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-01",
		Interests:     []string{"history"},
		BudgetMinutes: 500,
	})

	days := Schedule(req, agraCatalog())
	// 120 + 300 = 420 fits within the raised budget
	if len(days[0].Items) != 2 {
		t.Fatalf("expected both POIs under a 500-minute budget, got %d", len(days[0].Items))
	}
	if days[0].TotalMinutes != 420 {
		t.Fatalf("totalMinutes = %d, want 420", days[0].TotalMinutes)
	}
}

func TestFormatNormalizesNilItems(t *testing.T) {
	days := []models.DaySchedule{{Date: "2026-09-01"}}
	itinerary := Format(days, true)

	if itinerary.Days[0].Items == nil {
		t.Fatal("items should be an empty slice, not nil")
	}
	if !itinerary.HasLocalData {
		t.Fatal("hasLocalData should carry through")
	}
}
