package planner

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

const (
	DefaultDailyBudgetMinutes = 360
	DefaultMaxTripDays        = 30
)

// Options carry the configurable planning defaults.
type Options struct {
	DailyBudgetMinutes int
	MaxTripDays        int
}

// OptionsFromEnv reads overrides from DAILY_BUDGET_MINUTES and MAX_TRIP_DAYS.
func OptionsFromEnv() Options {
	opts := Options{
		DailyBudgetMinutes: DefaultDailyBudgetMinutes,
		MaxTripDays:        DefaultMaxTripDays,
	}
	if v, err := strconv.Atoi(os.Getenv("DAILY_BUDGET_MINUTES")); err == nil && v > 0 {
		opts.DailyBudgetMinutes = v
	}
	if v, err := strconv.Atoi(os.Getenv("MAX_TRIP_DAYS")); err == nil && v > 0 {
		opts.MaxTripDays = v
	}
	return opts
}

// RawTripRequest is the wire shape consumed from the web layer.
type RawTripRequest struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Interests     []string `json:"interests,omitempty"`
	BudgetMinutes int      `json:"budgetMinutes,omitempty"`
}

// TripRequest is a validated, normalized trip request. Transient: built
// per request, discarded after the response.
type TripRequest struct {
	Origin        string
	Destination   string
	Start         time.Time
	End           time.Time
	Interests     []string
	BudgetMinutes int
}

// NumDays is the inclusive count of calendar dates in the trip span.
func (t *TripRequest) NumDays() int {
	return int(t.End.Sub(t.Start).Hours()/24) + 1
}

// ValidationError reports which request field failed and why, so the
// caller can render a precise message.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks a raw request and normalizes it. Unknown interest tags
// are accepted; they simply never match. Origin is recorded but not
// validated against any catalog.
func Validate(raw RawTripRequest, opts Options) (*TripRequest, *ValidationError) {
	dest := strings.TrimSpace(raw.To)
	if dest == "" {
		return nil, &ValidationError{Field: "to", Reason: "destination is required"}
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(raw.StartDate))
	if err != nil {
		return nil, &ValidationError{Field: "startDate", Reason: "must be a date in YYYY-MM-DD format"}
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(raw.EndDate))
	if err != nil {
		return nil, &ValidationError{Field: "endDate", Reason: "must be a date in YYYY-MM-DD format"}
	}
	if end.Before(start) {
		return nil, &ValidationError{Field: "endDate", Reason: "must not be before startDate"}
	}

	span := int(end.Sub(start).Hours()/24) + 1
	if span > opts.MaxTripDays {
		return nil, &ValidationError{
			Field:  "endDate",
			Reason: fmt.Sprintf("trip too long: span of %d days exceeds the %d-day maximum", span, opts.MaxTripDays),
		}
	}

	budget := opts.DailyBudgetMinutes
	if raw.BudgetMinutes < 0 {
		return nil, &ValidationError{Field: "budgetMinutes", Reason: "must be positive"}
	}
	if raw.BudgetMinutes > 0 {
		budget = raw.BudgetMinutes
	}

	return &TripRequest{
		Origin:        strings.TrimSpace(raw.From),
		Destination:   dest,
		Start:         start,
		End:           end,
		Interests:     normalizeInterests(raw.Interests),
		BudgetMinutes: budget,
	}, nil
}

func normalizeInterests(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range raw {
		tag := strings.ToLower(strings.TrimSpace(s))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
