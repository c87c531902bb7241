// Package domain contains the core wellness entities and the ports that
// adapters implement.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used as the entry key.
const DateLayout = "2006-01-02"

// ErrInvalidEntry is wrapped by every range violation reported by Validate.
var ErrInvalidEntry = errors.New("invalid daily entry")

// DailyEntry is one session's wellness metrics for one calendar date.
type DailyEntry struct {
	Date             string `json:"date"`
	SleepHours       int    `json:"sleep"`
	Steps            int    `json:"steps"`
	WaterGlasses     int    `json:"water"`
	StressLevel      int    `json:"stress"`
	NutritionScore   int    `json:"nutrition"`
	MindfulnessDone  bool   `json:"mindfulness"`
	ScreenTimeHours  int    `json:"screenTime"`
	SocialConnected  bool   `json:"social"`
	ExerciseDone     bool   `json:"exercise"`
	SunlightExposure bool   `json:"sunlight"`
	ReflectionText   string `json:"reflection,omitempty"`
}

// Input ranges accepted at the core boundary.
const (
	MaxSleepHours      = 24
	MaxSteps           = 50000
	MaxWaterGlasses    = 20
	MinStressLevel     = 1
	MaxStressLevel     = 10
	MinNutritionScore  = 1
	MaxNutritionScore  = 10
	MaxScreenTimeHours = 24
)

// Validate reports every field that falls outside its accepted range. The
// returned error wraps ErrInvalidEntry.
func (e DailyEntry) Validate() error {
	var errs []error
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		errs = append(errs, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidEntry, e.Date))
	}
	check := func(name string, v, lo, hi int) {
		if v < lo || v > hi {
			errs = append(errs, fmt.Errorf("%w: %s must be within [%d, %d], got %d", ErrInvalidEntry, name, lo, hi, v))
		}
	}
	check("sleep", e.SleepHours, 0, MaxSleepHours)
	check("steps", e.Steps, 0, MaxSteps)
	check("water", e.WaterGlasses, 0, MaxWaterGlasses)
	check("stress", e.StressLevel, MinStressLevel, MaxStressLevel)
	check("nutrition", e.NutritionScore, MinNutritionScore, MaxNutritionScore)
	check("screenTime", e.ScreenTimeHours, 0, MaxScreenTimeHours)
	return errors.Join(errs...)
}

// EntryRepository is the port for a single session's daily-entry log.
type EntryRepository interface {
	// Upsert replaces any entry with the same date, then appends e.
	Upsert(ctx context.Context, e DailyEntry) error
	// All returns every stored entry in insertion order.
	All(ctx context.Context) ([]DailyEntry, error)
}
