package domain

// Habit names a boolean daily habit tracked on DailyEntry.
type Habit string

const (
	HabitMindfulness Habit = "mindfulness"
	HabitSocial      Habit = "social"
	HabitExercise    Habit = "exercise"
	HabitSunlight    Habit = "sunlight"
)

// Habits lists the tracked habits in display order.
var Habits = []Habit{HabitMindfulness, HabitSocial, HabitExercise, HabitSunlight}

// Done reports whether e records habit h as completed.
func (e DailyEntry) Done(h Habit) bool {
	switch h {
	case HabitMindfulness:
		return e.MindfulnessDone
	case HabitSocial:
		return e.SocialConnected
	case HabitExercise:
		return e.ExerciseDone
	case HabitSunlight:
		return e.SunlightExposure
	}
	return false
}

// Tier is the coarse 3-level bucket of a 7-day habit completion count.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// TierFor buckets a completion count: >=5 high, 3-4 medium, otherwise low.
func TierFor(completed int) Tier {
	switch {
	case completed >= 5:
		return TierHigh
	case completed >= 3:
		return TierMedium
	default:
		return TierLow
	}
}

// Metric names a numeric field of DailyEntry that is charted over time.
type Metric string

const (
	MetricSleep      Metric = "sleep"
	MetricSteps      Metric = "steps"
	MetricWater      Metric = "water"
	MetricStress     Metric = "stress"
	MetricNutrition  Metric = "nutrition"
	MetricScreenTime Metric = "screen_time"
)

// Metrics lists the charted metrics in display order.
var Metrics = []Metric{MetricSleep, MetricSteps, MetricWater, MetricStress, MetricNutrition, MetricScreenTime}

// Value returns the value of metric m on e.
func (e DailyEntry) Value(m Metric) int {
	switch m {
	case MetricSleep:
		return e.SleepHours
	case MetricSteps:
		return e.Steps
	case MetricWater:
		return e.WaterGlasses
	case MetricStress:
		return e.StressLevel
	case MetricNutrition:
		return e.NutritionScore
	case MetricScreenTime:
		return e.ScreenTimeHours
	}
	return 0
}
