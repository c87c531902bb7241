package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness/internal/app"
	"wellness/internal/domain"
)

var metricOrder = []string{
	"sleep", "steps", "water", "stress", "nutrition",
	"mindfulness", "screen_time", "social", "exercise", "sunlight",
}

func TestRecommend_AllNegative(t *testing.T) {
	e := domain.DailyEntry{
		Date: "2024-01-01", SleepHours: 5, Steps: 3000, WaterGlasses: 4, StressLevel: 8,
		NutritionScore: 5, ScreenTimeHours: 8,
	}

	recs := app.Assess(e)
	require.Len(t, recs, 10)
	for i, r := range recs {
		assert.Equal(t, metricOrder[i], r.Metric)
		assert.False(t, r.Positive, "metric %s", r.Metric)
	}

	msgs := app.Recommend(e)
	assert.Equal(t, []string{
		"😴 Try to sleep at least 7–8 hours tonight.",
		"🚶 Add a short walk to increase your steps.",
		"💧 Drink more water to stay hydrated.",
		"🧘 Try 5 min deep breathing or journaling.",
		"🍎 Try to add more fruits & veggies in your meals.",
		"🧘 Take 2 mins to breathe mindfully.",
		"📱 Reduce late-night screen time for better sleep.",
		"🤝 Call or message a loved one today.",
		"💪 Try 10 mins of stretching or push-ups.",
		"🌞 Get 5–10 mins of natural sunlight.",
	}, msgs)
}

func TestRecommend_AllPositive(t *testing.T) {
	e := domain.DailyEntry{
		Date: "2024-01-01", SleepHours: 8, Steps: 10000, WaterGlasses: 8, StressLevel: 3,
		NutritionScore: 8, MindfulnessDone: true, ScreenTimeHours: 2, SocialConnected: true,
		ExerciseDone: true, SunlightExposure: true,
	}
	for _, r := range app.Assess(e) {
		assert.True(t, r.Positive, "metric %s", r.Metric)
	}
}

func TestRecommend_Thresholds(t *testing.T) {
	base := domain.DailyEntry{Date: "2024-01-01", StressLevel: 1, NutritionScore: 1}
	tests := []struct {
		name   string
		mutate func(e *domain.DailyEntry)
		index  int
		want   bool
	}{
		{"sleep 7 ok", func(e *domain.DailyEntry) { e.SleepHours = 7 }, 0, true},
		{"sleep 6 low", func(e *domain.DailyEntry) { e.SleepHours = 6 }, 0, false},
		{"steps 8000 ok", func(e *domain.DailyEntry) { e.Steps = 8000 }, 1, true},
		{"steps 7999 low", func(e *domain.DailyEntry) { e.Steps = 7999 }, 1, false},
		{"water 8 ok", func(e *domain.DailyEntry) { e.WaterGlasses = 8 }, 2, true},
		{"water 7 low", func(e *domain.DailyEntry) { e.WaterGlasses = 7 }, 2, false},
		{"stress 6 ok", func(e *domain.DailyEntry) { e.StressLevel = 6 }, 3, true},
		{"stress 7 high", func(e *domain.DailyEntry) { e.StressLevel = 7 }, 3, false},
		{"nutrition 7 ok", func(e *domain.DailyEntry) { e.NutritionScore = 7 }, 4, true},
		{"nutrition 6 low", func(e *domain.DailyEntry) { e.NutritionScore = 6 }, 4, false},
		{"screen 6 ok", func(e *domain.DailyEntry) { e.ScreenTimeHours = 6 }, 6, true},
		{"screen 7 high", func(e *domain.DailyEntry) { e.ScreenTimeHours = 7 }, 6, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := base
			tc.mutate(&e)
			assert.Equal(t, tc.want, app.Assess(e)[tc.index].Positive)
		})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	e := domain.DailyEntry{Date: "2024-01-01", SleepHours: 7, Steps: 100, StressLevel: 9, NutritionScore: 9, SocialConnected: true}
	assert.Equal(t, app.Recommend(e), app.Recommend(e))
}
