// Package app holds the application services and business logic.
package app

import "wellness/internal/domain"

// Recommendation is the verdict for one metric of a daily entry.
type Recommendation struct {
	Metric   string `json:"metric"`
	Positive bool   `json:"positive"`
	Message  string `json:"message"`
}

type rule struct {
	metric   string
	ok       func(e domain.DailyEntry) bool
	positive string
	negative string
}

// rules are evaluated independently, in this order.
var rules = []rule{
	{"sleep", func(e domain.DailyEntry) bool { return e.SleepHours >= 7 },
		"✅ Great job on your sleep!", "😴 Try to sleep at least 7–8 hours tonight."},
	{"steps", func(e domain.DailyEntry) bool { return e.Steps >= 8000 },
		"👏 You hit your step goal!", "🚶 Add a short walk to increase your steps."},
	{"water", func(e domain.DailyEntry) bool { return e.WaterGlasses >= 8 },
		"🌊 Hydration level is great!", "💧 Drink more water to stay hydrated."},
	{"stress", func(e domain.DailyEntry) bool { return e.StressLevel <= 6 },
		"✨ Stress level is under control.", "🧘 Try 5 min deep breathing or journaling."},
	{"nutrition", func(e domain.DailyEntry) bool { return e.NutritionScore >= 7 },
		"✅ Nutrition on point today!", "🍎 Try to add more fruits & veggies in your meals."},
	{"mindfulness", func(e domain.DailyEntry) bool { return e.MindfulnessDone },
		"🌸 Great job practicing mindfulness!", "🧘 Take 2 mins to breathe mindfully."},
	{"screen_time", func(e domain.DailyEntry) bool { return e.ScreenTimeHours <= 6 },
		"✨ Healthy screen balance today!", "📱 Reduce late-night screen time for better sleep."},
	{"social", func(e domain.DailyEntry) bool { return e.SocialConnected },
		"❤️ You nurtured your social connection!", "🤝 Call or message a loved one today."},
	{"exercise", func(e domain.DailyEntry) bool { return e.ExerciseDone },
		"🔥 Strong body = strong mind!", "💪 Try 10 mins of stretching or push-ups."},
	{"sunlight", func(e domain.DailyEntry) bool { return e.SunlightExposure },
		"🌿 Fresh air does wonders, great job!", "🌞 Get 5–10 mins of natural sunlight."},
}

// Assess applies every threshold rule to e. The entry is assumed to have
// passed DailyEntry.Validate.
func Assess(e domain.DailyEntry) []Recommendation {
	out := make([]Recommendation, 0, len(rules))
	for _, r := range rules {
		rec := Recommendation{Metric: r.metric, Positive: r.ok(e), Message: r.negative}
		if rec.Positive {
			rec.Message = r.positive
		}
		out = append(out, rec)
	}
	return out
}

// Recommend returns one message per metric in fixed order.
func Recommend(e domain.DailyEntry) []string {
	recs := Assess(e)
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Message
	}
	return out
}
