package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wellness/internal/app"
	"wellness/internal/cli/formatter"
	"wellness/internal/domain"
)

func newRecommendCmd(a *App) *cobra.Command {
	var e domain.DailyEntry
	var lang string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print recommendations for one day of metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.Date == "" {
				e.Date = todayString()
			}
			if err := e.Validate(); err != nil {
				return err
			}
			printRecommendations(cmd, a, app.Assess(e), domain.ResolveLanguage(lang))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&e.Date, "date", "", "Date (YYYY-MM-DD, default today)")
	f.IntVar(&e.SleepHours, "sleep", 0, "Hours of sleep (0-24)")
	f.IntVar(&e.Steps, "steps", 0, "Steps walked (0-50000)")
	f.IntVar(&e.WaterGlasses, "water", 0, "Glasses of water (0-20)")
	f.IntVar(&e.StressLevel, "stress", 5, "Stress level (1-10)")
	f.IntVar(&e.NutritionScore, "nutrition", 5, "Nutrition score (1-10)")
	f.IntVar(&e.ScreenTimeHours, "screen-time", 0, "Hours of screen time (0-24)")
	f.BoolVar(&e.MindfulnessDone, "mindfulness", false, "Practiced mindfulness")
	f.BoolVar(&e.SocialConnected, "social", false, "Connected with someone")
	f.BoolVar(&e.ExerciseDone, "exercise", false, "Exercised")
	f.BoolVar(&e.SunlightExposure, "sunlight", false, "Got some sunlight")
	f.StringVar(&lang, "lang", domain.PivotLanguage, "Output language code")

	return cmd
}

func printRecommendations(cmd *cobra.Command, a *App, recs []app.Recommendation, lang string) {
	out := cmd.OutOrStdout()
	writeLine(out, formatter.Header("Recommendations"))
	for _, r := range recs {
		if lang != domain.PivotLanguage {
			r.Message = a.Translator.Translate(cmd.Context(), r.Message, lang)
		}
		writeLine(out, formatter.RecommendationLine(r.Positive, r.Message))
	}
}

func writeLine(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
