package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"wellness/internal/app"
	"wellness/internal/cli/formatter"
	"wellness/internal/domain"
)

var errNotInteractive = errors.New("checkin needs an interactive terminal; use \"wellness recommend\" with flags instead")

// checkInAnswers holds the raw form values before conversion.
type checkInAnswers struct {
	sleep, steps, water, stress, nutrition, screen string

	mindfulness, social, exercise, sunlight bool
	reflection                              string
}

func (c checkInAnswers) entry() (domain.DailyEntry, error) {
	var errs []error
	num := func(name, v string) int {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a whole number", name, v))
		}
		return n
	}
	e := domain.DailyEntry{
		SleepHours:       num("sleep", c.sleep),
		Steps:            num("steps", c.steps),
		WaterGlasses:     num("water", c.water),
		StressLevel:      num("stress", c.stress),
		NutritionScore:   num("nutrition", c.nutrition),
		ScreenTimeHours:  num("screen time", c.screen),
		MindfulnessDone:  c.mindfulness,
		SocialConnected:  c.social,
		ExerciseDone:     c.exercise,
		SunlightExposure: c.sunlight,
		ReflectionText:   c.reflection,
	}
	return e, errors.Join(errs...)
}

func newCheckInCmd(a *App) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Fill in today's check-in interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Interactive == nil || !a.Interactive() {
				return errNotInteractive
			}

			ans := checkInAnswers{stress: "5", nutrition: "5"}
			if err := checkInForm(&ans).Run(); err != nil {
				return err
			}
			e, err := ans.entry()
			if err != nil {
				return err
			}

			recs, saved, err := app.NewTrackerService(a.Entries).CheckIn(cmd.Context(), e)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.Dim("Saved check-in for "+saved.Date))
			printRecommendations(cmd, a, recs, domain.ResolveLanguage(lang))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", domain.PivotLanguage, "Output language code")
	return cmd
}

func checkInForm(ans *checkInAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			intInput("Sleep (hours)", "7", &ans.sleep, 0, domain.MaxSleepHours),
			intInput("Steps", "8000", &ans.steps, 0, domain.MaxSteps),
			intInput("Water (glasses)", "8", &ans.water, 0, domain.MaxWaterGlasses),
			intInput("Stress (1-10)", "5", &ans.stress, domain.MinStressLevel, domain.MaxStressLevel),
			intInput("Nutrition (1-10)", "7", &ans.nutrition, domain.MinNutritionScore, domain.MaxNutritionScore),
			intInput("Screen time (hours)", "4", &ans.screen, 0, domain.MaxScreenTimeHours),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Mindfulness practiced?").Value(&ans.mindfulness),
			huh.NewConfirm().Title("Connected with someone?").Value(&ans.social),
			huh.NewConfirm().Title("Exercised?").Value(&ans.exercise),
			huh.NewConfirm().Title("Got sunlight?").Value(&ans.sunlight),
			huh.NewText().Title("Reflection (optional)").Value(&ans.reflection),
		),
	).WithTheme(wellnessHuhTheme()).WithShowHelp(false)
}

// intInput returns a huh.Input accepting whole numbers within [lo, hi].
func intInput(title, placeholder string, value *string, lo, hi int) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateIntRange(lo, hi))
}

func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func wellnessHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
	t.Focused.FocusedButton = lipgloss.NewStyle().Background(formatter.ColorGreen).Padding(0, 1)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return t
}

func todayString() string {
	return time.Now().In(time.Local).Format(domain.DateLayout)
}
