package cli

import (
	"github.com/spf13/cobra"

	"wellness/internal/app"
	"wellness/internal/config"
	"wellness/internal/domain"
)

// App holds references to everything the CLI commands need.
type App struct {
	Config     *config.Config
	Sessions   *app.SessionService
	Coach      *app.Coach
	Translator *app.Translator
	// Entries backs the interactive check-in command.
	Entries domain.EntryRepository
	// Interactive reports whether stdin is a terminal.
	Interactive func() bool
}

// NewRootCmd creates the top-level "wellness" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wellness",
		Short:         "Daily wellness check-ins with an AI coach",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(a),
		newRecommendCmd(a),
		newCheckInCmd(a),
		newChatCmd(a),
		newTranslateCmd(a),
	)

	return root
}
