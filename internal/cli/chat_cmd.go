package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"wellness/internal/cli/formatter"
	"wellness/internal/domain"
)

func newChatCmd(a *App) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the wellness coach a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := a.Coach.Converse(cmd.Context(), strings.Join(args, " "), domain.ResolveLanguage(lang))
			if !a.Coach.Configured() {
				reply = formatter.StyleYellow.Render(reply)
			}
			writeLine(cmd.OutOrStdout(), reply)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", domain.PivotLanguage, "Conversation language code")
	return cmd
}
