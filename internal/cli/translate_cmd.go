package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wellness/internal/cli/formatter"
	"wellness/internal/domain"
)

func newTranslateCmd(a *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text into one of the supported languages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if domain.ResolveLanguage(to) != to {
				return fmt.Errorf("unsupported language %q", to)
			}
			out, ok := a.Translator.TranslateTagged(cmd.Context(), strings.Join(args, " "), to)
			writeLine(cmd.OutOrStdout(), out)
			if !ok {
				writeLine(cmd.ErrOrStderr(), formatter.Dim("(translation unavailable, showing original)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target language code")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
