package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/mattn/go-isatty"

	"wellness/internal/adapter/llm"
	"wellness/internal/adapter/memory"
	"wellness/internal/adapter/translate"
	"wellness/internal/app"
	"wellness/internal/cli"
	"wellness/internal/config"
	"wellness/internal/domain"
	"wellness/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger.InitWriter(os.Stderr, cfg.IsDevelopment(), cfg.SentryDSN)
	defer sentry.Flush(2 * time.Second)

	// Without a key the coach stays unconfigured and answers with a warning.
	var completer domain.ChatCompleter
	if cfg.ChatConfigured() {
		completer = llm.New(cfg.GroqAPIKey, cfg.ChatBaseURL, nil)
	} else {
		slog.Warn("GROQ_API_KEY not set, chat is disabled")
	}

	translator := app.NewTranslator(translate.New(cfg.TranslateEndpoint, cfg.TranslateTimeout))
	coach := app.NewCoach(completer, translator, app.CoachConfig{
		Model:       cfg.ChatModel,
		Temperature: float32(cfg.ChatTemperature),
		MaxTokens:   cfg.ChatMaxTokens,
		Timeout:     cfg.ChatTimeout,
	})

	a := &cli.App{
		Config:     cfg,
		Sessions:   app.NewSessionService(memory.New(), cfg.SessionTTL),
		Coach:      coach,
		Translator: translator,
		Entries:    memory.NewEntryStore(),
		Interactive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(a).Execute()
}
