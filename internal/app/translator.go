package app

import (
	"context"
	"log/slog"
	"strings"

	"wellness/internal/domain"
)

// SourceAuto asks the provider to detect the source language.
const SourceAuto = "auto"

// Translator applies the fail-open policy on top of a translation provider:
// any failure yields the original text. Failures are logged so they stay
// visible to operators even though users only see untranslated text.
type Translator struct {
	provider domain.TextTranslator
}

// NewTranslator wraps provider. A nil provider makes every call a passthrough.
func NewTranslator(provider domain.TextTranslator) *Translator {
	return &Translator{provider: provider}
}

// Translate returns text translated into target, or text unchanged on failure.
func (t *Translator) Translate(ctx context.Context, text, target string) string {
	out, _ := t.TranslateTagged(ctx, text, target)
	return out
}

// TranslateTagged is Translate plus a flag telling whether the provider
// actually produced the result.
func (t *Translator) TranslateTagged(ctx context.Context, text, target string) (string, bool) {
	if t == nil || t.provider == nil || strings.TrimSpace(text) == "" {
		return text, false
	}
	out, err := t.provider.Translate(ctx, text, SourceAuto, target)
	if err != nil {
		slog.WarnContext(ctx, "translation failed, using original text", "target", target, "error", err)
		return text, false
	}
	return out, true
}
