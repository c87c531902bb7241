package app

import (
	"context"

	"wellness/internal/domain"
)

// Panel is a navigable section of the UI. Navigation is keyed by ID; Label is
// display text only and may be translated.
type Panel struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Panel identifiers.
const (
	PanelDailyInput = "daily-input"
	PanelChat       = "chat"
	PanelJournal    = "journal"
	PanelWeekly     = "weekly"
)

// Panels lists the UI sections in navigation order.
var Panels = []Panel{
	{ID: PanelDailyInput, Label: "📋 Daily Input"},
	{ID: PanelChat, Label: "💬 AI Chatbot"},
	{ID: PanelJournal, Label: "📝 Mood Journal"},
	{ID: PanelWeekly, Label: "📊 Weekly Tracker"},
}

// LocalizedPanels returns Panels with labels translated into lang.
func LocalizedPanels(ctx context.Context, tr *Translator, lang string) []Panel {
	out := make([]Panel, len(Panels))
	copy(out, Panels)
	if lang == domain.PivotLanguage {
		return out
	}
	for i := range out {
		out[i].Label = tr.Translate(ctx, out[i].Label, lang)
	}
	return out
}
