package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"wellness/internal/app"
)

func TestLocalizedPanels(t *testing.T) {
	p := &mockTranslator{}
	tr := app.NewTranslator(p)

	en := app.LocalizedPanels(context.Background(), tr, "en")
	assert.Equal(t, app.Panels, en)
	assert.Empty(t, p.calls)

	es := app.LocalizedPanels(context.Background(), tr, "es")
	ids := map[string]bool{}
	for i, panel := range es {
		assert.Equal(t, app.Panels[i].ID, panel.ID)
		assert.Equal(t, "[es] "+app.Panels[i].Label, panel.Label)
		ids[panel.ID] = true
	}
	assert.Len(t, ids, 4, "panel ids must be distinct")
	assert.Equal(t, "📋 Daily Input", app.Panels[0].Label, "source table must not be mutated")
}
