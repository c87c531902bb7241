package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness/internal/app"
)

func TestTranslator_Success(t *testing.T) {
	p := &mockTranslator{}
	tr := app.NewTranslator(p)

	out, ok := tr.TranslateTagged(context.Background(), "hello", "es")
	assert.True(t, ok)
	assert.Equal(t, "[es] hello", out)
	require.Len(t, p.calls, 1)
	assert.Equal(t, app.SourceAuto, p.calls[0].source)
}

func TestTranslator_FailOpen(t *testing.T) {
	p := &mockTranslator{
		translateFn: func(_ context.Context, _, _, _ string) (string, error) {
			return "", errors.New("provider down")
		},
	}
	tr := app.NewTranslator(p)

	assert.Equal(t, "drink water", tr.Translate(context.Background(), "drink water", "fr"))

	out, ok := tr.TranslateTagged(context.Background(), "drink water", "fr")
	assert.False(t, ok)
	assert.Equal(t, "drink water", out)
}

func TestTranslator_BlankSkipsProvider(t *testing.T) {
	p := &mockTranslator{}
	tr := app.NewTranslator(p)

	assert.Equal(t, "  ", tr.Translate(context.Background(), "  ", "de"))
	assert.Empty(t, p.calls)
}

func TestTranslator_NilProvider(t *testing.T) {
	tr := app.NewTranslator(nil)
	out, ok := tr.TranslateTagged(context.Background(), "hola", "en")
	assert.False(t, ok)
	assert.Equal(t, "hola", out)
}
