package app_test

import (
	"context"

	"wellness/internal/domain"
)

type mockCompleter struct {
	completeFn func(ctx context.Context, req domain.CompletionRequest) (string, error)
	calls      []domain.CompletionRequest
}

func (m *mockCompleter) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	m.calls = append(m.calls, req)
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return "reply", nil
}

type translateCall struct {
	text, source, target string
}

type mockTranslator struct {
	translateFn func(ctx context.Context, text, source, target string) (string, error)
	calls       []translateCall
}

func (m *mockTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	m.calls = append(m.calls, translateCall{text, source, target})
	if m.translateFn != nil {
		return m.translateFn(ctx, text, source, target)
	}
	return "[" + target + "] " + text, nil
}

type mockEntryRepo struct {
	upsertFn func(ctx context.Context, e domain.DailyEntry) error
	allFn    func(ctx context.Context) ([]domain.DailyEntry, error)
	upserted []domain.DailyEntry
}

func (m *mockEntryRepo) Upsert(ctx context.Context, e domain.DailyEntry) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, e)
	}
	m.upserted = append(m.upserted, e)
	return nil
}

func (m *mockEntryRepo) All(ctx context.Context) ([]domain.DailyEntry, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return m.upserted, nil
}
