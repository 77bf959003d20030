package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakeClient struct {
	text string
	err  error
}

func (f *fakeClient) Chat(ctx context.Context, messages []Message) (string, []byte, error) {
	return f.text, nil, f.err
}

func newTestAIService(client Client) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(client, logger)
}

// TestOperationalSummaryFallback проверяет заглушку при сбое провайдера.
func TestOperationalSummaryFallback(t *testing.T) {
	service := newTestAIService(&fakeClient{err: errors.New("provider down")})

	got := service.OperationalSummary(context.Background(), SummaryInput{Month: "2026-01"})
	if got != FallbackSummary {
		t.Fatalf("expected fallback summary, got %q", got)
	}
}

// TestOperationalSummaryEmptyAnswer проверяет заглушку на пустом ответе.
func TestOperationalSummaryEmptyAnswer(t *testing.T) {
	service := newTestAIService(&fakeClient{text: "   "})

	got := service.OperationalSummary(context.Background(), SummaryInput{Month: "2026-01"})
	if got != FallbackSummary {
		t.Fatalf("expected fallback summary, got %q", got)
	}
}

// TestOperationalSummarySuccess проверяет возврат текста модели.
func TestOperationalSummarySuccess(t *testing.T) {
	service := newTestAIService(&fakeClient{text: " 이번 달 반입량은 안정적입니다. "})

	got := service.OperationalSummary(context.Background(), SummaryInput{Month: "2026-01"})
	if got != "이번 달 반입량은 안정적입니다." {
		t.Fatalf("unexpected summary: %q", got)
	}
}

// TestTranslateFallback проверяет возврат оригинала при сбое перевода.
func TestTranslateFallback(t *testing.T) {
	service := newTestAIService(&fakeClient{err: errors.New("provider down")})

	got := service.Translate(context.Background(), "총 반입량", "Russian")
	if got != "총 반입량" {
		t.Fatalf("expected original text, got %q", got)
	}
}

// TestTranslateSuccess проверяет успешный перевод.
func TestTranslateSuccess(t *testing.T) {
	service := newTestAIService(&fakeClient{text: "Общий объем"})

	got := service.Translate(context.Background(), "총 반입량", "Russian")
	if got != "Общий объем" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

// TestTranslateEmptyInput проверяет, что пустой текст не уходит модели.
func TestTranslateEmptyInput(t *testing.T) {
	service := newTestAIService(&fakeClient{text: "should not be used"})

	got := service.Translate(context.Background(), "   ", "Russian")
	if got != "   " {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}
