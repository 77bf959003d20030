package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// FallbackSummary отдается клиенту, когда провайдер недоступен.
const FallbackSummary = "AI analysis unavailable at the moment."

// Service строит запросы к модели для отчетных сценариев. Ошибки
// провайдера не пробрасываются наружу: сводка деградирует до заглушки,
// перевод до исходного текста.
type Service struct {
	client Client
	logger *slog.Logger
}

// NewService создает сервис работы с AI-клиентом.
func NewService(client Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// OperationalSummary просит модель кратко оценить показатели месяца.
func (s *Service) OperationalSummary(ctx context.Context, input SummaryInput) string {
	messages := []Message{
		{Role: "system", Content: "You are an operations analyst for a municipal solid waste landfill in Kyzylorda, Kazakhstan. Answer in Korean, 3-4 sentences, plain text without markdown."},
		{Role: "user", Content: buildSummaryPrompt(input)},
	}

	content, _, err := s.client.Chat(ctx, messages)
	if err != nil {
		s.logger.Warn("ai summary unavailable", slog.String("error", err.Error()))
		return FallbackSummary
	}

	text := strings.TrimSpace(content)
	if text == "" {
		return FallbackSummary
	}
	return text
}

// Translate переводит текст на указанный язык. При любой ошибке
// возвращает исходный текст без изменений.
func (s *Service) Translate(ctx context.Context, text, targetLang string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	messages := []Message{
		{Role: "system", Content: fmt.Sprintf("Translate the user message into %s. Return only the translation, no explanations.", targetLang)},
		{Role: "user", Content: trimmed},
	}

	content, _, err := s.client.Chat(ctx, messages)
	if err != nil {
		s.logger.Warn("ai translate unavailable", slog.String("error", err.Error()))
		return text
	}

	translated := strings.TrimSpace(content)
	if translated == "" {
		return text
	}
	return translated
}

func buildSummaryPrompt(input SummaryInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monthly figures for %s:\n", input.Month)
	fmt.Fprintf(&b, "- total inbound waste: %.2f t (city streets %.2f t, Tasboget %.2f t, commercial %.2f t, other %.2f t)\n",
		input.Weights.Total, input.Weights.City, input.Weights.RouteB, input.Weights.Commercial, input.Weights.Other)
	fmt.Fprintf(&b, "- billed revenue: %d KZT, receivables: %d KZT\n", input.RevenueKZT, input.ReceivablesKZT)
	fmt.Fprintf(&b, "- PET sorted: %d pcs, PET sales: %d KZT\n", input.PlasticSorted, input.PETRevenueKZT)
	fmt.Fprintf(&b, "- active staff: %d\n", input.ActiveStaff)
	b.WriteString("Summarize the month and flag anything unusual.")
	return b.String()
}
