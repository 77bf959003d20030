package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/ai"
	"github.com/bds22000-prog/kyclean/internal/report"
)

type AIHandler struct {
	AI      *ai.Service
	Sources report.SourceReader
	Markers report.Markers
}

// NewAIHandler создает обработчик AI-сценариев отчета.
func NewAIHandler(aiService *ai.Service, sources report.SourceReader, markers report.Markers) *AIHandler {
	return &AIHandler{AI: aiService, Sources: sources, Markers: markers}
}

type SummaryRequest struct {
	Month string `json:"month" validate:"omitempty,len=7"`
}

type SummaryResponse struct {
	Month   string `json:"month"`
	Summary string `json:"summary"`
}

type TranslateRequest struct {
	Text       string `json:"text" validate:"required,max=4000"`
	TargetLang string `json:"target_lang" validate:"required,max=30"`
}

type TranslateResponse struct {
	Text string `json:"text"`
}

// Summary строит AI-сводку по показателям месяца. Недоступность
// провайдера не является ошибкой запроса: клиент получает заглушку.
func (h *AIHandler) Summary(c echo.Context) error {
	var req SummaryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	month := req.Month
	if month == "" {
		month = report.CurrentMonth()
	}
	if !report.ValidMonth(month) {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	src := h.Sources.Snapshot()
	input := ai.SummaryInput{
		Month:          month,
		Weights:        report.Classify(report.FilterMonth(src.Waste, month), h.Markers),
		RevenueKZT:     report.BilledTotal(src.Clients, month),
		ReceivablesKZT: report.ReceivablesTotal(src.Clients, month),
		PETRevenueKZT:  report.PETOutboundRevenue(src.Recycling, month),
		PlasticSorted:  report.PlasticSortedCount(src.Recycling, month),
		ActiveStaff:    report.ActiveHeadcount(src.Employees),
	}

	summary := h.AI.OperationalSummary(c.Request().Context(), input)
	return c.JSON(http.StatusOK, SummaryResponse{Month: month, Summary: summary})
}

// Translate переводит произвольный текст; при сбое возвращает оригинал.
func (h *AIHandler) Translate(c echo.Context) error {
	var req TranslateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	translated := h.AI.Translate(c.Request().Context(), req.Text, req.TargetLang)
	return c.JSON(http.StatusOK, TranslateResponse{Text: translated})
}
