package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/notifications"
	"github.com/bds22000-prog/kyclean/internal/report"
)

type ReportHandler struct {
	Report *report.Service
	Hub    *notifications.Hub
}

// NewReportHandler создает обработчик месячного отчета.
func NewReportHandler(reportService *report.Service, hub *notifications.Hub) *ReportHandler {
	return &ReportHandler{Report: reportService, Hub: hub}
}

type SetFieldRequest struct {
	Value string `json:"value" validate:"max=100"`
}

type ReportResponse struct {
	Month  string            `json:"month"`
	Fields []ReportFieldView `json:"fields"`
}

type ReportFieldView struct {
	ID      string `json:"id"`
	Section string `json:"section"`
	Label   string `json:"label"`
	Unit    string `json:"unit"`
	Value   string `json:"value"`
}

// Get возвращает отчет за месяц (?month=YYYY-MM, по умолчанию текущий).
func (h *ReportHandler) Get(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	return c.JSON(http.StatusOK, toReportResponse(month, h.Report.Values(month)))
}

// Recompute заново строит отчет из исходных записей, сбрасывая правки.
func (h *ReportHandler) Recompute(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	values := h.Report.RecomputeAndDiscardOverrides(month)
	publishRegistryChange(h.Hub, "report.recomputed", month)

	return c.JSON(http.StatusOK, toReportResponse(month, values))
}

// SetField правит одну ячейку отчета до следующего пересчета.
func (h *ReportHandler) SetField(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	var req SetFieldRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	values, err := h.Report.SetField(month, c.Param("id"), req.Value)
	if err != nil {
		if errors.Is(err, report.ErrUnknownField) {
			return notFound(c, "report field not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toReportResponse(month, values))
}

func monthParam(c echo.Context) (string, error) {
	month := c.QueryParam("month")
	if month == "" {
		return report.CurrentMonth(), nil
	}
	if !report.ValidMonth(month) {
		return "", errors.New("invalid month")
	}
	return month, nil
}

func toReportResponse(month string, values map[string]string) ReportResponse {
	fields := make([]ReportFieldView, 0, len(report.Fields))
	for _, field := range report.Fields {
		fields = append(fields, ReportFieldView{
			ID:      field.ID,
			Section: field.Section,
			Label:   field.Label,
			Unit:    field.Unit,
			Value:   values[field.ID],
		})
	}
	return ReportResponse{Month: month, Fields: fields}
}
