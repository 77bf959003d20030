package handlers

import (
	"testing"

	"github.com/bds22000-prog/kyclean/internal/report"
)

// TestToReportResponse проверяет порядок и заполнение ячеек ответа.
func TestToReportResponse(t *testing.T) {
	values := map[string]string{
		"op_total_curr": "15.50",
		"hr_sort_curr":  "5",
	}

	response := toReportResponse("2026-01", values)

	if response.Month != "2026-01" {
		t.Fatalf("expected month 2026-01, got %s", response.Month)
	}
	if len(response.Fields) != len(report.Fields) {
		t.Fatalf("expected %d fields, got %d", len(report.Fields), len(response.Fields))
	}

	// Порядок ячеек повторяет печатную форму.
	for i, field := range report.Fields {
		if response.Fields[i].ID != field.ID {
			t.Fatalf("expected field %s at position %d, got %s", field.ID, i, response.Fields[i].ID)
		}
	}

	if response.Fields[0].Value != "15.50" {
		t.Fatalf("expected op_total_curr value, got %q", response.Fields[0].Value)
	}
}
