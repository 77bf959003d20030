package report

import (
	"errors"
	"testing"

	"github.com/bds22000-prog/kyclean/internal/models"
)

type fakeSources struct {
	src Sources
}

func (f *fakeSources) Snapshot() Sources {
	return f.src
}

func newTestService() (*Service, *fakeSources) {
	sources := &fakeSources{src: testSources()}
	service := NewService(NewAggregator(DefaultMarkers(), 0.70), sources)
	return service, sources
}

// TestServiceSetFieldOverride проверяет жизненный цикл ручной правки:
// видна при чтении, исчезает после пересчета.
func TestServiceSetFieldOverride(t *testing.T) {
	service, _ := newTestService()

	values, err := service.SetField("2026-01", "op_total_curr", "999.99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["op_total_curr"] != "999.99" {
		t.Fatalf("expected override, got %q", values["op_total_curr"])
	}

	// Правка переживает повторные чтения того же месяца.
	if got := service.Values("2026-01")["op_total_curr"]; got != "999.99" {
		t.Fatalf("expected override to persist, got %q", got)
	}

	// Явный пересчет стирает правку.
	values = service.RecomputeAndDiscardOverrides("2026-01")
	if values["op_total_curr"] != "15.50" {
		t.Fatalf("expected recomputed value 15.50, got %q", values["op_total_curr"])
	}
}

// TestServiceSetFieldUnknown проверяет отказ на неизвестной ячейке.
func TestServiceSetFieldUnknown(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.SetField("2026-01", "no_such_field", "1"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

// TestServiceMonthSwitch проверяет сброс правок при смене месяца.
func TestServiceMonthSwitch(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.SetField("2026-01", "hr_sort_curr", "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Другой месяц строится заново.
	if got := service.Values("2026-02")["hr_sort_curr"]; got != "5" {
		t.Fatalf("expected fresh value 5, got %q", got)
	}

	// Возврат к прежнему месяцу тоже дает свежий пересчет без правки.
	if got := service.Values("2026-01")["hr_sort_curr"]; got != "5" {
		t.Fatalf("expected override to be dropped, got %q", got)
	}
}

// TestServiceMarkStale проверяет пересчет после изменения реестров.
func TestServiceMarkStale(t *testing.T) {
	service, sources := newTestService()

	if got := service.Values("2026-01")["op_total_curr"]; got != "15.50" {
		t.Fatalf("expected 15.50, got %q", got)
	}

	sources.src.Waste = append(sources.src.Waste, models.WasteEntry{
		ClientName: "신규 업체", WeightTons: 4.5, EntryDate: "2026-01-25",
	})

	// Без пометки сервис отдает прежнюю карту.
	if got := service.Values("2026-01")["op_total_curr"]; got != "15.50" {
		t.Fatalf("expected cached 15.50, got %q", got)
	}

	service.MarkStale()
	if got := service.Values("2026-01")["op_total_curr"]; got != "20.00" {
		t.Fatalf("expected recomputed 20.00, got %q", got)
	}
}
