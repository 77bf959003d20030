package payroll

import (
	"errors"
	"testing"

	"github.com/bds22000-prog/kyclean/internal/models"
	"github.com/bds22000-prog/kyclean/internal/repository"
)

func newTestPayrollService(t *testing.T) *Service {
	t.Helper()

	employees := repository.NewEmployeeRepository()
	seed := []models.Employee{
		{ID: "e-1", EmpNo: "WY-0001", Name: "황성신", Role: models.RoleManager},
		{ID: "e-2", EmpNo: "WY-0002", Name: "사맛", Role: models.RoleStaff},
		{ID: "e-3", EmpNo: "WY-0003", Name: "라쉬드", Role: models.RoleStaff, ResignationDate: "2025-06-30"},
	}
	for _, employee := range seed {
		if _, err := employees.Create(employee); err != nil {
			t.Fatalf("seed employee: %v", err)
		}
	}

	return NewService(repository.NewPayrollRepository(), employees)
}

// TestServiceRowsActiveOnly проверяет, что в ведомости только работающие.
func TestServiceRowsActiveOnly(t *testing.T) {
	service := newTestPayrollService(t)

	rows, summary := service.Rows("2026-01")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if summary.GrossKZT != 0 {
		t.Fatalf("expected empty summary, got %d", summary.GrossKZT)
	}
}

// TestServiceSetGross проверяет полный пересчет строки от оклада.
func TestServiceSetGross(t *testing.T) {
	service := newTestPayrollService(t)

	row, err := service.SetGross("2026-01", "e-1", "500,000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.GrossKZT != 500000 || row.OPVKZT != 50000 || row.IPNKZT != 44000 {
		t.Fatalf("unexpected row: %+v", row)
	}

	rows, summary := service.Rows("2026-01")
	for _, item := range rows {
		if item.EmployeeID != "e-1" {
			continue
		}
		if item.NetKZT != 396000 {
			t.Fatalf("expected net 396000, got %d", item.NetKZT)
		}
		if item.EmployerCostKZT != 562500 {
			t.Fatalf("expected cost 562500, got %d", item.EmployerCostKZT)
		}
	}
	if summary.GrossKZT != 500000 || summary.NetKZT != 396000 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

// TestServiceSetField проверяет правку одной ячейки без каскада.
func TestServiceSetField(t *testing.T) {
	service := newTestPayrollService(t)

	if _, err := service.SetGross("2026-01", "e-1", "500000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row, err := service.SetField("2026-01", "e-1", "opv", "60,000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row.OPVKZT != 60000 {
		t.Fatalf("expected opv 60000, got %d", row.OPVKZT)
	}
	// Остальные ячейки не пересчитываются.
	if row.IPNKZT != 44000 || row.GrossKZT != 500000 {
		t.Fatalf("expected untouched cells, got %+v", row)
	}

	// Производный итог учитывает правку при чтении.
	rows, _ := service.Rows("2026-01")
	for _, item := range rows {
		if item.EmployeeID == "e-1" && item.NetKZT != 386000 {
			t.Fatalf("expected net 386000, got %d", item.NetKZT)
		}
	}

	// Повторный ввод оклада затирает правку.
	row, err = service.SetGross("2026-01", "e-1", "500000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.OPVKZT != 50000 {
		t.Fatalf("expected recalculated opv 50000, got %d", row.OPVKZT)
	}
}

// TestServiceSetFieldErrors проверяет отказы на неизвестных входах.
func TestServiceSetFieldErrors(t *testing.T) {
	service := newTestPayrollService(t)

	if _, err := service.SetField("2026-01", "e-1", "bonus", "1"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if _, err := service.SetField("2026-01", "missing", "opv", "1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.SetGross("2026-01", "missing", "1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestServiceMonthsIsolated проверяет независимость месяцев ведомости.
func TestServiceMonthsIsolated(t *testing.T) {
	service := newTestPayrollService(t)

	if _, err := service.SetGross("2026-01", "e-1", "500000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, summary := service.Rows("2026-02")
	if summary.GrossKZT != 0 {
		t.Fatalf("expected empty february, got %d", summary.GrossKZT)
	}
}
