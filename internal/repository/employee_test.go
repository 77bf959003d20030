package repository

import (
	"errors"
	"testing"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// TestEmployeeCreateUniqueEmpNo проверяет уникальность табельного номера.
func TestEmployeeCreateUniqueEmpNo(t *testing.T) {
	employees := NewEmployeeRepository()

	if _, err := employees.Create(models.Employee{EmpNo: "WY-0001", Name: "황성신"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := employees.Create(models.Employee{EmpNo: "WY-0001", Name: "다른 사람"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

// TestEmployeeGetByEmpNo проверяет поиск по табельному номеру.
func TestEmployeeGetByEmpNo(t *testing.T) {
	employees := NewEmployeeRepository()

	created, err := employees.Create(models.Employee{EmpNo: "WY-0007", Name: "에르란"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := employees.GetByEmpNo("WY-0007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, found.ID)
	}

	if _, err := employees.GetByEmpNo("WY-9999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestEmployeeUpdatePreservesPassword проверяет сохранность хэша пароля.
func TestEmployeeUpdatePreservesPassword(t *testing.T) {
	employees := NewEmployeeRepository()

	created, err := employees.Create(models.Employee{EmpNo: "WY-0009", Name: "마리나", PasswordHash: "hash-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := employees.Update(created.ID, models.Employee{EmpNo: "WY-0009", Name: "마리나", Department: "회계"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PasswordHash != "hash-1" {
		t.Fatalf("expected password hash to survive update, got %q", updated.PasswordHash)
	}

	if err := employees.UpdatePassword(created.ID, "hash-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fresh, err := employees.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.PasswordHash != "hash-2" {
		t.Fatalf("expected new hash, got %q", fresh.PasswordHash)
	}
}

// TestEmployeeListActive проверяет фильтр работающих сотрудников.
func TestEmployeeListActive(t *testing.T) {
	employees := NewEmployeeRepository()

	if _, err := employees.Create(models.Employee{EmpNo: "WY-0001", Name: "황성신"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := employees.Create(models.Employee{EmpNo: "WY-0002", Name: "배대식", ResignationDate: "2025-10-31"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active := employees.ListActive()
	if len(active) != 1 || active[0].EmpNo != "WY-0001" {
		t.Fatalf("expected only WY-0001 active, got %v", active)
	}
}
