package repository

import (
	"errors"
	"testing"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// TestClientSetLedger проверяет запись и перезапись месячной ведомости.
func TestClientSetLedger(t *testing.T) {
	clients := NewClientRepository()

	created, err := clients.Create(models.Client{Name: "EcoOil Group"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := clients.SetLedger(created.ID, "2026-01", models.LedgerEntry{BilledKZT: 100000, PaidKZT: 120000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := updated.MonthlyLedger["2026-01"]
	if entry.BilledKZT != 100000 || entry.PaidKZT != 120000 {
		t.Fatalf("unexpected ledger entry: %+v", entry)
	}

	// Повторная запись заменяет месяц целиком.
	updated, err = clients.SetLedger(created.ID, "2026-01", models.LedgerEntry{BilledKZT: 200000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.MonthlyLedger["2026-01"].PaidKZT != 0 {
		t.Fatalf("expected paid to be reset, got %d", updated.MonthlyLedger["2026-01"].PaidKZT)
	}
}

// TestClientSetLedgerRejectsNegative проверяет отказ на отрицательных суммах.
func TestClientSetLedgerRejectsNegative(t *testing.T) {
	clients := NewClientRepository()

	created, err := clients.Create(models.Client{Name: "Tazalyk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := clients.SetLedger(created.ID, "2026-01", models.LedgerEntry{BilledKZT: -1}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if _, err := clients.SetLedger("missing", "2026-01", models.LedgerEntry{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestClientUpdatePreservesLedger проверяет сохранность ведомости при
// обновлении карточки.
func TestClientUpdatePreservesLedger(t *testing.T) {
	clients := NewClientRepository()

	created, err := clients.Create(models.Client{Name: "Alem Kurylys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := clients.SetLedger(created.ID, "2026-01", models.LedgerEntry{BilledKZT: 50000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := clients.Update(created.ID, models.Client{Name: "Alem Kurylys AQ", DefaultFeePerTon: 2200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Alem Kurylys AQ" {
		t.Fatalf("expected updated name, got %s", updated.Name)
	}
	if updated.MonthlyLedger["2026-01"].BilledKZT != 50000 {
		t.Fatal("expected ledger to survive card update")
	}
}

// TestClientSnapshotIsolation проверяет, что снимки не делят ведомость
// с хранилищем.
func TestClientSnapshotIsolation(t *testing.T) {
	clients := NewClientRepository()

	created, err := clients.Create(models.Client{Name: "Bayshat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := clients.SetLedger(created.ID, "2026-01", models.LedgerEntry{BilledKZT: 10000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot, err := clients.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot.MonthlyLedger["2026-01"] = models.LedgerEntry{BilledKZT: 999999}

	fresh, err := clients.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.MonthlyLedger["2026-01"].BilledKZT != 10000 {
		t.Fatal("expected stored ledger to be unaffected by snapshot mutation")
	}
}
