package report

import (
	"testing"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// TestClassifyBuckets проверяет разнесение тоннажа по корзинам за месяц.
func TestClassifyBuckets(t *testing.T) {
	entries := []models.WasteEntry{
		{ClientName: "크즐오르다 시 주택국", WeightTons: 10, EntryDate: "2026-01-10"},
		{ClientName: "에코오일 그룹", WeightTons: 5, EntryDate: "2026-01-12"},
	}

	weights := Classify(FilterMonth(entries, "2026-01"), DefaultMarkers())

	if weights.Total != 15 {
		t.Fatalf("expected total 15, got %v", weights.Total)
	}
	if weights.City != 10 {
		t.Fatalf("expected city 10, got %v", weights.City)
	}
	if weights.RouteB != 0 || weights.Commercial != 0 {
		t.Fatalf("expected empty route and commercial buckets, got %v and %v", weights.RouteB, weights.Commercial)
	}
	if weights.Other != 5 {
		t.Fatalf("expected other 5, got %v", weights.Other)
	}
}

// TestClassifyResidual проверяет, что четыре корзины всегда сходятся с
// итогом, даже когда имя контрагента попадает в несколько корзин сразу.
func TestClassifyResidual(t *testing.T) {
	entries := []models.WasteEntry{
		{ClientName: "타스보겟 시 관리소", WeightTons: 8, EntryDate: "2026-03-01"},
		{ClientName: "일반 업체", WeightTons: 2, EntryDate: "2026-03-02"},
	}

	weights := Classify(entries, DefaultMarkers())

	sum := weights.City + weights.RouteB + weights.Commercial + weights.Other
	if sum != weights.Total {
		t.Fatalf("expected buckets to sum to total %v, got %v", weights.Total, sum)
	}
	// Запись учтена и в городской, и в тасбогетской корзине.
	if weights.City != 8 || weights.RouteB != 8 {
		t.Fatalf("expected overlapping entry in both buckets, got city %v route %v", weights.City, weights.RouteB)
	}
	if weights.Other != -6 {
		t.Fatalf("expected residual -6, got %v", weights.Other)
	}
}

// TestFilterMonth проверяет срез записей по месяцу.
func TestFilterMonth(t *testing.T) {
	entries := []models.WasteEntry{
		{ID: "a", EntryDate: "2026-01-05"},
		{ID: "b", EntryDate: "2026-02-01"},
		{ID: "c", EntryDate: "2025-01-05"},
	}

	got := FilterMonth(entries, "2026-01")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only entry a, got %v", got)
	}
}

// TestFilterAccumulated проверяет накопление с начала года по конец месяца.
func TestFilterAccumulated(t *testing.T) {
	entries := []models.WasteEntry{
		{ID: "prev-year", EntryDate: "2025-12-31"},
		{ID: "january", EntryDate: "2026-01-15"},
		{ID: "boundary", EntryDate: "2026-02-28"},
		{ID: "next", EntryDate: "2026-03-01"},
	}

	got := FilterAccumulated(entries, "2026-02")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, entry := range got {
		if entry.ID != "january" && entry.ID != "boundary" {
			t.Fatalf("unexpected entry %s", entry.ID)
		}
	}
}

// TestValidMonth проверяет валидацию ключа месяца.
func TestValidMonth(t *testing.T) {
	if !ValidMonth("2026-01") {
		t.Fatal("expected 2026-01 to be valid")
	}
	for _, month := range []string{"2026-13", "2026-1", "202601", "abc"} {
		if ValidMonth(month) {
			t.Fatalf("expected %s to be invalid", month)
		}
	}
}
