package report

import (
	"reflect"
	"testing"

	"github.com/bds22000-prog/kyclean/internal/models"
)

func testSources() Sources {
	return Sources{
		Waste: []models.WasteEntry{
			{ClientName: "크즐오르다 시 주택국", WeightTons: 10, EntryDate: "2026-01-10"},
			{ClientName: "에코오일 그룹", WeightTons: 5.5, EntryDate: "2026-01-12"},
		},
		Recycling: []models.RecyclingRecord{
			{Type: models.RecyclingPlastic, Action: models.ActionOutbound, AmountKZT: 450000, Date: "2026-01-20"},
			{Type: models.RecyclingPlastic, Action: models.ActionSorting, Count: 300, Date: "2026-01-21"},
			{Type: models.RecyclingPaper, Action: models.ActionOutbound, AmountKZT: 100000, Date: "2026-01-22"},
		},
		Clients: []models.Client{
			{ID: "c-1", MonthlyLedger: map[string]models.LedgerEntry{
				"2026-01": {BilledKZT: 2000000, PaidKZT: 1500000},
			}},
			{ID: "c-2", MonthlyLedger: map[string]models.LedgerEntry{
				"2026-01": {BilledKZT: 100000, PaidKZT: 120000},
			}},
		},
		Employees: []models.Employee{
			{ID: "e-1"},
			{ID: "e-2"},
			{ID: "e-3", ResignationDate: "2025-12-31"},
		},
	}
}

// TestRecomputeFields проверяет значения и форматирование ячеек отчета.
func TestRecomputeFields(t *testing.T) {
	aggregator := NewAggregator(DefaultMarkers(), 0.70)
	values := aggregator.Recompute("2026-01", testSources())

	cases := map[string]string{
		"op_total_curr":      "15.50",
		"op_city_curr":       "10.00",
		"op_pet_curr":        "5.50",
		"fin_rev_total_curr": "2,100,000",
		"fin_rev_pet_curr":   "450,000",
		"fin_ar_curr":        "480,000",
		"fin_exp_curr":       "1470000",
		"fin_ebit_curr":      "630,000",
		"fin_sal_curr":       "8,922,136",
		"fin_tax_p_curr":     "1,200,178",
		"fin_tax_c_curr":     "1,162,092",
		"hr_total_curr":      "2",
		"hr_total_prev":      "1",
		"hr_total_var":       "1",
		"hr_sort_curr":       "5",
	}
	for id, want := range cases {
		if got := values[id]; got != want {
			t.Fatalf("field %s: expected %q, got %q", id, want, got)
		}
	}

	if len(values) != len(Fields) {
		t.Fatalf("expected %d fields, got %d", len(Fields), len(values))
	}
}

// TestRecomputeIdempotent проверяет идемпотентность пересчета.
func TestRecomputeIdempotent(t *testing.T) {
	aggregator := NewAggregator(DefaultMarkers(), 0.70)

	first := aggregator.Recompute("2026-01", testSources())
	second := aggregator.Recompute("2026-01", testSources())

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical maps for identical inputs")
	}
}

// TestRecomputeNegativeReceivables проверяет отрицательную дебиторку.
func TestRecomputeNegativeReceivables(t *testing.T) {
	src := Sources{
		Clients: []models.Client{
			{ID: "c-1", MonthlyLedger: map[string]models.LedgerEntry{
				"2026-02": {BilledKZT: 100000, PaidKZT: 120000},
			}},
		},
	}

	aggregator := NewAggregator(DefaultMarkers(), 0.70)
	values := aggregator.Recompute("2026-02", src)

	if got := values["fin_ar_curr"]; got != "-20,000" {
		t.Fatalf("expected -20,000, got %q", got)
	}
}

// TestRecomputeExpenseRatio проверяет настраиваемую долю расходов.
func TestRecomputeExpenseRatio(t *testing.T) {
	src := Sources{
		Clients: []models.Client{
			{ID: "c-1", MonthlyLedger: map[string]models.LedgerEntry{
				"2026-02": {BilledKZT: 1000000},
			}},
		},
	}

	aggregator := NewAggregator(DefaultMarkers(), 0.65)
	values := aggregator.Recompute("2026-02", src)

	if got := values["fin_exp_curr"]; got != "650000" {
		t.Fatalf("expected 650000, got %q", got)
	}
	if got := values["fin_ebit_curr"]; got != "350,000" {
		t.Fatalf("expected 350,000, got %q", got)
	}
}

// TestPlasticCounters проверяет промежуточные показатели по пластику.
func TestPlasticCounters(t *testing.T) {
	src := testSources()

	if got := PlasticSortedCount(src.Recycling, "2026-01"); got != 300 {
		t.Fatalf("expected 300 sorted, got %d", got)
	}
	if got := PETOutboundRevenue(src.Recycling, "2026-01"); got != 450000 {
		t.Fatalf("expected 450000 revenue, got %d", got)
	}
	if got := PETOutboundRevenue(src.Recycling, "2026-02"); got != 0 {
		t.Fatalf("expected 0 revenue for empty month, got %d", got)
	}
}
