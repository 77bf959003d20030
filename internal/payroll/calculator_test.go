package payroll

import "testing"

// TestCalculate проверяет расчет удержаний для оклада 500 000 тенге.
func TestCalculate(t *testing.T) {
	row := Calculate(500000)

	if row.OPVKZT != 50000 {
		t.Fatalf("expected opv 50000, got %d", row.OPVKZT)
	}
	if row.VOMSKZT != 10000 {
		t.Fatalf("expected voms 10000, got %d", row.VOMSKZT)
	}
	if row.IPNKZT != 44000 {
		t.Fatalf("expected ipn 44000, got %d", row.IPNKZT)
	}
	if row.SocContKZT != 17500 {
		t.Fatalf("expected soc cont 17500, got %d", row.SocContKZT)
	}
	if row.SocTaxKZT != 30000 {
		t.Fatalf("expected soc tax 30000, got %d", row.SocTaxKZT)
	}
	if row.OSMSKZT != 15000 {
		t.Fatalf("expected osms 15000, got %d", row.OSMSKZT)
	}

	if net := Net(row); net != 396000 {
		t.Fatalf("expected net 396000, got %d", net)
	}
	if cost := EmployerCost(row); cost != 562500 {
		t.Fatalf("expected employer cost 562500, got %d", cost)
	}
}

// TestCalculateZero проверяет нулевой оклад.
func TestCalculateZero(t *testing.T) {
	row := Calculate(0)

	if row.OPVKZT != 0 || row.IPNKZT != 0 || row.SocTaxKZT != 0 {
		t.Fatalf("expected zero deductions, got %+v", row)
	}
	if Net(row) != 0 || EmployerCost(row) != 0 {
		t.Fatalf("expected zero totals, got net %d cost %d", Net(row), EmployerCost(row))
	}
}

// TestCalculateTruncation проверяет усечение каждой ставки вниз.
func TestCalculateTruncation(t *testing.T) {
	row := Calculate(100001)

	if row.OPVKZT != 10000 {
		t.Fatalf("expected opv 10000, got %d", row.OPVKZT)
	}
	if row.SocContKZT != 3500 {
		t.Fatalf("expected soc cont 3500, got %d", row.SocContKZT)
	}
	if row.SocTaxKZT != 6000 {
		t.Fatalf("expected soc tax 6000, got %d", row.SocTaxKZT)
	}
}

// TestCoerceAmount проверяет приведение произвольного ввода к тенге.
func TestCoerceAmount(t *testing.T) {
	cases := map[string]int64{
		"1,500,000": 1500000,
		"500000 тг": 500000,
		" 42 ":      42,
		"abc":       0,
		"":          0,
	}

	for raw, want := range cases {
		if got := CoerceAmount(raw); got != want {
			t.Fatalf("CoerceAmount(%q): expected %d, got %d", raw, want, got)
		}
	}
}
