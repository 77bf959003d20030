package config

import (
	"testing"
)

// TestLoadDefaults проверяет значения по умолчанию при минимальном окружении.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "/dev/null")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Report.ExpenseRatio != 0.70 {
		t.Fatalf("expected default expense ratio 0.70, got %v", cfg.Report.ExpenseRatio)
	}
	if cfg.Report.MarkerRouteB != "타스보겟" {
		t.Fatalf("unexpected default route marker: %q", cfg.Report.MarkerRouteB)
	}
	if cfg.Seed.DemoData {
		t.Fatal("expected demo seed to be off by default")
	}
}

// TestLoadRequiresSecret проверяет обязательность JWT_SECRET.
func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("ENV_FILE", "/dev/null")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

// TestLoadRejectsBadRatio проверяет границы доли расходов.
func TestLoadRejectsBadRatio(t *testing.T) {
	t.Setenv("ENV_FILE", "/dev/null")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REPORT_EXPENSE_RATIO", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for expense ratio outside (0, 1)")
	}
}

// TestParseFloatEnv проверяет разбор дробных значений из ENV.
func TestParseFloatEnv(t *testing.T) {
	t.Setenv("TEST_RATIO", "0.65")

	got, err := parseFloatEnv("TEST_RATIO", 0.70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.65 {
		t.Fatalf("expected 0.65, got %v", got)
	}

	got, err = parseFloatEnv("MISSING_RATIO", 0.70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.70 {
		t.Fatalf("expected fallback 0.70, got %v", got)
	}
}
