package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", "kyclean", 15*time.Minute, 24*time.Hour)
}

// TestTokenPairRoundTrip проверяет выпуск и разбор пары токенов.
func TestTokenPairRoundTrip(t *testing.T) {
	manager := newTestManager()
	refreshID := uuid.New()

	pair, err := manager.NewTokenPair("e-1", refreshID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := manager.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "e-1" {
		t.Fatalf("expected subject e-1, got %s", claims.Subject)
	}

	refreshClaims, err := manager.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshClaims.ID != refreshID.String() {
		t.Fatalf("expected refresh id %s, got %s", refreshID, refreshClaims.ID)
	}
}

// TestTokenTypeMismatch проверяет отказ при подмене типа токена.
func TestTokenTypeMismatch(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.NewTokenPair("e-1", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := manager.ParseRefreshToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for access token used as refresh")
	}
	if _, err := manager.ParseAccessToken(pair.RefreshToken); err == nil {
		t.Fatal("expected error for refresh token used as access")
	}
}

// TestTokenWrongSecret проверяет отказ на чужой подписи.
func TestTokenWrongSecret(t *testing.T) {
	manager := newTestManager()
	other := NewTokenManager("other-secret", "kyclean", 15*time.Minute, 24*time.Hour)

	pair, err := manager.NewTokenPair("e-1", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := other.ParseAccessToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

// TestCompareTokenHash проверяет сравнение хэша refresh-токена.
func TestCompareTokenHash(t *testing.T) {
	hash := HashToken("token-value")

	if !CompareTokenHash(hash, "token-value") {
		t.Fatal("expected hash to match original token")
	}
	if CompareTokenHash(hash, "another-token") {
		t.Fatal("expected mismatch for different token")
	}
}
