package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// RefreshToken - выданный refresh-токен; хранится только хэш.
type RefreshToken struct {
	ID         uuid.UUID
	EmployeeID string
	TokenHash  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	RevokedAt  *time.Time
	ReplacedBy *uuid.UUID
}

// RefreshTokenRepository хранит refresh-токены в памяти процесса:
// перезапуск сервиса разлогинивает всех, что для этой системы приемлемо.
type RefreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[uuid.UUID]RefreshToken
}

// NewRefreshTokenRepository создает хранилище refresh-токенов.
func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{tokens: make(map[uuid.UUID]RefreshToken)}
}

// Create сохраняет новый refresh-токен.
func (r *RefreshTokenRepository) Create(token RefreshToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token.ID]; exists {
		return ErrConflict
	}
	r.tokens[token.ID] = token

	return nil
}

// GetByID возвращает токен по идентификатору.
func (r *RefreshTokenRepository) GetByID(id uuid.UUID) (RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[id]
	if !ok {
		return RefreshToken{}, ErrNotFound
	}
	return token, nil
}

// Rotate отзывает старый токен и атомарно сохраняет новый.
func (r *RefreshTokenRepository) Rotate(oldID uuid.UUID, newToken RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.tokens[oldID]
	if !ok {
		return ErrNotFound
	}

	now := time.Now().UTC()
	old.RevokedAt = &now
	old.ReplacedBy = &newToken.ID
	r.tokens[oldID] = old

	if newToken.CreatedAt.IsZero() {
		newToken.CreatedAt = now
	}
	r.tokens[newToken.ID] = newToken

	return nil
}

// Revoke отзывает токен.
func (r *RefreshTokenRepository) Revoke(id uuid.UUID, replacedBy *uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[id]
	if !ok {
		return ErrNotFound
	}

	now := time.Now().UTC()
	token.RevokedAt = &now
	token.ReplacedBy = replacedBy
	r.tokens[id] = token

	return nil
}
