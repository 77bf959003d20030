package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// WasteRepository хранит весовые записи в памяти процесса.
// Данные живут в рамках сессии приложения, персистентности нет.
type WasteRepository struct {
	mu      sync.RWMutex
	entries map[string]models.WasteEntry
}

// NewWasteRepository создает хранилище весовых записей.
func NewWasteRepository() *WasteRepository {
	return &WasteRepository{entries: make(map[string]models.WasteEntry)}
}

// List возвращает снимок всех записей, отсортированный по дате приема.
func (r *WasteRepository) List() []models.WasteEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.WasteEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].EntryDate != out[j].EntryDate {
			return out[i].EntryDate < out[j].EntryDate
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// ListByMonth возвращает записи с датой в заданном месяце YYYY-MM.
func (r *WasteRepository) ListByMonth(month string) []models.WasteEntry {
	all := r.List()
	out := make([]models.WasteEntry, 0, len(all))
	for _, entry := range all {
		if strings.HasPrefix(entry.EntryDate, month+"-") {
			out = append(out, entry)
		}
	}
	return out
}

// Get возвращает запись по идентификатору.
func (r *WasteRepository) Get(id string) (models.WasteEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return models.WasteEntry{}, ErrNotFound
	}
	return entry, nil
}

// Create добавляет запись; пустой идентификатор заменяется на UUID.
func (r *WasteRepository) Create(entry models.WasteEntry) (models.WasteEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return models.WasteEntry{}, ErrConflict
	}
	r.entries[entry.ID] = entry

	return entry, nil
}

// Update заменяет существующую запись целиком.
func (r *WasteRepository) Update(id string, entry models.WasteEntry) (models.WasteEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.entries[id]
	if !ok {
		return models.WasteEntry{}, ErrNotFound
	}

	entry.ID = id
	entry.CreatedAt = current.CreatedAt
	r.entries[id] = entry

	return entry, nil
}

// Delete удаляет запись.
func (r *WasteRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)

	return nil
}
