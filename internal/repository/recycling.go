package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// RecyclingRepository хранит записи сортировки и отгрузки вторсырья.
type RecyclingRepository struct {
	mu      sync.RWMutex
	records map[string]models.RecyclingRecord
}

// NewRecyclingRepository создает хранилище записей вторсырья.
func NewRecyclingRepository() *RecyclingRepository {
	return &RecyclingRepository{records: make(map[string]models.RecyclingRecord)}
}

// List возвращает снимок всех записей, отсортированный по дате.
func (r *RecyclingRepository) List() []models.RecyclingRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.RecyclingRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// ListByMonth возвращает записи с датой в заданном месяце YYYY-MM.
func (r *RecyclingRepository) ListByMonth(month string) []models.RecyclingRecord {
	all := r.List()
	out := make([]models.RecyclingRecord, 0, len(all))
	for _, record := range all {
		if strings.HasPrefix(record.Date, month+"-") {
			out = append(out, record)
		}
	}
	return out
}

// Get возвращает запись по идентификатору.
func (r *RecyclingRepository) Get(id string) (models.RecyclingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return models.RecyclingRecord{}, ErrNotFound
	}
	return record, nil
}

// Create добавляет запись; пустой идентификатор заменяется на UUID.
func (r *RecyclingRepository) Create(record models.RecyclingRecord) (models.RecyclingRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return models.RecyclingRecord{}, ErrConflict
	}
	r.records[record.ID] = record

	return record, nil
}

// Update заменяет существующую запись целиком.
func (r *RecyclingRepository) Update(id string, record models.RecyclingRecord) (models.RecyclingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[id]
	if !ok {
		return models.RecyclingRecord{}, ErrNotFound
	}

	record.ID = id
	record.CreatedAt = current.CreatedAt
	r.records[id] = record

	return record, nil
}

// Delete удаляет запись.
func (r *RecyclingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)

	return nil
}
