package repository

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// ClientRepository хранит контрагентов и их помесячные ведомости расчетов.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]models.Client
}

// NewClientRepository создает хранилище контрагентов.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: make(map[string]models.Client)}
}

// List возвращает снимок всех контрагентов, отсортированный по идентификатору.
func (r *ClientRepository) List() []models.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Client, 0, len(r.clients))
	for _, client := range r.clients {
		out = append(out, cloneClient(client))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Get возвращает контрагента по идентификатору.
func (r *ClientRepository) Get(id string) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return models.Client{}, ErrNotFound
	}
	return cloneClient(client), nil
}

// Create добавляет контрагента; пустой идентификатор заменяется на UUID.
func (r *ClientRepository) Create(client models.Client) (models.Client, error) {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.MonthlyLedger == nil {
		client.MonthlyLedger = make(map[string]models.LedgerEntry)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.ID]; exists {
		return models.Client{}, ErrConflict
	}
	r.clients[client.ID] = cloneClient(client)

	return client, nil
}

// Update заменяет карточку контрагента, сохраняя его ведомость.
func (r *ClientRepository) Update(id string, client models.Client) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.clients[id]
	if !ok {
		return models.Client{}, ErrNotFound
	}

	client.ID = id
	client.MonthlyLedger = current.MonthlyLedger
	r.clients[id] = client

	return cloneClient(client), nil
}

// SetLedger записывает начислено/оплачено контрагента за месяц.
// Отрицательные суммы не допускаются; дебиторка при этом может быть
// отрицательной (переплата) и нигде не обрезается.
func (r *ClientRepository) SetLedger(id, month string, entry models.LedgerEntry) (models.Client, error) {
	if entry.BilledKZT < 0 || entry.PaidKZT < 0 {
		return models.Client{}, ErrInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[id]
	if !ok {
		return models.Client{}, ErrNotFound
	}

	if client.MonthlyLedger == nil {
		client.MonthlyLedger = make(map[string]models.LedgerEntry)
	}
	client.MonthlyLedger[month] = entry
	r.clients[id] = client

	return cloneClient(client), nil
}

func cloneClient(client models.Client) models.Client {
	ledger := make(map[string]models.LedgerEntry, len(client.MonthlyLedger))
	for month, entry := range client.MonthlyLedger {
		ledger[month] = entry
	}
	client.MonthlyLedger = ledger
	return client
}
