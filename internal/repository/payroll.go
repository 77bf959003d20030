package repository

import (
	"sync"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// PayrollRepository хранит строки расчета зарплаты: месяц -> сотрудник -> строка.
// Строка существует только для пар месяц/сотрудник, которых касались;
// отсутствующая пара читается как нулевая строка.
type PayrollRepository struct {
	mu     sync.RWMutex
	months map[string]map[string]models.PayrollRow
}

// NewPayrollRepository создает хранилище зарплатных строк.
func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{months: make(map[string]map[string]models.PayrollRow)}
}

// Get возвращает строку сотрудника за месяц и признак ее существования.
func (r *PayrollRepository) Get(month, employeeID string) (models.PayrollRow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, ok := r.months[month]
	if !ok {
		return models.PayrollRow{}, false
	}
	row, ok := rows[employeeID]
	return row, ok
}

// Put записывает строку сотрудника за месяц.
func (r *PayrollRepository) Put(month, employeeID string, row models.PayrollRow) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, ok := r.months[month]
	if !ok {
		rows = make(map[string]models.PayrollRow)
		r.months[month] = rows
	}
	rows[employeeID] = row
}

// Rows возвращает снимок всех строк месяца.
func (r *PayrollRepository) Rows(month string) map[string]models.PayrollRow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.months[month]
	out := make(map[string]models.PayrollRow, len(rows))
	for employeeID, row := range rows {
		out[employeeID] = row
	}
	return out
}
