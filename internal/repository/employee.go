package repository

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// EmployeeRepository хранит кадровый реестр; он же реестр учетных записей.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]models.Employee
}

// NewEmployeeRepository создает кадровое хранилище.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]models.Employee)}
}

// List возвращает снимок реестра, отсортированный по табельному номеру.
func (r *EmployeeRepository) List() []models.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		out = append(out, employee)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].EmpNo != out[j].EmpNo {
			return out[i].EmpNo < out[j].EmpNo
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// ListActive возвращает сотрудников без даты увольнения.
func (r *EmployeeRepository) ListActive() []models.Employee {
	all := r.List()
	out := make([]models.Employee, 0, len(all))
	for _, employee := range all {
		if employee.Active() {
			out = append(out, employee)
		}
	}
	return out
}

// Get возвращает сотрудника по идентификатору.
func (r *EmployeeRepository) Get(id string) (models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, ok := r.employees[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	return employee, nil
}

// GetByEmpNo ищет сотрудника по табельному номеру (логин для входа).
func (r *EmployeeRepository) GetByEmpNo(empNo string) (models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, employee := range r.employees {
		if employee.EmpNo == empNo {
			return employee, nil
		}
	}
	return models.Employee{}, ErrNotFound
}

// Create добавляет сотрудника; пустой идентификатор заменяется на UUID.
func (r *EmployeeRepository) Create(employee models.Employee) (models.Employee, error) {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[employee.ID]; exists {
		return models.Employee{}, ErrConflict
	}
	for _, existing := range r.employees {
		if existing.EmpNo == employee.EmpNo {
			return models.Employee{}, ErrConflict
		}
	}
	r.employees[employee.ID] = employee

	return employee, nil
}

// Update заменяет карточку сотрудника, сохраняя хэш пароля.
func (r *EmployeeRepository) Update(id string, employee models.Employee) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.employees[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}

	employee.ID = id
	employee.PasswordHash = current.PasswordHash
	r.employees[id] = employee

	return employee, nil
}

// UpdatePassword сохраняет новый хэш пароля сотрудника.
func (r *EmployeeRepository) UpdatePassword(id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.employees[id]
	if !ok {
		return ErrNotFound
	}

	employee.PasswordHash = passwordHash
	r.employees[id] = employee

	return nil
}
