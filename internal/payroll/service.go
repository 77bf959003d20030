package payroll

import (
	"errors"

	"github.com/bds22000-prog/kyclean/internal/models"
	"github.com/bds22000-prog/kyclean/internal/repository"
)

// ErrUnknownField возвращается при правке несуществующей ячейки ведомости.
var ErrUnknownField = errors.New("unknown payroll field")

// EmployeeRow - строка ведомости: сохраненные суммы плюс производные
// итоги, посчитанные при чтении.
type EmployeeRow struct {
	EmployeeID      string            `json:"employee_id"`
	EmpNo           string            `json:"emp_no"`
	Name            string            `json:"name"`
	NameCyr         string            `json:"name_cyr"`
	Department      string            `json:"department"`
	Row             models.PayrollRow `json:"amounts"`
	NetKZT          int64             `json:"net_kzt"`
	EmployerCostKZT int64             `json:"employer_cost_kzt"`
}

// Summary - итоговая строка ведомости. Каждая колонка суммируется
// независимо, чтобы итог сходился и после ручных правок отдельных ячеек.
type Summary struct {
	GrossKZT        int64 `json:"gross_kzt"`
	OPVKZT          int64 `json:"opv_kzt"`
	IPNKZT          int64 `json:"ipn_kzt"`
	VOMSKZT         int64 `json:"voms_kzt"`
	SocTaxKZT       int64 `json:"soc_tax_kzt"`
	SocContKZT      int64 `json:"soc_cont_kzt"`
	OSMSKZT         int64 `json:"osms_kzt"`
	NetKZT          int64 `json:"net_kzt"`
	EmployerCostKZT int64 `json:"employer_cost_kzt"`
}

// Service ведет месячные зарплатные ведомости по активным сотрудникам.
type Service struct {
	rows      *repository.PayrollRepository
	employees *repository.EmployeeRepository
}

// NewService создает зарплатный сервис.
func NewService(rows *repository.PayrollRepository, employees *repository.EmployeeRepository) *Service {
	return &Service{rows: rows, employees: employees}
}

// Rows возвращает ведомость за месяц: строку на каждого активного
// сотрудника (нулевую, если оклад еще не вводили) и итоговую строку.
func (s *Service) Rows(month string) ([]EmployeeRow, Summary) {
	active := s.employees.ListActive()

	out := make([]EmployeeRow, 0, len(active))
	var total Summary
	for _, employee := range active {
		row, _ := s.rows.Get(month, employee.ID)

		item := EmployeeRow{
			EmployeeID:      employee.ID,
			EmpNo:           employee.EmpNo,
			Name:            employee.Name,
			NameCyr:         employee.NameCyr,
			Department:      employee.Department,
			Row:             row,
			NetKZT:          Net(row),
			EmployerCostKZT: EmployerCost(row),
		}
		out = append(out, item)

		total.GrossKZT += row.GrossKZT
		total.OPVKZT += row.OPVKZT
		total.IPNKZT += row.IPNKZT
		total.VOMSKZT += row.VOMSKZT
		total.SocTaxKZT += row.SocTaxKZT
		total.SocContKZT += row.SocContKZT
		total.OSMSKZT += row.OSMSKZT
		total.NetKZT += item.NetKZT
		total.EmployerCostKZT += item.EmployerCostKZT
	}

	return out, total
}

// SetGross вводит грязный оклад и полностью пересчитывает строку
// сотрудника, затирая прежние ручные правки ее ячеек.
func (s *Service) SetGross(month, employeeID, raw string) (models.PayrollRow, error) {
	if _, err := s.employees.Get(employeeID); err != nil {
		return models.PayrollRow{}, err
	}

	row := Calculate(CoerceAmount(raw))
	s.rows.Put(month, employeeID, row)
	return row, nil
}

// SetField правит одну ячейку строки без каскадного пересчета остальных.
// Производные итоги при следующем чтении учтут новое значение сами.
func (s *Service) SetField(month, employeeID, field, raw string) (models.PayrollRow, error) {
	if _, err := s.employees.Get(employeeID); err != nil {
		return models.PayrollRow{}, err
	}

	row, _ := s.rows.Get(month, employeeID)
	amount := CoerceAmount(raw)

	switch field {
	case "gross":
		row.GrossKZT = amount
	case "opv":
		row.OPVKZT = amount
	case "ipn":
		row.IPNKZT = amount
	case "voms":
		row.VOMSKZT = amount
	case "soc_tax":
		row.SocTaxKZT = amount
	case "soc_cont":
		row.SocContKZT = amount
	case "osms":
		row.OSMSKZT = amount
	default:
		return models.PayrollRow{}, ErrUnknownField
	}

	s.rows.Put(month, employeeID, row)
	return row, nil
}
