package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/auth"
	"github.com/bds22000-prog/kyclean/internal/models"
	"github.com/bds22000-prog/kyclean/internal/notifications"
	"github.com/bds22000-prog/kyclean/internal/report"
	"github.com/bds22000-prog/kyclean/internal/repository"
)

type EmployeeHandler struct {
	Employees *repository.EmployeeRepository
	Report    *report.Service
	Hub       *notifications.Hub
}

// NewEmployeeHandler создает обработчик реестра сотрудников.
func NewEmployeeHandler(employees *repository.EmployeeRepository, reportService *report.Service, hub *notifications.Hub) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees, Report: reportService, Hub: hub}
}

type EmployeeRequest struct {
	EmpNo           string   `json:"emp_no" validate:"required,max=20"`
	Name            string   `json:"name" validate:"required,max=100"`
	NameCyr         string   `json:"name_cyrillic" validate:"omitempty,max=100"`
	Role            string   `json:"role" validate:"required,oneof=Admin Manager Staff"`
	Department      string   `json:"department" validate:"omitempty,max=100"`
	Company         string   `json:"company" validate:"omitempty,max=50"`
	Password        string   `json:"password" validate:"omitempty,min=4,max=72"`
	JoinDate        string   `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	ResignationDate string   `json:"resignation_date" validate:"omitempty,datetime=2006-01-02"`
	AllowedMenus    []string `json:"allowed_menus" validate:"omitempty,dive,max=30"`
}

type EmployeeListResponse struct {
	Employees []AuthEmployee `json:"employees"`
}

// List возвращает сотрудников; ?active=true ограничивает работающими.
func (h *EmployeeHandler) List(c echo.Context) error {
	var employees []models.Employee
	if c.QueryParam("active") == "true" {
		employees = h.Employees.ListActive()
	} else {
		employees = h.Employees.List()
	}

	out := make([]AuthEmployee, 0, len(employees))
	for _, employee := range employees {
		out = append(out, toAuthEmployee(employee))
	}
	return c.JSON(http.StatusOK, EmployeeListResponse{Employees: out})
}

// Get возвращает карточку сотрудника.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.Employees.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "employee not found")
		}
		return serverError(c)
	}
	return c.JSON(http.StatusOK, EmployeeResponse{Employee: toAuthEmployee(employee)})
}

// Create заводит сотрудника. Пароль обязателен при создании: без него
// учетная запись не сможет войти.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}
	if req.Password == "" {
		return badRequest(c, "password is required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return serverError(c)
	}

	employee, err := h.Employees.Create(models.Employee{
		EmpNo:           req.EmpNo,
		Name:            req.Name,
		NameCyr:         req.NameCyr,
		Role:            models.UserRole(req.Role),
		Department:      req.Department,
		Company:         req.Company,
		PasswordHash:    hash,
		JoinDate:        req.JoinDate,
		ResignationDate: req.ResignationDate,
		AllowedMenus:    req.AllowedMenus,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "employee number already exists")
		}
		return serverError(c)
	}

	h.notifyChanged("employee.created", employee.ID)
	return c.JSON(http.StatusCreated, EmployeeResponse{Employee: toAuthEmployee(employee)})
}

// Update обновляет карточку сотрудника. Пароль здесь не меняется:
// хранимый хэш сохраняется, для смены есть отдельный сценарий.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	employee, err := h.Employees.Update(c.Param("id"), models.Employee{
		EmpNo:           req.EmpNo,
		Name:            req.Name,
		NameCyr:         req.NameCyr,
		Role:            models.UserRole(req.Role),
		Department:      req.Department,
		Company:         req.Company,
		JoinDate:        req.JoinDate,
		ResignationDate: req.ResignationDate,
		AllowedMenus:    req.AllowedMenus,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "employee not found")
		}
		return serverError(c)
	}

	h.notifyChanged("employee.updated", employee.ID)
	return c.JSON(http.StatusOK, EmployeeResponse{Employee: toAuthEmployee(employee)})
}

func (h *EmployeeHandler) notifyChanged(eventType, id string) {
	h.Report.MarkStale()
	publishRegistryChange(h.Hub, eventType, id)
}
