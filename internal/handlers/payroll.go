package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/notifications"
	"github.com/bds22000-prog/kyclean/internal/payroll"
	"github.com/bds22000-prog/kyclean/internal/repository"
)

type PayrollHandler struct {
	Payroll *payroll.Service
	Hub     *notifications.Hub
}

// NewPayrollHandler создает обработчик зарплатной ведомости.
func NewPayrollHandler(payrollService *payroll.Service, hub *notifications.Hub) *PayrollHandler {
	return &PayrollHandler{Payroll: payrollService, Hub: hub}
}

type SetGrossRequest struct {
	Gross string `json:"gross" validate:"required,max=30"`
}

type SetPayrollFieldRequest struct {
	Value string `json:"value" validate:"max=30"`
}

type PayrollResponse struct {
	Month   string                `json:"month"`
	Rows    []payroll.EmployeeRow `json:"rows"`
	Summary payroll.Summary       `json:"summary"`
}

// Get возвращает ведомость за месяц по активным сотрудникам.
func (h *PayrollHandler) Get(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	rows, summary := h.Payroll.Rows(month)
	return c.JSON(http.StatusOK, PayrollResponse{Month: month, Rows: rows, Summary: summary})
}

// SetGross вводит оклад и полностью пересчитывает строку сотрудника.
func (h *PayrollHandler) SetGross(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	var req SetGrossRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	if _, err := h.Payroll.SetGross(month, c.Param("id"), req.Gross); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "employee not found")
		}
		return serverError(c)
	}

	publishRegistryChange(h.Hub, "payroll.updated", c.Param("id"))

	rows, summary := h.Payroll.Rows(month)
	return c.JSON(http.StatusOK, PayrollResponse{Month: month, Rows: rows, Summary: summary})
}

// SetField правит одну ячейку строки без пересчета остальных.
func (h *PayrollHandler) SetField(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	var req SetPayrollFieldRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	if _, err := h.Payroll.SetField(month, c.Param("id"), c.Param("field"), req.Value); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "employee not found")
		}
		if errors.Is(err, payroll.ErrUnknownField) {
			return badRequest(c, "unknown payroll field")
		}
		return serverError(c)
	}

	publishRegistryChange(h.Hub, "payroll.updated", c.Param("id"))

	rows, summary := h.Payroll.Rows(month)
	return c.JSON(http.StatusOK, PayrollResponse{Month: month, Rows: rows, Summary: summary})
}
