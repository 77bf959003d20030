package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/models"
	"github.com/bds22000-prog/kyclean/internal/notifications"
	"github.com/bds22000-prog/kyclean/internal/report"
	"github.com/bds22000-prog/kyclean/internal/repository"
)

type ClientHandler struct {
	Clients *repository.ClientRepository
	Report  *report.Service
	Hub     *notifications.Hub
}

// NewClientHandler создает обработчик контрагентов.
func NewClientHandler(clients *repository.ClientRepository, reportService *report.Service, hub *notifications.Hub) *ClientHandler {
	return &ClientHandler{Clients: clients, Report: reportService, Hub: hub}
}

type ClientRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	NameCyr          string `json:"name_cyrillic" validate:"omitempty,max=200"`
	Phone            string `json:"phone" validate:"omitempty,max=30"`
	DefaultFeePerTon int64  `json:"default_fee_per_ton" validate:"gte=0"`
	RegistrationDate string `json:"registration_date" validate:"omitempty,datetime=2006-01-02"`
}

type LedgerRequest struct {
	BilledKZT int64 `json:"billed_kzt" validate:"gte=0"`
	PaidKZT   int64 `json:"paid_kzt" validate:"gte=0"`
}

type ClientListResponse struct {
	Clients []models.Client `json:"clients"`
}

// ClientReceivable - дебиторка одного контрагента за месяц. Переплата
// дает отрицательное сальдо и показывается как есть.
type ClientReceivable struct {
	ClientID      string `json:"client_id"`
	Name          string `json:"name"`
	BilledKZT     int64  `json:"billed_kzt"`
	PaidKZT       int64  `json:"paid_kzt"`
	ReceivableKZT int64  `json:"receivable_kzt"`
}

type ReceivablesResponse struct {
	Month    string             `json:"month"`
	Items    []ClientReceivable `json:"items"`
	TotalKZT int64              `json:"total_kzt"`
}

// List возвращает всех контрагентов.
func (h *ClientHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, ClientListResponse{Clients: h.Clients.List()})
}

// Get возвращает одного контрагента с его помесячной ведомостью.
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.Clients.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "client not found")
		}
		return serverError(c)
	}
	return c.JSON(http.StatusOK, client)
}

// Create регистрирует контрагента.
func (h *ClientHandler) Create(c echo.Context) error {
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	client, err := h.Clients.Create(models.Client{
		Name:             req.Name,
		NameCyr:          req.NameCyr,
		Phone:            req.Phone,
		DefaultFeePerTon: req.DefaultFeePerTon,
		RegistrationDate: req.RegistrationDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "client already exists")
		}
		return serverError(c)
	}

	publishRegistryChange(h.Hub, "client.created", client.ID)
	return c.JSON(http.StatusCreated, client)
}

// Update обновляет карточку контрагента, не трогая ведомость.
func (h *ClientHandler) Update(c echo.Context) error {
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	client, err := h.Clients.Update(c.Param("id"), models.Client{
		Name:             req.Name,
		NameCyr:          req.NameCyr,
		Phone:            req.Phone,
		DefaultFeePerTon: req.DefaultFeePerTon,
		RegistrationDate: req.RegistrationDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "client not found")
		}
		return serverError(c)
	}

	h.notifyChanged("client.updated", client.ID)
	return c.JSON(http.StatusOK, client)
}

// SetLedger записывает начислено/оплачено контрагента за месяц.
func (h *ClientHandler) SetLedger(c echo.Context) error {
	month := c.Param("month")
	if !report.ValidMonth(month) {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	var req LedgerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	client, err := h.Clients.SetLedger(c.Param("id"), month, models.LedgerEntry{
		BilledKZT: req.BilledKZT,
		PaidKZT:   req.PaidKZT,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "client not found")
		}
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "billed and paid amounts must not be negative")
		}
		return serverError(c)
	}

	h.notifyChanged("client.ledger_updated", client.ID)
	return c.JSON(http.StatusOK, client)
}

// Receivables возвращает дебиторку по всем контрагентам за месяц.
func (h *ClientHandler) Receivables(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = report.CurrentMonth()
	}
	if !report.ValidMonth(month) {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	clients := h.Clients.List()
	items := make([]ClientReceivable, 0, len(clients))
	var total int64
	for _, client := range clients {
		entry, ok := client.MonthlyLedger[month]
		if !ok {
			continue
		}

		receivable := entry.BilledKZT - entry.PaidKZT
		items = append(items, ClientReceivable{
			ClientID:      client.ID,
			Name:          client.Name,
			BilledKZT:     entry.BilledKZT,
			PaidKZT:       entry.PaidKZT,
			ReceivableKZT: receivable,
		})
		total += receivable
	}

	return c.JSON(http.StatusOK, ReceivablesResponse{Month: month, Items: items, TotalKZT: total})
}

func (h *ClientHandler) notifyChanged(eventType, id string) {
	h.Report.MarkStale()
	publishRegistryChange(h.Hub, eventType, id)
}
