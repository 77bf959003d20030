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

type WasteHandler struct {
	Waste  *repository.WasteRepository
	Report *report.Service
	Hub    *notifications.Hub
}

// NewWasteHandler создает обработчик весовых записей полигона.
func NewWasteHandler(waste *repository.WasteRepository, reportService *report.Service, hub *notifications.Hub) *WasteHandler {
	return &WasteHandler{Waste: waste, Report: reportService, Hub: hub}
}

type WasteEntryRequest struct {
	VehicleNumber string  `json:"vehicle_number" validate:"required,max=20"`
	ClientName    string  `json:"client_name" validate:"required,max=200"`
	ClientNameCyr string  `json:"client_name_cyrillic" validate:"omitempty,max=200"`
	Type          string  `json:"type" validate:"required,oneof=General Construction Medical"`
	WeightTons    float64 `json:"weight_tons" validate:"required,gt=0"`
	EntryDate     string  `json:"entry_date" validate:"required,datetime=2006-01-02"`
	CostKZT       int64   `json:"cost_kzt" validate:"gte=0"`
}

type WasteListResponse struct {
	Entries []models.WasteEntry `json:"entries"`
}

// List возвращает весовые записи, опционально за один месяц (?month=YYYY-MM).
func (h *WasteHandler) List(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		return c.JSON(http.StatusOK, WasteListResponse{Entries: h.Waste.List()})
	}

	if !report.ValidMonth(month) {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}
	return c.JSON(http.StatusOK, WasteListResponse{Entries: h.Waste.ListByMonth(month)})
}

// Get возвращает одну весовую запись.
func (h *WasteHandler) Get(c echo.Context) error {
	entry, err := h.Waste.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "waste entry not found")
		}
		return serverError(c)
	}
	return c.JSON(http.StatusOK, entry)
}

// Create регистрирует прием отходов.
func (h *WasteHandler) Create(c echo.Context) error {
	var req WasteEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	entry, err := h.Waste.Create(models.WasteEntry{
		VehicleNumber: req.VehicleNumber,
		ClientName:    req.ClientName,
		ClientNameCyr: req.ClientNameCyr,
		Type:          models.WasteType(req.Type),
		WeightTons:    req.WeightTons,
		EntryDate:     req.EntryDate,
		CostKZT:       req.CostKZT,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "waste entry already exists")
		}
		return serverError(c)
	}

	h.notifyChanged("waste.created", entry.ID)
	return c.JSON(http.StatusCreated, entry)
}

// Update заменяет весовую запись целиком.
func (h *WasteHandler) Update(c echo.Context) error {
	var req WasteEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	entry, err := h.Waste.Update(c.Param("id"), models.WasteEntry{
		VehicleNumber: req.VehicleNumber,
		ClientName:    req.ClientName,
		ClientNameCyr: req.ClientNameCyr,
		Type:          models.WasteType(req.Type),
		WeightTons:    req.WeightTons,
		EntryDate:     req.EntryDate,
		CostKZT:       req.CostKZT,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "waste entry not found")
		}
		return serverError(c)
	}

	h.notifyChanged("waste.updated", entry.ID)
	return c.JSON(http.StatusOK, entry)
}

// Delete удаляет весовую запись.
func (h *WasteHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.Waste.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "waste entry not found")
		}
		return serverError(c)
	}

	h.notifyChanged("waste.deleted", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *WasteHandler) notifyChanged(eventType, id string) {
	h.Report.MarkStale()
	publishRegistryChange(h.Hub, eventType, id)
}
