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

type RecyclingHandler struct {
	Recycling *repository.RecyclingRepository
	Report    *report.Service
	Hub       *notifications.Hub
}

// NewRecyclingHandler создает обработчик записей вторсырья.
func NewRecyclingHandler(recycling *repository.RecyclingRepository, reportService *report.Service, hub *notifications.Hub) *RecyclingHandler {
	return &RecyclingHandler{Recycling: recycling, Report: reportService, Hub: hub}
}

type RecyclingRecordRequest struct {
	VendorName       string  `json:"vendor_name" validate:"required,max=200"`
	VendorNameCyr    string  `json:"vendor_name_cyrillic" validate:"omitempty,max=200"`
	Type             string  `json:"type" validate:"required,oneof=Paper Glass Can Plastic Medical Other"`
	Action           string  `json:"action" validate:"required,oneof=Sorting Outbound"`
	Count            int64   `json:"count" validate:"gte=0"`
	WeightTons       float64 `json:"weight_tons" validate:"gte=0"`
	Date             string  `json:"date" validate:"required,datetime=2006-01-02"`
	AmountKZT        int64   `json:"amount_kzt" validate:"gte=0"`
	SortingPersonnel int     `json:"sorting_personnel" validate:"gte=0"`
}

type RecyclingListResponse struct {
	Records []models.RecyclingRecord `json:"records"`
}

// List возвращает записи вторсырья, опционально за месяц (?month=YYYY-MM).
func (h *RecyclingHandler) List(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		return c.JSON(http.StatusOK, RecyclingListResponse{Records: h.Recycling.List()})
	}

	if !report.ValidMonth(month) {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}
	return c.JSON(http.StatusOK, RecyclingListResponse{Records: h.Recycling.ListByMonth(month)})
}

// Get возвращает одну запись вторсырья.
func (h *RecyclingHandler) Get(c echo.Context) error {
	record, err := h.Recycling.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "recycling record not found")
		}
		return serverError(c)
	}
	return c.JSON(http.StatusOK, record)
}

// Create регистрирует сортировку или отгрузку вторсырья.
func (h *RecyclingHandler) Create(c echo.Context) error {
	var req RecyclingRecordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	record, err := h.Recycling.Create(models.RecyclingRecord{
		VendorName:       req.VendorName,
		VendorNameCyr:    req.VendorNameCyr,
		Type:             models.RecyclingType(req.Type),
		Action:           models.RecyclingAction(req.Action),
		Count:            req.Count,
		WeightTons:       req.WeightTons,
		Date:             req.Date,
		AmountKZT:        req.AmountKZT,
		SortingPersonnel: req.SortingPersonnel,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "recycling record already exists")
		}
		return serverError(c)
	}

	h.notifyChanged("recycling.created", record.ID)
	return c.JSON(http.StatusCreated, record)
}

// Update заменяет запись вторсырья целиком.
func (h *RecyclingHandler) Update(c echo.Context) error {
	var req RecyclingRecordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	record, err := h.Recycling.Update(c.Param("id"), models.RecyclingRecord{
		VendorName:       req.VendorName,
		VendorNameCyr:    req.VendorNameCyr,
		Type:             models.RecyclingType(req.Type),
		Action:           models.RecyclingAction(req.Action),
		Count:            req.Count,
		WeightTons:       req.WeightTons,
		Date:             req.Date,
		AmountKZT:        req.AmountKZT,
		SortingPersonnel: req.SortingPersonnel,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "recycling record not found")
		}
		return serverError(c)
	}

	h.notifyChanged("recycling.updated", record.ID)
	return c.JSON(http.StatusOK, record)
}

// Delete удаляет запись вторсырья.
func (h *RecyclingHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.Recycling.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "recycling record not found")
		}
		return serverError(c)
	}

	h.notifyChanged("recycling.deleted", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *RecyclingHandler) notifyChanged(eventType, id string) {
	h.Report.MarkStale()
	publishRegistryChange(h.Hub, eventType, id)
}
