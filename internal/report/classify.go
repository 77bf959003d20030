package report

import (
	"strings"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// Markers - маркеры-подстроки для разнесения веса по корзинам отчета.
// Ищутся в наименовании контрагента весовой записи.
type Markers struct {
	City       string
	RouteB     string
	Commercial string
}

// DefaultMarkers возвращает маркеры кызылординского полигона.
func DefaultMarkers() Markers {
	return Markers{
		City:       "시",
		RouteB:     "타스보겟",
		Commercial: "타잘리크",
	}
}

// BucketWeights - тоннаж по корзинам. Other считается вычитанием из общего
// итога, а не прямой фильтрацией: так четыре корзины всегда сходятся с
// итогом, даже если имя контрагента содержит несколько маркеров сразу.
// Сами корзины City/RouteB/Commercial при этом не взаимоисключающие.
type BucketWeights struct {
	Total      float64
	City       float64
	RouteB     float64
	Commercial float64
	Other      float64
}

// Classify разносит вес переданных записей по корзинам.
func Classify(entries []models.WasteEntry, markers Markers) BucketWeights {
	weights := BucketWeights{
		Total:      sumWeights(entries, ""),
		City:       sumWeights(entries, markers.City),
		RouteB:     sumWeights(entries, markers.RouteB),
		Commercial: sumWeights(entries, markers.Commercial),
	}
	weights.Other = weights.Total - (weights.City + weights.RouteB + weights.Commercial)
	return weights
}

// TotalWeight возвращает суммарный тоннаж записей.
func TotalWeight(entries []models.WasteEntry) float64 {
	return sumWeights(entries, "")
}

// sumWeights суммирует вес записей, имя контрагента которых содержит маркер.
// Пустой маркер означает все записи. Суммирование идет в полной точности,
// округление до двух знаков выполняется только при отображении.
func sumWeights(entries []models.WasteEntry, marker string) float64 {
	var sum float64
	for _, entry := range entries {
		if marker == "" || strings.Contains(entry.ClientName, marker) {
			sum += entry.WeightTons
		}
	}
	return sum
}

// FilterMonth оставляет записи текущего месяца (префикс даты YYYY-MM).
func FilterMonth(entries []models.WasteEntry, month string) []models.WasteEntry {
	out := make([]models.WasteEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.EntryDate, month+"-") {
			out = append(out, entry)
		}
	}
	return out
}

// FilterAccumulated оставляет записи с начала календарного года по конец
// выбранного месяца. Граница сравнивается как строка "YYYY-MM-31": день 31
// покрывает любой реальный день месяца.
func FilterAccumulated(entries []models.WasteEntry, month string) []models.WasteEntry {
	year := month[:4]
	bound := month + "-31"

	out := make([]models.WasteEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.EntryDate, year+"-") && entry.EntryDate <= bound {
			out = append(out, entry)
		}
	}
	return out
}
