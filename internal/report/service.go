package report

import (
	"errors"
	"sync"
)

// ErrUnknownField возвращается при попытке править ячейку вне набора Fields.
var ErrUnknownField = errors.New("unknown report field")

// SourceReader отдает снимки реестров для пересчета отчета.
type SourceReader interface {
	Snapshot() Sources
}

// Service держит состояние отчета за просматриваемый месяц: карту ячеек и
// признак устаревания. Ручные правки живут в этой карте до следующего
// пересчета; пересчет строит карту заново и правки пропадают.
type Service struct {
	aggregator *Aggregator
	sources    SourceReader

	mu     sync.Mutex
	month  string
	values map[string]string
	stale  bool
}

// NewService создает сервис отчета поверх агрегатора и источников данных.
func NewService(aggregator *Aggregator, sources SourceReader) *Service {
	return &Service{aggregator: aggregator, sources: sources}
}

// Values возвращает ячейки отчета за месяц. Смена месяца и устаревшие
// данные приводят к свежему пересчету, включая сброс ручных правок.
func (s *Service) Values(month string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil || s.month != month || s.stale {
		s.recomputeLocked(month)
	}
	return cloneValues(s.values)
}

// SetField правит одну ячейку текущей карты. Правка не пересчитывает
// остальные ячейки и живет до следующего пересчета.
func (s *Service) SetField(month, fieldID, text string) (map[string]string, error) {
	if !KnownField(fieldID) {
		return nil, ErrUnknownField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil || s.month != month || s.stale {
		s.recomputeLocked(month)
	}
	s.values[fieldID] = text

	return cloneValues(s.values), nil
}

// RecomputeAndDiscardOverrides заново строит карту ячеек из исходных
// записей. Все ручные правки при этом теряются.
func (s *Service) RecomputeAndDiscardOverrides(month string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recomputeLocked(month)
	return cloneValues(s.values)
}

// MarkStale помечает текущую карту устаревшей. Вызывается обработчиками
// при изменении исходных реестров; следующий Values выполнит пересчет.
func (s *Service) MarkStale() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

func (s *Service) recomputeLocked(month string) {
	s.month = month
	s.values = s.aggregator.Recompute(month, s.sources.Snapshot())
	s.stale = false
}

func cloneValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for id, text := range values {
		out[id] = text
	}
	return out
}
