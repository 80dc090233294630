package store

import (
	"context"
	"slices"
	"sync"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkgerror"
	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
	"github.com/shandysiswandi/pricelist/internal/pricelist/usecase"
)

// InMemoryStore keeps every loaded row for the life of the process.
// Rows are only ever appended.
type InMemoryStore struct {
	mu     sync.RWMutex
	rows   []entity.PriceRow
	report *entity.LoadReport
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) AppendRows(ctx context.Context, rows []entity.PriceRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, rows...)

	return nil
}

// ListRows returns matching rows in load order. The slice is a fresh copy
// the caller may reorder.
func (s *InMemoryStore) ListRows(ctx context.Context, filter usecase.RowFilter) ([]entity.PriceRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entity.PriceRow, 0, len(s.rows))
	for _, row := range s.rows {
		if filter.Matches(row) {
			items = append(items, row)
		}
	}

	return items, nil
}

func (s *InMemoryStore) SaveReport(ctx context.Context, report entity.LoadReport) error {
	report.Files = slices.Clone(report.Files)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.report = &report

	return nil
}

func (s *InMemoryStore) GetReport(ctx context.Context) (entity.LoadReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return entity.LoadReport{}, pkgerror.ErrNotFound
	}

	report := *s.report
	report.Files = slices.Clone(report.Files)

	return report, nil
}
