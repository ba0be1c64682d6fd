package store

import (
	"context"
	"sync"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/ledger"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"
)

// MemoryStore is an in-memory ledger.Store for tests. It preserves
// insertion order and can be forced to fail either operation.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.ExpenseRecord
	nextID  int64

	// InsertErr and ScanErr, when set, are returned by the corresponding
	// operation to simulate storage failure.
	InsertErr error
	ScanErr   error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Insert appends a copy of the record, assigning ID and RecordedAt.
func (m *MemoryStore) Insert(_ context.Context, record *models.ExpenseRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertErr != nil {
		return m.InsertErr
	}

	record.ID = m.nextID
	record.RecordedAt = time.Now().UTC()
	m.nextID++

	stored := *record
	stored.Categories = append([]models.Category{}, record.Categories...)
	m.records = append(m.records, stored)
	return nil
}

// Scan returns copies of the matching records in insertion order.
func (m *MemoryStore) Scan(_ context.Context, filter ledger.Filter) ([]models.ExpenseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ScanErr != nil {
		return nil, m.ScanErr
	}

	var matches []models.ExpenseRecord
	for _, record := range m.records {
		if filter.Category != "" && !record.HasCategory(filter.Category) {
			continue
		}
		if filter.Date != "" && record.Date != filter.Date {
			continue
		}
		copied := record
		copied.Categories = append([]models.Category{}, record.Categories...)
		matches = append(matches, copied)
	}
	return matches, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
