package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lavanya1309/techical-sales-web-application/models"
)

// Store holds the current snapshot of sales records. Implementations must
// make Replace atomic with respect to ReadAll: a reader observes either the
// previous snapshot or the new one, never a transient empty state.
type Store interface {
	// InsertMany appends records, assigning an ID to each record that has
	// none, and returns the stored records.
	InsertMany(ctx context.Context, records []models.SalesRecord) ([]models.SalesRecord, error)

	// ReadAll returns the current snapshot.
	ReadAll(ctx context.Context) ([]models.SalesRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Replace clears the store and inserts records as one guarded operation.
	Replace(ctx context.Context, records []models.SalesRecord) ([]models.SalesRecord, error)
}

// MemoryStore keeps the snapshot in a slice that Replace swaps wholesale.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.SalesRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertMany(_ context.Context, records []models.SalesRecord) ([]models.SalesRecord, error) {
	stored := withIDs(records)

	s.mu.Lock()
	s.records = append(s.records, stored...)
	s.mu.Unlock()

	return stored, nil
}

func (s *MemoryStore) ReadAll(_ context.Context) ([]models.SalesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy so callers never alias the live snapshot
	out := make([]models.SalesRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Replace(_ context.Context, records []models.SalesRecord) ([]models.SalesRecord, error) {
	stored := withIDs(records)

	s.mu.Lock()
	s.records = stored
	s.mu.Unlock()

	return stored, nil
}

// withIDs returns a copy of records with store-assigned IDs filled in.
func withIDs(records []models.SalesRecord) []models.SalesRecord {
	out := make([]models.SalesRecord, len(records))
	copy(out, records)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}
