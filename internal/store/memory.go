package store

import (
	"context"
	"sort"
	"sync"

	"stipendtriage/internal/model"
)

// In-memory stores back the service when no database is configured. Reads
// return snapshot copies so concurrent readers never observe a record
// mid-write.
type MemoryApplicationStore struct {
	mu   sync.RWMutex
	apps map[string]model.Application
}

func NewMemoryApplicationStore() *MemoryApplicationStore {
	return &MemoryApplicationStore{apps: make(map[string]model.Application)}
}

func (s *MemoryApplicationStore) Save(_ context.Context, app model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[app.ApplicationID] = app
	return nil
}

func (s *MemoryApplicationStore) GetByID(_ context.Context, id string) (model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if app, ok := s.apps[id]; ok {
		return app, nil
	}
	return model.Application{}, ErrNotFound
}

func (s *MemoryApplicationStore) GetAll(_ context.Context) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	apps := make([]model.Application, 0, len(s.apps))
	for _, app := range s.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].SubmittedAt.Equal(apps[j].SubmittedAt) {
			return apps[i].SubmittedAt.Before(apps[j].SubmittedAt)
		}
		return apps[i].ApplicationID < apps[j].ApplicationID
	})
	return apps, nil
}

func (s *MemoryApplicationStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = make(map[string]model.Application)
	return nil
}

type MemoryHandoffStore struct {
	mu        sync.RWMutex
	records   map[string]model.HandoffRecord
	delivered map[string]bool
}

func NewMemoryHandoffStore() *MemoryHandoffStore {
	return &MemoryHandoffStore{
		records:   make(map[string]model.HandoffRecord),
		delivered: make(map[string]bool),
	}
}

func (s *MemoryHandoffStore) Save(_ context.Context, rec model.HandoffRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.RiskFlags = copyFlags(rec.RiskFlags)
	s.records[rec.ApplicationID] = rec
	return nil
}

func (s *MemoryHandoffStore) GetByID(_ context.Context, id string) (model.HandoffRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[id]; ok {
		rec.RiskFlags = copyFlags(rec.RiskFlags)
		return rec, nil
	}
	return model.HandoffRecord{}, ErrNotFound
}

func (s *MemoryHandoffStore) GetAll(_ context.Context) ([]model.HandoffRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]model.HandoffRecord, 0, len(s.records))
	for _, rec := range s.records {
		rec.RiskFlags = copyFlags(rec.RiskFlags)
		records = append(records, rec)
	}
	sortRecords(records)
	return records, nil
}

func (s *MemoryHandoffStore) GetUndelivered(_ context.Context, limit int) ([]model.HandoffRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []model.HandoffRecord
	for id, rec := range s.records {
		if s.delivered[id] {
			continue
		}
		rec.RiskFlags = copyFlags(rec.RiskFlags)
		records = append(records, rec)
	}
	sortRecords(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *MemoryHandoffStore) MarkDelivered(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	s.delivered[id] = true
	return nil
}

func (s *MemoryHandoffStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]model.HandoffRecord)
	s.delivered = make(map[string]bool)
	return nil
}

func copyFlags(flags []string) []string {
	if flags == nil {
		return nil
	}
	out := make([]string, len(flags))
	copy(out, flags)
	return out
}

// sortRecords orders records oldest first, falling back to ID so listings
// stay stable when timestamps collide.
func sortRecords(records []model.HandoffRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].SubmittedAt.Equal(records[j].SubmittedAt) {
			return records[i].SubmittedAt.Before(records[j].SubmittedAt)
		}
		return records[i].ApplicationID < records[j].ApplicationID
	})
}
