package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository backs the catalog when the memory storage driver is used.
type MemoryRepository struct {
	mu        sync.RWMutex
	gyms      map[string]Gym
	programs  map[string]Program
	donations map[string]DonationOption
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		gyms:      make(map[string]Gym),
		programs:  make(map[string]Program),
		donations: make(map[string]DonationOption),
	}
}

func (m *MemoryRepository) CreateGym(_ context.Context, g Gym) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.gyms[g.ID]; ok {
		return ErrAlreadyExists
	}
	m.gyms[g.ID] = g
	return nil
}

func (m *MemoryRepository) ListGyms(_ context.Context) ([]Gym, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Gym, 0, len(m.gyms))
	for _, g := range m.gyms {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryRepository) DeleteGym(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.gyms[id]; !ok {
		return ErrNotFound
	}
	delete(m.gyms, id)
	return nil
}

func (m *MemoryRepository) CreateProgram(_ context.Context, p Program) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.programs[p.ID]; ok {
		return ErrAlreadyExists
	}
	m.programs[p.ID] = p
	return nil
}

func (m *MemoryRepository) ListPrograms(_ context.Context) ([]Program, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Program, 0, len(m.programs))
	for _, p := range m.programs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *MemoryRepository) DeleteProgram(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.programs[id]; !ok {
		return ErrNotFound
	}
	delete(m.programs, id)
	return nil
}

func (m *MemoryRepository) CreateDonationOption(_ context.Context, o DonationOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.donations[o.ID]; ok {
		return ErrAlreadyExists
	}
	m.donations[o.ID] = o
	return nil
}

func (m *MemoryRepository) ListDonationOptions(_ context.Context) ([]DonationOption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]DonationOption, 0, len(m.donations))
	for _, o := range m.donations {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out, nil
}

func (m *MemoryRepository) DeleteDonationOption(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.donations[id]; !ok {
		return ErrNotFound
	}
	delete(m.donations, id)
	return nil
}
