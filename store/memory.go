package store

import (
	"context"
	"sync"
	"time"

	"zadachnik/models"
)

// MemoryStore implements TaskStore over a map. It backs the router
// tests and is handy for running the bot without Postgres.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]models.Task
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		tasks:  make(map[int64]models.Task),
	}
}

func (s *MemoryStore) Add(_ context.Context, text string, user int64, status, category string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.tasks[id] = models.Task{
		ID:        id,
		Text:      text,
		User:      user,
		CreatedAt: time.Now().UTC(),
		Status:    status,
		Category:  category,
	}
	return id, nil
}

func (s *MemoryStore) List(_ context.Context, user int64) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Task{}
	// ids are assigned sequentially, so iterating in id order preserves
	// insertion order
	for id := int64(1); id < s.nextID; id++ {
		t, ok := s.tasks[id]
		if ok && t.User == user {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id, user int64) (models.Task, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok || t.User != user {
		return models.Task{}, false, nil
	}
	return t, true, nil
}

func (s *MemoryStore) Update(_ context.Context, id, user int64, status, category *string) error {
	if status == nil && category == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.User != user {
		return nil
	}
	if status != nil {
		t.Status = *status
	}
	if category != nil {
		t.Category = *category
	}
	s.tasks[id] = t
	return nil
}
