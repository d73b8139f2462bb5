package store

import (
	"sort"
	"sync"
)

// InMemoryStore keeps records in process memory
type InMemoryStore struct {
	mu          sync.RWMutex
	content     map[string]SavedContent
	preferences map[string]Preferences
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		content:     make(map[string]SavedContent),
		preferences: make(map[string]Preferences),
	}
}

func (s *InMemoryStore) SaveContent(c SavedContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content[c.ID] = c
	return nil
}

func (s *InMemoryStore) ListContent(userID string) ([]SavedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []SavedContent
	for _, c := range s.content {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) GetContent(id string) (*SavedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.content[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryStore) DeleteContent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.content[id]; !ok {
		return ErrNotFound
	}
	delete(s.content, id)
	return nil
}

func (s *InMemoryStore) SavePreferences(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[p.UserID] = p
	return nil
}

func (s *InMemoryStore) GetPreferences(userID string) (*Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.preferences[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryStore) Close() error {
	return nil
}
