package memory

import (
	"context"
	"sync"

	"companion/internal/preferences/models"
	"companion/pkg/platform/sentinel"
)

// Store keeps one preferences document in memory. Load hands out copies so
// callers cannot mutate the stored value.
type Store struct {
	mu    sync.RWMutex
	prefs *models.Preferences
}

func New() *Store {
	return &Store{}
}

// NewWith returns a store seeded with prefs.
func NewWith(prefs models.Preferences) *Store {
	return &Store{prefs: &prefs}
}

func (s *Store) Load(_ context.Context) (*models.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.prefs == nil {
		return nil, sentinel.ErrNotFound
	}
	out := *s.prefs
	return &out, nil
}

func (s *Store) Save(_ context.Context, prefs *models.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *prefs
	s.prefs = &stored
	return nil
}
