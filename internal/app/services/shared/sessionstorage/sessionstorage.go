package sessionstorage

import (
	"context"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"sync"
)

// memorySessionStorage forgets everything on restart. It backs one-shot
// CLI invocations that run without redis or mongo.
type memorySessionStorage struct {
	mu      sync.Mutex
	token   string
	profile *models.Profile
}

func NewMemorySessionStorage() contracts.SessionStorage {
	return &memorySessionStorage{}
}

func (s *memorySessionStorage) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memorySessionStorage) LoadToken(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *memorySessionStorage) SaveProfile(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile == nil {
		s.profile = nil
		return nil
	}
	copied := *profile
	s.profile = &copied
	return nil
}

func (s *memorySessionStorage) LoadProfile(context.Context) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, nil
	}
	copied := *s.profile
	return &copied, nil
}

func (s *memorySessionStorage) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	return nil
}
