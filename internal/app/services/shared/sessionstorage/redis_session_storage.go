package sessionstorage

import (
	"context"
	"fmt"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type redisSessionStorage struct {
	repository contracts.RedisRepository
	tokenKey   string
	profileKey string
}

func NewRedisSessionStorage(repository contracts.RedisRepository, namespace string) contracts.SessionStorage {
	return &redisSessionStorage{
		repository: repository,
		tokenKey:   fmt.Sprintf(constvars.RedisSessionTokenKeyFormat, namespace),
		profileKey: fmt.Sprintf(constvars.RedisSessionProfileKeyFormat, namespace),
	}
}

func (s *redisSessionStorage) SaveToken(ctx context.Context, token string) error {
	return s.repository.Set(ctx, s.tokenKey, token, 0)
}

func (s *redisSessionStorage) LoadToken(ctx context.Context) (string, error) {
	raw, err := s.repository.Get(ctx, s.tokenKey)
	if err != nil || raw == "" {
		return "", err
	}

	var token string
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return token, nil
}

func (s *redisSessionStorage) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return s.repository.Delete(ctx, s.profileKey)
	}
	return s.repository.Set(ctx, s.profileKey, profile, 0)
}

func (s *redisSessionStorage) LoadProfile(ctx context.Context) (*models.Profile, error) {
	raw, err := s.repository.Get(ctx, s.profileKey)
	if err != nil || raw == "" {
		return nil, err
	}

	profile := new(models.Profile)
	if err := json.Unmarshal([]byte(raw), profile); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return profile, nil
}

func (s *redisSessionStorage) Clear(ctx context.Context) error {
	return s.repository.Delete(ctx, s.tokenKey, s.profileKey)
}
