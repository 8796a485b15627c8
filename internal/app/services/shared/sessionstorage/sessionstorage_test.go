package sessionstorage

import (
	"context"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedisRepository mimics the JSON encoding of the redis repository.
type fakeRedisRepository struct {
	values map[string]string
}

func (r *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(raw)
	return nil
}

func (r *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeRedisRepository) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}

func exerciseStorage(t *testing.T, storage contracts.SessionStorage) {
	ctx := context.Background()

	token, err := storage.LoadToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	profile, err := storage.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, storage.SaveToken(ctx, "tok-1"))
	require.NoError(t, storage.SaveProfile(ctx, &models.Profile{Name: "Jane", Email: "jane@example.com"}))

	token, err = storage.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	profile, err = storage.LoadProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Jane", profile.Name)

	require.NoError(t, storage.Clear(ctx))

	token, err = storage.LoadToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	profile, err = storage.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestRedisSessionStorage(t *testing.T) {
	repository := &fakeRedisRepository{values: map[string]string{}}
	storage := NewRedisSessionStorage(repository, "device-1")

	t.Run("Round Trip", func(t *testing.T) {
		exerciseStorage(t, storage)
	})

	t.Run("Keys Are Namespaced", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, storage.SaveToken(ctx, "tok-2"))
		assert.Equal(t, `"tok-2"`, repository.values["medibook:session:device-1:token"])
	})

	t.Run("Corrupt Value", func(t *testing.T) {
		repository.values["medibook:session:device-1:profile"] = "{not json"
		_, err := storage.LoadProfile(context.Background())
		assert.Error(t, err)
	})
}

func TestMemorySessionStorage(t *testing.T) {
	exerciseStorage(t, NewMemorySessionStorage())
}
