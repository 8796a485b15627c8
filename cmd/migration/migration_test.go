package migration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSessionIndexes(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		indexes := sessionIndexes(0)
		require.Len(t, indexes, 1)
		assert.Equal(t, bson.D{{Key: "updated_at", Value: 1}}, indexes[0].Keys)
		assert.Equal(t, "updated_at", *indexes[0].Options.Name)
		assert.Nil(t, indexes[0].Options.ExpireAfterSeconds)
	})

	t.Run("ttl", func(t *testing.T) {
		indexes := sessionIndexes(72 * time.Hour)
		require.Len(t, indexes, 1)
		assert.Equal(t, "updated_at_ttl", *indexes[0].Options.Name)
		assert.Equal(t, int32(259200), *indexes[0].Options.ExpireAfterSeconds)
	})
}
