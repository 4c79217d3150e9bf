//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("encoded cursor decodes to the same key", func(t *testing.T) {
		start := time.Date(2030, 4, 2, 10, 0, 0, 123456000, time.UTC)
		id := uuid.New()

		gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(start, id))
		require.NoError(t, err)
		assert.True(t, start.Equal(gotTime))
		assert.Equal(t, id, gotID)
	})

	t.Run("malformed cursors are rejected", func(t *testing.T) {
		for _, c := range []string{
			"",
			"not base64!",
			base64.RawURLEncoding.EncodeToString([]byte("v2:1:" + uuid.NewString())),
			base64.RawURLEncoding.EncodeToString([]byte("v1:abc:" + uuid.NewString())),
			base64.RawURLEncoding.EncodeToString([]byte("v1:1:not-a-uuid")),
		} {
			_, _, err := queries.DecodeAfterCursor(c)
			assert.Error(t, err, c)
		}
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
