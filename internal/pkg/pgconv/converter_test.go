//go:build unit

package pgconv_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockRoundTrip(t *testing.T) {
	d := 9*time.Hour + 30*time.Minute
	pt := pgconv.ClockToPgtype(&d)
	require.True(t, pt.Valid)

	got := pgconv.ClockFromPgtype(pt)
	require.NotNil(t, got)
	assert.Equal(t, d, *got)

	assert.False(t, pgconv.ClockToPgtype(nil).Valid)
	assert.Nil(t, pgconv.ClockFromPgtype(pgconv.ClockToPgtype(nil)))
}

func TestUUIDPtr(t *testing.T) {
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
}

func TestPgErrorCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	assert.Equal(t, "23P01", pgconv.PgErrorCode(err))
	assert.Equal(t, "", pgconv.PgErrorCode(errors.New("plain")))
}

func TestIntToInt32(t *testing.T) {
	assert.Equal(t, int32(42), pgconv.IntToInt32(42))
	assert.Equal(t, int32(math.MaxInt32), pgconv.IntToInt32(math.MaxInt32+1))
	assert.Equal(t, int32(math.MinInt32), pgconv.IntToInt32(math.MinInt32-1))
}
