package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

func TestMemoryStoreRevoke(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "a", now.Add(time.Hour)))
	revoked, err := s.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = s.IsRevoked(ctx, "b")
	assert.False(t, revoked)

	// past the token expiry the entry no longer matters
	now = now.Add(2 * time.Hour)
	revoked, _ = s.IsRevoked(ctx, "a")
	assert.False(t, revoked)
}

func TestMemoryStoreDropsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "old", now.Add(time.Minute)))
	require.NoError(t, s.Revoke(ctx, "already-expired", now.Add(-time.Minute)))
	assert.Len(t, s.revoked, 1)

	now = now.Add(time.Hour)
	require.NoError(t, s.Revoke(ctx, "new", now.Add(time.Minute)))
	assert.Len(t, s.revoked, 1)
	assert.Contains(t, s.revoked, "new")
}
