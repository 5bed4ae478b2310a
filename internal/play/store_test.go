package play

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_AbsentSession(t *testing.T) {
	store := NewMemorySessionStore()

	session, err := store.Load(context.Background(), "device:abc", "g1", "2025-06-14")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	session := &Session{
		UserID:   "device:abc",
		GameID:   "g1",
		Date:     "2025-06-14",
		Attempts: []string{"Zed"},
	}
	require.NoError(t, store.Save(context.Background(), session))

	loaded, err := store.Load(context.Background(), "device:abc", "g1", "2025-06-14")
	require.NoError(t, err)
	assert.Equal(t, session.Attempts, loaded.Attempts)

	// the stored snapshot is isolated from later mutation
	loaded.Attempts = append(loaded.Attempts, "Ann")
	again, err := store.Load(context.Background(), "device:abc", "g1", "2025-06-14")
	require.NoError(t, err)
	assert.Len(t, again.Attempts, 1)
}

func TestMemorySessionStore_KeysByIdentityGameAndDate(t *testing.T) {
	store := NewMemorySessionStore()
	require.NoError(t, store.Save(context.Background(), &Session{
		UserID: "device:abc", GameID: "g1", Date: "2025-06-14",
	}))

	otherDevice, err := store.Load(context.Background(), "device:xyz", "g1", "2025-06-14")
	require.NoError(t, err)
	assert.Nil(t, otherDevice)

	otherDay, err := store.Load(context.Background(), "device:abc", "g1", "2025-06-15")
	require.NoError(t, err)
	assert.Nil(t, otherDay)
}
