package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID_EmptyStore(t *testing.T) {
	t.Parallel()

	store := NewStore()

	assert.Equal(t, 1, store.NextID())
}

func TestNextID_RecomputesFromMax(t *testing.T) {
	t.Parallel()

	store := NewStore()
	for id := 1; id <= 3; id++ {
		store.SaveUser(User{ID: id, Username: "u", Password: "p"})
	}

	require.NoError(t, store.DeleteUser(3))
	assert.Equal(t, 3, store.NextID(), "deleting the max id must make it available again")

	store.SaveUser(User{ID: 3, Username: "u3", Password: "p"})
	require.NoError(t, store.DeleteUser(2))
	assert.Equal(t, 4, store.NextID(), "gaps below the max are never reused")
}

func TestDeleteUser_Missing(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SaveUser(User{ID: 1, Username: "alim", Password: "superpassword"})

	err := store.DeleteUser(99)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 1, store.Count())
}

func TestLookups(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SaveUser(User{ID: 1, Username: "alim", Password: "superpassword"})
	store.SaveUser(User{ID: 2, Username: "bea", Password: "anotherpassword"})

	user, ok := store.GetUser(2)
	require.True(t, ok)
	assert.Equal(t, "bea", user.Username)

	user, ok = store.GetUserByUsername("alim")
	require.True(t, ok)
	assert.Equal(t, 1, user.ID)

	_, ok = store.GetUser(3)
	assert.False(t, ok)

	_, ok = store.GetUserByUsername("nobody")
	assert.False(t, ok)
}
