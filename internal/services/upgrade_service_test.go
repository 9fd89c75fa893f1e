package services

import (
	"context"
	"testing"

	"github.com/alimgiray/contributor-registry/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCodeHash = "9f2d1c0e8b7a65544332211000ffeeddccbbaa998877665544332211009f2d1c"

func TestUpgrade(t *testing.T) {
	t.Run("Admin requests an upgrade", func(t *testing.T) {
		r := newInitializedRegistry("admin1")

		err := r.upgrade.Upgrade(context.Background(), "admin1", testCodeHash)
		assert.NoError(t, err)

		pending, ok, err := r.store.Get(store.ClassInstance, "pending_code_hash")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, testCodeHash, string(pending))

		published := r.sink.Events()
		require.Len(t, published, 1)
		assert.Equal(t, "upgraded", published[0].Name)
		assert.Equal(t, "admin1", published[0].Fields["admin"])
		assert.Equal(t, testCodeHash, published[0].Fields["new_code_hash"])
	})

	t.Run("Non-admin caller is rejected", func(t *testing.T) {
		r := newInitializedRegistry("admin1")

		err := r.upgrade.Upgrade(context.Background(), "intruder", testCodeHash)
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, ok, _ := r.store.Get(store.ClassInstance, "pending_code_hash")
		assert.False(t, ok, "rejected upgrade must not record a hash")
		assert.Empty(t, r.sink.Events())
	})

	t.Run("Before initialize fails", func(t *testing.T) {
		r := newTestRegistry()

		err := r.upgrade.Upgrade(context.Background(), "admin1", testCodeHash)
		assert.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("New admin gains upgrade authority", func(t *testing.T) {
		r := newInitializedRegistry("admin1")
		require.NoError(t, r.admin.SetAdmin(context.Background(), "admin1", "admin2"))

		err := r.upgrade.Upgrade(context.Background(), "admin1", testCodeHash)
		assert.ErrorIs(t, err, ErrUnauthorized)

		assert.NoError(t, r.upgrade.Upgrade(context.Background(), "admin2", testCodeHash))
	})
}
