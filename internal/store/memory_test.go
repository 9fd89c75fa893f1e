package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreBasicOperations(t *testing.T) {
	m := NewMemory()

	t.Run("Get missing key", func(t *testing.T) {
		_, ok, err := m.Get(ClassPersistent, "missing")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Set and Get", func(t *testing.T) {
		err := m.Set(ClassPersistent, "contributor:addr1", []byte("payload"))
		assert.NoError(t, err)

		value, ok, err := m.Get(ClassPersistent, "contributor:addr1")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("payload"), value)
	})

	t.Run("Has", func(t *testing.T) {
		ok, err := m.Has(ClassPersistent, "contributor:addr1")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = m.Has(ClassInstance, "contributor:addr1")
		assert.NoError(t, err)
		assert.False(t, ok, "classes should be isolated")
	})

	t.Run("Remove", func(t *testing.T) {
		err := m.Remove(ClassPersistent, "contributor:addr1")
		assert.NoError(t, err)

		ok, err := m.Has(ClassPersistent, "contributor:addr1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Remove missing key is a no-op", func(t *testing.T) {
		assert.NoError(t, m.Remove(ClassPersistent, "never-stored"))
	})
}

func TestMemoryStoreKeys(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.Set(ClassPersistent, "contributor:b", []byte("1")))
	assert.NoError(t, m.Set(ClassPersistent, "contributor:a", []byte("2")))
	assert.NoError(t, m.Set(ClassPersistent, "github:alice", []byte("3")))
	assert.NoError(t, m.Set(ClassInstance, "admin", []byte("4")))

	keys, err := m.Keys(ClassPersistent, "contributor:")
	assert.NoError(t, err)
	assert.Equal(t, []string{"contributor:a", "contributor:b"}, keys)

	keys, err = m.Keys(ClassPersistent, "")
	assert.NoError(t, err)
	assert.Len(t, keys, 3)
}

func TestMemoryStoreValueIsolation(t *testing.T) {
	m := NewMemory()

	original := []byte("original")
	assert.NoError(t, m.Set(ClassInstance, "admin", original))

	// Mutating the caller's slice must not leak into the store
	original[0] = 'X'

	value, ok, err := m.Get(ClassInstance, "admin")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("original"), value)

	// Mutating a returned slice must not leak either
	value[0] = 'Y'
	again, _, _ := m.Get(ClassInstance, "admin")
	assert.Equal(t, []byte("original"), again)
}
