package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	_, ok := storage.Get("missing")
	assert.False(t, ok)

	storage.Set("k", "v")
	value, ok := storage.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	storage.Remove("k")
	_, ok = storage.Get("k")
	assert.False(t, ok)
}

func TestFileStorage(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, ok := storage.Get("missing")
	assert.False(t, ok)

	storage.Set(StorageKey, `[{"id":"latte"}]`)
	value, ok := storage.Get(StorageKey)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"latte"}]`, value)

	// removing twice must stay quiet
	storage.Remove(StorageKey)
	storage.Remove(StorageKey)
	_, ok = storage.Get(StorageKey)
	assert.False(t, ok)
}

func TestFileStorageBacksARepository(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	repo := NewRepository(storage)
	repo.Add(Line{ID: "espresso", Name: "Espresso", Price: 3.5, Quantity: 2})

	// a second repository on the same directory sees the saved cart
	reopened := NewRepository(storage)
	c := reopened.Get()
	require.Len(t, c, 1)
	assert.Equal(t, 2, c[0].Quantity)
}
