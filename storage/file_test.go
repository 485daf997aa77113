package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	payload := []byte(`{"hello":"world"}`)

	require.NoError(t, store.Set(ctx, KeyCart, payload))

	got, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), KeyUser)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, store.Delete(ctx, KeyToken))

	_, err = store.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, KeyToken))
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyCart, []byte("[]")))
	require.NoError(t, store.Set(ctx, KeyCart, []byte(`[{"id":"1"}]`)))

	got, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)
}
