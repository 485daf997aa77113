package storage

import (
	"context"
	"errors"
)

// Keys for the persisted state blobs. Each service serializes its
// whole value as one JSON document under a fixed key.
const (
	KeyCart  = "cart"
	KeyUser  = "user"
	KeyToken = "token"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is a small key-value store holding JSON-encoded blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
