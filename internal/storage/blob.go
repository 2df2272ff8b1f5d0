package storage

import (
	"context"
	"errors"
	"io"
)

var ErrBadKey = errors.New("invalid blob key")

// BlobStore keeps uploaded recordings.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error) // returns bytes written
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
