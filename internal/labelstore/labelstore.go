package labelstore

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("label image not found")

// LabelStore keeps the register label photos attached to cash drops.
type LabelStore interface {
	Save(ctx context.Context, prefix, mimeType string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, storageKey string) error
}
