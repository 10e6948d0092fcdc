package storage

import "context"

// StorageKey is the single named key holding the whole collection.
const StorageKey = "luna_sleep_logs_v1"

// Store is a single-key persistent blob store. Read reports ok=false when
// the key has never been written.
type Store interface {
	Read(ctx context.Context) (data []byte, ok bool, err error)
	Write(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
	Close() error
}
