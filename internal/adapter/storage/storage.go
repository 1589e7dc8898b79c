package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

// KV is the local key-value store backing cart and wishlist
// persistence.
type KV struct {
	db *pebble.DB
}

func OpenKV(dir string) (*KV, error) {
	const op = "storage.OpenKV"

	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &KV{db: db}, nil
}

// Get returns the stored value for key. A missing key reports
// ok=false, not an error.
func (kv *KV) Get(key string) (val []byte, ok bool) {
	const op = "KV.Get"

	v, closer, err := kv.db.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, pebble.ErrNotFound) {
			slog.Warn("failed to read key", "op", op, "key", key, "err", err)
		}
		return nil, false
	}
	val = append([]byte(nil), v...)
	_ = closer.Close()
	return val, true
}

func (kv *KV) Set(key string, val []byte) error {
	const op = "KV.Set"

	if err := kv.db.Set([]byte(key), val, pebble.Sync); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (kv *KV) Close() {
	const op = "KV.Close"

	if err := kv.db.Close(); err != nil {
		slog.Error("failed to close kv store", "op", op, "err", err)
	}
}
