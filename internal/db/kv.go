package db

import "context"

// Entry is one key write. A nil Value deletes the key.
type Entry struct {
	Key   string
	Value []byte
}

// KV is the durable key-value store behind every collection.
//
// Get returns (nil, false, nil) for a missing key. Put applies all entries
// atomically: readers see either none or all of them.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, entries ...Entry) error
	Close() error
}
