// Package storage persists small string values that must survive a restart,
// such as the serialized session.
package storage

import "context"

// KV is a string key-value store. Get reports ok=false for a missing key;
// Delete of a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
