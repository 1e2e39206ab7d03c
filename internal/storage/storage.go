// Package storage defines the durable key-value port the ledger and
// preferences persist through.
package storage

import "context"

// Well-known keys. The whole application state lives under these two.
const (
	KeyLedger      = "pennybook:ledger"
	KeyPreferences = "pennybook:preferences"
)

// KV is a durable string key-value store. Get reports ok=false for absent
// keys; errors are reserved for the backend being unreachable.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
