// Package kvstore is a small key/value byte store used as the persistence
// layer of the local event backend.
package kvstore

// Store persists opaque values by key.
// Get reports ok=false for a missing key; it is not an error.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}
