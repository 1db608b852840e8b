// Package kv is the whole-document key-value port backing all persisted
// state. Every document (app data, recycle bin, users, refresh tokens) is a
// single serialized blob under a fixed key; there are no partial updates and
// no schema validation. Callers decide what to do with a missing or corrupt
// document.
package kv

// Store reads and writes whole serialized documents. Get reports absence via
// the second return value rather than an error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
