package core

// KVStore is the durable key-value storage backing the session and the theme.
// Writes are last-writer-wins.
type KVStore interface {
	// Get returns the value stored under key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
