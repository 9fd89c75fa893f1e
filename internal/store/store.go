package store

// Class selects which storage bucket a key lives in. Instance holds
// singleton administrative data, Persistent holds per-identity records and
// index entries. The split mirrors the host platform's storage lifetime
// classes and has no effect on correctness.
type Class string

const (
	ClassInstance   Class = "instance"
	ClassPersistent Class = "persistent"
)

// Store is the key-value storage contract the registry runs against.
// Implementations must make each individual call atomic; multi-key
// operations are serialized above this interface.
type Store interface {
	Get(class Class, key string) ([]byte, bool, error)
	Set(class Class, key string, value []byte) error
	Has(class Class, key string) (bool, error)
	Remove(class Class, key string) error

	// Keys lists the keys in a class matching a prefix. Used by reporting
	// and background enrichment, never by the transactional operations.
	Keys(class Class, prefix string) ([]string, error)
}
