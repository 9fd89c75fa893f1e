package repositories

import (
	"github.com/alimgiray/contributor-registry/internal/store"
)

const githubIndexKeyPrefix = "github:"

// GithubIndexRepository maintains the reverse mapping from GitHub handle to
// address. It exists to enforce handle uniqueness and enable handle lookup,
// and must stay consistent with the contributor records on every write.
type GithubIndexRepository struct {
	store store.Store
}

func NewGithubIndexRepository(s store.Store) *GithubIndexRepository {
	return &GithubIndexRepository{store: s}
}

func githubIndexKey(handle string) string {
	return githubIndexKeyPrefix + handle
}

// Resolve returns the address the handle currently points at.
func (r *GithubIndexRepository) Resolve(handle string) (string, bool, error) {
	value, ok, err := r.store.Get(store.ClassPersistent, githubIndexKey(handle))
	if err != nil || !ok {
		return "", false, err
	}
	return string(value), true, nil
}

// Available reports whether the handle is free for the given address: either
// no entry exists, or the existing entry already points at that address.
func (r *GithubIndexRepository) Available(handle, address string) (bool, error) {
	owner, ok, err := r.Resolve(handle)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return owner == address, nil
}

// Reindex moves the index entry from oldHandle to newHandle. The removal
// happens before the insertion, and only when the handle actually changed,
// so re-indexing a handle onto itself never transiently drops the entry.
func (r *GithubIndexRepository) Reindex(oldHandle, newHandle, address string) error {
	if oldHandle != "" && oldHandle != newHandle {
		if err := r.store.Remove(store.ClassPersistent, githubIndexKey(oldHandle)); err != nil {
			return err
		}
	}
	return r.store.Set(store.ClassPersistent, githubIndexKey(newHandle), []byte(address))
}
