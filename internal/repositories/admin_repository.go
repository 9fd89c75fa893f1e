package repositories

import (
	"github.com/alimgiray/contributor-registry/internal/store"
)

const adminKey = "admin"

// AdminRepository persists the singleton administrator address in the
// instance storage class.
type AdminRepository struct {
	store store.Store
}

func NewAdminRepository(s store.Store) *AdminRepository {
	return &AdminRepository{store: s}
}

func (r *AdminRepository) Exists() (bool, error) {
	return r.store.Has(store.ClassInstance, adminKey)
}

// Get returns the stored admin address, or "" when the registry has not
// been initialized.
func (r *AdminRepository) Get() (string, bool, error) {
	value, ok, err := r.store.Get(store.ClassInstance, adminKey)
	if err != nil || !ok {
		return "", false, err
	}
	return string(value), true, nil
}

func (r *AdminRepository) Set(admin string) error {
	return r.store.Set(store.ClassInstance, adminKey, []byte(admin))
}
