package repositories

import (
	"encoding/json"
	"strings"

	"github.com/alimgiray/contributor-registry/internal/models"
	"github.com/alimgiray/contributor-registry/internal/store"
)

const contributorKeyPrefix = "contributor:"

// ContributorRepository owns the primary mapping from address to profile
// record, stored in the persistent class as JSON values.
type ContributorRepository struct {
	store store.Store
}

func NewContributorRepository(s store.Store) *ContributorRepository {
	return &ContributorRepository{store: s}
}

func contributorKey(address string) string {
	return contributorKeyPrefix + address
}

func (r *ContributorRepository) Exists(address string) (bool, error) {
	return r.store.Has(store.ClassPersistent, contributorKey(address))
}

func (r *ContributorRepository) Get(address string) (*models.Contributor, bool, error) {
	value, ok, err := r.store.Get(store.ClassPersistent, contributorKey(address))
	if err != nil || !ok {
		return nil, false, err
	}

	var contributor models.Contributor
	if err := json.Unmarshal(value, &contributor); err != nil {
		return nil, false, err
	}

	return &contributor, true, nil
}

func (r *ContributorRepository) Save(contributor *models.Contributor) error {
	value, err := json.Marshal(contributor)
	if err != nil {
		return err
	}

	return r.store.Set(store.ClassPersistent, contributorKey(contributor.Address), value)
}

// All returns every stored contributor ordered by address. Used by
// reporting and the enrichment worker, not by transactional operations.
func (r *ContributorRepository) All() ([]*models.Contributor, error) {
	keys, err := r.store.Keys(store.ClassPersistent, contributorKeyPrefix)
	if err != nil {
		return nil, err
	}

	var contributors []*models.Contributor
	for _, key := range keys {
		address := strings.TrimPrefix(key, contributorKeyPrefix)
		contributor, ok, err := r.Get(address)
		if err != nil {
			return nil, err
		}
		if ok {
			contributors = append(contributors, contributor)
		}
	}

	return contributors, nil
}
