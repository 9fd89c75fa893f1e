package services

import (
	"context"
	"time"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/alimgiray/contributor-registry/internal/events"
	"github.com/alimgiray/contributor-registry/internal/repositories"
	"github.com/alimgiray/contributor-registry/internal/store"
)

// fixedClock pins registration timestamps in tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testClock = fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

// testRegistry wires all registry services over one in-memory store, the way
// cmd/server does in production.
type testRegistry struct {
	store       *store.Memory
	sink        *events.Memory
	admin       *AdminService
	contributor *ContributorService
	reputation  *ReputationService
	upgrade     *UpgradeService
}

func newTestRegistry() *testRegistry {
	m := store.NewMemory()
	sink := events.NewMemorySink()
	gate := NewGate()
	oracle := auth.AllowAll{}

	adminRepo := repositories.NewAdminRepository(m)
	contributorRepo := repositories.NewContributorRepository(m)
	indexRepo := repositories.NewGithubIndexRepository(m)

	return &testRegistry{
		store:       m,
		sink:        sink,
		admin:       NewAdminService(adminRepo, oracle, sink, gate),
		contributor: NewContributorService(contributorRepo, indexRepo, adminRepo, oracle, testClock, gate),
		reputation:  NewReputationService(contributorRepo, adminRepo, oracle, gate),
		upgrade:     NewUpgradeService(adminRepo, oracle, NewStoreUpgrader(m), sink, gate),
	}
}

// newInitializedRegistry returns a registry already initialized with admin.
func newInitializedRegistry(admin string) *testRegistry {
	r := newTestRegistry()
	if err := r.admin.Initialize(context.Background(), admin); err != nil {
		panic(err)
	}
	return r
}
