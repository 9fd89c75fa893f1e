package services

import (
	"context"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/alimgiray/contributor-registry/internal/models"
	"github.com/alimgiray/contributor-registry/internal/repositories"
)

// ContributorService owns contributor registration and handle updates,
// keeping the primary record and the github index consistent on every write.
type ContributorService struct {
	contributorRepo *repositories.ContributorRepository
	indexRepo       *repositories.GithubIndexRepository
	adminRepo       *repositories.AdminRepository
	oracle          auth.Oracle
	clock           Clock
	gate            *Gate
}

func NewContributorService(
	contributorRepo *repositories.ContributorRepository,
	indexRepo *repositories.GithubIndexRepository,
	adminRepo *repositories.AdminRepository,
	oracle auth.Oracle,
	clock Clock,
	gate *Gate,
) *ContributorService {
	return &ContributorService{
		contributorRepo: contributorRepo,
		indexRepo:       indexRepo,
		adminRepo:       adminRepo,
		oracle:          oracle,
		clock:           clock,
		gate:            gate,
	}
}

// Register creates a new contributor profile with a zero reputation score.
// All checks run before any write, so a rejected call leaves the store
// unchanged.
func (s *ContributorService) Register(ctx context.Context, address, githubHandle string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	initialized, err := s.adminRepo.Exists()
	if err != nil {
		return err
	}
	if !initialized {
		return ErrNotInitialized
	}

	if err := s.oracle.RequireAuth(ctx, address); err != nil {
		return err
	}

	if githubHandle == "" {
		return ErrInvalidGithubHandle
	}

	exists, err := s.contributorRepo.Exists(address)
	if err != nil {
		return err
	}
	if exists {
		return ErrContributorAlreadyExists
	}

	available, err := s.indexRepo.Available(githubHandle, address)
	if err != nil {
		return err
	}
	if !available {
		return ErrGithubHandleTaken
	}

	contributor := &models.Contributor{
		Address:         address,
		GithubHandle:    githubHandle,
		ReputationScore: 0,
		RegisteredAt:    s.clock.Now(),
	}
	if err := s.contributorRepo.Save(contributor); err != nil {
		return err
	}

	return s.indexRepo.Reindex("", githubHandle, address)
}

// Update changes an existing contributor's github handle. Updating to the
// currently stored handle is an idempotent no-op on the index.
func (s *ContributorService) Update(ctx context.Context, address, githubHandle string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	initialized, err := s.adminRepo.Exists()
	if err != nil {
		return err
	}
	if !initialized {
		return ErrNotInitialized
	}

	if err := s.oracle.RequireAuth(ctx, address); err != nil {
		return err
	}

	if githubHandle == "" {
		return ErrInvalidGithubHandle
	}

	contributor, ok, err := s.contributorRepo.Get(address)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContributorNotFound
	}

	available, err := s.indexRepo.Available(githubHandle, address)
	if err != nil {
		return err
	}
	if !available {
		return ErrGithubHandleTaken
	}

	oldHandle := contributor.GithubHandle
	contributor.GithubHandle = githubHandle
	if err := s.contributorRepo.Save(contributor); err != nil {
		return err
	}

	return s.indexRepo.Reindex(oldHandle, githubHandle, address)
}

// GetContributor returns the profile stored for an address.
func (s *ContributorService) GetContributor(address string) (*models.Contributor, error) {
	contributor, ok, err := s.contributorRepo.Get(address)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrContributorNotFound
	}
	return contributor, nil
}

// GetContributorByGithub resolves a handle through the index and returns the
// profile it points at. A dangling index entry surfaces as not-found.
func (s *ContributorService) GetContributorByGithub(githubHandle string) (*models.Contributor, error) {
	address, ok, err := s.indexRepo.Resolve(githubHandle)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrContributorNotFound
	}
	return s.GetContributor(address)
}

// ListContributors returns every registered contributor ordered by address.
func (s *ContributorService) ListContributors() ([]*models.Contributor, error) {
	return s.contributorRepo.All()
}
