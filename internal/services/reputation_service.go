package services

import (
	"context"
	"math"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/alimgiray/contributor-registry/internal/repositories"
)

// ReputationService applies admin-signed score deltas to contributor
// profiles.
type ReputationService struct {
	contributorRepo *repositories.ContributorRepository
	adminRepo       *repositories.AdminRepository
	oracle          auth.Oracle
	gate            *Gate
}

func NewReputationService(
	contributorRepo *repositories.ContributorRepository,
	adminRepo *repositories.AdminRepository,
	oracle auth.Oracle,
	gate *Gate,
) *ReputationService {
	return &ReputationService{
		contributorRepo: contributorRepo,
		adminRepo:       adminRepo,
		oracle:          oracle,
		gate:            gate,
	}
}

// applyReputationDelta computes the new score for a signed delta.
// Increases are checked and fail on overflow. Decreases saturate at zero;
// a delta of math.MinInt64 has no positive counterpart and is treated as a
// magnitude-zero decrease. The asymmetry is deliberate: callers rely on
// overflow being observable as a failed call, while clamping at zero is the
// designed floor of the score.
func applyReputationDelta(score uint64, delta int64) (uint64, error) {
	if delta > 0 {
		increase := uint64(delta)
		if score > math.MaxUint64-increase {
			return 0, ErrReputationOverflow
		}
		return score + increase, nil
	}

	var magnitude uint64
	if delta != math.MinInt64 {
		magnitude = uint64(-delta)
	}
	if magnitude > score {
		return 0, nil
	}
	return score - magnitude, nil
}

// UpdateReputation adjusts the target contributor's score by delta. Only the
// stored administrator may call it.
func (s *ReputationService) UpdateReputation(ctx context.Context, caller, target string, delta int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	admin, ok, err := s.adminRepo.Get()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInitialized
	}
	if caller != admin {
		return ErrUnauthorized
	}

	if err := s.oracle.RequireAuth(ctx, caller); err != nil {
		return err
	}

	contributor, ok, err := s.contributorRepo.Get(target)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContributorNotFound
	}

	newScore, err := applyReputationDelta(contributor.ReputationScore, delta)
	if err != nil {
		return err
	}

	contributor.ReputationScore = newScore
	return s.contributorRepo.Save(contributor)
}

// GetReputation returns the current score for an address.
func (s *ReputationService) GetReputation(address string) (uint64, error) {
	contributor, ok, err := s.contributorRepo.Get(address)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrContributorNotFound
	}
	return contributor.ReputationScore, nil
}
