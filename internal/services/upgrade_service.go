package services

import (
	"context"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/alimgiray/contributor-registry/internal/events"
	"github.com/alimgiray/contributor-registry/internal/repositories"
	"github.com/alimgiray/contributor-registry/internal/store"
	"github.com/alimgiray/contributor-registry/pkg/logger"
)

// Upgrader hands a requested code hash to the platform that performs the
// actual swap. The registry never validates the hash's content, only the
// caller's authority to request it.
type Upgrader interface {
	Apply(newCodeHash string) error
}

// StoreUpgrader records the pending code hash in instance storage and logs
// the request. Executing the swap is external to this process.
type StoreUpgrader struct {
	store store.Store
}

func NewStoreUpgrader(s store.Store) *StoreUpgrader {
	return &StoreUpgrader{store: s}
}

const pendingCodeHashKey = "pending_code_hash"

func (u *StoreUpgrader) Apply(newCodeHash string) error {
	if err := u.store.Set(store.ClassInstance, pendingCodeHashKey, []byte(newCodeHash)); err != nil {
		return err
	}
	logger.WithField("code_hash", newCodeHash).Info("code upgrade requested")
	return nil
}

// UpgradeService gates code-upgrade requests behind the administrator.
type UpgradeService struct {
	adminRepo *repositories.AdminRepository
	oracle    auth.Oracle
	upgrader  Upgrader
	sink      events.Sink
	gate      *Gate
}

func NewUpgradeService(
	adminRepo *repositories.AdminRepository,
	oracle auth.Oracle,
	upgrader Upgrader,
	sink events.Sink,
	gate *Gate,
) *UpgradeService {
	return &UpgradeService{
		adminRepo: adminRepo,
		oracle:    oracle,
		upgrader:  upgrader,
		sink:      sink,
		gate:      gate,
	}
}

// Upgrade requests replacement of the running code with newCodeHash. There
// is no rollback: once the request is handed to the upgrader, applying it is
// the platform's business. Emits upgraded on success.
func (s *UpgradeService) Upgrade(ctx context.Context, caller, newCodeHash string) error {
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

	if err := s.upgrader.Apply(newCodeHash); err != nil {
		return err
	}

	s.sink.Publish(events.New(events.EventUpgraded, map[string]interface{}{
		"admin":         caller,
		"new_code_hash": newCodeHash,
	}))

	return nil
}
