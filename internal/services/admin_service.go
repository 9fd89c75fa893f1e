package services

import (
	"context"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/alimgiray/contributor-registry/internal/events"
	"github.com/alimgiray/contributor-registry/internal/repositories"
)

// AdminService owns the singleton administrator: init-once creation,
// lookup, and authorized transfer.
type AdminService struct {
	adminRepo *repositories.AdminRepository
	oracle    auth.Oracle
	sink      events.Sink
	gate      *Gate
}

func NewAdminService(
	adminRepo *repositories.AdminRepository,
	oracle auth.Oracle,
	sink events.Sink,
	gate *Gate,
) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		oracle:    oracle,
		sink:      sink,
		gate:      gate,
	}
}

// Initialize stores the administrator exactly once.
func (s *AdminService) Initialize(ctx context.Context, admin string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	exists, err := s.adminRepo.Exists()
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInitialized
	}

	if err := s.oracle.RequireAuth(ctx, admin); err != nil {
		return err
	}

	return s.adminRepo.Set(admin)
}

// GetAdmin returns the stored administrator address.
func (s *AdminService) GetAdmin() (string, error) {
	admin, ok, err := s.adminRepo.Get()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotInitialized
	}
	return admin, nil
}

// SetAdmin transfers the administrator role to newAdmin. Only the current
// administrator may call it. Emits admin_changed after the store update.
func (s *AdminService) SetAdmin(ctx context.Context, currentAdmin, newAdmin string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	stored, ok, err := s.adminRepo.Get()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInitialized
	}
	if currentAdmin != stored {
		return ErrUnauthorized
	}

	if err := s.oracle.RequireAuth(ctx, currentAdmin); err != nil {
		return err
	}

	if err := s.adminRepo.Set(newAdmin); err != nil {
		return err
	}

	s.sink.Publish(events.New(events.EventAdminChanged, map[string]interface{}{
		"old_admin": currentAdmin,
		"new_admin": newAdmin,
	}))

	return nil
}
