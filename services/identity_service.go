package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/repositories"
)

// IdentityService resolves display names to identities and administers them
type IdentityService interface {
	Resolve(ctx context.Context, rawName string) (*models.Identity, error)
	GetAll(ctx context.Context) ([]models.Identity, error)
	Deactivate(ctx context.Context, id int) error
}

// identityService implements IdentityService interface
type identityService struct {
	identityRepo repositories.IdentityRepository
	log          *zap.Logger
}

// NewIdentityService creates a new identity service
func NewIdentityService(identityRepo repositories.IdentityRepository, log *zap.Logger) IdentityService {
	return &identityService{
		identityRepo: identityRepo,
		log:          log,
	}
}

// Resolve canonicalizes the name and returns its identity, registering it on first sight
func (s *identityService) Resolve(ctx context.Context, rawName string) (*models.Identity, error) {
	canonical, err := models.CanonicalizeName(rawName)
	if err != nil {
		return nil, &Error{Kind: KindInvalidName, Message: err.Error(), Err: err}
	}

	identity, err := s.identityRepo.FindOrCreate(ctx, canonical, timeNow())
	if err != nil {
		return nil, storageError(err, "failed to resolve identity")
	}
	return identity, nil
}

// GetAll retrieves all identities
func (s *identityService) GetAll(ctx context.Context) ([]models.Identity, error) {
	identities, err := s.identityRepo.GetAll(ctx)
	if err != nil {
		return nil, storageError(err, "failed to list identities")
	}
	return identities, nil
}

// Deactivate excludes an identity from statistics without deleting its records
func (s *identityService) Deactivate(ctx context.Context, id int) error {
	if id <= 0 {
		return newError(KindNotFound, "invalid identity ID: %d", id)
	}

	if err := s.identityRepo.Deactivate(ctx, id); err != nil {
		return storageError(err, "failed to deactivate identity %d", id)
	}

	s.log.Info("identity deactivated", zap.Int("identity_id", id))
	return nil
}
