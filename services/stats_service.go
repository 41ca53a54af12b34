package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/repositories"
)

// StatsService aggregates daily attendance figures
type StatsService interface {
	ForDate(ctx context.Context, date string) (models.Stats, error)
}

// statsService implements StatsService interface
type statsService struct {
	identityRepo repositories.IdentityRepository
	presenceRepo repositories.PresenceRepository
}

// NewStatsService creates a new statistics service
func NewStatsService(identityRepo repositories.IdentityRepository, presenceRepo repositories.PresenceRepository) StatsService {
	return &statsService{
		identityRepo: identityRepo,
		presenceRepo: presenceRepo,
	}
}

// ForDate counts active identities and those present on the date
func (s *statsService) ForDate(ctx context.Context, date string) (models.Stats, error) {
	if err := validateDate(date); err != nil {
		return models.Stats{}, err
	}

	var total, present int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.identityRepo.CountActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		present, err = s.presenceRepo.CountPresent(gctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Stats{}, storageError(err, "failed to compute statistics for %s", date)
	}

	// Both counts only include active identities, but they are read separately
	if present > total {
		present = total
	}
	return models.NewStats(date, total, present), nil
}
