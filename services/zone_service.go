package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/geoattend/metrics"
	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/repositories"
)

// ZoneService is the registry of geofences with at most one active zone
type ZoneService interface {
	GetAll(ctx context.Context) ([]models.Zone, error)
	GetByID(ctx context.Context, id int) (*models.Zone, error)
	GetActive(ctx context.Context) (*models.Zone, error)
	Create(ctx context.Context, form *models.ZoneForm, actor string) (*models.Zone, error)
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	SeedDefaults(ctx context.Context) (int, error)
}

// zoneService implements ZoneService interface
type zoneService struct {
	zoneRepo repositories.ZoneRepository
	log      *zap.Logger
}

// NewZoneService creates a new zone service
func NewZoneService(zoneRepo repositories.ZoneRepository, log *zap.Logger) ZoneService {
	return &zoneService{
		zoneRepo: zoneRepo,
		log:      log,
	}
}

// DefaultZones are created by SeedDefaults on an empty registry
var DefaultZones = []models.ZoneForm{
	{Name: "Main Campus", Description: "Default campus geofence", Latitude: 10.678922, Longitude: 77.032420, RadiusMeters: 5500, SetActive: true},
	{Name: "Library", Description: "Main library building", Latitude: 10.6785, Longitude: 77.0321, RadiusMeters: 50},
	{Name: "Computer Lab", Description: "Computer science lab", Latitude: 10.6788, Longitude: 77.0323, RadiusMeters: 30},
	{Name: "Auditorium", Description: "Main auditorium", Latitude: 10.679, Longitude: 77.0325, RadiusMeters: 100},
	{Name: "Sports Complex", Description: "Sports and recreation area", Latitude: 10.6792, Longitude: 77.0328, RadiusMeters: 200},
}

// GetAll retrieves all zones
func (s *zoneService) GetAll(ctx context.Context) ([]models.Zone, error) {
	zones, err := s.zoneRepo.GetAll(ctx)
	if err != nil {
		return nil, storageError(err, "failed to list zones")
	}
	return zones, nil
}

// GetByID retrieves a zone by ID
func (s *zoneService) GetByID(ctx context.Context, id int) (*models.Zone, error) {
	if id <= 0 {
		return nil, newError(KindNotFound, "invalid zone ID: %d", id)
	}

	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, "failed to get zone %d", id)
	}
	return zone, nil
}

// GetActive returns the active zone or a NoActiveZone error
func (s *zoneService) GetActive(ctx context.Context) (*models.Zone, error) {
	zone, err := s.zoneRepo.GetActive(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(KindNoActiveZone, "no zone is active")
	}
	if err != nil {
		return nil, storageError(err, "failed to get active zone")
	}
	return zone, nil
}

// Create validates and stores a zone, activating it exclusively when requested
func (s *zoneService) Create(ctx context.Context, form *models.ZoneForm, actor string) (*models.Zone, error) {
	if errs := models.ValidateGeometry(form.Latitude, form.Longitude, form.RadiusMeters); len(errs) > 0 {
		return nil, newError(KindInvalidGeometry, "%s", strings.Join(errs, ", "))
	}

	if errs := form.Validate(); len(errs) > 0 {
		return nil, newError(KindInvalidInput, "%s", strings.Join(errs, ", "))
	}

	now := timeNow()
	zone := &models.Zone{
		Name:         strings.TrimSpace(form.Name),
		Description:  strings.TrimSpace(form.Description),
		Latitude:     form.Latitude,
		Longitude:    form.Longitude,
		RadiusMeters: form.RadiusMeters,
		Active:       form.SetActive,
		CreatedBy:    actor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, storageError(err, "failed to create zone")
	}

	metrics.RecordZoneMutation("create")
	s.log.Info("zone created",
		zap.Int("zone_id", zone.ID),
		zap.String("name", zone.Name),
		zap.Float64("radius_meters", zone.RadiusMeters),
		zap.Bool("active", zone.Active),
		zap.String("actor", actor),
	)
	return zone, nil
}

// Activate makes the zone the single active zone
func (s *zoneService) Activate(ctx context.Context, id int) error {
	if id <= 0 {
		return newError(KindNotFound, "invalid zone ID: %d", id)
	}

	if err := s.zoneRepo.Activate(ctx, id, timeNow()); err != nil {
		return storageError(err, "failed to activate zone %d", id)
	}

	metrics.RecordZoneMutation("activate")
	s.log.Info("zone activated", zap.Int("zone_id", id))
	return nil
}

// Deactivate deactivates the zone; leaving no zone active is allowed
func (s *zoneService) Deactivate(ctx context.Context, id int) error {
	if id <= 0 {
		return newError(KindNotFound, "invalid zone ID: %d", id)
	}

	if err := s.zoneRepo.Deactivate(ctx, id, timeNow()); err != nil {
		return storageError(err, "failed to deactivate zone %d", id)
	}

	metrics.RecordZoneMutation("deactivate")
	s.log.Info("zone deactivated", zap.Int("zone_id", id))
	return nil
}

// Delete removes an inactive zone
func (s *zoneService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return newError(KindNotFound, "invalid zone ID: %d", id)
	}

	err := s.zoneRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrZoneActive) {
		return &Error{Kind: KindZoneActiveConstraint, Message: "cannot delete the active zone; deactivate it first", Err: err}
	}
	if err != nil {
		return storageError(err, "failed to delete zone %d", id)
	}

	metrics.RecordZoneMutation("delete")
	s.log.Info("zone deleted", zap.Int("zone_id", id))
	return nil
}

// SeedDefaults creates DefaultZones when the registry is empty and returns how many were created
func (s *zoneService) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.zoneRepo.Count(ctx)
	if err != nil {
		return 0, storageError(err, "failed to count zones")
	}

	if count > 0 {
		s.log.Info("zones already present, skipping seed", zap.Int("zones", count))
		return 0, nil
	}

	for i := range DefaultZones {
		form := DefaultZones[i]
		if _, err := s.Create(ctx, &form, models.SystemActor); err != nil {
			return i, err
		}
	}
	return len(DefaultZones), nil
}
