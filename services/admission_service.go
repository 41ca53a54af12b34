package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blogem/geoattend/geo"
	"github.com/blogem/geoattend/metrics"
	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/repositories"
)

// AdmissionAttempt carries every input of a single admission decision
type AdmissionAttempt struct {
	Name     string
	Image    []byte
	Location models.Location
	Now      time.Time
}

// AdmissionService decides whether a presence claim is admitted and records it
type AdmissionService interface {
	Attempt(ctx context.Context, attempt AdmissionAttempt) (*models.AdmissionResult, error)
}

// admissionService implements AdmissionService interface
type admissionService struct {
	zoneRepo     repositories.ZoneRepository
	identityRepo repositories.IdentityRepository
	presenceRepo repositories.PresenceRepository
	cfg          Config
	log          *zap.Logger
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(
	zoneRepo repositories.ZoneRepository,
	identityRepo repositories.IdentityRepository,
	presenceRepo repositories.PresenceRepository,
	cfg Config,
	log *zap.Logger,
) AdmissionService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &admissionService{
		zoneRepo:     zoneRepo,
		identityRepo: identityRepo,
		presenceRepo: presenceRepo,
		cfg:          cfg,
		log:          log,
	}
}

// Attempt runs the admission stages in order and stops at the first failure.
// Nothing is written unless every check passes.
func (s *admissionService) Attempt(ctx context.Context, attempt AdmissionAttempt) (result *models.AdmissionResult, err error) {
	started := time.Now()
	defer func() {
		s.observe(result, err, time.Since(started))
	}()

	// 1. Name
	canonical, err := models.CanonicalizeName(attempt.Name)
	if err != nil {
		return nil, &Error{Kind: KindInvalidName, Message: err.Error(), Err: err}
	}

	// 2. Image
	contentType, err := ValidateImage(attempt.Image, s.cfg.MaxImageBytes)
	if err != nil {
		return nil, err
	}

	// 3. Active zone
	zone, err := s.zoneRepo.GetActive(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(KindNoActiveZone, "no zone is active")
	}
	if err != nil {
		return nil, storageError(err, "failed to get active zone")
	}

	// 4. Freshness
	loc := attempt.Location
	age := attempt.Now.Sub(loc.CapturedAt)
	if age < 0 {
		age = -age
	}
	if loc.CapturedAt.IsZero() || age > s.cfg.LocationFreshness {
		return nil, newError(KindStaleLocation, "location was captured %s from now, limit is %s",
			age.Round(time.Second), s.cfg.LocationFreshness)
	}

	// 5. Proximity
	if errs := models.ValidateGeometry(loc.Latitude, loc.Longitude, zone.RadiusMeters); len(errs) > 0 {
		return nil, newError(KindInvalidLocation, "location coordinates are out of range")
	}
	if !(loc.AccuracyMeters >= 0) {
		return nil, newError(KindInvalidLocation, "location accuracy must be a non-negative number")
	}
	distance := geo.Distance(
		geo.Point{Latitude: loc.Latitude, Longitude: loc.Longitude},
		geo.Point{Latitude: zone.Latitude, Longitude: zone.Longitude},
	)
	if distance > zone.RadiusMeters {
		return nil, &Error{
			Kind:         KindOutOfRange,
			Message:      "location is outside " + zone.Name,
			Distance:     distance,
			RadiusMeters: zone.RadiusMeters,
		}
	}

	// 6. Time window
	local := attempt.Now.In(s.cfg.Location)
	if !s.cfg.Window.Contains(local) {
		return nil, newError(KindOutsideWindow, "attendance is accepted between %s", s.cfg.Window)
	}

	// 7. Identity; an unknown name is registered by the commit
	identity, err := s.identityRepo.GetByName(ctx, canonical)
	if errors.Is(err, repositories.ErrNotFound) {
		identity = &models.Identity{CanonicalName: canonical, Active: true, RegisteredAt: attempt.Now}
	} else if err != nil {
		return nil, storageError(err, "failed to resolve identity")
	}

	// 8. Duplicate
	date := models.FormatDate(local)
	if identity.ID != 0 {
		existing, err := s.presenceRepo.GetByIdentityAndDate(ctx, identity.ID, date)
		if err == nil {
			return nil, alreadyRecorded(existing)
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, storageError(err, "failed to check for an existing record")
		}
	}

	// 9. Commit
	zoneID := zone.ID
	record := &models.PresenceRecord{
		IdentityID:     identity.ID,
		Date:           date,
		Time:           models.FormatTime(local),
		Status:         models.StatusPresent,
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		DistanceMeters: distance,
		ZoneID:         &zoneID,
		AccuracyMeters: loc.AccuracyMeters,
		CreatedAt:      attempt.Now,
	}
	image := &models.PresenceImage{
		Reference:   uuid.NewString(),
		ContentType: contentType,
		Data:        attempt.Image,
	}

	if err := s.presenceRepo.Admit(ctx, identity, record, image, models.SystemActor); err != nil {
		var dupErr *repositories.DuplicateRecordError
		if errors.As(err, &dupErr) {
			return nil, alreadyRecorded(dupErr.Existing)
		}
		return nil, storageError(err, "failed to record attendance")
	}

	return &models.AdmissionResult{
		RecordID:       record.ID,
		IdentityID:     identity.ID,
		IdentityName:   identity.DisplayName(),
		ZoneID:         zone.ID,
		ZoneName:       zone.Name,
		Date:           record.Date,
		Time:           record.Time,
		DistanceMeters: distance,
	}, nil
}

func alreadyRecorded(existing *models.PresenceRecord) *Error {
	return &Error{
		Kind:         KindAlreadyRecorded,
		Message:      "attendance already recorded today at " + existing.Time,
		ExistingTime: existing.Time,
	}
}

// observe logs and counts the outcome of an attempt
func (s *admissionService) observe(result *models.AdmissionResult, err error, elapsed time.Duration) {
	if err == nil {
		metrics.RecordAdmission("admitted", elapsed)
		metrics.RecordDistance(result.DistanceMeters)
		s.log.Info("admission accepted",
			zap.Int("record_id", result.RecordID),
			zap.Int("identity_id", result.IdentityID),
			zap.Int("zone_id", result.ZoneID),
			zap.Float64("distance_meters", result.DistanceMeters),
		)
		return
	}

	kind := KindOf(err)
	metrics.RecordAdmission(string(kind), elapsed)

	fields := []zap.Field{zap.String("kind", string(kind)), zap.Error(err)}
	var svcErr *Error
	if errors.As(err, &svcErr) && svcErr.Kind == KindOutOfRange {
		fields = append(fields, zap.Float64("distance_meters", svcErr.Distance))
	}

	if kind == KindPersistenceFailure {
		s.log.Error("admission failed", fields...)
		return
	}
	s.log.Info("admission rejected", fields...)
}
