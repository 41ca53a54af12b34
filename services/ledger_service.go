package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/repositories"
)

// LedgerService reads presence records and applies audited reviewer changes
type LedgerService interface {
	GetByDate(ctx context.Context, date string) ([]models.PresenceRecord, error)
	GetByID(ctx context.Context, id int) (*models.PresenceRecord, error)
	Update(ctx context.Context, id int, fields models.ReviewFields, actor string) (*models.PresenceRecord, error)
	Verify(ctx context.Context, id int, actor string) (*models.PresenceRecord, error)
	History(ctx context.Context, id int) ([]models.AuditEntry, error)
}

// ledgerService implements LedgerService interface
type ledgerService struct {
	presenceRepo repositories.PresenceRepository
	auditRepo    repositories.AuditRepository
	log          *zap.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(presenceRepo repositories.PresenceRepository, auditRepo repositories.AuditRepository, log *zap.Logger) LedgerService {
	return &ledgerService{
		presenceRepo: presenceRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// GetByDate lists the records of a YYYY-MM-DD date
func (s *ledgerService) GetByDate(ctx context.Context, date string) ([]models.PresenceRecord, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	records, err := s.presenceRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, storageError(err, "failed to list records for %s", date)
	}
	return records, nil
}

// GetByID retrieves a presence record by ID
func (s *ledgerService) GetByID(ctx context.Context, id int) (*models.PresenceRecord, error) {
	if id <= 0 {
		return nil, newError(KindNotFound, "invalid presence record ID: %d", id)
	}

	record, err := s.presenceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, "failed to get presence record %d", id)
	}
	return record, nil
}

// Update changes the reviewable fields of a record and appends an UPDATE audit entry
func (s *ledgerService) Update(ctx context.Context, id int, fields models.ReviewFields, actor string) (*models.PresenceRecord, error) {
	if errs := fields.Validate(); len(errs) > 0 {
		return nil, newError(KindInvalidInput, "%s", strings.Join(errs, ", "))
	}

	return s.review(ctx, id, models.AuditUpdate, fields, actor)
}

// Verify marks a record as verified by the actor and appends a VERIFY audit entry
func (s *ledgerService) Verify(ctx context.Context, id int, actor string) (*models.PresenceRecord, error) {
	if strings.TrimSpace(actor) == "" {
		return nil, newError(KindInvalidInput, "verifier is required")
	}

	return s.review(ctx, id, models.AuditVerify, models.ReviewFields{VerifiedBy: &actor}, actor)
}

func (s *ledgerService) review(ctx context.Context, id int, action models.AuditAction, fields models.ReviewFields, actor string) (*models.PresenceRecord, error) {
	if id <= 0 {
		return nil, newError(KindNotFound, "invalid presence record ID: %d", id)
	}

	record, err := s.presenceRepo.Review(ctx, id, action, fields, actor, timeNow())
	if err != nil {
		return nil, storageError(err, "failed to review presence record %d", id)
	}

	s.log.Info("presence record reviewed",
		zap.Int("record_id", id),
		zap.String("action", string(action)),
		zap.String("actor", actor),
	)
	return record, nil
}

// History returns the audit trail of a record, oldest first
func (s *ledgerService) History(ctx context.Context, id int) ([]models.AuditEntry, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	entries, err := s.auditRepo.GetByRecord(ctx, id)
	if err != nil {
		return nil, storageError(err, "failed to get audit history of record %d", id)
	}
	return entries, nil
}

func validateDate(date string) error {
	if _, err := models.ParseDate(date, time.UTC); err != nil {
		return newError(KindInvalidInput, "date must be in YYYY-MM-DD format")
	}
	return nil
}
