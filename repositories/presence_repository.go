package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/geoattend/models"
)

// PresenceRepository handles presence record persistence. Every mutation
// writes its audit entry in the same transaction.
type PresenceRepository interface {
	GetByID(ctx context.Context, id int) (*models.PresenceRecord, error)
	GetByIdentityAndDate(ctx context.Context, identityID int, date string) (*models.PresenceRecord, error)
	GetByDate(ctx context.Context, date string) ([]models.PresenceRecord, error)
	Admit(ctx context.Context, identity *models.Identity, record *models.PresenceRecord, image *models.PresenceImage, actor string) error
	Review(ctx context.Context, id int, action models.AuditAction, fields models.ReviewFields, actor string, now time.Time) (*models.PresenceRecord, error)
	CountPresent(ctx context.Context, date string) (int, error)
	GetAbsentIdentities(ctx context.Context, date string) ([]models.Identity, error)
}

type sqlitePresenceRepository struct {
	db *sql.DB
}

// NewPresenceRepository creates a new presence record repository
func NewPresenceRepository(db *sql.DB) PresenceRepository {
	return &sqlitePresenceRepository{db: db}
}

const presenceSelect = `
	SELECT p.id, p.identity_id, p.date, p.time, p.status, p.latitude, p.longitude,
	       p.distance_meters, p.zone_id, p.accuracy_meters, p.image_reference,
	       p.notes, p.verified_by, p.created_at,
	       i.canonical_name, COALESCE(z.name, '')
	FROM presence_records p
	JOIN identities i ON p.identity_id = i.id
	LEFT JOIN zones z ON p.zone_id = z.id
`

func scanPresenceRecord(row interface{ Scan(dest ...any) error }) (*models.PresenceRecord, error) {
	var record models.PresenceRecord
	var zoneID sql.NullInt64
	err := row.Scan(
		&record.ID,
		&record.IdentityID,
		&record.Date,
		&record.Time,
		&record.Status,
		&record.Latitude,
		&record.Longitude,
		&record.DistanceMeters,
		&zoneID,
		&record.AccuracyMeters,
		&record.ImageReference,
		&record.Notes,
		&record.VerifiedBy,
		&record.CreatedAt,
		&record.IdentityName,
		&record.ZoneName,
	)
	if err != nil {
		return nil, err
	}
	if zoneID.Valid {
		id := int(zoneID.Int64)
		record.ZoneID = &id
	}
	return &record, nil
}

// GetByID retrieves a presence record by ID
func (r *sqlitePresenceRepository) GetByID(ctx context.Context, id int) (*models.PresenceRecord, error) {
	return getPresenceRecord(ctx, r.db, id)
}

func getPresenceRecord(ctx context.Context, exec dbExecutor, id int) (*models.PresenceRecord, error) {
	record, err := scanPresenceRecord(exec.QueryRowContext(ctx, presenceSelect+` WHERE p.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("presence record %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get presence record %d: %w", id, err)
	}
	return record, nil
}

// GetByIdentityAndDate retrieves the record of an identity on a date
func (r *sqlitePresenceRepository) GetByIdentityAndDate(ctx context.Context, identityID int, date string) (*models.PresenceRecord, error) {
	return getPresenceRecordForDay(ctx, r.db, identityID, date)
}

func getPresenceRecordForDay(ctx context.Context, exec dbExecutor, identityID int, date string) (*models.PresenceRecord, error) {
	query := presenceSelect + ` WHERE p.identity_id = ? AND p.date = ?`

	record, err := scanPresenceRecord(exec.QueryRowContext(ctx, query, identityID, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("presence record for identity %d on %s: %w", identityID, date, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get presence record for identity %d on %s: %w", identityID, date, err)
	}
	return record, nil
}

// GetByDate retrieves all records for a date ordered by time of admission
func (r *sqlitePresenceRepository) GetByDate(ctx context.Context, date string) ([]models.PresenceRecord, error) {
	query := presenceSelect + ` WHERE p.date = ? ORDER BY p.time, p.id`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query presence records for %s: %w", date, err)
	}
	defer rows.Close()

	var records []models.PresenceRecord
	for rows.Next() {
		record, err := scanPresenceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan presence record: %w", err)
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// Admit stores the image, the record and its CREATE audit entry in one
// transaction. An identity without an ID is registered in the same
// transaction, so a failed admission leaves no identity behind. If the
// identity already has a record for the date, nothing is written and a
// *DuplicateRecordError carrying the existing record is returned.
func (r *sqlitePresenceRepository) Admit(ctx context.Context, identity *models.Identity, record *models.PresenceRecord, image *models.PresenceImage, actor string) error {
	resolved := identity
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if identity.ID == 0 {
			var err error
			resolved, err = findOrCreateIdentity(ctx, tx, identity.CanonicalName, identity.RegisteredAt)
			if err != nil {
				return err
			}
		}
		record.IdentityID = resolved.ID

		existing, err := getPresenceRecordForDay(ctx, tx, record.IdentityID, record.Date)
		if err == nil {
			return &DuplicateRecordError{Existing: existing}
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}

		imageQuery := `INSERT INTO presence_images (reference, content_type, data, created_at) VALUES (?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, imageQuery, image.Reference, image.ContentType, image.Data, record.CreatedAt); err != nil {
			return fmt.Errorf("failed to store presence image: %w", err)
		}
		record.ImageReference = image.Reference

		recordQuery := `
			INSERT INTO presence_records (identity_id, date, time, status, latitude, longitude, distance_meters,
				zone_id, accuracy_meters, image_reference, notes, verified_by, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		result, err := tx.ExecContext(ctx, recordQuery,
			record.IdentityID,
			record.Date,
			record.Time,
			record.Status,
			record.Latitude,
			record.Longitude,
			record.DistanceMeters,
			record.ZoneID,
			record.AccuracyMeters,
			record.ImageReference,
			record.Notes,
			record.VerifiedBy,
			record.CreatedAt,
			record.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create presence record: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get presence record ID: %w", err)
		}
		record.ID = int(id)

		newValues, err := encodeSnapshot(newCreateSnapshot(record))
		if err != nil {
			return err
		}
		return insertAuditEntry(ctx, tx, &models.AuditEntry{
			PresenceRecordID: record.ID,
			Action:           models.AuditCreate,
			NewValues:        newValues,
			Actor:            actor,
			Timestamp:        record.CreatedAt,
		})
	})
	if err == nil {
		if resolved != identity {
			*identity = *resolved
		}
		return nil
	}

	if isUniqueViolation(err) {
		// Another writer committed first; report its record
		existing, getErr := r.GetByIdentityAndDate(ctx, record.IdentityID, record.Date)
		if getErr != nil {
			return fmt.Errorf("presence record for identity %d on %s: %w", record.IdentityID, record.Date, ErrConflict)
		}
		return &DuplicateRecordError{Existing: existing}
	}
	return err
}

// Review applies reviewer changes to a record and appends an audit entry with
// the old and new reviewable fields
func (r *sqlitePresenceRepository) Review(ctx context.Context, id int, action models.AuditAction, fields models.ReviewFields, actor string, now time.Time) (*models.PresenceRecord, error) {
	var updated *models.PresenceRecord

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		record, err := getPresenceRecord(ctx, tx, id)
		if err != nil {
			return err
		}

		oldValues, err := encodeSnapshot(newReviewSnapshot(record))
		if err != nil {
			return err
		}

		fields.Apply(record)

		query := `UPDATE presence_records SET status = ?, notes = ?, verified_by = ?, updated_at = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, record.Status, record.Notes, record.VerifiedBy, now, id); err != nil {
			return fmt.Errorf("failed to update presence record %d: %w", id, err)
		}

		newValues, err := encodeSnapshot(newReviewSnapshot(record))
		if err != nil {
			return err
		}

		if err := insertAuditEntry(ctx, tx, &models.AuditEntry{
			PresenceRecordID: id,
			Action:           action,
			OldValues:        oldValues,
			NewValues:        newValues,
			Actor:            actor,
			Timestamp:        now,
		}); err != nil {
			return err
		}

		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CountPresent returns the number of active identities with a Present record on the date
func (r *sqlitePresenceRepository) CountPresent(ctx context.Context, date string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT p.identity_id)
		FROM presence_records p
		JOIN identities i ON p.identity_id = i.id
		WHERE p.date = ? AND p.status = ? AND i.active = 1
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, date, models.StatusPresent).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present identities for %s: %w", date, err)
	}
	return count, nil
}

// GetAbsentIdentities returns the active identities without a Present record on the date
func (r *sqlitePresenceRepository) GetAbsentIdentities(ctx context.Context, date string) ([]models.Identity, error) {
	query := `
		SELECT ` + identityColumns + `
		FROM identities
		WHERE active = 1 AND id NOT IN (
			SELECT identity_id FROM presence_records WHERE date = ? AND status = ?
		)
		ORDER BY canonical_name
	`

	rows, err := r.db.QueryContext(ctx, query, date, models.StatusPresent)
	if err != nil {
		return nil, fmt.Errorf("failed to query absent identities for %s: %w", date, err)
	}
	defer rows.Close()

	var identities []models.Identity
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan identity: %w", err)
		}
		identities = append(identities, *identity)
	}

	return identities, rows.Err()
}
