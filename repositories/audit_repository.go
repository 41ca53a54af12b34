package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/blogem/geoattend/models"
)

// AuditRepository reads the append-only audit trail. Entries are written by
// PresenceRepository inside the transaction of the change they record.
type AuditRepository interface {
	GetByRecord(ctx context.Context, presenceRecordID int) ([]models.AuditEntry, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// GetByRecord returns the audit trail of a presence record, oldest first
func (r *sqliteAuditRepository) GetByRecord(ctx context.Context, presenceRecordID int) ([]models.AuditEntry, error) {
	query := `
		SELECT id, presence_record_id, action, old_values, new_values, actor, timestamp
		FROM audit_entries
		WHERE presence_record_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, presenceRecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		err := rows.Scan(
			&entry.ID,
			&entry.PresenceRecordID,
			&entry.Action,
			&entry.OldValues,
			&entry.NewValues,
			&entry.Actor,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// insertAuditEntry appends an audit entry using the caller's transaction
func insertAuditEntry(ctx context.Context, tx *sql.Tx, entry *models.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (presence_record_id, action, old_values, new_values, actor, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		entry.PresenceRecordID,
		entry.Action,
		entry.OldValues,
		entry.NewValues,
		entry.Actor,
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get audit entry ID: %w", err)
	}
	entry.ID = id
	return nil
}

// createSnapshot is the audit payload of an admitted record
type createSnapshot struct {
	IdentityID     int                   `json:"identity_id"`
	Date           string                `json:"date"`
	Time           string                `json:"time"`
	Status         models.PresenceStatus `json:"status"`
	ZoneID         *int                  `json:"zone_id"`
	DistanceMeters float64               `json:"distance_meters"`
	ImageReference string                `json:"image_reference"`
}

func newCreateSnapshot(record *models.PresenceRecord) createSnapshot {
	return createSnapshot{
		IdentityID:     record.IdentityID,
		Date:           record.Date,
		Time:           record.Time,
		Status:         record.Status,
		ZoneID:         record.ZoneID,
		DistanceMeters: record.DistanceMeters,
		ImageReference: record.ImageReference,
	}
}

// reviewSnapshot holds exactly the reviewable fields
type reviewSnapshot struct {
	Status     models.PresenceStatus `json:"status"`
	Notes      string                `json:"notes"`
	VerifiedBy string                `json:"verified_by"`
}

func newReviewSnapshot(record *models.PresenceRecord) reviewSnapshot {
	return reviewSnapshot{
		Status:     record.Status,
		Notes:      record.Notes,
		VerifiedBy: record.VerifiedBy,
	}
}

func encodeSnapshot(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode audit values: %w", err)
	}
	return string(data), nil
}
