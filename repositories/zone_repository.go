package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/geoattend/models"
)

// ZoneRepository handles zone persistence. Every write that can change which
// zone is active runs in a single transaction so at most one zone is active.
type ZoneRepository interface {
	GetAll(ctx context.Context) ([]models.Zone, error)
	GetByID(ctx context.Context, id int) (*models.Zone, error)
	GetActive(ctx context.Context) (*models.Zone, error)
	Create(ctx context.Context, zone *models.Zone) error
	Activate(ctx context.Context, id int, now time.Time) error
	Deactivate(ctx context.Context, id int, now time.Time) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type sqliteZoneRepository struct {
	db *sql.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sql.DB) ZoneRepository {
	return &sqliteZoneRepository{db: db}
}

const zoneColumns = `id, name, description, latitude, longitude, radius_meters, active, created_by, created_at, updated_at`

func scanZone(row interface{ Scan(dest ...any) error }) (*models.Zone, error) {
	var zone models.Zone
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.Description,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RadiusMeters,
		&zone.Active,
		&zone.CreatedBy,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// GetAll retrieves all zones, active first
func (r *sqliteZoneRepository) GetAll(ctx context.Context) ([]models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones ORDER BY active DESC, name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, *zone)
	}

	return zones, rows.Err()
}

// GetByID retrieves a zone by ID
func (r *sqliteZoneRepository) GetByID(ctx context.Context, id int) (*models.Zone, error) {
	return getZoneByID(ctx, r.db, id)
}

func getZoneByID(ctx context.Context, exec dbExecutor, id int) (*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = ?`

	zone, err := scanZone(exec.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("zone %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get zone %d: %w", id, err)
	}
	return zone, nil
}

// GetActive retrieves the active zone, or ErrNotFound when none is active
func (r *sqliteZoneRepository) GetActive(ctx context.Context) (*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE active = 1 ORDER BY updated_at DESC, id DESC LIMIT 1`

	zone, err := scanZone(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("active zone: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active zone: %w", err)
	}
	return zone, nil
}

// Create inserts a new zone. When zone.Active is set every other zone is
// deactivated in the same transaction.
func (r *sqliteZoneRepository) Create(ctx context.Context, zone *models.Zone) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if zone.Active {
			if err := deactivateAllZones(ctx, tx, zone.UpdatedAt); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO zones (name, description, latitude, longitude, radius_meters, active, created_by, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		result, err := tx.ExecContext(ctx, query,
			zone.Name,
			zone.Description,
			zone.Latitude,
			zone.Longitude,
			zone.RadiusMeters,
			zone.Active,
			zone.CreatedBy,
			zone.CreatedAt,
			zone.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("zone %q: %w", zone.Name, ErrConflict)
			}
			return fmt.Errorf("failed to create zone: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get zone ID: %w", err)
		}
		zone.ID = int(id)
		return nil
	})
}

// Activate makes the zone the single active zone
func (r *sqliteZoneRepository) Activate(ctx context.Context, id int, now time.Time) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := getZoneByID(ctx, tx, id); err != nil {
			return err
		}

		if err := deactivateAllZones(ctx, tx, now); err != nil {
			return err
		}

		query := `UPDATE zones SET active = 1, updated_at = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, now, id); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("activate zone %d: %w", id, ErrConflict)
			}
			return fmt.Errorf("failed to activate zone %d: %w", id, err)
		}
		return nil
	})
}

// Deactivate marks the zone inactive; deactivating an inactive zone is a no-op
func (r *sqliteZoneRepository) Deactivate(ctx context.Context, id int, now time.Time) error {
	query := `UPDATE zones SET active = 0, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, now, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate zone %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("zone %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes an inactive zone. Deleting the active zone returns ErrZoneActive.
func (r *sqliteZoneRepository) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM zones WHERE id = ? AND active = 0`, id)
		if err != nil {
			return fmt.Errorf("failed to delete zone %d: %w", id, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected > 0 {
			return nil
		}

		// Nothing deleted: either the zone is active or it does not exist
		if _, err := getZoneByID(ctx, tx, id); err != nil {
			return err
		}
		return fmt.Errorf("zone %d: %w", id, ErrZoneActive)
	})
}

// Count returns the total number of zones
func (r *sqliteZoneRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM zones`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count zones: %w", err)
	}
	return count, nil
}

func deactivateAllZones(ctx context.Context, tx *sql.Tx, now time.Time) error {
	if _, err := tx.ExecContext(ctx, `UPDATE zones SET active = 0, updated_at = ? WHERE active = 1`, now); err != nil {
		return fmt.Errorf("failed to deactivate zones: %w", err)
	}
	return nil
}
