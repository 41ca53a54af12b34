package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/geoattend/models"
)

// IdentityRepository handles identity persistence
type IdentityRepository interface {
	GetAll(ctx context.Context) ([]models.Identity, error)
	GetByID(ctx context.Context, id int) (*models.Identity, error)
	GetByName(ctx context.Context, canonicalName string) (*models.Identity, error)
	FindOrCreate(ctx context.Context, canonicalName string, now time.Time) (*models.Identity, error)
	Deactivate(ctx context.Context, id int) error
	CountActive(ctx context.Context) (int, error)
}

type sqliteIdentityRepository struct {
	db *sql.DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *sql.DB) IdentityRepository {
	return &sqliteIdentityRepository{db: db}
}

const identityColumns = `id, canonical_name, active, registered_at`

func scanIdentity(row interface{ Scan(dest ...any) error }) (*models.Identity, error) {
	var identity models.Identity
	err := row.Scan(&identity.ID, &identity.CanonicalName, &identity.Active, &identity.RegisteredAt)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// GetAll retrieves all identities ordered by name
func (r *sqliteIdentityRepository) GetAll(ctx context.Context) ([]models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities ORDER BY canonical_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query identities: %w", err)
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

// GetByID retrieves an identity by ID
func (r *sqliteIdentityRepository) GetByID(ctx context.Context, id int) (*models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = ?`

	identity, err := scanIdentity(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("identity %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity %d: %w", id, err)
	}
	return identity, nil
}

// GetByName retrieves an identity by its canonical name
func (r *sqliteIdentityRepository) GetByName(ctx context.Context, canonicalName string) (*models.Identity, error) {
	return getIdentityByName(ctx, r.db, canonicalName)
}

func getIdentityByName(ctx context.Context, exec dbExecutor, canonicalName string) (*models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE canonical_name = ?`

	identity, err := scanIdentity(exec.QueryRowContext(ctx, query, canonicalName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("identity %q: %w", canonicalName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity %q: %w", canonicalName, err)
	}
	return identity, nil
}

// FindOrCreate returns the identity with the canonical name, registering it
// first if needed. Concurrent callers converge on a single row: the loser of
// the insert race hits the unique constraint and re-reads the winner's row.
func (r *sqliteIdentityRepository) FindOrCreate(ctx context.Context, canonicalName string, now time.Time) (*models.Identity, error) {
	return findOrCreateIdentity(ctx, r.db, canonicalName, now)
}

// findOrCreateIdentity runs on exec so Admit can register the identity inside
// its own transaction
func findOrCreateIdentity(ctx context.Context, exec dbExecutor, canonicalName string, now time.Time) (*models.Identity, error) {
	identity, err := getIdentityByName(ctx, exec, canonicalName)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	query := `INSERT INTO identities (canonical_name, active, registered_at) VALUES (?, 1, ?)`
	result, err := exec.ExecContext(ctx, query, canonicalName, now)
	if err != nil {
		if isUniqueViolation(err) {
			return getIdentityByName(ctx, exec, canonicalName)
		}
		return nil, fmt.Errorf("failed to create identity %q: %w", canonicalName, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity ID: %w", err)
	}

	return &models.Identity{
		ID:            int(id),
		CanonicalName: canonicalName,
		Active:        true,
		RegisteredAt:  now,
	}, nil
}

// Deactivate marks an identity inactive; its records are kept
func (r *sqliteIdentityRepository) Deactivate(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE identities SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate identity %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("identity %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountActive returns the number of active identities
func (r *sqliteIdentityRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM identities WHERE active = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active identities: %w", err)
	}
	return count, nil
}
