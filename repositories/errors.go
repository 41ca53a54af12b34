package repositories

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/blogem/geoattend/models"
)

// Sentinel errors for storage facts. Repositories return these wrapped so
// services can translate them into domain errors.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrZoneActive = errors.New("zone is active")
)

// DuplicateRecordError is returned when a presence record already exists for
// the identity and day being admitted
type DuplicateRecordError struct {
	Existing *models.PresenceRecord
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("presence record already exists for identity %d on %s at %s",
		e.Existing.IdentityID, e.Existing.Date, e.Existing.Time)
}

// Is makes DuplicateRecordError match ErrConflict
func (e *DuplicateRecordError) Is(target error) bool {
	return target == ErrConflict
}

// isUniqueViolation reports whether err is a SQLite unique or primary key violation
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrConstraint &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
}
