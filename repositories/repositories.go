package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Identity IdentityRepository
	Zone     ZoneRepository
	Presence PresenceRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Identity: NewIdentityRepository(db),
		Zone:     NewZoneRepository(db),
		Presence: NewPresenceRepository(db),
		Audit:    NewAuditRepository(db),
	}
}
