package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/notifier"
	"github.com/blogem/geoattend/repositories"
)

var timeNow = func() time.Time { return time.Now() }

// Config holds the admission policy and summary settings shared by the services
type Config struct {
	MaxImageBytes     int64
	LocationFreshness time.Duration
	Window            models.TimeWindow
	Location          *time.Location
	SummaryRecipient  string
}

// DefaultConfig returns the default admission policy in the local timezone
func DefaultConfig() Config {
	return Config{
		MaxImageBytes:     5 * 1024 * 1024,
		LocationFreshness: 5 * time.Minute,
		Window:            models.DefaultTimeWindow,
		Location:          time.Local,
	}
}

// Services holds all service instances
type Services struct {
	Identity  IdentityService
	Zone      ZoneService
	Admission AdmissionService
	Ledger    LedgerService
	Stats     StatsService
	Summary   SummaryService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, cfg Config, notify notifier.Notifier, log *zap.Logger) *Services {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	stats := NewStatsService(repos.Identity, repos.Presence)

	return &Services{
		Identity:  NewIdentityService(repos.Identity, log),
		Zone:      NewZoneService(repos.Zone, log),
		Admission: NewAdmissionService(repos.Zone, repos.Identity, repos.Presence, cfg, log),
		Ledger:    NewLedgerService(repos.Presence, repos.Audit, log),
		Stats:     stats,
		Summary:   NewSummaryService(stats, repos.Presence, notify, cfg.SummaryRecipient, log),
	}
}
