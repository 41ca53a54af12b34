package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/geoattend/metrics"
	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/notifier"
	"github.com/blogem/geoattend/repositories"
)

// maxAbsentNames bounds the absent list included in a summary message
const maxAbsentNames = 20

// notifyTimeout bounds a single background notification
const notifyTimeout = 30 * time.Second

// SummaryService computes the daily summary and sends it to the configured recipient
type SummaryService interface {
	SendDaily(ctx context.Context, date string) (models.Stats, error)
}

// summaryService implements SummaryService interface
type summaryService struct {
	stats        StatsService
	presenceRepo repositories.PresenceRepository
	notifier     notifier.Notifier
	recipient    string
	log          *zap.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	stats StatsService,
	presenceRepo repositories.PresenceRepository,
	notify notifier.Notifier,
	recipient string,
	log *zap.Logger,
) SummaryService {
	return &summaryService{
		stats:        stats,
		presenceRepo: presenceRepo,
		notifier:     notify,
		recipient:    recipient,
		log:          log,
	}
}

// SendDaily computes the statistics for the date and hands the summary to the
// notifier in the background. Delivery failures are logged and never returned.
func (s *summaryService) SendDaily(ctx context.Context, date string) (models.Stats, error) {
	stats, err := s.stats.ForDate(ctx, date)
	if err != nil {
		return models.Stats{}, err
	}

	absent, err := s.presenceRepo.GetAbsentIdentities(ctx, date)
	if err != nil {
		return models.Stats{}, storageError(err, "failed to list absent identities for %s", date)
	}

	if s.recipient == "" {
		s.log.Warn("no summary recipient configured, skipping notification", zap.String("date", date))
		return stats, nil
	}

	message := FormatSummary(stats, absent)
	go s.deliver(message)

	return stats, nil
}

func (s *summaryService) deliver(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, s.recipient, message); err != nil {
		metrics.RecordNotification("failed")
		s.log.Error("failed to send daily summary", zap.String("recipient", s.recipient), zap.Error(err))
		return
	}

	metrics.RecordNotification("sent")
	s.log.Info("daily summary sent", zap.String("recipient", s.recipient))
}

// FormatSummary renders the summary message for a day
func FormatSummary(stats models.Stats, absent []models.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Attendance %s: %d/%d present (%.1f%%), %d absent.",
		stats.Date, stats.Present, stats.Total, stats.Rate, stats.Absent)

	if len(absent) == 0 {
		return b.String()
	}

	names := make([]string, 0, maxAbsentNames)
	for i := range absent {
		if i == maxAbsentNames {
			break
		}
		names = append(names, absent[i].DisplayName())
	}
	b.WriteString(" Absent: ")
	b.WriteString(strings.Join(names, ", "))
	if extra := len(absent) - len(names); extra > 0 {
		fmt.Fprintf(&b, " and %d more", extra)
	}
	b.WriteString(".")
	return b.String()
}
