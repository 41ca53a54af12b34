// Package metrics exposes Prometheus collectors for admission and zone activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "geoattend"

var (
	admissionAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "admission",
		Name:      "attempts_total",
		Help:      "Admission attempts by outcome.",
	}, []string{"outcome"})
	admissionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "admission",
		Name:      "duration_seconds",
		Help:      "Time spent evaluating an admission attempt.",
		Buckets:   prometheus.DefBuckets,
	})
	admissionDistance = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "admission",
		Name:      "distance_meters",
		Help:      "Distance from the active zone center of admitted attempts.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000, 10000},
	})
	zoneMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "zones",
		Name:      "mutations_total",
		Help:      "Zone registry mutations by operation.",
	}, []string{"operation"})
	notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifier",
		Name:      "notifications_total",
		Help:      "Outbound notifications by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(admissionAttempts, admissionDuration, admissionDistance, zoneMutations, notifications)
}

// RecordAdmission counts an admission attempt and observes its duration.
func RecordAdmission(outcome string, elapsed time.Duration) {
	admissionAttempts.WithLabelValues(outcome).Inc()
	admissionDuration.Observe(elapsed.Seconds())
}

// RecordDistance observes the distance of an admitted attempt.
func RecordDistance(meters float64) {
	admissionDistance.Observe(meters)
}

// RecordZoneMutation counts a zone registry mutation such as "create" or "activate".
func RecordZoneMutation(operation string) {
	zoneMutations.WithLabelValues(operation).Inc()
}

// RecordNotification counts a notification delivery by outcome.
func RecordNotification(outcome string) {
	notifications.WithLabelValues(outcome).Inc()
}
