package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAdmission(t *testing.T) {
	before := testutil.ToFloat64(admissionAttempts.WithLabelValues("admitted"))

	RecordAdmission("admitted", 15*time.Millisecond)
	RecordAdmission("admitted", 20*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(admissionAttempts.WithLabelValues("admitted")))
}

func TestRecordZoneMutation(t *testing.T) {
	before := testutil.ToFloat64(zoneMutations.WithLabelValues("activate"))
	RecordZoneMutation("activate")
	assert.Equal(t, before+1, testutil.ToFloat64(zoneMutations.WithLabelValues("activate")))
}

func TestRecordNotification(t *testing.T) {
	before := testutil.ToFloat64(notifications.WithLabelValues("failed"))
	RecordNotification("failed")
	assert.Equal(t, before+1, testutil.ToFloat64(notifications.WithLabelValues("failed")))
}
