package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_CountsDomainEvents(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())
	rec := NewRecorder(m)

	rec.BookingCreated("prov-1")
	rec.BookingCreated("prov-1")
	rec.BookingConflict("insert")
	rec.LifecycleTransition("payment_succeeded", "applied")
	rec.CacheLookup("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("prov-1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflictsTotal.WithLabelValues("insert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LifecycleTransitionsTotal.WithLabelValues("payment_succeeded", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookedTimesCacheTotal.WithLabelValues("hit")))
}

func TestRecorder_NilSafe(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.BookingCreated("p")
		NewRecorder(nil).BookingConflict("precheck")
	})
}
