package metrics

// Recorder доменные счетчики, которые используют use case'ы и сервисы
// Nil-безопасен: при выключенных метриках вызовы ничего не делают
type Recorder struct {
	m *Metrics
}

// NewRecorder создает Recorder поверх Metrics (m может быть nil)
func NewRecorder(m *Metrics) *Recorder {
	return &Recorder{m: m}
}

func (r *Recorder) BookingCreated(providerID string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingsCreatedTotal.WithLabelValues(providerID).Inc()
}

// BookingConflict stage: "precheck" или "insert"
func (r *Recorder) BookingConflict(stage string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingConflictsTotal.WithLabelValues(stage).Inc()
}

// LifecycleTransition result: "applied", "noop", "rejected"
func (r *Recorder) LifecycleTransition(event, result string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.LifecycleTransitionsTotal.WithLabelValues(event, result).Inc()
}

// CacheLookup result: "hit", "miss", "error"
func (r *Recorder) CacheLookup(result string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookedTimesCacheTotal.WithLabelValues(result).Inc()
}
