// Package metrics provides Prometheus metrics for the coaching engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pillarcoach/coachengine/internal/domain"
)

const (
	namespace = "coachengine"

	KindConversation = "conversation"
	KindActionables  = "actionables"
)

// Recorder records engine activity. A nil *Recorder is valid and records
// nothing, so services can be built without metrics in tests.
type Recorder struct {
	selections          *prometheus.CounterVec
	secondarySelections prometheus.Counter
	fallbacks           prometheus.Counter
	confidence          prometheus.Histogram
	compositions        *prometheus.CounterVec
	serializationErrors prometheus.Counter
}

// NewRecorder registers the engine metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	auto := promauto.With(reg)
	return &Recorder{
		selections: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "selections_total",
			Help:      "Number of classifications by primary coaching model",
		}, []string{"model"}),
		secondarySelections: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "secondary_selections_total",
			Help:      "Number of classifications that also selected a secondary model",
		}),
		fallbacks: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "fallbacks_total",
			Help:      "Number of classifications that fell back to the adaptive model",
		}),
		confidence: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "confidence",
			Help:      "Distribution of selection confidence",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		}),
		compositions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "composer",
			Name:      "compositions_total",
			Help:      "Number of composed instruction texts by kind",
		}, []string{"kind"}),
		serializationErrors: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "composer",
			Name:      "serialization_errors_total",
			Help:      "Number of compositions rejected because caller data could not be serialized",
		}),
	}
}

func (r *Recorder) ObserveSelection(sel domain.ModelSelection, fallback bool) {
	if r == nil {
		return
	}
	r.selections.WithLabelValues(sel.Primary.String()).Inc()
	if sel.Secondary != nil {
		r.secondarySelections.Inc()
	}
	if fallback {
		r.fallbacks.Inc()
	}
	r.confidence.Observe(sel.Confidence)
}

func (r *Recorder) ObserveComposition(kind string) {
	if r == nil {
		return
	}
	r.compositions.WithLabelValues(kind).Inc()
}

func (r *Recorder) ObserveSerializationError() {
	if r == nil {
		return
	}
	r.serializationErrors.Inc()
}
