package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the content module.
// Counts degraded gateway calls and moderation traffic.
type Metrics struct {
	GatewayFailures     *prometheus.CounterVec
	OperationDuration   *prometheus.HistogramVec
	CommentsSubmitted   prometheus.Counter
	CommentsApproved    prometheus.Counter
	CommentsRejected    prometheus.Counter
	SubmissionsByClient *prometheus.CounterVec
}

// New registers the content metrics on reg (default registerer when nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		GatewayFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "strata_content_gateway_failures_total",
			Help: "Storage gateway failures degraded to empty results, by entity and operation",
		}, []string{"entity", "operation"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "strata_content_operation_duration_seconds",
			Help:    "Duration of content operations including the gateway round trip",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"entity", "operation"}),
		CommentsSubmitted: f.NewCounter(prometheus.CounterOpts{
			Name: "strata_comments_submitted_total",
			Help: "Comments accepted into the pending queue",
		}),
		CommentsApproved: f.NewCounter(prometheus.CounterOpts{
			Name: "strata_comments_approved_total",
			Help: "Comment approvals that reached storage",
		}),
		CommentsRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "strata_comments_rejected_total",
			Help: "Comment submissions rejected before any gateway call",
		}),
		SubmissionsByClient: f.NewCounterVec(prometheus.CounterOpts{
			Name: "strata_comment_submissions_by_client_total",
			Help: "Comment submissions by user agent family",
		}, []string{"browser", "mobile"}),
	}
}

// IncrementGatewayFailure records one degraded call.
func (m *Metrics) IncrementGatewayFailure(entity, op string) {
	if m != nil {
		m.GatewayFailures.WithLabelValues(entity, op).Inc()
	}
}

// ObserveOperation records the duration since start.
func (m *Metrics) ObserveOperation(entity, op string, start time.Time) {
	if m != nil {
		m.OperationDuration.WithLabelValues(entity, op).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) IncrementCommentSubmitted() {
	if m != nil {
		m.CommentsSubmitted.Inc()
	}
}

func (m *Metrics) IncrementCommentApproved() {
	if m != nil {
		m.CommentsApproved.Inc()
	}
}

func (m *Metrics) IncrementCommentRejected() {
	if m != nil {
		m.CommentsRejected.Inc()
	}
}

// IncrementSubmissionClient records the browser family of a submitter.
func (m *Metrics) IncrementSubmissionClient(browser string, mobile bool) {
	if m == nil {
		return
	}
	if browser == "" {
		browser = "unknown"
	}
	mob := "false"
	if mobile {
		mob = "true"
	}
	m.SubmissionsByClient.WithLabelValues(browser, mob).Inc()
}
