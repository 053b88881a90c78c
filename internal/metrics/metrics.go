package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	submissionsDesc = prometheus.NewDesc(
		"giftrequests_submissions",
		"Number of stored gift requests by status",
		[]string{"status"},
		nil,
	)

	submitAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftrequests_submit_attempts_total",
			Help: "Review submit attempts by outcome",
		},
		[]string{"outcome"},
	)

	adminAuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftrequests_admin_auth_attempts_total",
			Help: "Admin token checks by outcome",
		},
		[]string{"outcome"},
	)
)

// Submit outcomes
const (
	OutcomeCreated = "created"
	OutcomeShared  = "shared"
	OutcomeNoDraft = "no_draft"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Admin auth outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeMissing  = "missing"
	OutcomeMismatch = "mismatch"
)

const collectorTimeout = 5 * time.Second

// StatusCounter reports stored submission counts per status.
type StatusCounter interface {
	CountSubmissionsByStatus(ctx context.Context) (map[string]int64, error)
}

// SubmissionCollector is a custom Prometheus collector that reads submission
// counts from the database on each scrape.
type SubmissionCollector struct {
	store StatusCounter
}

// NewSubmissionCollector creates a collector backed by store.
func NewSubmissionCollector(store StatusCounter) *SubmissionCollector {
	return &SubmissionCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *SubmissionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- submissionsDesc
}

// Collect queries the store for counts per status and emits them as gauges.
func (c *SubmissionCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectorTimeout)
	defer cancel()

	counts, err := c.store.CountSubmissionsByStatus(ctx)
	if err != nil {
		slog.Error("failed to collect submission metrics", "error", err)
		return
	}
	for status, n := range counts {
		ch <- prometheus.MustNewConstMetric(
			submissionsDesc,
			prometheus.GaugeValue,
			float64(n),
			status,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(store StatusCounter) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewSubmissionCollector(store), submitAttempts, adminAuthAttempts)
	})
}

// RecordSubmit counts a review submit attempt.
func RecordSubmit(outcome string) {
	submitAttempts.WithLabelValues(outcome).Inc()
}

// RecordAdminAuth counts an admin token check.
func RecordAdminAuth(outcome string) {
	adminAuthAttempts.WithLabelValues(outcome).Inc()
}
