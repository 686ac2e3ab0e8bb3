package authkit

import internalmetrics "github.com/masakahms/authkit/internal/metrics"

// MetricID identifies a specific counter in the session metrics.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess = internalmetrics.MetricLoginSuccess
	// MetricLoginFailure counts rejected logins (empty or undecodable credential).
	MetricLoginFailure = internalmetrics.MetricLoginFailure
	// MetricLogout counts logout transitions.
	MetricLogout = internalmetrics.MetricLogout
	// MetricSessionRestored counts sessions restored from the store at start.
	MetricSessionRestored = internalmetrics.MetricSessionRestored
	// MetricSessionPurged counts corrupt persisted credentials cleared at start.
	MetricSessionPurged = internalmetrics.MetricSessionPurged
	// MetricDecodeFailure counts credential decode failures.
	MetricDecodeFailure = internalmetrics.MetricDecodeFailure
	// MetricStoreDegraded counts store operations that failed and were degraded
	// to the no-credential path.
	MetricStoreDegraded = internalmetrics.MetricStoreDegraded
	// MetricGuardRender counts guard evaluations that allowed rendering.
	MetricGuardRender = internalmetrics.MetricGuardRender
	// MetricGuardRedirectLogin counts guard evaluations redirected to login.
	MetricGuardRedirectLogin = internalmetrics.MetricGuardRedirectLogin
	// MetricGuardRedirectHome counts guard evaluations redirected home.
	MetricGuardRedirectHome = internalmetrics.MetricGuardRedirectHome
)

// Metrics holds the session's atomic counters.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{Enabled: cfg.Enabled})
}
