package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Labels to use for partitioning requests.
	requestLabels = []string{"method", "status"}

	// Labels to use for partitioning request latencies.
	requestLatencyLabels = []string{"method"}
)

// RequestMetrics tracks the requests sent to the decoder
type RequestMetrics struct {
	// Counts of requests made, partitioned by http method and status.
	Requests *prometheus.CounterVec

	// Latencies of requests, partitioned by http method.
	RequestLatencies *prometheus.SummaryVec
}

// NewRequestMetrics creates the request metrics for the named
// client and registers them in registerer.
func NewRequestMetrics(registerer prometheus.Registerer, clientName string) *RequestMetrics {
	metrics := &RequestMetrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: fmt.Sprintf("%s_requests", clientName),
				Help: "How many requests were sent, partitioned by http method and status.",
			},
			requestLabels,
		),
		RequestLatencies: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: fmt.Sprintf("%s_request_durations", clientName),
				Help: "How long requests take to complete, partitioned by http method.",
			},
			requestLatencyLabels,
		),
	}
	registerer.MustRegister(metrics.RequestLatencies)
	registerer.MustRegister(metrics.Requests)
	return metrics
}

// RequestCounter returns the counter for the request.
// Provided labels should be method, status.
func (m *RequestMetrics) RequestCounter(labels ...string) prometheus.Counter {
	labels = padLabels(labels, len(requestLabels))
	return m.Requests.WithLabelValues(labels...)
}

// RequestTimer creates a new latency timer for the request.
func (m *RequestMetrics) RequestTimer(labels ...string) *prometheus.Timer {
	labels = padLabels(labels, len(requestLatencyLabels))
	return prometheus.NewTimer(m.RequestLatencies.WithLabelValues(labels...))
}

// StatusClass maps an http status code to the label used by
// RequestCounter, for instance 2xx
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}

	return fmt.Sprintf("%dxx", code/100)
}

// padLabels returns a copy of labels truncated or padded with empty
// values to n entries. The caller's slice is never written
func padLabels(labels []string, n int) []string {
	padded := make([]string, n)
	copy(padded, labels)
	return padded
}
