// Package metrics counts constructed API errors by status code and title.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// metrics name and labels
const (
	MetricsSubsystem   = "api_errors"
	MetricsStatusLabel = "status"
	MetricsTitleLabel  = "title"
)

// Collector counts API errors as they are constructed.
type Collector struct {
	errorsTotal *prometheus.CounterVec
}

// NewCollector creates a collector. Pass the service name as the metrics
// namespace; the counter is exposed as <namespace>_api_errors_total.
func NewCollector(namespace string) *Collector {
	return &Collector{
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: MetricsSubsystem,
				Name:      "total",
				Help:      "Number of API errors constructed, by status code and title.",
			},
			[]string{MetricsStatusLabel, MetricsTitleLabel},
		),
	}
}

// Register registers the collector's metrics with the given registerer.
func (c *Collector) Register(registerer prometheus.Registerer) error {
	return registerer.Register(c.errorsTotal)
}

// Hook returns an on-error hook that increments the error counter.
//
//	collector := metrics.NewCollector("accounts")
//	_ = collector.Register(prometheus.DefaultRegisterer)
//	apierrors.OnError(collector.Hook())
func (c *Collector) Hook() apierrors.Hook {
	return func(e *apierrors.Error) {
		c.errorsTotal.WithLabelValues(strconv.Itoa(e.Status), e.Title).Inc()
	}
}
