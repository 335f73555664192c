package metrics

import (
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type RuntimeMetrics struct {
	CallsTotal          metrics.Counter
	CallDurationSeconds metrics.Histogram
}

func (m *RuntimeMetrics) Applied(call string, err error, begin time.Time) {
	m.CallsTotal.With("call", call, "result", result(err)).Add(1)
	m.CallDurationSeconds.With("call", call).Observe(time.Since(begin).Seconds())
}

func PromRuntimeMetrics() *RuntimeMetrics {
	return &RuntimeMetrics{
		CallsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: RuntimeSubsystem,
			Name:      "calls_total",
			Help:      "Total number of applied calls.",
		}, []string{"call", "result"}),
		CallDurationSeconds: prometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: Namespace,
			Subsystem: RuntimeSubsystem,
			Name:      "call_duration_seconds",
			Help:      "Time spent applying a call.",
		}, []string{"call"}),
	}
}

func NopRuntimeMetrics() *RuntimeMetrics {
	return &RuntimeMetrics{
		CallsTotal:          discard.NewCounter(),
		CallDurationSeconds: discard.NewHistogram(),
	}
}
