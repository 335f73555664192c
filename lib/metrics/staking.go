package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type StakingMetrics struct {
	CallsTotal metrics.Counter
}

func (m *StakingMetrics) Called(call string, err error) {
	m.CallsTotal.With("call", call, "result", result(err)).Add(1)
}

func PromStakingMetrics() *StakingMetrics {
	return &StakingMetrics{
		CallsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: StakingSubsystem,
			Name:      "calls_total",
			Help:      "Total number of staking calls.",
		}, []string{"call", "result"}),
	}
}

func NopStakingMetrics() *StakingMetrics {
	return &StakingMetrics{
		CallsTotal: discard.NewCounter(),
	}
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
