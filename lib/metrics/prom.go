package metrics

import "sync"

var promOnce sync.Once

// InitPrometheusMetrics replaces the discarding metrics by prometheus ones,
// registered in the default prometheus registry. Only the first call has an
// effect.
func InitPrometheusMetrics() {
	promOnce.Do(func() {
		Version = PromVersion()
		Staking = PromStakingMetrics()
		Governance = PromGovernanceMetrics()
		Runtime = PromRuntimeMetrics()

		SetVersion()
	})
}
