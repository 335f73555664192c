package metrics

var (
	Staking    = NopStakingMetrics()
	Governance = NopGovernanceMetrics()
	Runtime    = NopRuntimeMetrics()
)
