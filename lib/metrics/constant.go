package metrics

const (
	Namespace           = "stakegov"
	StakingSubsystem    = "staking"
	GovernanceSubsystem = "governance"
	RuntimeSubsystem    = "runtime"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)
