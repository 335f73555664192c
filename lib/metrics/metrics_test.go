package metrics

import (
	"errors"
	"testing"
	"time"

	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func gatheredNames(t *testing.T) map[string]bool {
	families, err := stdprometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestNopMetrics(t *testing.T) {
	// discarding metrics accept anything
	NopStakingMetrics().Called("stake", nil)
	NopGovernanceMetrics().Voted(true)
	NopGovernanceMetrics().Finalized("approved")
	NopRuntimeMetrics().Applied("vote", errors.New("failed"), time.Now())
}

func TestPrometheusMetrics(t *testing.T) {
	InitPrometheusMetrics()
	InitPrometheusMetrics() // registering twice must not panic

	Staking.Called("stake", nil)
	Staking.Called("unstake", errors.New("insufficient"))
	Governance.ProposalCreated()
	Governance.Voted(false)
	Governance.Finalized("rejected")
	Runtime.Applied("stake", nil, time.Now())

	names := gatheredNames(t)
	for _, name := range []string{
		"stakegov_version",
		"stakegov_staking_calls_total",
		"stakegov_governance_proposals_total",
		"stakegov_governance_votes_total",
		"stakegov_governance_finalized_total",
		"stakegov_runtime_calls_total",
		"stakegov_runtime_call_duration_seconds",
	} {
		require.True(t, names[name], "metric %s is missing", name)
	}
}
