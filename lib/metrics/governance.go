package metrics

import (
	"strconv"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type GovernanceMetrics struct {
	ProposalsTotal metrics.Counter
	VotesTotal     metrics.Counter
	FinalizedTotal metrics.Counter
}

func (m *GovernanceMetrics) ProposalCreated() {
	m.ProposalsTotal.Add(1)
}

func (m *GovernanceMetrics) Voted(choice bool) {
	m.VotesTotal.With("choice", strconv.FormatBool(choice)).Add(1)
}

func (m *GovernanceMetrics) Finalized(status string) {
	m.FinalizedTotal.With("status", status).Add(1)
}

func PromGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		ProposalsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_total",
			Help:      "Total number of created proposals.",
		}, []string{}),
		VotesTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "votes_total",
			Help:      "Total number of recorded votes.",
		}, []string{"choice"}),
		FinalizedTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "finalized_total",
			Help:      "Total number of proposal finalizations.",
		}, []string{"status"}),
	}
}

func NopGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		ProposalsTotal: discard.NewCounter(),
		VotesTotal:     discard.NewCounter(),
		FinalizedTotal: discard.NewCounter(),
	}
}
