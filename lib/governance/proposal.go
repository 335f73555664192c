package governance

import (
	"cmp"
	"fmt"
)

type ProposalStatus uint8

const (
	ProposalActive ProposalStatus = iota
	ProposalApproved
	ProposalRejected
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalActive:
		return "active"
	case ProposalApproved:
		return "approved"
	case ProposalRejected:
		return "rejected"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

func (s ProposalStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ProposalStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "active":
		*s = ProposalActive
	case "approved":
		*s = ProposalApproved
	case "rejected":
		*s = ProposalRejected
	default:
		return fmt.Errorf("unknown proposal status: %q", string(b))
	}
	return nil
}

type Proposal[A cmp.Ordered] struct {
	ID          uint64         `json:"id"`
	Creator     A              `json:"creator"`
	Description string         `json:"description"`
	YesVotes    uint64         `json:"yes_votes"`
	NoVotes     uint64         `json:"no_votes"`
	Status      ProposalStatus `json:"status"`
}

// resolve needs a strict majority; ties are rejected.
func (p *Proposal[A]) resolve() ProposalStatus {
	if p.YesVotes > p.NoVotes {
		return ProposalApproved
	}
	return ProposalRejected
}

// Ballot is a recorded vote of one account.
type Ballot[A cmp.Ordered] struct {
	Voter  A    `json:"voter"`
	Choice bool `json:"choice"`
}
