package runtime

import (
	"boscoin.io/stakegov/lib/common"
)

type AccountState struct {
	Address string        `json:"address" yaml:"address"`
	Free    common.Amount `json:"free" yaml:"free"`
	Staked  common.Amount `json:"staked" yaml:"staked"`
}

type VoteState struct {
	Voter  string `json:"voter" yaml:"voter"`
	Choice bool   `json:"choice" yaml:"choice"`
}

type ProposalState struct {
	ID          uint64      `json:"id" yaml:"id"`
	Creator     string      `json:"creator" yaml:"creator"`
	Description string      `json:"description" yaml:"description"`
	YesVotes    uint64      `json:"yes_votes" yaml:"yes_votes"`
	NoVotes     uint64      `json:"no_votes" yaml:"no_votes"`
	Status      string      `json:"status" yaml:"status"`
	Votes       []VoteState `json:"votes" yaml:"votes"`
}

// State is a deterministic snapshot of both modules: accounts are sorted by
// address, proposals by id and votes by voter, so equal states hash equally.
type State struct {
	Accounts       []AccountState  `json:"accounts" yaml:"accounts"`
	Proposals      []ProposalState `json:"proposals" yaml:"proposals"`
	NextProposalID uint64          `json:"next_proposal_id" yaml:"next_proposal_id"`
}

// State takes a snapshot; no call is applied while it is taken.
func (r *Runtime) State() State {
	r.Lock()
	defer r.Unlock()

	return r.state()
}

func (r *Runtime) state() State {
	state := State{
		Accounts:       []AccountState{},
		Proposals:      []ProposalState{},
		NextProposalID: r.governance.NextProposalID(),
	}

	for _, address := range r.staking.Accounts() {
		state.Accounts = append(state.Accounts, AccountState{
			Address: address,
			Free:    r.staking.FreeBalance(address),
			Staked:  r.staking.StakedBalance(address),
		})
	}

	for _, p := range r.governance.Proposals() {
		ps := ProposalState{
			ID:          p.ID,
			Creator:     p.Creator,
			Description: p.Description,
			YesVotes:    p.YesVotes,
			NoVotes:     p.NoVotes,
			Status:      p.Status.String(),
			Votes:       []VoteState{},
		}
		for _, b := range r.governance.Voters(p.ID) {
			ps.Votes = append(ps.Votes, VoteState{Voter: b.Voter, Choice: b.Choice})
		}
		state.Proposals = append(state.Proposals, ps)
	}

	return state
}

func (s State) Hash() []byte {
	return common.MustMakeObjectHash(s)
}

// HashString panics if the state can not be rlp encoded.
func (s State) HashString() string {
	return common.MustMakeObjectHashString(s)
}
