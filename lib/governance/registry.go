// Package governance records proposals and the votes cast on them, and
// resolves each proposal by strict majority.
//
// Every account has at most one vote per proposal. The registry does not
// guard against voting on a proposal which was already finalized, and
// finalizing again recomputes the status from the current counts; callers
// which need a closed proposal must check `Status` themselves.
package governance

import (
	"cmp"
	"slices"
	"sync"

	"boscoin.io/stakegov/lib/errors"
)

type voteKey[A cmp.Ordered] struct {
	voter    A
	proposal uint64
}

type Registry[A cmp.Ordered] struct {
	sync.RWMutex

	proposals      map[uint64]*Proposal[A]
	votes          map[voteKey[A]]bool
	nextProposalID uint64
}

func NewRegistry[A cmp.Ordered]() *Registry[A] {
	return &Registry[A]{
		proposals: map[uint64]*Proposal[A]{},
		votes:     map[voteKey[A]]bool{},
	}
}

// CreateProposal stores a new active proposal and returns its id. Ids are
// allocated sequentially from 0 and never reused.
func (r *Registry[A]) CreateProposal(creator A, description string) uint64 {
	r.Lock()
	defer r.Unlock()

	id := r.nextProposalID
	r.nextProposalID++

	r.proposals[id] = &Proposal[A]{
		ID:          id,
		Creator:     creator,
		Description: description,
		Status:      ProposalActive,
	}

	return id
}

// VoteOnProposal records the choice of `voter`. An earlier vote of the same
// voter is reported as `errors.AlreadyVoted` before the proposal is looked
// up.
func (r *Registry[A]) VoteOnProposal(voter A, id uint64, choice bool) error {
	r.Lock()
	defer r.Unlock()

	key := voteKey[A]{voter: voter, proposal: id}
	if _, found := r.votes[key]; found {
		return errors.AlreadyVoted
	}

	proposal, found := r.proposals[id]
	if !found {
		return errors.ProposalNotFound
	}

	r.votes[key] = choice
	if choice {
		proposal.YesVotes++
	} else {
		proposal.NoVotes++
	}

	return nil
}

func (r *Registry[A]) GetProposal(id uint64) (Proposal[A], bool) {
	r.RLock()
	defer r.RUnlock()

	proposal, found := r.proposals[id]
	if !found {
		return Proposal[A]{}, false
	}

	return *proposal, true
}

// FinalizeProposal sets and returns `ProposalApproved` when yes votes
// outnumber no votes, `ProposalRejected` otherwise.
func (r *Registry[A]) FinalizeProposal(id uint64) (ProposalStatus, error) {
	r.Lock()
	defer r.Unlock()

	proposal, found := r.proposals[id]
	if !found {
		return ProposalActive, errors.ProposalNotFound
	}

	proposal.Status = proposal.resolve()

	return proposal.Status, nil
}

func (r *Registry[A]) Vote(voter A, id uint64) (choice bool, found bool) {
	r.RLock()
	defer r.RUnlock()

	choice, found = r.votes[voteKey[A]{voter: voter, proposal: id}]
	return
}

// Proposals returns copies of all proposals ordered by id.
func (r *Registry[A]) Proposals() []Proposal[A] {
	r.RLock()
	defer r.RUnlock()

	proposals := make([]Proposal[A], 0, len(r.proposals))
	for _, p := range r.proposals {
		proposals = append(proposals, *p)
	}
	slices.SortFunc(proposals, func(a, b Proposal[A]) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return proposals
}

// Voters returns the ballots cast on proposal `id`, ordered by voter.
func (r *Registry[A]) Voters(id uint64) []Ballot[A] {
	r.RLock()
	defer r.RUnlock()

	var ballots []Ballot[A]
	for key, choice := range r.votes {
		if key.proposal != id {
			continue
		}
		ballots = append(ballots, Ballot[A]{Voter: key.voter, Choice: choice})
	}
	slices.SortFunc(ballots, func(a, b Ballot[A]) int {
		return cmp.Compare(a.Voter, b.Voter)
	})

	return ballots
}

func (r *Registry[A]) NextProposalID() uint64 {
	r.RLock()
	defer r.RUnlock()

	return r.nextProposalID
}
