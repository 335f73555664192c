// Package runtime composes the staking and the governance modules behind a
// single entry point, `Runtime.Apply`.
//
// The runtime binds the module type parameters: accounts are addresses
// (`string`) and balances are `common.Amount`.
package runtime

import (
	"sync"
	"time"

	logging "github.com/inconshreveable/log15"

	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/common/observer"
	"boscoin.io/stakegov/lib/errors"
	"boscoin.io/stakegov/lib/governance"
	"boscoin.io/stakegov/lib/metrics"
	"boscoin.io/stakegov/lib/staking"
)

type (
	StakingLedger      = staking.Ledger[string, common.Amount]
	GovernanceRegistry = governance.Registry[string]
)

type Runtime struct {
	sync.Mutex

	id     string
	config Config
	log    logging.Logger

	staking    *StakingLedger
	governance *GovernanceRegistry

	seq uint64
}

func NewRuntime(config Config) *Runtime {
	id := common.GetUniqueIDFromUUID()

	return &Runtime{
		id:         id,
		config:     config,
		log:        log.New("runtime", id),
		staking:    staking.NewLedger[string, common.Amount](),
		governance: governance.NewRegistry[string](),
	}
}

// ID identifies this runtime instance; journal records are keyed by it.
func (r *Runtime) ID() string {
	return r.id
}

func (r *Runtime) Staking() *StakingLedger {
	return r.staking
}

func (r *Runtime) Governance() *GovernanceRegistry {
	return r.governance
}

// Seq is the number of calls applied so far.
func (r *Runtime) Seq() uint64 {
	r.Lock()
	defer r.Unlock()

	return r.seq
}

//
// Apply validates and executes one call.
//
// A malformed call returns its validation error and an empty receipt; it
// does not consume a sequence number. A call refused by a module returns a
// receipt with `Error` set, and the same error. If journaling the receipt
// fails, the storage error is returned; the state change is kept.
//
func (r *Runtime) Apply(call Call) (receipt Receipt, err error) {
	begin := time.Now()

	if err = call.IsWellFormed(r.config); err != nil {
		r.log.Debug("malformed call", "call", call, "error", err)
		metrics.Runtime.Applied(string(call.Type), err, begin)
		return
	}

	receipt, err = r.apply(call)
	metrics.Runtime.Applied(string(call.Type), err, begin)

	if err != nil && !isRefused(receipt, err) {
		r.log.Error("failed to journal receipt", "receipt", receipt, "error", err)
		return
	}

	if receipt.Error != nil {
		r.log.Debug("call refused", "receipt", receipt)
	} else {
		r.log.Debug("call applied", "receipt", receipt)
	}

	observer.RuntimeObserver.Trigger(receipt.Event(), receipt)

	return
}

// ApplyAll applies `calls` in order. Calls refused by a module are recorded
// in their receipt and do not stop the run; a malformed call or a storage
// failure does, and is returned with the receipts collected so far.
func (r *Runtime) ApplyAll(calls []Call) (receipts []Receipt, err error) {
	for _, call := range calls {
		var receipt Receipt
		if receipt, err = r.Apply(call); err != nil && !isRefused(receipt, err) {
			return
		}
		receipts = append(receipts, receipt)
	}

	return receipts, nil
}

func (r *Runtime) apply(call Call) (receipt Receipt, err error) {
	r.Lock()
	defer r.Unlock()

	receipt = Receipt{Seq: r.seq, Call: call}
	r.seq++

	if err = r.dispatch(call, &receipt); err != nil {
		if e, ok := err.(*errors.Error); ok {
			receipt.Error = e
		} else {
			receipt.Error = errors.NewError(0, err.Error())
			err = receipt.Error
		}
	}

	if r.config.Storage != nil {
		if jerr := r.config.Storage.New(GetReceiptKey(r.id, receipt.Seq), receipt); jerr != nil {
			return receipt, jerr
		}
	}

	return
}

func (r *Runtime) dispatch(call Call, receipt *Receipt) (err error) {
	switch call.Type {
	case CallSetBalance:
		r.staking.SetBalance(call.Account, call.Amount)
		metrics.Staking.Called(string(call.Type), nil)
		r.setBalances(call.Account, receipt)
	case CallStake:
		err = r.staking.Stake(call.Account, call.Amount)
		metrics.Staking.Called(string(call.Type), err)
		r.setBalances(call.Account, receipt)
	case CallUnstake:
		err = r.staking.Unstake(call.Account, call.Amount)
		metrics.Staking.Called(string(call.Type), err)
		r.setBalances(call.Account, receipt)
	case CallCreateProposal:
		id := r.governance.CreateProposal(call.Account, call.Description)
		metrics.Governance.ProposalCreated()
		receipt.ProposalID = &id
	case CallVote:
		id := call.Proposal
		receipt.ProposalID = &id
		if err = r.governance.VoteOnProposal(call.Account, id, call.Choice); err == nil {
			metrics.Governance.Voted(call.Choice)
		}
	case CallFinalize:
		id := call.Proposal
		receipt.ProposalID = &id

		var status governance.ProposalStatus
		if status, err = r.governance.FinalizeProposal(id); err == nil {
			metrics.Governance.Finalized(status.String())
			receipt.Status = status.String()
		}
	default:
		err = errors.UnknownCallType.Clone().SetData("type", string(call.Type))
	}

	return
}

func (r *Runtime) setBalances(account string, receipt *Receipt) {
	free := r.staking.FreeBalance(account)
	staked := r.staking.StakedBalance(account)
	receipt.Free = &free
	receipt.Staked = &staked
}

// isRefused reports whether err is the module error recorded in receipt.
func isRefused(receipt Receipt, err error) bool {
	return receipt.Error != nil && err == error(receipt.Error)
}
