package runtime

import (
	"github.com/vmihailenco/msgpack"

	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/errors"
)

type CallType string

const (
	CallSetBalance     CallType = "set-balance"
	CallStake          CallType = "stake"
	CallUnstake        CallType = "unstake"
	CallCreateProposal CallType = "create-proposal"
	CallVote           CallType = "vote"
	CallFinalize       CallType = "finalize"
)

// Call is one request to the runtime. Only the fields used by `Type` are
// read:
//
//   set-balance, stake, unstake: Account, Amount
//   create-proposal:             Account (creator), Description
//   vote:                        Account (voter), Proposal, Choice
//   finalize:                    Proposal
type Call struct {
	Type        CallType      `json:"type" yaml:"type" msgpack:"type"`
	Account     string        `json:"account,omitempty" yaml:"account" msgpack:"account"`
	Amount      common.Amount `json:"amount,omitempty" yaml:"amount" msgpack:"amount"`
	Proposal    uint64        `json:"proposal,omitempty" yaml:"proposal" msgpack:"proposal"`
	Choice      bool          `json:"choice,omitempty" yaml:"choice" msgpack:"choice"`
	Description string        `json:"description,omitempty" yaml:"description" msgpack:"description"`
}

func NewSetBalance(account string, amount common.Amount) Call {
	return Call{Type: CallSetBalance, Account: account, Amount: amount}
}

func NewStake(account string, amount common.Amount) Call {
	return Call{Type: CallStake, Account: account, Amount: amount}
}

func NewUnstake(account string, amount common.Amount) Call {
	return Call{Type: CallUnstake, Account: account, Amount: amount}
}

func NewCreateProposal(creator, description string) Call {
	return Call{Type: CallCreateProposal, Account: creator, Description: description}
}

func NewVote(voter string, proposal uint64, choice bool) Call {
	return Call{Type: CallVote, Account: voter, Proposal: proposal, Choice: choice}
}

func NewFinalize(proposal uint64) Call {
	return Call{Type: CallFinalize, Proposal: proposal}
}

func (c Call) IsWellFormed(config Config) error {
	switch c.Type {
	case CallSetBalance, CallStake, CallUnstake:
		if len(c.Account) < 1 {
			return errors.InvalidAccount
		}
		if !c.Amount.IsValid() {
			return errors.InvalidAmount
		}
	case CallCreateProposal:
		if len(c.Account) < 1 {
			return errors.InvalidAccount
		}
		if len(c.Description) < 1 || len(c.Description) > config.MaxDescriptionLength {
			return errors.InvalidDescription.Clone().SetData("length", len(c.Description))
		}
	case CallVote:
		if len(c.Account) < 1 {
			return errors.InvalidAccount
		}
	case CallFinalize:
	default:
		return errors.UnknownCallType.Clone().SetData("type", string(c.Type))
	}

	return nil
}

func (c Call) Serialize() ([]byte, error) {
	return msgpack.Marshal(c)
}

func NewCallFromBytes(b []byte) (c Call, err error) {
	err = msgpack.Unmarshal(b, &c)
	return
}
