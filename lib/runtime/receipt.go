package runtime

import (
	"strconv"

	"github.com/vmihailenco/msgpack"

	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/common/observer"
	"boscoin.io/stakegov/lib/errors"
)

// Receipt is the outcome of one applied call. `Error` is set when the module
// refused the call; the other optional fields depend on the call type.
type Receipt struct {
	Seq  uint64 `json:"seq" msgpack:"seq"`
	Call Call   `json:"call" msgpack:"call"`

	Free       *common.Amount `json:"free,omitempty" msgpack:"free,omitempty"`
	Staked     *common.Amount `json:"staked,omitempty" msgpack:"staked,omitempty"`
	ProposalID *uint64        `json:"proposal_id,omitempty" msgpack:"proposal_id,omitempty"`
	Status     string         `json:"status,omitempty" msgpack:"status,omitempty"`

	Error *errors.Error `json:"error,omitempty" msgpack:"error,omitempty"`
}

func (r Receipt) String() string {
	return string(common.MustMarshalJSON(r))
}

func (r Receipt) Serialize() ([]byte, error) {
	return msgpack.Marshal(r)
}

func NewReceiptFromBytes(b []byte) (r Receipt, err error) {
	err = msgpack.Unmarshal(b, &r)
	return
}

// Event is the space separated list of events `RuntimeObserver` triggers for
// this receipt.
func (r Receipt) Event() string {
	event := observer.EventApplied
	event += " " + observer.Condition(observer.ConditionType, string(r.Call.Type))
	if len(r.Call.Account) > 0 {
		event += " " + observer.Condition(observer.ConditionAccount, r.Call.Account)
	}
	if r.ProposalID != nil {
		event += " " + observer.Condition(observer.ConditionProposal, strconv.FormatUint(*r.ProposalID, 10))
	}
	return event
}
