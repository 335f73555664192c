package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

// RuntimeObserver is triggered once per applied call. Listeners receive the
// receipt.
var RuntimeObserver = observable.New()

const (
	EventApplied      = "applied"
	ConditionType     = "type"
	ConditionAccount  = "account"
	ConditionProposal = "proposal"
)

func Condition(condition, id string) string {
	return condition + "-" + id
}
