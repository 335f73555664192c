//
// Define the `Amount` type, the balance type bound by the stakegov runtime.
//
// - `Add` / `Sub` do an addition / substraction and return an error object
// - `MustAdd` / `MustSub` call `Add` / `Sub` and turn any `error` into a `panic`.
//   Those are provided for testing and should not be in production code.
// - Invariant `panic`s if the instance it's called on violates its invariant
//
package common

import (
	"fmt"
	"strconv"
	"strings"

	"boscoin.io/stakegov/lib/errors"
)

const (
	// 10,000,000 units == 1 coin
	AmountPerCoin Amount = 10000000
	// The maximum possible supply of coins within any ledger
	MaximumBalance Amount = 1000000000000 * AmountPerCoin
	// An invalid value, used to make an instance unusable
	invalidValue = Amount(MaximumBalance + 1)
)

type Amount uint64

// Check this type's invariant, that is, its value is <= MaximumBalance
func (a Amount) Invariant() {
	if a > MaximumBalance {
		// `uint64` is necessary to avoid a recursive call to `String`
		panic(fmt.Errorf("Amount '%d' is higher than the total supply of coins (%d)", uint64(a), uint64(MaximumBalance)))
	}
}

func (a Amount) IsValid() bool {
	return a <= MaximumBalance
}

func (a Amount) String() string {
	a.Invariant()
	return strconv.FormatUint(uint64(a), 10)
}

//
// Add an `Amount` to this `Amount`
//
// If the resulting value would overflow `MaximumBalance`, or either operand is
// already above it, an error is returned, along with an invalid value.
//
func (a Amount) Add(added Amount) (Amount, error) {
	if !a.IsValid() || !added.IsValid() {
		return invalidValue, errors.MaximumBalanceReached
	}
	// both sides are bounded by MaximumBalance, so this never wraps
	if added > MaximumBalance-a {
		return invalidValue, errors.MaximumBalanceReached
	}
	return a + added, nil
}

// Counterpart of `Add` which panic instead of returning an error
func (a Amount) MustAdd(added Amount) Amount {
	if v, err := a.Add(added); err != nil {
		panic(err)
	} else {
		return v
	}
}

//
// Substract an `Amount` from this `Amount`
//
// If the resulting value would underflow, an error is returned,
// along with an invalid value. An operand above `MaximumBalance` is an error
// too.
//
func (a Amount) Sub(sub Amount) (Amount, error) {
	if !a.IsValid() {
		return invalidValue, errors.MaximumBalanceReached
	}
	if a < sub {
		return invalidValue, errors.AccountBalanceUnderZero
	}
	return a - sub, nil
}

// Counterpart of `Sub` which panic instead of returning an error
func (a Amount) MustSub(sub Amount) Amount {
	if v, err := a.Sub(sub); err != nil {
		panic(err)
	} else {
		return v
	}
}

// Implement JSON's Marshaler interface
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", a.String())), nil
}

// Implement JSON's Unmarshaler interface.
// Both the quoted and the bare number forms are accepted.
func (a *Amount) UnmarshalJSON(b []byte) (err error) {
	*a, err = AmountFromString(strings.Trim(string(b), "\""))
	return
}

// Implement `encoding.TextUnmarshaler`, used by yaml; digit separators are
// accepted like in `ParseAmountFromString`.
func (a *Amount) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAmountFromString(string(b))
	return
}

// Parse an input string as a monetary amount
//
// Commas (','), and dots ('.') and underscores ('_')
// are treated as digit separator, and not decimal separators,
// and will be skipped.
func ParseAmountFromString(input string) (Amount, error) {
	amountStr := strings.Replace(input, ",", "", -1)
	amountStr = strings.Replace(amountStr, ".", "", -1)
	amountStr = strings.Replace(amountStr, "_", "", -1)
	return AmountFromString(amountStr)
}

// Parse an `Amount` from a string input
//
// Params:
//   str = a string consisting only of numbers
//
// Returns:
//  A valid `Amount` and a `nil` error, or an invalid amount and an `error`
func AmountFromString(str string) (Amount, error) {
	value, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return invalidValue, err
	}
	if a := Amount(value); !a.IsValid() {
		return invalidValue, errors.MaximumBalanceReached
	} else {
		return a, nil
	}
}

// Same as AmountFromString, except it `panic`s if an error happens
func MustAmountFromString(str string) Amount {
	if value, err := AmountFromString(str); err != nil {
		panic(err)
	} else {
		return value
	}
}
