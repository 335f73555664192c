package common

// Balance is the capability the ledgers need from a monetary type.
//
// The zero value of the type must be the numeric zero. `Add` and `Sub` are
// checked: they return an error instead of wrapping around, and the receiver
// is never modified.
type Balance[B any] interface {
	comparable

	Add(B) (B, error)
	Sub(B) (B, error)
}
