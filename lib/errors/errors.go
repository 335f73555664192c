package errors

import "errors"

// New is `errors.New` of the standard library, kept here so callers only
// import one errors package.
func New(message string) error {
	return errors.New(message)
}

var (
	InsufficientFunds       = NewError(100, "insufficient funds")
	Overflow                = NewError(101, "balance overflow")
	MaximumBalanceReached   = NewError(102, "monetary amount would be greater than the total supply of coins")
	AccountBalanceUnderZero = NewError(103, "account balance will be under zero")

	AlreadyVoted     = NewError(200, "account has already voted on this proposal")
	ProposalNotFound = NewError(201, "proposal not found")

	UnknownCallType    = NewError(300, "unknown call type")
	InvalidAccount     = NewError(301, "account is empty")
	InvalidAmount      = NewError(302, "amount is out of range")
	InvalidDescription = NewError(303, "invalid proposal description")

	StorageRecordDoesNotExist  = NewError(400, "record does not exist in storage")
	StorageRecordAlreadyExists = NewError(401, "record already exists in storage")
	StorageCoreError           = NewError(402, "storage error")
	InvalidStorageConfig       = NewError(403, "invalid storage config")
)
