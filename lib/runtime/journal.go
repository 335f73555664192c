package runtime

import (
	"fmt"
	"time"

	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/storage"
)

// Storage layout
//  * receipts, journaled by `Runtime.Apply`
// 	- 'sg-receipt-<runtime id>-<zero padded seq>': msgpack encoded `Receipt`
//  * exported states
// 	- 'sg-state-<ISO8601 UTC time>-<uuid1>': `StateRecord`
// 	- 'sg-latest-state': key of the last exported `StateRecord`
//
// Nothing here is ever loaded back into a runtime.

const (
	ReceiptPrefix  = "sg-receipt-"
	StatePrefix    = "sg-state-"
	LatestStateKey = "sg-latest-state"
)

func GetReceiptKeyPrefix(runtimeID string) string {
	return fmt.Sprintf("%s%s-", ReceiptPrefix, runtimeID)
}

func GetReceiptKey(runtimeID string, seq uint64) string {
	return fmt.Sprintf("%s%020d", GetReceiptKeyPrefix(runtimeID), seq)
}

func GetStateKey(saved time.Time) string {
	return fmt.Sprintf("%s%s-%s", StatePrefix, common.FormatISO8601(saved.UTC()), common.GetUniqueIDFromUUID())
}

type StateRecord struct {
	RuntimeID string `json:"runtime_id" yaml:"runtime_id"`
	Seq       uint64 `json:"seq" yaml:"seq"`
	Hash      string `json:"hash" yaml:"hash"`
	Saved     string `json:"saved" yaml:"saved"`
	State     State  `json:"state" yaml:"state"`
}

// SaveState exports the current state of `r` into `st` and returns the
// stored record.
func SaveState(st *storage.LevelDBBackend, r *Runtime) (record StateRecord, err error) {
	now := time.Now()

	r.Lock()
	state, seq := r.state(), r.seq
	r.Unlock()

	record = StateRecord{
		RuntimeID: r.ID(),
		Seq:       seq,
		Hash:      state.HashString(),
		Saved:     common.FormatISO8601(now.UTC()),
		State:     state,
	}

	key := GetStateKey(now)

	var ts *storage.LevelDBBackend
	if ts, err = st.OpenTransaction(); err != nil {
		return
	}

	if err = saveStateRecord(ts, key, record); err != nil {
		ts.Discard()
		return
	}

	err = ts.Commit()

	return
}

// saveStateRecord stores the record and moves the latest state pointer to it.
func saveStateRecord(ts *storage.LevelDBBackend, key string, record StateRecord) error {
	if err := ts.New(key, record); err != nil {
		return err
	}

	exists, err := ts.Has(LatestStateKey)
	if err != nil {
		return err
	}
	if exists {
		return ts.Set(LatestStateKey, key)
	}

	return ts.New(LatestStateKey, key)
}

// GetLatestState returns the most recently exported state record.
func GetLatestState(st *storage.LevelDBBackend) (record StateRecord, err error) {
	var key string
	if err = st.Get(LatestStateKey, &key); err != nil {
		return
	}

	err = st.Get(key, &record)

	return
}

// GetReceipts returns the journaled receipts of one runtime, in order.
func GetReceipts(st *storage.LevelDBBackend, runtimeID string) (receipts []Receipt, err error) {
	iterFunc, closeFunc := st.GetIterator(GetReceiptKeyPrefix(runtimeID), nil)
	defer closeFunc()

	for {
		item, hasNext := iterFunc()
		if !hasNext {
			return
		}

		var receipt Receipt
		if receipt, err = NewReceiptFromBytes(item.Value); err != nil {
			return
		}
		receipts = append(receipts, receipt)
	}
}
