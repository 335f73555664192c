package storage

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	leveldbIterator "github.com/syndtr/goleveldb/leveldb/iterator"
	leveldbOpt "github.com/syndtr/goleveldb/leveldb/opt"
	leveldbStorage "github.com/syndtr/goleveldb/leveldb/storage"
	leveldbUtil "github.com/syndtr/goleveldb/leveldb/util"

	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/errors"
)

type LevelDBCore interface {
	Has([]byte, *leveldbOpt.ReadOptions) (bool, error)
	Get([]byte, *leveldbOpt.ReadOptions) ([]byte, error)
	NewIterator(*leveldbUtil.Range, *leveldbOpt.ReadOptions) leveldbIterator.Iterator
	Put([]byte, []byte, *leveldbOpt.WriteOptions) error
}

type LevelDBBackend struct {
	DB *leveldb.DB

	Core LevelDBCore
}

func setLevelDBCoreError(err error) error {
	if err == nil {
		return nil
	}

	return errors.NewError(
		errors.StorageCoreError.Code,
		fmt.Sprintf("%s: %s", errors.StorageCoreError.Message, err.Error()),
	)
}

func (st *LevelDBBackend) Init(config *Config) (err error) {
	var db *leveldb.DB

	switch config.Scheme {
	case "file":
		if db, err = leveldb.OpenFile(config.Path, nil); err != nil {
			return setLevelDBCoreError(err)
		}
	case "memory":
		sto := leveldbStorage.NewMemStorage()
		if db, err = leveldb.Open(sto, nil); err != nil {
			return setLevelDBCoreError(err)
		}
	default:
		return errors.InvalidStorageConfig.Clone().SetData("scheme", config.Scheme)
	}

	st.DB = db
	st.Core = db

	return
}

func (st *LevelDBBackend) Close() error {
	return st.DB.Close()
}

func (st *LevelDBBackend) OpenTransaction() (*LevelDBBackend, error) {
	if _, ok := st.Core.(*leveldb.Transaction); ok {
		return nil, setLevelDBCoreError(errors.New("this is already *leveldb.Transaction"))
	}

	transaction, err := st.DB.OpenTransaction()
	if err != nil {
		return nil, setLevelDBCoreError(err)
	}

	return &LevelDBBackend{
		DB:   st.DB,
		Core: transaction,
	}, nil
}

func (st *LevelDBBackend) Discard() error {
	ts, ok := st.Core.(*leveldb.Transaction)
	if !ok {
		return setLevelDBCoreError(errors.New("this is not *leveldb.Transaction"))
	}

	ts.Discard()
	return nil
}

func (st *LevelDBBackend) Commit() error {
	ts, ok := st.Core.(*leveldb.Transaction)
	if !ok {
		return setLevelDBCoreError(errors.New("this is not *leveldb.Transaction"))
	}

	return setLevelDBCoreError(ts.Commit())
}

func (st *LevelDBBackend) makeKey(key string) []byte {
	return []byte(key)
}

func (st *LevelDBBackend) encode(v interface{}) ([]byte, error) {
	if serializable, ok := v.(common.Serializable); ok {
		return serializable.Serialize()
	}
	return common.EncodeJSONValue(v)
}

func (st *LevelDBBackend) Has(k string) (bool, error) {
	ok, err := st.Core.Has(st.makeKey(k), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return false, nil
		}
		return false, setLevelDBCoreError(err)
	}

	return ok, nil
}

func (st *LevelDBBackend) GetRaw(k string) (b []byte, err error) {
	var exists bool
	if exists, err = st.Has(k); err != nil {
		return
	} else if !exists {
		err = errors.StorageRecordDoesNotExist
		return
	}

	b, err = st.Core.Get(st.makeKey(k), nil)
	err = setLevelDBCoreError(err)

	return
}

func (st *LevelDBBackend) Get(k string, i interface{}) (err error) {
	var b []byte
	if b, err = st.GetRaw(k); err != nil {
		return
	}

	return setLevelDBCoreError(common.DecodeJSONValue(b, i))
}

func (st *LevelDBBackend) New(k string, v interface{}) (err error) {
	var encoded []byte
	if encoded, err = st.encode(v); err != nil {
		return setLevelDBCoreError(err)
	}

	var exists bool
	if exists, err = st.Has(k); err != nil {
		return
	} else if exists {
		return errors.StorageRecordAlreadyExists
	}

	return setLevelDBCoreError(st.Core.Put(st.makeKey(k), encoded, nil))
}

func (st *LevelDBBackend) Set(k string, v interface{}) (err error) {
	var encoded []byte
	if encoded, err = st.encode(v); err != nil {
		return setLevelDBCoreError(err)
	}

	var exists bool
	if exists, err = st.Has(k); err != nil {
		return
	} else if !exists {
		return errors.StorageRecordDoesNotExist
	}

	return setLevelDBCoreError(st.Core.Put(st.makeKey(k), encoded, nil))
}

// GetIterator walks the records under `prefix`. The first returned function
// yields items until its boolean is false; the second releases the iterator
// and must be called when the walk stops early.
func (st *LevelDBBackend) GetIterator(prefix string, option *ListOptions) (func() (IterItem, bool), func()) {
	var reverse = false
	var cursor []byte
	var limit uint64 = 0
	if option != nil {
		reverse = option.Reverse
		cursor = option.Cursor
		limit = option.Limit
	}

	var dbRange *leveldbUtil.Range
	if len(prefix) > 0 {
		dbRange = leveldbUtil.BytesPrefix(st.makeKey(prefix))
	}

	iter := st.Core.NewIterator(dbRange, nil)

	var started bool
	var n uint64
	return func() (IterItem, bool) {
			if limit != 0 && n >= limit {
				return IterItem{}, false
			}

			var ok bool
			switch {
			case !started && cursor != nil:
				ok = iter.Seek(cursor)
			case !started && reverse:
				ok = iter.Last()
			case reverse:
				ok = iter.Prev()
			default:
				ok = iter.Next()
			}
			started = true

			if !ok {
				return IterItem{}, false
			}

			n++
			return IterItem{
				N:     n,
				Key:   append([]byte{}, iter.Key()...),
				Value: append([]byte{}, iter.Value()...),
			}, true
		},
		func() {
			iter.Release()
		}
}
