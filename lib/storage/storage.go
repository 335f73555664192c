package storage

type IterItem struct {
	N     uint64
	Key   []byte
	Value []byte
}

type ListOptions struct {
	Reverse bool
	Cursor  []byte
	Limit   uint64
}

func NewListOptions(reverse bool, cursor []byte, limit uint64) *ListOptions {
	return &ListOptions{
		Reverse: reverse,
		Cursor:  cursor,
		Limit:   limit,
	}
}

// NewStorage opens a leveldb backend for the given config.
func NewStorage(config *Config) (*LevelDBBackend, error) {
	st := &LevelDBBackend{}
	if err := st.Init(config); err != nil {
		return nil, err
	}

	return st, nil
}
