package storage

import (
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"boscoin.io/stakegov/lib/errors"
)

func TestNewConfigFromString(t *testing.T) {
	{
		config, err := NewConfigFromString("memory://")
		require.NoError(t, err)
		require.Equal(t, "memory", config.Scheme)
	}

	{
		config, err := NewConfigFromString("file:///tmp/stakegov-db")
		require.NoError(t, err)
		require.Equal(t, "file", config.Scheme)
		require.Equal(t, "/tmp/stakegov-db", config.Path)
		require.Equal(t, "file:///tmp/stakegov-db", config.String())
	}

	{
		_, err := NewConfigFromString("redis://localhost")
		require.True(t, errors.InvalidStorageConfig.Is(err.(*errors.Error)))
	}

	{
		_, err := NewConfigFromString("file://")
		require.Error(t, err)
	}
}

func TestLevelDBBackendInitFileStorage(t *testing.T) {
	path, _ := ioutil.TempDir("", "stakegov")
	defer CleanDB(path)

	config, err := NewConfigFromString("file://" + path)
	require.NoError(t, err)

	st, err := NewStorage(config)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.New("showme", "findme"))
}

func TestLevelDBBackendNew(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	key := "showme"
	input := map[string]string{
		"90": "99",
		"91": "91",
	}
	require.NoError(t, st.New(key, input))

	fetched := map[string]string{}
	require.NoError(t, st.Get(key, &fetched))
	require.Equal(t, input, fetched)

	// `New` does not overwrite
	require.Equal(t, errors.StorageRecordAlreadyExists, st.New(key, input))
}

func TestLevelDBBackendSet(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	key := uuid.New().String()
	require.Equal(t, errors.StorageRecordDoesNotExist, st.Set(key, 1))

	var fetched int
	require.Equal(t, errors.StorageRecordDoesNotExist, st.Get(key, &fetched))

	require.NoError(t, st.New(key, 1))
	require.NoError(t, st.Set(key, 2))

	require.NoError(t, st.Get(key, &fetched))
	require.Equal(t, 2, fetched)

	exists, err := st.Has(key)
	require.NoError(t, err)
	require.True(t, exists)
}

type serializedValue string

func (s serializedValue) Serialize() ([]byte, error) {
	return []byte("raw:" + string(s)), nil
}

func TestLevelDBBackendSerializable(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	require.NoError(t, st.New("k", serializedValue("v")))

	b, err := st.GetRaw("k")
	require.NoError(t, err)
	require.Equal(t, "raw:v", string(b))
}

func TestLevelDBBackendTransaction(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	{ // discarded
		ts, err := st.OpenTransaction()
		require.NoError(t, err)
		require.NoError(t, ts.New("discarded", 1))
		require.NoError(t, ts.Discard())

		exists, _ := st.Has("discarded")
		require.False(t, exists)
	}

	{ // committed
		ts, err := st.OpenTransaction()
		require.NoError(t, err)

		_, err = ts.OpenTransaction()
		require.Error(t, err)

		require.NoError(t, ts.New("committed", 1))
		require.NoError(t, ts.Commit())

		exists, _ := st.Has("committed")
		require.True(t, exists)
	}

	require.Error(t, st.Commit())
}

func collectKeys(st *LevelDBBackend, prefix string, option *ListOptions) (keys []string) {
	iterFunc, closeFunc := st.GetIterator(prefix, option)
	defer closeFunc()

	for {
		item, hasNext := iterFunc()
		if !hasNext {
			break
		}
		keys = append(keys, string(item.Key))
	}

	return
}

func TestLevelDBBackendGetIterator(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	var expected []string
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("it-%02d", i)
		require.NoError(t, st.New(key, i))
		expected = append(expected, key)
	}
	require.NoError(t, st.New("other-00", 0))

	require.Equal(t, expected, collectKeys(st, "it-", nil))

	{ // reverse
		var reversed []string
		for i := len(expected) - 1; i >= 0; i-- {
			reversed = append(reversed, expected[i])
		}
		require.Equal(t, reversed, collectKeys(st, "it-", NewListOptions(true, nil, 0)))
	}

	{ // limit
		require.Equal(t, expected[:3], collectKeys(st, "it-", NewListOptions(false, nil, 3)))
		require.Equal(t, []string{"it-09"}, collectKeys(st, "it-", NewListOptions(true, nil, 1)))
	}

	{ // cursor
		require.Equal(t, expected[5:], collectKeys(st, "it-", NewListOptions(false, []byte("it-05"), 0)))
		require.Equal(t, []string{"it-05", "it-04"}, collectKeys(st, "it-", NewListOptions(true, []byte("it-05"), 2)))
	}

	require.Empty(t, collectKeys(st, "missing-", nil))
}
