package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUniqueIDFromUUID(t *testing.T) {
	ids := map[string]bool{}
	for i := 0; i < 10000; i++ {
		id := GetUniqueIDFromUUID()
		require.False(t, ids[id], "duplicated id found, %s", id)
		ids[id] = true
	}
}

func TestGetENVValue(t *testing.T) {
	key := "STAKEGOV_TEST_ENV_VALUE"
	os.Unsetenv(key)

	require.Equal(t, "default", GetENVValue(key, "default"))

	os.Setenv(key, "")
	defer os.Unsetenv(key)
	require.Equal(t, "", GetENVValue(key, "default"))

	os.Setenv(key, "findme")
	require.Equal(t, "findme", GetENVValue(key, "default"))
}
