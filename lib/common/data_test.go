package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type jsonValue struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

func TestJSONValue(t *testing.T) {
	v := jsonValue{Name: "alice", Amount: 1000}

	b, err := EncodeJSONValue(v)
	require.NoError(t, err)
	require.Equal(t, `{"name":"alice","amount":"1000"}`, string(b))
	require.Equal(t, b, MustMarshalJSON(v))

	var decoded jsonValue
	require.NoError(t, DecodeJSONValue(b, &decoded))
	require.Equal(t, v, decoded)

	require.Error(t, DecodeJSONValue([]byte("{"), &decoded))
}
