package common

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseISO8601(t *testing.T) {
	s := "2018-08-25T14:12:10.090758840+09:00"
	parsed, err := ParseISO8601(s)
	require.NoError(t, err)

	require.Equal(t, 2018, parsed.Year())
	require.Equal(t, time.Month(8), parsed.Month())
	require.Equal(t, 25, parsed.Day())
	require.Equal(t, 14, parsed.Hour())
	require.Equal(t, 12, parsed.Minute())
	require.Equal(t, 10, parsed.Second())
	require.Equal(t, 90758840, parsed.Nanosecond())

	_, offset := parsed.Zone()
	require.Equal(t, 9*60*60, offset)

	require.Equal(t, s, FormatISO8601(parsed))
}

func TestFormatISO8601UTCSortable(t *testing.T) {
	base := time.Date(2018, 8, 25, 23, 59, 59, 999999999, time.UTC)

	var formatted []string
	for i := 0; i < 10; i++ {
		formatted = append(formatted, FormatISO8601(base.Add(time.Duration(i)*time.Millisecond)))
	}

	sorted := make([]string, len(formatted))
	copy(sorted, formatted)
	sort.Strings(sorted)
	require.Equal(t, formatted, sorted)
}
