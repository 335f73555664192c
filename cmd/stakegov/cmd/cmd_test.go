package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	cmdcommon "boscoin.io/stakegov/cmd/stakegov/common"
	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/runtime"
	"boscoin.io/stakegov/lib/storage"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func readLines(t *testing.T, b *bytes.Buffer) (lines []string) {
	scanner := bufio.NewScanner(b)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())

	return
}

func TestLoadScenario(t *testing.T) {
	calls, err := loadScenario("testdata/scenario.yml")
	require.NoError(t, err)
	require.Equal(t, 10, len(calls))

	require.Equal(t, runtime.NewSetBalance("alice", 1000), calls[0])
	require.Equal(t, runtime.NewStake("alice", 400), calls[1])
	require.Equal(t, runtime.NewCreateProposal("alice", "Increase block size"), calls[5])
	require.Equal(t, runtime.NewVote("bob", 0, false), calls[7])
	require.Equal(t, runtime.NewFinalize(0), calls[9])
}

func TestLoadScenarioFailures(t *testing.T) {
	_, err := loadScenario("testdata/not-found.yml")
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))

	f, err := os.CreateTemp("", "stakegov-scenario-")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	f.WriteString("- type: stake\n  account: alice\n  amount: showme\n")
	f.Close()

	_, err = loadScenario(f.Name())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid scenario")
}

func TestRunScenario(t *testing.T) {
	calls, err := loadScenario("testdata/scenario.yml")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, runScenario(&b, runtime.NewConfig(), calls))

	lines := readLines(t, &b)
	require.Equal(t, 11, len(lines))

	{ // refused stake
		var receipt runtime.Receipt
		require.NoError(t, json.Unmarshal([]byte(lines[4]), &receipt))
		require.Equal(t, uint64(4), receipt.Seq)
		require.Equal(t, uint(100), receipt.Error.Code)
	}

	{ // finalize
		var receipt runtime.Receipt
		require.NoError(t, json.Unmarshal([]byte(lines[9]), &receipt))
		require.Equal(t, "rejected", receipt.Status)
	}

	var result runResult
	require.NoError(t, json.Unmarshal([]byte(lines[10]), &result))
	require.Equal(t, uint64(10), result.Seq)
	require.Equal(t, result.State.HashString(), result.Hash)
	require.Equal(t, []runtime.AccountState{
		{Address: "alice", Free: 700, Staked: 300},
		{Address: "bob", Free: 500, Staked: 0},
	}, result.State.Accounts)
	require.Equal(t, uint64(1), result.State.Proposals[0].YesVotes)
	require.Equal(t, uint64(1), result.State.Proposals[0].NoVotes)

	{ // same scenario, same hash
		var other bytes.Buffer
		require.NoError(t, runScenario(&other, runtime.NewConfig(), calls))

		var otherResult runResult
		otherLines := readLines(t, &other)
		require.NoError(t, json.Unmarshal([]byte(otherLines[10]), &otherResult))
		require.Equal(t, result.Hash, otherResult.Hash)
	}
}

func TestRunScenarioMalformed(t *testing.T) {
	calls, err := loadScenario("testdata/malformed.yml")
	require.NoError(t, err)

	var b bytes.Buffer
	err = runScenario(&b, runtime.NewConfig(), calls)
	require.Error(t, err)
	require.Contains(t, err.Error(), "stopped at call #1")

	lines := readLines(t, &b)
	require.Equal(t, 1, len(lines))
}

func TestRunScenarioWithStorage(t *testing.T) {
	st, _ := storage.NewTestMemoryLevelDBBackend()
	defer st.Close()

	{ // nothing exported yet
		var b bytes.Buffer
		require.Error(t, printLatestState(&b, st, cmdcommon.DefaultEncodes["json"]))
	}

	calls, err := loadScenario("testdata/scenario.yml")
	require.NoError(t, err)

	config := runtime.NewConfig()
	config.Storage = st

	var b bytes.Buffer
	require.NoError(t, runScenario(&b, config, calls))
	lines := readLines(t, &b)

	var result runResult
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &result))

	var out bytes.Buffer
	require.NoError(t, printLatestState(&out, st, cmdcommon.DefaultEncodes["json"]))

	var record runtime.StateRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	require.Equal(t, result.Hash, record.Hash)
	require.Equal(t, result.Seq, record.Seq)

	out.Reset()
	require.NoError(t, printLatestState(&out, st, cmdcommon.DefaultEncodes["yaml"]))
	require.Contains(t, out.String(), "hash: "+record.Hash)
}

func TestNewLogHandler(t *testing.T) {
	{ // json when not a tty
		var b bytes.Buffer
		handler, err := newLogHandler("", &b, false)
		require.NoError(t, err)

		logger := log.New("test", "json")
		common.SetLogging(logger, defaultLogLevel, handler)
		logger.Info("hello", "amount", common.Amount(10))

		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(b.Bytes(), &m))
		require.Equal(t, "hello", m["msg"])
		require.Equal(t, "10", m["amount"])
	}

	{ // terminal
		var b bytes.Buffer
		handler, err := newLogHandler("terminal", &b, false)
		require.NoError(t, err)

		logger := log.New("test", "terminal")
		common.SetLogging(logger, defaultLogLevel, handler)
		logger.Info("hello")
		// the terminal format colors the level
		plain := ansiEscape.ReplaceAllString(b.String(), "")
		require.True(t, strings.HasPrefix(plain, "INFO"), plain)
		require.Contains(t, plain, "hello")
	}

	{ // unknown
		_, err := newLogHandler("xml", &bytes.Buffer{}, true)
		require.Error(t, err)
	}
}

func TestParseRunFlags(t *testing.T) {
	testCmd := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	var st string
	var printMetrics bool
	testCmd.StringVar(&st, "storage", "", "")
	testCmd.BoolVar(&printMetrics, "metrics", false, "")

	err := testCmd.Parse(strings.Fields("--storage=memory:// --metrics"))
	require.NoError(t, err)
	require.True(t, printMetrics)

	config, err := storage.NewConfigFromString(st)
	require.NoError(t, err)
	require.Equal(t, "memory", config.Scheme)
}

func TestWriteMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stakegov",
		Name:      "test_total",
		Help:      "test counter",
	})
	registry.MustRegister(counter)
	counter.Inc()

	var b bytes.Buffer
	require.NoError(t, writeMetrics(&b, registry))
	require.Contains(t, b.String(), "stakegov_test_total 1")
}
