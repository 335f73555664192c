package cmd

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	cmdcommon "boscoin.io/stakegov/cmd/stakegov/common"
	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/metrics"
	"boscoin.io/stakegov/lib/runtime"
	"boscoin.io/stakegov/lib/storage"
)

var (
	flagStorageConfigString  string = common.GetENVValue("STAKEGOV_STORAGE", "")
	flagMetrics              bool
	flagMaxDescriptionLength int = runtime.DefaultMaxDescriptionLength
)

var runCmd *cobra.Command

func init() {
	runCmd = &cobra.Command{
		Use:   "run <scenario.yml>",
		Short: "Apply the calls of a scenario file and print the receipts and the final state",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			calls, err := loadScenario(args[0])
			if err != nil {
				cmdcommon.PrintError(c, err)
			}

			config := runtime.NewConfig()
			if flagMaxDescriptionLength < 1 {
				cmdcommon.PrintFlagsError(c, "--max-description-length", errors.New("must be greater than 0"))
			}
			config.MaxDescriptionLength = flagMaxDescriptionLength

			if len(flagStorageConfigString) > 0 {
				storageConfig, err := storage.NewConfigFromString(flagStorageConfigString)
				if err != nil {
					cmdcommon.PrintFlagsError(c, "--storage", err)
				}

				st, err := storage.NewStorage(storageConfig)
				if err != nil {
					cmdcommon.PrintFlagsError(c, "--storage", err)
				}
				defer st.Close()

				config.Storage = st
			}

			if flagMetrics {
				metrics.InitPrometheusMetrics()
			}

			if err = runScenario(os.Stdout, config, calls); err != nil {
				log.Error("failed to run scenario", "error", err)
				cmdcommon.ExitWithError(err)
			}

			if flagMetrics {
				if err = writeMetrics(os.Stdout, prometheus.DefaultGatherer); err != nil {
					cmdcommon.ExitWithError(err)
				}
			}
		},
	}

	runCmd.Flags().StringVar(&flagStorageConfigString, "storage", flagStorageConfigString, "storage uri to journal receipts and export the final state, {memory://, file://<path>}")
	runCmd.Flags().BoolVar(&flagMetrics, "metrics", flagMetrics, "print prometheus metrics after the run")
	runCmd.Flags().IntVar(&flagMaxDescriptionLength, "max-description-length", flagMaxDescriptionLength, "maximum length of proposal description")

	rootCmd.AddCommand(runCmd)
}

// loadScenario reads a yaml list of calls.
func loadScenario(path string) (calls []runtime.Call, err error) {
	var b []byte
	if b, err = ioutil.ReadFile(path); err != nil {
		return nil, errors.Wrap(err, "failed to read scenario")
	}

	if err = yaml.UnmarshalStrict(b, &calls); err != nil {
		return nil, errors.Wrapf(err, "invalid scenario, %q", path)
	}

	return
}

type runResult struct {
	Seq   uint64        `json:"seq"`
	Hash  string        `json:"hash"`
	State runtime.State `json:"state"`
}

// runScenario applies calls in a new runtime, writes one json line per
// receipt and the final state into w. With storage, the final state is
// also exported.
func runScenario(w io.Writer, config runtime.Config, calls []runtime.Call) error {
	r := runtime.NewRuntime(config)
	log.Info("starting scenario", "runtime", r.ID(), "calls", len(calls))

	encode := cmdcommon.DefaultEncodes["json"]

	receipts, err := r.ApplyAll(calls)
	for _, receipt := range receipts {
		if eerr := encode(receipt, w); eerr != nil {
			return eerr
		}
	}
	if err != nil {
		return errors.Wrapf(err, "stopped at call #%d", len(receipts))
	}

	state := r.State()
	result := runResult{Seq: r.Seq(), Hash: state.HashString(), State: state}
	if err = encode(result, w); err != nil {
		return err
	}

	if config.Storage != nil {
		record, err := runtime.SaveState(config.Storage, r)
		if err != nil {
			return errors.Wrap(err, "failed to export state")
		}
		log.Info("state exported", "runtime", record.RuntimeID, "hash", record.Hash, "saved", record.Saved)
	}

	log.Info("scenario finished", "runtime", r.ID(), "seq", result.Seq, "hash", result.Hash)

	return nil
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	mfs, err := gatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
