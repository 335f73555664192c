package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/stakegov/cmd/stakegov/common"
	sgerrors "boscoin.io/stakegov/lib/errors"
	"boscoin.io/stakegov/lib/runtime"
	"boscoin.io/stakegov/lib/storage"
)

var flagStateFormat string = "prettyjson"

var stateCmd *cobra.Command

func init() {
	var flagStorage string

	stateCmd = &cobra.Command{
		Use:   "state",
		Short: "Print the latest exported state",
		Run: func(c *cobra.Command, args []string) {
			if len(flagStorage) < 1 {
				cmdcommon.PrintFlagsError(c, "--storage", sgerrors.InvalidStorageConfig)
			}

			storageConfig, err := storage.NewConfigFromString(flagStorage)
			if err != nil {
				cmdcommon.PrintFlagsError(c, "--storage", err)
			}

			encode, found := cmdcommon.DefaultEncodes[flagStateFormat]
			if !found {
				cmdcommon.PrintFlagsError(c, "--format", errors.Errorf("unknown format, %q", flagStateFormat))
			}

			st, err := storage.NewStorage(storageConfig)
			if err != nil {
				cmdcommon.PrintFlagsError(c, "--storage", err)
			}
			defer st.Close()

			if err = printLatestState(os.Stdout, st, encode); err != nil {
				cmdcommon.ExitWithError(err)
			}
		},
	}

	stateCmd.Flags().StringVar(&flagStorage, "storage", flagStorageConfigString, "storage uri, {memory://, file://<path>}")
	stateCmd.Flags().StringVar(&flagStateFormat, "format", flagStateFormat, "output format, {json, prettyjson, yaml}")

	rootCmd.AddCommand(stateCmd)
}

func printLatestState(w io.Writer, st *storage.LevelDBBackend, encode cmdcommon.Encode) error {
	record, err := runtime.GetLatestState(st)
	if err != nil {
		if err == sgerrors.StorageRecordDoesNotExist {
			return errors.New("no state was exported in this storage")
		}
		return err
	}

	return encode(record, w)
}
