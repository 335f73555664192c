package cmd

import (
	"fmt"
	"io"
	"os"

	logging "github.com/inconshreveable/log15"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/stakegov/cmd/stakegov/common"
	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/runtime"
)

const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	flagLogLevel  string = common.GetENVValue("STAKEGOV_LOG_LEVEL", defaultLogLevel.String())
	flagLogFormat string = common.GetENVValue("STAKEGOV_LOG_FORMAT", "")
)

var (
	logLevel logging.Lvl
	log      logging.Logger = logging.New("module", "main")
)

var rootCmd = &cobra.Command{
	Use:   "stakegov",
	Short: "stakegov, staking ledger and governance registry",
	PersistentPreRun: func(c *cobra.Command, args []string) {
		parseFlagsLogging(c)
	},
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", flagLogFormat, "log format, {terminal, json}; terminal if stderr is a tty")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cmdcommon.PrintFlagsError(rootCmd, "", err)
	}
}

func SetArgs(s []string) {
	rootCmd.SetArgs(s)
}

func parseFlagsLogging(c *cobra.Command) {
	var err error
	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		cmdcommon.PrintFlagsError(c, "--log-level", err)
	}

	var logHandler logging.Handler
	if logHandler, err = newLogHandler(flagLogFormat, os.Stderr, isatty.IsTerminal(os.Stderr.Fd())); err != nil {
		cmdcommon.PrintFlagsError(c, "--log-format", err)
	}

	common.SetLogging(log, logLevel, logHandler)
	runtime.SetLogging(logLevel, logHandler)

	log.Debug(
		"parsed flags:",
		"\n\tlog-level", flagLogLevel,
		"\n\tlog-format", flagLogFormat,
	)
}

// newLogHandler writes logs into w; an empty format picks the terminal
// format for a tty and json otherwise.
func newLogHandler(format string, w io.Writer, tty bool) (logging.Handler, error) {
	if len(format) < 1 {
		if tty {
			format = "terminal"
		} else {
			format = "json"
		}
	}

	var formatter logging.Format
	switch format {
	case "terminal":
		formatter = logging.TerminalFormat()
	case "json":
		formatter = common.JsonFormatEx(false, true)
	default:
		return nil, fmt.Errorf("unknown log format, %q", format)
	}

	return logging.StreamHandler(w, formatter), nil
}
