package test

import (
	"os"

	logging "github.com/inconshreveable/log15"
)

// LogHandler is the log handler for tests, picked by `STAKEGOV_LOG_HANDLER`;
// logs are discarded by default.
func LogHandler() logging.Handler {
	handlers := map[string]func() logging.Handler{
		"null": func() logging.Handler {
			return logging.DiscardHandler()
		},
		"stdout": func() logging.Handler {
			return logging.CallerStackHandler("%+v", logging.StdoutHandler)
		},
	}

	handler := handlers["null"]
	if h, ok := handlers[os.Getenv("STAKEGOV_LOG_HANDLER")]; ok {
		handler = h
	}

	return handler()
}
