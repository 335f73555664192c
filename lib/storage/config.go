package storage

import (
	"net/url"
	"path/filepath"

	"boscoin.io/stakegov/lib/errors"
)

type Config struct {
	Scheme string
	Path   string
}

// NewConfigFromString parses a storage uri, `memory://` or `file://<path>`.
func NewConfigFromString(s string) (*Config, error) {
	parsed, err := url.Parse(s)
	if err != nil {
		return nil, errors.InvalidStorageConfig.Clone().SetData("error", err.Error())
	}

	config := &Config{Scheme: parsed.Scheme}
	switch parsed.Scheme {
	case "memory":
	case "file":
		path := parsed.Host + parsed.Path
		if len(path) < 1 {
			return nil, errors.InvalidStorageConfig.Clone().SetData("error", "empty path")
		}
		if config.Path, err = filepath.Abs(path); err != nil {
			return nil, errors.InvalidStorageConfig.Clone().SetData("error", err.Error())
		}
	default:
		return nil, errors.InvalidStorageConfig.Clone().SetData("scheme", parsed.Scheme)
	}

	return config, nil
}

func (c *Config) String() string {
	if c.Scheme == "memory" {
		return "memory://"
	}
	return c.Scheme + "://" + c.Path
}
