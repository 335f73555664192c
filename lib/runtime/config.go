package runtime

import (
	"boscoin.io/stakegov/lib/storage"
)

const DefaultMaxDescriptionLength int = 1024

//
// Config holds the runtime options. `Storage` is optional; when set, every
// receipt is journaled into it.
//
type Config struct {
	MaxDescriptionLength int

	Storage *storage.LevelDBBackend
}

func NewConfig() Config {
	return Config{
		MaxDescriptionLength: DefaultMaxDescriptionLength,
	}
}
