package common

import (
	"os"

	uuid "github.com/satori/go.uuid"
)

// GetUniqueIDFromUUID returns a time based (v1) uuid.
func GetUniqueIDFromUUID() string {
	return uuid.Must(uuid.NewV1(), nil).String()
}

func GetENVValue(key, defaultValue string) (v string) {
	var found bool
	if v, found = os.LookupEnv(key); !found {
		return defaultValue
	}

	return
}
