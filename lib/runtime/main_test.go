package runtime

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/stakegov/lib/common/test"
)

func init() {
	SetLogging(logging.LvlDebug, test.LogHandler())
}
