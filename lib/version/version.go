package version

import "fmt"

var (
	Version   string = "0.1.0" // must follow SemVer (https://semver.org)
	GitCommit string           // GitCommit will be overwritten automatically by the build system
	BuildDate string           // BuildDate will be overwritten automatically by the build system
)

func ToDetailVersion() string {
	return fmt.Sprintf("version=%s git=%s build=%s", Version, GitCommit, BuildDate)
}
