package osutil

import (
	"os"
)

// OS type constants, compared against runtime.GOOS
const (
	Windows = "windows"
	MacOS   = "darwin"
	Linux   = "linux"
)

// IsDevEnvironment reports whether the composer runs from a development checkout,
// in which case config and logs stay in the working directory.
func IsDevEnvironment() bool {
	return os.Getenv("N8N_COMPOSER_ENV") == "development" ||
		os.Getenv("N8N_COMPOSER_DEV") == "true" ||
		os.Getenv("DEV") == "true"
}

// IsRunningInPipeline returns true if running in a CI/CD pipeline environment
func IsRunningInPipeline() bool {
	return os.Getenv("CI") == "true" ||
		os.Getenv("PIPELINE") == "true" ||
		os.Getenv("GITHUB_ACTIONS") == "true" ||
		os.Getenv("JENKINS_URL") != ""
}
