package environment

import (
	"fmt"

	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/deploymenttheory/go-n8n-composer/internal/fsutil"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads a .env file into the process environment. Variables that
// are already set keep their value. A missing file is not an error; the
// returned bool reports whether a file was loaded.
func LoadDotEnv(path string) (bool, error) {
	if path == "" || !fsutil.FileExists(path) {
		return false, nil
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("%w: %s: %s", errors.ErrEnvFileError, path, err.Error())
	}
	return true, nil
}

// ReadDotEnv parses a .env file without touching the process environment
func ReadDotEnv(path string) (MapSource, error) {
	if !fsutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errors.ErrEnvFileError, path, err.Error())
	}
	return MapSource(values), nil
}
