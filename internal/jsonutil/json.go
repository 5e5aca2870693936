package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/deploymenttheory/go-n8n-composer/internal/fsutil"
)

// JSONFormat represents the formatting style for JSON output
type JSONFormat int

const (
	// FormatIndented uses indented JSON
	FormatIndented JSONFormat = iota
	// FormatMinified removes all whitespace
	FormatMinified
)

// JSONOptions provides configuration for JSON operations
type JSONOptions struct {
	Format       JSONFormat
	IndentPrefix string
	IndentSize   int
	// EscapeHTML controls whether <, > and & are escaped inside strings
	EscapeHTML bool
}

// DefaultJSONOptions matches the layout n8n itself uses for exported workflows
var DefaultJSONOptions = JSONOptions{
	Format:       FormatIndented,
	IndentPrefix: "",
	IndentSize:   2,
	EscapeHTML:   false,
}

// Marshal encodes v with the given options. The result has no trailing newline.
func Marshal(v interface{}, options ...JSONOptions) ([]byte, error) {
	opts := DefaultJSONOptions
	if len(options) > 0 {
		opts = options[0]
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(opts.EscapeHTML)
	if opts.Format == FormatIndented {
		encoder.SetIndent(opts.IndentPrefix, strings.Repeat(" ", opts.IndentSize))
	}

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrEncodeFailed, err.Error())
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile writes raw JSON text to path. The parent directory must exist.
func WriteFile(path string, data []byte) error {
	if !fsutil.DirExists(fsutil.GetDir(path)) {
		return fmt.Errorf("%w: %s", errors.ErrDirNotFound, fsutil.GetDir(path))
	}

	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}
	return nil
}

// ReadFile reads a JSON file and checks that it holds exactly one JSON value
func ReadFile(path string) ([]byte, error) {
	if !fsutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
	}

	data, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileReadError, err.Error())
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON in %s", errors.ErrUnsupportedFile, path)
	}

	return data, nil
}
