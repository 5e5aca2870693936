package errors

import (
	"errors"
)

var (
	// General Errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupportedFile = errors.New("unsupported file format")

	// File & Directory Errors
	ErrFileNotFound   = errors.New("file not found")
	ErrFileReadError  = errors.New("error reading file")
	ErrFileWriteError = errors.New("error writing to file")
	ErrDirNotFound    = errors.New("directory not found")

	// Workflow Errors
	ErrEncodeFailed    = errors.New("failed to encode workflow document")
	ErrDecodeFailed    = errors.New("failed to decode workflow document")
	ErrInvalidWorkflow = errors.New("invalid workflow document")

	// Configuration Errors
	ErrConfigParseError = errors.New("error parsing configuration")
	ErrEnvFileError     = errors.New("error loading env file")
	ErrNotInitialized   = errors.New("component not initialized")
)
