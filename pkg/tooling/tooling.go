package tooling

import (
	"fmt"

	"github.com/deploymenttheory/go-n8n-composer/internal/config"
	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/deploymenttheory/go-n8n-composer/internal/fsutil"
	"github.com/deploymenttheory/go-n8n-composer/internal/jsonutil"
	"github.com/deploymenttheory/go-n8n-composer/internal/logger"
	"github.com/deploymenttheory/go-n8n-composer/internal/workflow"
)

// InitOptions contains options for initializing the tooling API
type InitOptions struct {
	ConfigFile  string // Path to configuration file
	EnvFile     string // Path to a .env file loaded into the process environment
	Debug       bool   // Enable debug logging
	LogFormat   string // Log format: "human" or "json"
	LogFile     string // Path to log file
	SuppressLog bool   // Suppress all logging
}

// Environment carries explicit workflow parameters. Empty fields are
// treated as absent and become placeholders in the document.
type Environment struct {
	ApifyToken           string
	LinkedInUsername     string
	GoogleSheetID        string
	GoogleSheetName      string
	GoogleCredentialID   string
	GoogleCredentialName string
}

// GenerateOptions controls a generation run
type GenerateOptions struct {
	// Environment overrides the configured environment when set
	Environment *Environment
	// OutputPath is written when non-empty
	OutputPath string
}

// GenerateResult contains the result of a generation run
type GenerateResult struct {
	Document   string // The exported workflow JSON
	OutputPath string // Absolute path written, empty if nothing was written
	NodeCount  int
}

var initialized bool

// Initialize initializes the tooling API with the given options.
// Calls after the first successful one are no-ops.
func Initialize(options InitOptions) error {
	if initialized {
		return nil
	}

	switch options.LogFormat {
	case "", "human", "json":
	default:
		return fmt.Errorf("%w: log format %q", errors.ErrInvalidArgument, options.LogFormat)
	}

	configErr := config.Initialize(options.ConfigFile)

	envFile := options.EnvFile
	if envFile == "" {
		envFile = config.Instance.EnvFile
	}
	loaded, envErr := environment.LoadDotEnv(envFile)
	if envErr != nil {
		return envErr
	}
	if loaded {
		configErr = config.Reload(options.ConfigFile)
	}

	if options.Debug {
		config.Instance.Debug = true
	}
	if options.LogFormat != "" {
		config.Instance.LogFormat = options.LogFormat
	}
	if options.LogFile != "" {
		config.Instance.LogFile = options.LogFile
	}

	if !options.SuppressLog {
		logConfig := logger.DefaultConfig()
		logConfig.Debug = config.Instance.Debug
		logConfig.LogFile = config.Instance.LogFile
		if config.Instance.LogFormat != "" {
			logConfig.LogFormat = config.Instance.LogFormat
		}

		if err := logger.InitLogger(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.LogInfo("Tooling API initialized", map[string]interface{}{
			"config_file": config.ConfigFile,
			"env_file":    envFile,
			"env_loaded":  loaded,
		})

		if configErr != nil {
			logger.LogWarn("Configuration initialization warning", map[string]interface{}{
				"error": configErr.Error(),
			})
		}
	}

	initialized = true
	return nil
}

// DefaultOptions returns the default initialization options
func DefaultOptions() InitOptions {
	return InitOptions{
		LogFormat:   "human",
		SuppressLog: true,
	}
}

// ResolveEnvironment returns the parameters a run would use: explicit values
// when env is non-nil, otherwise the loaded configuration backed by the
// process environment.
func ResolveEnvironment(env *Environment) environment.Environment {
	if env != nil {
		return environment.Read(environment.MapSource{
			environment.KeyApifyToken:           env.ApifyToken,
			environment.KeyLinkedInUsername:     env.LinkedInUsername,
			environment.KeyGoogleSheetID:        env.GoogleSheetID,
			environment.KeyGoogleSheetName:      env.GoogleSheetName,
			environment.KeyGoogleCredentialID:   env.GoogleCredentialID,
			environment.KeyGoogleCredentialName: env.GoogleCredentialName,
		})
	}
	return environment.Read(environment.Chain{config.Source(), environment.ProcessSource})
}

// Generate builds the workflow document and optionally writes it to disk
func Generate(options GenerateOptions) (*GenerateResult, error) {
	env := ResolveEnvironment(options.Environment)

	logger.LogDebug("Resolved workflow environment", env.Redacted())
	if !env.HasCredential() && (env.GoogleCredentialID != "" || env.GoogleCredentialName != "") {
		logger.LogWarn("Google credential ignored: both GOOGLE_CREDENTIAL_ID and GOOGLE_CREDENTIAL_NAME are required", nil)
	}

	document, err := workflow.Export(env)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Document:  document,
		NodeCount: len(workflow.BuildNodes(env)),
	}

	if options.OutputPath == "" {
		return result, nil
	}

	path := fsutil.AbsPath(options.OutputPath)
	if err := jsonutil.WriteFile(path, []byte(document)); err != nil {
		return nil, err
	}
	result.OutputPath = path

	logger.LogInfo("Workflow written", map[string]interface{}{
		"path":  path,
		"nodes": result.NodeCount,
		"bytes": len(document),
	})

	return result, nil
}

// ValidateFile reads an exported workflow and returns its consistency problems.
// The error is non-nil only when the file cannot be read or parsed.
func ValidateFile(path string) ([]error, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty workflow path", errors.ErrInvalidArgument)
	}

	data, err := jsonutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := workflow.Decode(data)
	if err != nil {
		return nil, err
	}

	problems := workflow.Validate(doc)
	for _, problem := range problems {
		logger.LogDebug("Workflow validation error", map[string]interface{}{
			"file":  path,
			"error": problem.Error(),
		})
	}
	return problems, nil
}

// GetVersion returns the current version of the tooling API
func GetVersion() string {
	return "0.1.0"
}

// Shutdown flushes logs before the application exits and resets the API so
// Initialize can run again
func Shutdown() error {
	if !initialized {
		return errors.ErrNotInitialized
	}

	logger.LogDebug("Tooling API shutting down", nil)
	_ = logger.Sync()
	initialized = false
	return nil
}
