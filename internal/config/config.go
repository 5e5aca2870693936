package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/deploymenttheory/go-n8n-composer/internal/fsutil"
	"github.com/deploymenttheory/go-n8n-composer/internal/osutil"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-n8n-composer"

	// EnvPrefix is the prefix for application environment variables.
	// Workflow parameters use their own un-prefixed names (APIFY_TOKEN, ...).
	EnvPrefix = "N8N_COMPOSER"

	// DefaultOutputFile is written to the working directory by generate
	DefaultOutputFile = "workflow.json"

	// DefaultEnvFile is loaded into the process environment when present
	DefaultEnvFile = ".env"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`
	EnvFile   string `mapstructure:"env_file"`

	// Output settings
	Output struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"output"`

	// Workflow parameters, bound to APIFY_TOKEN, LINKEDIN_USERNAME, ...
	Workflow WorkflowParams `mapstructure:"workflow"`
}

// WorkflowParams are the raw values merged into the generated workflow
type WorkflowParams struct {
	ApifyToken           string `mapstructure:"apify_token"`
	LinkedInUsername     string `mapstructure:"linkedin_username"`
	GoogleSheetID        string `mapstructure:"google_sheet_id"`
	GoogleSheetName      string `mapstructure:"google_sheet_name"`
	GoogleCredentialID   string `mapstructure:"google_credential_id"`
	GoogleCredentialName string `mapstructure:"google_credential_name"`
}

// workflowKeys maps environment keys to their config key
var workflowKeys = map[string]string{
	environment.KeyApifyToken:           "workflow.apify_token",
	environment.KeyLinkedInUsername:     "workflow.linkedin_username",
	environment.KeyGoogleSheetID:        "workflow.google_sheet_id",
	environment.KeyGoogleSheetName:      "workflow.google_sheet_name",
	environment.KeyGoogleCredentialID:   "workflow.google_credential_id",
	environment.KeyGoogleCredentialName: "workflow.google_credential_name",
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// File passed to the last load, reused by Reload("")
	requestedFile string

	initOnce sync.Once
	mu       sync.Mutex
)

// Initialize sets up the configuration system. Only the first call does any work.
func Initialize(cfgFile string) error {
	var err error

	initOnce.Do(func() {
		err = load(cfgFile)
	})

	return err
}

// Reload discards the current configuration and loads it again, e.g. after a
// .env file has been applied to the process environment or a --config flag was given.
// An empty cfgFile reuses the file from the previous load.
func Reload(cfgFile string) error {
	initOnce.Do(func() {})
	if cfgFile == "" {
		mu.Lock()
		cfgFile = requestedFile
		mu.Unlock()
	}
	return load(cfgFile)
}

func load(cfgFile string) error {
	mu.Lock()
	defer mu.Unlock()

	requestedFile = cfgFile

	nv := viper.New()
	setDefaults(nv)

	if cfgFile != "" {
		nv.SetConfigFile(cfgFile)
	} else {
		nv.SetConfigName(AppName)
		nv.SetConfigType("yaml")
		addSearchPaths(nv)
	}

	nv.SetEnvPrefix(EnvPrefix)
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	nv.AutomaticEnv()

	// Workflow parameters keep their conventional names
	for envKey, cfgKey := range workflowKeys {
		if err := nv.BindEnv(cfgKey, envKey); err != nil {
			return fmt.Errorf("%w: binding %s: %s", errors.ErrConfigParseError, envKey, err.Error())
		}
	}

	var loadErr error
	if readErr := nv.ReadInConfig(); readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			loadErr = fmt.Errorf("%w: reading config file: %s", errors.ErrConfigParseError, readErr.Error())
		}
		ConfigLoaded = false
		ConfigFile = ""
	} else {
		ConfigLoaded = true
		ConfigFile = nv.ConfigFileUsed()
	}

	var cfg AppConfig
	if err := nv.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrConfigParseError, err.Error())
	}

	Instance = cfg
	return loadErr
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_file", "")
	v.SetDefault("env_file", DefaultEnvFile)

	v.SetDefault("output.path", DefaultOutputFile)

	// Registered so Unmarshal sees the keys even when only bound to env vars
	for _, cfgKey := range workflowKeys {
		v.SetDefault(cfgKey, "")
	}
	v.SetDefault("workflow.google_sheet_name", environment.DefaultGoogleSheetName)
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	v.AddConfigPath(".")

	if osutil.IsRunningInPipeline() {
		return
	}

	if configDir, err := fsutil.GetConfigDir(AppName); err == nil {
		v.AddConfigPath(configDir)
	}
}

// DefaultLogFile returns the log file location used when file logging is requested without a path
func DefaultLogFile() string {
	logDir, err := fsutil.GetLogDir(AppName)
	if err != nil {
		return filepath.Join("logs", AppName+".log")
	}
	return filepath.Join(logDir, AppName+".log")
}

// Lookup resolves a workflow environment key (APIFY_TOKEN, ...) against the
// loaded configuration. Empty values count as absent.
func Lookup(key string) (string, bool) {
	mu.Lock()
	defer mu.Unlock()

	var value string
	switch key {
	case environment.KeyApifyToken:
		value = Instance.Workflow.ApifyToken
	case environment.KeyLinkedInUsername:
		value = Instance.Workflow.LinkedInUsername
	case environment.KeyGoogleSheetID:
		value = Instance.Workflow.GoogleSheetID
	case environment.KeyGoogleSheetName:
		value = Instance.Workflow.GoogleSheetName
	case environment.KeyGoogleCredentialID:
		value = Instance.Workflow.GoogleCredentialID
	case environment.KeyGoogleCredentialName:
		value = Instance.Workflow.GoogleCredentialName
	}
	return value, value != ""
}

// Source returns the loaded configuration as an environment.Source
func Source() environment.Source {
	return environment.SourceFunc(Lookup)
}
