package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearWorkflowEnv blanks every workflow variable for the duration of the test
func clearWorkflowEnv(t *testing.T) {
	t.Helper()
	for _, key := range environment.Keys {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), AppName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReload_ConfigFile(t *testing.T) {
	clearWorkflowEnv(t)
	path := writeConfig(t, `
debug: true
log_format: json
output:
  path: out/workflow.json
workflow:
  apify_token: yaml-token
  linkedin_username: yaml-user
`)

	require.NoError(t, Reload(path))

	assert.True(t, ConfigLoaded)
	assert.Equal(t, path, ConfigFile)
	assert.True(t, Instance.Debug)
	assert.Equal(t, "json", Instance.LogFormat)
	assert.Equal(t, "out/workflow.json", Instance.Output.Path)
	assert.Equal(t, DefaultEnvFile, Instance.EnvFile)
	assert.Equal(t, "yaml-token", Instance.Workflow.ApifyToken)
	assert.Equal(t, "yaml-user", Instance.Workflow.LinkedInUsername)
	assert.Equal(t, "Data", Instance.Workflow.GoogleSheetName)
}

func TestReload_EnvironmentOverridesFile(t *testing.T) {
	clearWorkflowEnv(t)
	t.Setenv(environment.KeyApifyToken, "env-token")
	t.Setenv(EnvPrefix+"_LOG_FORMAT", "json")

	path := writeConfig(t, "workflow:\n  apify_token: yaml-token\n  google_sheet_id: yaml-sheet\n")
	require.NoError(t, Reload(path))

	assert.Equal(t, "env-token", Instance.Workflow.ApifyToken)
	assert.Equal(t, "yaml-sheet", Instance.Workflow.GoogleSheetID)
	assert.Equal(t, "json", Instance.LogFormat)
}

func TestReload_ReusesPreviousFile(t *testing.T) {
	clearWorkflowEnv(t)
	path := writeConfig(t, "workflow:\n  linkedin_username: first\n")
	require.NoError(t, Reload(path))

	t.Setenv(environment.KeyGoogleSheetName, "Posts")
	require.NoError(t, Reload(""))

	assert.Equal(t, path, ConfigFile)
	assert.Equal(t, "first", Instance.Workflow.LinkedInUsername)
	assert.Equal(t, "Posts", Instance.Workflow.GoogleSheetName)
}

func TestReload_MissingExplicitFile(t *testing.T) {
	clearWorkflowEnv(t)

	err := Reload(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrConfigParseError))

	// Defaults still apply
	assert.False(t, ConfigLoaded)
	assert.Equal(t, DefaultOutputFile, Instance.Output.Path)
	assert.Equal(t, "human", Instance.LogFormat)
}

func TestLookup(t *testing.T) {
	clearWorkflowEnv(t)
	t.Setenv(environment.KeyGoogleCredentialID, "cred")
	t.Setenv(environment.KeyGoogleCredentialName, "Google account")

	require.NoError(t, Reload(writeConfig(t, "workflow:\n  google_sheet_id: sheet\n")))

	tests := []struct {
		key   string
		want  string
		found bool
	}{
		{environment.KeyApifyToken, "", false},
		{environment.KeyGoogleSheetID, "sheet", true},
		{environment.KeyGoogleSheetName, "Data", true},
		{environment.KeyGoogleCredentialID, "cred", true},
		{environment.KeyGoogleCredentialName, "Google account", true},
		{"UNKNOWN", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Lookup(tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	env := environment.Read(Source())
	assert.True(t, env.HasCredential())
	assert.Equal(t, "sheet", env.GoogleSheetID)
}

func TestDefaultLogFile(t *testing.T) {
	path := DefaultLogFile()
	assert.Equal(t, AppName+".log", filepath.Base(path))
}
