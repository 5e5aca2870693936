package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-n8n-composer/internal/config"
	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/deploymenttheory/go-n8n-composer/internal/logger"
	"github.com/deploymenttheory/go-n8n-composer/pkg/tooling"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Generate the LinkedIn posts to Google Sheets n8n workflow",
	Long: `go-n8n-composer writes an n8n workflow document that fetches LinkedIn
profile posts through the Apify API and appends them to a Google Sheet.

Credentials and identifiers are read from the environment (APIFY_TOKEN,
LINKEDIN_USERNAME, GOOGLE_SHEET_ID, GOOGLE_SHEET_NAME, GOOGLE_CREDENTIAL_ID,
GOOGLE_CREDENTIAL_NAME), a .env file, or a config file. Missing values are
written as placeholders that can be edited after import.

Run without arguments to write workflow.json in the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// If config file was explicitly specified via flag, reinitialize
		if cmd.Flags().Changed("config") && cfgFile != "" {
			if err := config.Reload(cfgFile); err != nil {
				return err
			}
		}

		// Values from a .env file never override the real environment
		envFile, _ := cmd.Flags().GetString("env-file")
		if !cmd.Flags().Changed("env-file") {
			envFile = config.Instance.EnvFile
		}
		loaded, err := environment.LoadDotEnv(envFile)
		if err != nil {
			return err
		}
		if loaded {
			if err := config.Reload(cfgFile); err != nil {
				return err
			}
		}

		// CLI flags override config settings
		if cmd.Flags().Changed("debug") {
			config.Instance.Debug, _ = cmd.Flags().GetBool("debug")
		}
		if cmd.Flags().Changed("log-format") {
			config.Instance.LogFormat, _ = cmd.Flags().GetString("log-format")
		}
		if cmd.Flags().Changed("log-file") {
			config.Instance.LogFile, _ = cmd.Flags().GetString("log-file")
		}

		if err := logger.InitLogger(logger.LoggerConfig{
			Debug:     config.Instance.Debug,
			LogFormat: config.Instance.LogFormat,
			LogFile:   config.Instance.LogFile,
		}); err != nil {
			return err
		}

		logger.LogDebug("Configuration loaded", map[string]interface{}{
			"config_file": config.ConfigFile,
			"env_file":    envFile,
			"env_loaded":  loaded,
		})
		return nil
	},
	// The no-argument entry point: generate with defaults
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, generateOptions{
			output: config.Instance.Output.Path,
		})
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.LogDebug("Command execution failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in standard locations)")
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().Bool("debug", config.Instance.Debug, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "human", "Log format: json or human")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal = config.DefaultLogFile()

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows the application version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", config.AppName, tooling.GetVersion())
	},
}
