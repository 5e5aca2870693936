package main

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-n8n-composer/cmd"
	"github.com/deploymenttheory/go-n8n-composer/internal/config"
	"github.com/deploymenttheory/go-n8n-composer/internal/logger"
)

func main() {
	// Get app configuration file from environment if specified
	configFile := os.Getenv("N8N_COMPOSER_CONFIG")

	// For app configuration errors, we print to stderr and exit since we can't continue
	if err := config.Initialize(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing configuration: %v\n", err)
		os.Exit(1)
	}

	// Logging is configured by the root command once flags are parsed
	err := cmd.Execute()

	// Ensure logs are flushed before exit
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
