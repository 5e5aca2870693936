package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-n8n-composer/internal/config"
	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/deploymenttheory/go-n8n-composer/internal/logger"
	"github.com/deploymenttheory/go-n8n-composer/pkg/tooling"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateCmd checks an exported workflow for dangling connections
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a workflow's connections refer to its nodes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := config.Instance.Output.Path
		if file == "" {
			file = config.DefaultOutputFile
		}
		if len(args) == 1 {
			file = args[0]
		}

		problems, err := tooling.ValidateFile(file)
		if err != nil {
			return err
		}

		if len(problems) > 0 {
			for _, problem := range problems {
				logger.LogError("Workflow validation error", problem, map[string]interface{}{
					"file": file,
				})
			}
			return fmt.Errorf("%w: %d problems in %s", errors.ErrInvalidWorkflow, len(problems), file)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s is consistent\n", file)
		return nil
	},
}
