package cmd

import (
	"fmt"
	"io"

	"github.com/deploymenttheory/go-n8n-composer/internal/config"
	"github.com/deploymenttheory/go-n8n-composer/pkg/tooling"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	output string
	stdout bool
}

var generateFlags generateOptions

// generateCmd writes the workflow document
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the n8n workflow JSON",
	Long: `Generate reads the workflow parameters from the environment and writes
the n8n workflow document to workflow.json (or --output). Missing values are
written as placeholders such as YOUR_APIFY_TOKEN.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := generateFlags
		if !cmd.Flags().Changed("output") {
			opts.output = config.Instance.Output.Path
		}
		return runGenerate(cmd, opts)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", config.DefaultOutputFile, "file to write the workflow to")
	generateCmd.Flags().BoolVar(&generateFlags.stdout, "stdout", false, "print the workflow to stdout instead of writing a file")
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	out := cmd.OutOrStdout()

	if opts.stdout {
		result, err := tooling.Generate(tooling.GenerateOptions{})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result.Document)
		return nil
	}

	if opts.output == "" {
		opts.output = config.DefaultOutputFile
	}

	result, err := tooling.Generate(tooling.GenerateOptions{OutputPath: opts.output})
	if err != nil {
		return err
	}

	printNextSteps(out, result.OutputPath)
	return nil
}

// printNextSteps tells the user how to finish setting up the workflow
func printNextSteps(out io.Writer, path string) {
	success := color.New(color.FgGreen, color.Bold)
	heading := color.New(color.Bold)

	success.Fprintf(out, "✅ Workflow generated successfully: %s\n", path)
	fmt.Fprintln(out)
	heading.Fprintln(out, "📝 Next steps:")
	fmt.Fprintln(out, "1. Set your environment variables (APIFY_TOKEN, LINKEDIN_USERNAME, GOOGLE_SHEET_ID, etc.)")
	fmt.Fprintf(out, "2. Run: %s generate\n", config.AppName)
	fmt.Fprintln(out, "3. Import workflow.json into n8n")
}
