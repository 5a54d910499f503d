package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
	"github.com/nz-companies-register/infra/internal/validation"
	"github.com/nz-companies-register/infra/stacks"
)

// newValidateCmd creates the "validate" subcommand for checking the
// synthesized templates.
func newValidateCmd() *cobra.Command {
	var (
		outputFormat string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the synthesized templates",
		Long: `Validate synthesizes every stack and runs cfn-lint over the
resulting templates.

Checks performed:
  - Reference validity: cross-stack imports resolve against exporters
  - Template validity: each template passes cfn-lint

Examples:
    registerinfra validate
    registerinfra validate --format json
    registerinfra validate -o templates/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(outputFormat, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for the generated templates (default: temp dir)")

	return cmd
}

func runValidate(format, outputDir string) error {
	buildResult, err := synth.New(stacks.All()...).Build()
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	dir := outputDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "registerinfra-validate-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	templateResults, err := validation.ValidateBuild(buildResult, dir)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	resources := 0
	for _, tpl := range buildResult.Templates {
		resources += len(tpl.Resources)
	}

	result := infra.ValidateResult{
		Success:   true,
		Stacks:    len(buildResult.Order),
		Resources: resources,
	}
	for _, tr := range templateResults {
		if !tr.Passed {
			result.Success = false
		}
		for _, msg := range tr.Errors {
			result.Errors = append(result.Errors, tr.Stack+": "+msg)
		}
		for _, msg := range tr.Warnings {
			result.Warnings = append(result.Warnings, tr.Stack+": "+msg)
		}
	}

	return outputValidateResult(result, format)
}

func outputValidateResult(result infra.ValidateResult, format string) error {
	switch format {
	case "json":
		data, err := infra.ToJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success {
			fmt.Printf("Validation passed: %d stacks, %d resources OK\n", result.Stacks, result.Resources)
			for _, warnMsg := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", warnMsg)
			}
			return nil
		}

		fmt.Println("Validation FAILED:")
		for _, errMsg := range result.Errors {
			fmt.Printf("  ERROR: %s\n", errMsg)
		}
		for _, warnMsg := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", warnMsg)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(1)
	}

	return nil
}
