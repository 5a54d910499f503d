package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/lint"
)

func newLintCmd() *cobra.Command {
	var (
		outputFormat string
		enabledRules []string
	)

	cmd := &cobra.Command{
		Use:   "lint [packages...]",
		Short: "Check stack declarations for issues",
		Long: `Lint checks the stack declaration packages for common issues.

Rules:
    NZR001: Use pseudo-parameter constants instead of hardcoded strings
    NZR002: Sensitive ports must not be open to 0.0.0.0/0
    NZR003: S3 buckets must declare encryption
    NZR004: SQS queues must declare a KMS key
    NZR005: Credentials must not be hardcoded
    NZR006: Log groups must set a retention period
    NZR007: Stacks must carry tags

Examples:
    registerinfra lint
    registerinfra lint ./stacks/...
    registerinfra lint --rules NZR002,NZR005`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"./stacks/..."}
			}
			return runLint(args, outputFormat, enabledRules)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringSliceVar(&enabledRules, "rules", nil, "Rules to enable (default: all)")

	return cmd
}

func runLint(packages []string, format string, rules []string) error {
	var issues []infra.LintIssue

	for _, pkg := range packages {
		lintResult, err := lint.LintPackage(pkg, lint.Options{EnabledRules: rules})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to lint %s: %v\n", pkg, err)
			continue
		}

		for _, issue := range lintResult.Issues {
			issues = append(issues, infra.LintIssue{
				Severity: issue.Severity.String(),
				Message:  issue.Message,
				Rule:     issue.Rule,
				File:     issue.File,
				Line:     issue.Line,
				Column:   issue.Column,
			})
		}
	}

	result := infra.LintResult{
		Success: len(issues) == 0,
		Issues:  issues,
	}

	return outputLintResult(result, format)
}

func outputLintResult(result infra.LintResult, format string) error {
	switch format {
	case "json":
		data, err := infra.ToJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success {
			fmt.Println("No issues found.")
			return nil
		}

		for _, issue := range result.Issues {
			if issue.File != "" {
				fmt.Printf("%s:%d:%d: %s: %s [%s]\n",
					issue.File, issue.Line, issue.Column,
					issue.Severity, issue.Message, issue.Rule)
			} else {
				fmt.Printf("%s: %s [%s]\n", issue.Severity, issue.Message, issue.Rule)
			}
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(2) // Exit code 2 for issues found
	}

	return nil
}
