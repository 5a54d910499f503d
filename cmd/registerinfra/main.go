// Command registerinfra synthesizes, inspects and validates the
// CloudFormation stacks of the NZ Companies Register.
//
// Usage:
//
//	registerinfra build                Generate all stack templates
//	registerinfra build register-compute   Generate one stack template
//	registerinfra list                 List declared resources
//	registerinfra graph                DOT/Mermaid dependency graph
//	registerinfra lint ./stacks/...    Check declarations for issues
//	registerinfra validate             Run cfn-lint over the templates
//	registerinfra watch ./stacks       Re-lint on source changes
//	registerinfra version              Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "registerinfra",
		Short: "Synthesize the NZ Companies Register infrastructure",
		Long: `registerinfra generates CloudFormation templates from the Go stack
declarations in this repository.

Resources are plain Go structs declared as package vars:

    var DocumentBucket = s3.Bucket{
        BucketName: "nz-companies-register-documents",
    }

The build command resolves references between them and emits one
template per stack, in deploy order.`,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newListCmd(),
		newGraphCmd(),
		newLintCmd(),
		newValidateCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("registerinfra %s\n", getVersion())
		},
	}
}
