package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
	"github.com/nz-companies-register/infra/stacks"
)

func newBuildCmd() *cobra.Command {
	var (
		outputFormat string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "build [stacks...]",
		Short: "Generate CloudFormation templates from the stack declarations",
		Long: `Build synthesizes the declared stacks into CloudFormation templates.

With no arguments every stack is built. Naming stacks restricts the
output, but synthesis always covers the full set so that cross-stack
imports resolve against their exporters.

Examples:
    registerinfra build
    registerinfra build register-compute
    registerinfra build -o templates/
    registerinfra build --format yaml register-network`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args, outputFormat, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout)")

	return cmd
}

func runBuild(names []string, format, outputDir string) error {
	for _, name := range names {
		if stacks.ByName(name) == nil {
			return fmt.Errorf("unknown stack: %s", name)
		}
	}

	// Build everything so exporters are known even when only a subset
	// of templates is requested.
	result, err := synth.New(stacks.All()...).Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("build failed")
	}

	selected := result.Order
	if len(names) > 0 {
		want := make(map[string]bool, len(names))
		for _, name := range names {
			want[name] = true
		}
		selected = nil
		for _, name := range result.Order {
			if want[name] {
				selected = append(selected, name)
			}
		}
	}

	for _, name := range selected {
		data, err := marshalTemplate(result.Templates[name], format)
		if err != nil {
			return err
		}

		if outputDir == "" {
			if len(selected) > 1 {
				fmt.Printf("# %s\n", name)
			}
			fmt.Println(string(data))
			continue
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(outputDir, name+"."+format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	return nil
}

func marshalTemplate(tpl *infra.Template, format string) ([]byte, error) {
	switch format {
	case "json":
		return synth.ToJSON(tpl)
	case "yaml":
		return synth.ToYAML(tpl)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
