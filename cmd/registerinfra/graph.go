package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nz-companies-register/infra/internal/graph"
	"github.com/nz-companies-register/infra/internal/synth"
	"github.com/nz-companies-register/infra/stacks"
)

func newGraphCmd() *cobra.Command {
	var (
		outputFormat   string
		clusterByStack bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate DOT graph of resource dependencies",
		Long: `Generate a DOT or Mermaid format graph of the dependencies between
resources, including cross-stack imports.

The output can be rendered with Graphviz:
    registerinfra graph | dot -Tpng -o deps.png

Or used in GitHub markdown (Mermaid format):
    registerinfra graph -f mermaid

Examples:
    registerinfra graph
    registerinfra graph -c              # cluster by stack
    registerinfra graph -f mermaid      # mermaid format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(outputFormat, clusterByStack)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().BoolVarP(&clusterByStack, "cluster", "c", false, "Cluster resources by stack")

	return cmd
}

func runGraph(format string, cluster bool) error {
	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	result, err := synth.New(stacks.All()...).Build()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	gen := &graph.Generator{
		Format:         graphFormat,
		ClusterByStack: cluster,
	}

	return gen.Generate(result, os.Stdout)
}
