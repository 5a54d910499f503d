package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/stacks"
)

func newListCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list [stack]",
		Short: "List declared resources",
		Long: `List prints every resource declared across the stacks, or in a
single stack when one is named.

Examples:
    registerinfra list
    registerinfra list register-database
    registerinfra list --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stackName := ""
			if len(args) == 1 {
				stackName = args[0]
			}
			return runList(stackName, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runList(stackName, format string) error {
	selected := stacks.All()
	if stackName != "" {
		stack := stacks.ByName(stackName)
		if stack == nil {
			return fmt.Errorf("unknown stack: %s", stackName)
		}
		selected = []*infra.Stack{stack}
	}

	var result infra.ListResult
	for _, stack := range selected {
		for _, res := range stack.Resources() {
			result.Resources = append(result.Resources, infra.ListResource{
				Stack: stack.Name,
				Name:  res.Name,
				Type:  res.Value.ResourceType(),
			})
		}
	}

	sort.Slice(result.Resources, func(i, j int) bool {
		a, b := result.Resources[i], result.Resources[j]
		if a.Stack != b.Stack {
			return a.Stack < b.Stack
		}
		return a.Name < b.Name
	})

	switch format {
	case "json":
		data, err := infra.ToJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STACK\tNAME\tTYPE")
		for _, res := range result.Resources {
			fmt.Fprintf(w, "%s\t%s\t%s\n", res.Stack, res.Name, res.Type)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d resources\n", len(result.Resources))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
