// Package synth builds CloudFormation templates from declared stacks.
//
// Synthesis runs in two passes. The first pass registers every declared
// resource under a content signature. The second pass serializes each
// stack's resources, resolving embedded resource values through the
// signature registry: a reference within the same stack becomes Ref (or
// Fn::GetAtt), a reference across stacks becomes Fn::ImportValue with a
// matching export added to the owning stack.
package synth

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	infra "github.com/nz-companies-register/infra"
)

// App holds the stacks to synthesize.
type App struct {
	stacks []*infra.Stack
}

// New creates an App from the given stacks.
func New(stacks ...*infra.Stack) *App {
	return &App{stacks: stacks}
}

// Result is the outcome of a successful synthesis.
type Result struct {
	// Templates maps stack name to its CloudFormation template.
	Templates map[string]*infra.Template
	// Order lists stack names in deployment order: exporters before
	// importers.
	Order []string
}

// Build synthesizes one template per stack.
func (a *App) Build() (*Result, error) {
	r := newResolver()

	for _, stack := range a.stacks {
		seen := make(map[string]bool)
		for _, res := range stack.Resources() {
			if seen[res.Name] {
				return nil, fmt.Errorf("stack %s declares logical ID %s twice", stack.Name, res.Name)
			}
			seen[res.Name] = true
			if err := r.register(stack.Name, res.Name, res.Value); err != nil {
				return nil, err
			}
		}
	}

	templates := make(map[string]*infra.Template, len(a.stacks))
	for _, stack := range a.stacks {
		tpl, err := a.buildStack(r, stack)
		if err != nil {
			return nil, err
		}
		templates[stack.Name] = tpl
	}

	// Merge auto-added exports for cross-stack references.
	for stackName, outputs := range r.exports {
		tpl, ok := templates[stackName]
		if !ok {
			continue
		}
		if tpl.Outputs == nil {
			tpl.Outputs = make(map[string]infra.Output)
		}
		for name, out := range outputs {
			if _, exists := tpl.Outputs[name]; exists {
				continue
			}
			tpl.Outputs[name] = out
		}
	}

	order, err := deployOrder(a.stacks, r.deps)
	if err != nil {
		return nil, err
	}

	return &Result{Templates: templates, Order: order}, nil
}

// buildStack serializes one stack to a template.
func (a *App) buildStack(r *resolver, stack *infra.Stack) (*infra.Template, error) {
	r.current = stack.Name

	tpl := &infra.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              stack.Description,
		Resources:                make(map[string]infra.ResourceDef),
	}

	for _, res := range stack.Resources() {
		props, err := r.properties(res.Value)
		if err != nil {
			return nil, fmt.Errorf("serializing %s/%s: %w", stack.Name, res.Name, err)
		}
		mergeTags(res.Value, props, stack.Tags())

		tpl.Resources[res.Name] = infra.ResourceDef{
			Type:           res.Value.ResourceType(),
			Properties:     props,
			DependsOn:      res.DependsOn,
			DeletionPolicy: res.DeletionPolicy,
		}
	}

	for _, out := range stack.Outputs() {
		value, err := r.serializeOutputValue(out.Value)
		if err != nil {
			return nil, fmt.Errorf("serializing output %s/%s: %w", stack.Name, out.Name, err)
		}
		if tpl.Outputs == nil {
			tpl.Outputs = make(map[string]infra.Output)
		}
		tpl.Outputs[out.Name] = infra.Output{
			Description: out.Description,
			Value:       value,
			Export:      infra.Export(stack.Name + "-" + out.Name),
		}
	}

	return tpl, nil
}

// deployOrder sorts stacks so that exporters precede importers, using
// Kahn's algorithm with lexical tie-breaking for determinism.
func deployOrder(stacks []*infra.Stack, deps map[string]map[string]bool) ([]string, error) {
	graph := make(map[string][]string)
	inDegree := make(map[string]int)
	for _, s := range stacks {
		graph[s.Name] = nil
		inDegree[s.Name] = 0
	}

	for importer, exporters := range deps {
		for exporter := range exporters {
			if _, exists := inDegree[exporter]; !exists {
				continue
			}
			graph[exporter] = append(graph[exporter], importer)
			inDegree[importer]++
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range graph[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(stacks) {
		var stuck []string
		for name, degree := range inDegree {
			if degree > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, errors.New("circular dependency between stacks: " + joinNames(stuck))
	}

	return result, nil
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// ToJSON serializes a template to indented JSON.
func ToJSON(t *infra.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes a template to YAML.
func ToYAML(t *infra.Template) ([]byte, error) {
	return yaml.Marshal(t)
}
