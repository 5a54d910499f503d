// Package graph generates DOT and Mermaid dependency graphs from
// synthesized stack templates.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator creates dependency graphs from synthesized templates.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format

	// ClusterByStack groups resources into one cluster per stack.
	ClusterByStack bool
}

// Generate writes the dependency graph for the build result to w.
func (g *Generator) Generate(result *synth.Result, w io.Writer) error {
	graph := g.buildGraph(result)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(result *synth.Result) (string, error) {
	var sb strings.Builder
	if err := g.Generate(result, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildGraph creates the dot.Graph structure from the build result.
func (g *Generator) buildGraph(result *synth.Result) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})
	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	nodes := make(map[string]dot.Node)
	exports := exportIndex(result)

	for _, stackName := range result.Order {
		tpl := result.Templates[stackName]
		parent := graph
		if g.ClusterByStack {
			cluster := graph.Subgraph("cluster_"+stackName, dot.ClusterOption{})
			cluster.Attr("label", stackName)
			cluster.Attr("style", "rounded")
			cluster.Attr("bgcolor", "lightyellow")
			parent = cluster
		}

		for _, logical := range sortedLogicals(tpl) {
			key := stackName + "/" + logical
			n := parent.Node(key)
			n.Label(logical + "\\n[" + tpl.Resources[logical].Type + "]")
			nodes[key] = n
		}
	}

	for _, stackName := range result.Order {
		tpl := result.Templates[stackName]
		for _, logical := range sortedLogicals(tpl) {
			from := nodes[stackName+"/"+logical]
			def := tpl.Resources[logical]

			seen := make(map[string]bool)
			addEdge := func(target string, getAtt bool) {
				to, ok := nodes[target]
				if !ok || seen[target] || target == stackName+"/"+logical {
					return
				}
				seen[target] = true
				e := graph.Edge(from, to)
				if getAtt {
					e.Attr("color", "blue")
				}
			}

			walkRefs(def.Properties, func(ref reference) {
				switch ref.Kind {
				case refLocal:
					addEdge(stackName+"/"+ref.Target, false)
				case refGetAtt:
					addEdge(stackName+"/"+ref.Target, true)
				case refImport:
					if target, ok := exports[ref.Target]; ok {
						addEdge(target, false)
					}
				}
			})
			for _, dep := range def.DependsOn {
				addEdge(stackName+"/"+dep, false)
			}
		}
	}

	return graph
}

type refKind int

const (
	refLocal refKind = iota
	refGetAtt
	refImport
)

type reference struct {
	Kind   refKind
	Target string
}

// walkRefs visits every Ref, Fn::GetAtt and Fn::ImportValue inside a
// serialized property tree.
func walkRefs(v any, visit func(reference)) {
	switch t := v.(type) {
	case map[string]any:
		if name, ok := t["Ref"].(string); ok && len(t) == 1 {
			if !strings.HasPrefix(name, "AWS::") {
				visit(reference{Kind: refLocal, Target: name})
			}
			return
		}
		if args, ok := t["Fn::GetAtt"].([]any); ok && len(t) == 1 && len(args) == 2 {
			if name, ok := args[0].(string); ok {
				visit(reference{Kind: refGetAtt, Target: name})
			}
			return
		}
		if name, ok := t["Fn::ImportValue"].(string); ok && len(t) == 1 {
			visit(reference{Kind: refImport, Target: name})
			return
		}
		for _, val := range t {
			walkRefs(val, visit)
		}
	case []any:
		for _, val := range t {
			walkRefs(val, visit)
		}
	}
}

// exportIndex maps export names to the node key of the exported resource.
func exportIndex(result *synth.Result) map[string]string {
	index := make(map[string]string)
	for stackName, tpl := range result.Templates {
		for _, out := range tpl.Outputs {
			if out.Export == nil {
				continue
			}
			logical := outputTarget(out)
			if logical == "" {
				continue
			}
			index[out.Export.Name] = stackName + "/" + logical
		}
	}
	return index
}

// outputTarget extracts the logical ID an output value points at.
func outputTarget(out infra.Output) string {
	switch v := out.Value.(type) {
	case map[string]any:
		if name, ok := v["Ref"].(string); ok {
			return name
		}
		if args, ok := v["Fn::GetAtt"].([]any); ok && len(args) == 2 {
			if name, ok := args[0].(string); ok {
				return name
			}
		}
	}
	return ""
}

func sortedLogicals(tpl *infra.Template) []string {
	logicals := make([]string, 0, len(tpl.Resources))
	for logical := range tpl.Resources {
		logicals = append(logicals, logical)
	}
	sort.Strings(logicals)
	return logicals
}
