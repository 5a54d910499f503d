// Package infra declares the AWS infrastructure for the NZ Companies
// Register as typed CloudFormation resources.
//
// Resources are plain Go structs declared as top-level vars in the stack
// packages:
//
//	var Vpc = ec2.VPC{
//	    CidrBlock: "10.0.0.0/16",
//	}
//
// Each stack package registers its declarations on a Stack value; the
// synthesizer (internal/synth) resolves inter-resource references to
// Ref/Fn::GetAtt, cross-stack references to Fn::ImportValue, and emits one
// CloudFormation template per stack.
package infra

import (
	"encoding/json"
)

// Resource represents a CloudFormation resource.
// All resource types (s3.Bucket, iam.Role, etc.) implement this interface.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::S3::Bucket")
	ResourceType() string
}

// Template represents a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type           string         `json:"Type" yaml:"Type"`
	Properties     map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn      []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	DeletionPolicy string         `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type          string   `json:"Type"`
	Description   string   `json:"Description,omitempty"`
	Default       any      `json:"Default,omitempty"`
	AllowedValues []string `json:"AllowedValues,omitempty"`
}

// Output is a CloudFormation template output.
type Output struct {
	Description string `json:"Description,omitempty"`
	Value       any    `json:"Value"`
	Export      *struct {
		Name string `json:"Name"`
	} `json:"Export,omitempty"`
}

// Export constructs the Export clause of an Output.
func Export(name string) *struct {
	Name string `json:"Name"`
} {
	return &struct {
		Name string `json:"Name"`
	}{Name: name}
}

// StackResource is one registered resource declaration.
type StackResource struct {
	// Name is the CloudFormation logical ID
	Name string
	// Value is the declared resource struct
	Value Resource
	// DependsOn lists logical IDs this resource must wait for beyond its
	// property references
	DependsOn []string
	// DeletionPolicy is the CloudFormation DeletionPolicy (e.g. "Retain")
	DeletionPolicy string
}

// StackOutput is a declared stack output. Outputs are always exported so
// downstream stacks can import them.
type StackOutput struct {
	Name        string
	Description string
	Value       any
}

// StackTag is a stack-level tag propagated to every taggable resource.
type StackTag struct {
	Key   string
	Value string
}

// Stack is a named, independently deployable unit of declared resources.
// Stack values are assembled once at package init time:
//
//	var Stack = infra.NewStack("register-storage").
//	    Tag("Component", "Storage").
//	    Add("DocumentBucket", DocumentBucket)
type Stack struct {
	Name        string
	Description string

	resources []StackResource
	outputs   []StackOutput
	tags      []StackTag
}

// NewStack creates an empty stack.
func NewStack(name string) *Stack {
	return &Stack{Name: name}
}

// Describe sets the template description.
func (s *Stack) Describe(description string) *Stack {
	s.Description = description
	return s
}

// Tag adds a stack-level tag. Stack tags are appended at synthesis time to
// every registered resource whose type carries a Tags []any field.
func (s *Stack) Tag(key, value string) *Stack {
	s.tags = append(s.tags, StackTag{Key: key, Value: value})
	return s
}

// AddOption customizes a resource registration.
type AddOption func(*StackResource)

// DependsOn declares explicit ordering on other logical IDs in the same
// stack, for dependencies CloudFormation cannot infer from references
// (e.g. a route through a gateway that is attached separately).
func DependsOn(names ...string) AddOption {
	return func(r *StackResource) {
		r.DependsOn = append(r.DependsOn, names...)
	}
}

// Retain marks the resource with DeletionPolicy: Retain.
func Retain() AddOption {
	return func(r *StackResource) {
		r.DeletionPolicy = "Retain"
	}
}

// Add registers a resource under its CloudFormation logical ID.
func (s *Stack) Add(name string, r Resource, opts ...AddOption) *Stack {
	entry := StackResource{Name: name, Value: r}
	for _, opt := range opts {
		opt(&entry)
	}
	s.resources = append(s.resources, entry)
	return s
}

// Output declares a stack output. Every declared output is exported under
// "<stack-name>-<output-name>".
func (s *Stack) Output(name string, value any, description string) *Stack {
	s.outputs = append(s.outputs, StackOutput{
		Name:        name,
		Description: description,
		Value:       value,
	})
	return s
}

// Resources returns the registered resources in declaration order.
func (s *Stack) Resources() []StackResource {
	return s.resources
}

// Outputs returns the declared outputs in declaration order.
func (s *Stack) Outputs() []StackOutput {
	return s.outputs
}

// Tags returns the stack-level tags in declaration order.
func (s *Stack) Tags() []StackTag {
	return s.tags
}

// BuildResult is the JSON output from `registerinfra build`.
type BuildResult struct {
	Success   bool                 `json:"success"`
	Templates map[string]*Template `json:"templates,omitempty"`
	Order     []string             `json:"order,omitempty"`
	Errors    []string             `json:"errors,omitempty"`
}

// LintResult is the JSON output from `registerinfra lint`.
type LintResult struct {
	Success bool        `json:"success"`
	Issues  []LintIssue `json:"issues,omitempty"`
}

// LintIssue is a single linting issue.
type LintIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"` // "error", "warning", "info"
	Message  string `json:"message"`
	Rule     string `json:"rule"`
}

// ValidateResult is the JSON output from `registerinfra validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Stacks    int      `json:"stacks"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ListResult is the JSON output from `registerinfra list`.
type ListResult struct {
	Resources []ListResource `json:"resources"`
}

// ListResource is a single resource in the list output.
type ListResource struct {
	Stack string `json:"stack"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// ToJSON serializes a value the way all CLI results are printed.
func ToJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
