// Package intrinsics provides the CloudFormation intrinsic functions used by
// the stack declarations.
//
// The core intrinsic types come from cloudformation-schema-go:
//
//	Ref{LogicalName: "Vpc"}          → {"Ref": "Vpc"}
//	Sub{String: "${AWS::Region}-x"}  → {"Fn::Sub": "${AWS::Region}-x"}
//	Select{Index: 0, List: GetAZs{}} → {"Fn::Select": [0, {"Fn::GetAZs": ""}]}
//
// Most stack code never spells these out: embedding a declared resource value
// in a property serializes as a Ref, and Att{Resource, "Arn"} serializes as
// Fn::GetAtt. Both are resolved by the synthesizer against the stack
// registries, crossing stack boundaries via Fn::ImportValue.
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub

	// SubWithMap is Fn::Sub with a variable map.
	SubWithMap = intrinsics.SubWithMap

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join

	// Select represents a CloudFormation Fn::Select intrinsic function.
	Select = intrinsics.Select

	// GetAZs represents a CloudFormation Fn::GetAZs intrinsic function.
	GetAZs = intrinsics.GetAZs

	// Split represents a CloudFormation Fn::Split intrinsic function.
	Split = intrinsics.Split

	// ImportValue represents a CloudFormation Fn::ImportValue intrinsic function.
	ImportValue = intrinsics.ImportValue

	// Tag represents a CloudFormation resource tag.
	Tag = intrinsics.Tag
)

// Att references an attribute of a declared resource:
//
//	AllocationId: Att{NatEipA, "AllocationId"}
//	MonitoringRoleArn: Att{MonitoringRole, "Arn"}
//
// The synthesizer resolves the resource value to its logical ID and emits
// Fn::GetAtt, or Fn::ImportValue when the resource lives in another stack.
type Att struct {
	// Resource is the declared resource value being referenced
	Resource any
	// Attribute is the attribute name (e.g., "Arn", "Endpoint.Address")
	Attribute string
}

// List creates a typed slice from the given items.
// Avoids verbose slice type annotations in struct literals.
func List[T any](items ...T) []T {
	return items
}

// Any creates a []any slice from the given items.
// Use for fields typed as []any that accept mixed types or intrinsics.
func Any(items ...any) []any {
	return items
}

// IntPtr returns a pointer to the given int value.
func IntPtr(i int) *int {
	return &i
}

// Float64Ptr returns a pointer to the given float64 value.
func Float64Ptr(f float64) *float64 {
	return &f
}
