// Package ssm provides CloudFormation resource types for AWS Systems
// Manager parameters.
package ssm

// Parameter represents AWS::SSM::Parameter.
//
// SSM parameter Tags are a JSON map, not the usual Key/Value list.
type Parameter struct {
	Name        string
	Description string
	Type        string
	Value       any
	Tier        string
	Tags        map[string]any
}

func (Parameter) ResourceType() string { return "AWS::SSM::Parameter" }
