// Package iam provides CloudFormation resource types for IAM roles and
// policies.
package iam

// Role represents AWS::IAM::Role.
type Role struct {
	RoleName                 string
	Description              string
	AssumeRolePolicyDocument any
	ManagedPolicyArns        []any
	Policies                 []Role_Policy
	MaxSessionDuration       int
	Path                     string
	Tags                     []any
}

func (Role) ResourceType() string { return "AWS::IAM::Role" }

// Role_Policy is an inline policy attached to a role.
type Role_Policy struct {
	PolicyName     string
	PolicyDocument any
}

// Policy represents AWS::IAM::Policy.
type Policy struct {
	PolicyName     string
	PolicyDocument any
	Roles          []any
}

func (Policy) ResourceType() string { return "AWS::IAM::Policy" }
