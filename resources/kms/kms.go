// Package kms provides CloudFormation resource types for AWS KMS keys
// and aliases.
package kms

// Key represents AWS::KMS::Key.
type Key struct {
	Description         string
	Enabled             bool
	EnableKeyRotation   bool
	KeyPolicy           any
	PendingWindowInDays int
	Tags                []any
}

func (Key) ResourceType() string { return "AWS::KMS::Key" }

// Alias represents AWS::KMS::Alias.
type Alias struct {
	AliasName   string
	TargetKeyId any
}

func (Alias) ResourceType() string { return "AWS::KMS::Alias" }
