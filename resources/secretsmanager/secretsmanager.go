// Package secretsmanager provides CloudFormation resource types for AWS
// Secrets Manager.
package secretsmanager

// Secret represents AWS::SecretsManager::Secret.
type Secret struct {
	Name                 string
	Description          string
	KmsKeyId             any
	SecretString         any
	GenerateSecretString *GenerateSecretString
	Tags                 []any
}

func (Secret) ResourceType() string { return "AWS::SecretsManager::Secret" }

// GenerateSecretString templates a generated secret value.
type GenerateSecretString struct {
	SecretStringTemplate string
	GenerateStringKey    string
	PasswordLength       int
	ExcludeCharacters    string
	ExcludePunctuation   bool
	IncludeSpace         bool
}

// SecretTargetAttachment represents AWS::SecretsManager::SecretTargetAttachment.
type SecretTargetAttachment struct {
	SecretId   any
	TargetId   any
	TargetType string
}

func (SecretTargetAttachment) ResourceType() string {
	return "AWS::SecretsManager::SecretTargetAttachment"
}
