// Package ecr provides CloudFormation resource types for Amazon ECR.
package ecr

// Repository represents AWS::ECR::Repository.
type Repository struct {
	RepositoryName             string
	ImageTagMutability         string
	ImageScanningConfiguration *ImageScanningConfiguration
	EncryptionConfiguration    *EncryptionConfiguration
	LifecyclePolicy            *LifecyclePolicy
	Tags                       []any
}

func (Repository) ResourceType() string { return "AWS::ECR::Repository" }

// ImageScanningConfiguration enables scan-on-push.
type ImageScanningConfiguration struct {
	ScanOnPush bool
}

// EncryptionConfiguration is the Repository encryption property type.
type EncryptionConfiguration struct {
	EncryptionType string
	KmsKey         any
}

// LifecyclePolicy holds a lifecycle policy document as JSON text.
type LifecyclePolicy struct {
	LifecyclePolicyText string
}
