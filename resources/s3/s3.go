// Package s3 provides CloudFormation resource types for Amazon S3 buckets.
package s3

// Bucket represents AWS::S3::Bucket.
type Bucket struct {
	BucketName                     any
	VersioningConfiguration        *VersioningConfiguration
	BucketEncryption               *BucketEncryption
	PublicAccessBlockConfiguration *PublicAccessBlockConfiguration
	LifecycleConfiguration         *LifecycleConfiguration
	Tags                           []any
}

func (Bucket) ResourceType() string { return "AWS::S3::Bucket" }

// VersioningConfiguration is the Bucket VersioningConfiguration property type.
type VersioningConfiguration struct {
	Status string
}

// BucketEncryption is the Bucket BucketEncryption property type.
type BucketEncryption struct {
	ServerSideEncryptionConfiguration []ServerSideEncryptionRule
}

// ServerSideEncryptionRule is a single bucket encryption rule.
type ServerSideEncryptionRule struct {
	ServerSideEncryptionByDefault ServerSideEncryptionByDefault
	BucketKeyEnabled              bool
}

// ServerSideEncryptionByDefault names the default encryption algorithm.
type ServerSideEncryptionByDefault struct {
	SSEAlgorithm   string
	KMSMasterKeyID any
}

// PublicAccessBlockConfiguration is the Bucket public access block.
type PublicAccessBlockConfiguration struct {
	BlockPublicAcls       bool
	BlockPublicPolicy     bool
	IgnorePublicAcls      bool
	RestrictPublicBuckets bool
}

// LifecycleConfiguration is the Bucket LifecycleConfiguration property type.
type LifecycleConfiguration struct {
	Rules []LifecycleRule
}

// LifecycleRule is a single lifecycle rule.
type LifecycleRule struct {
	Id               string
	Status           string
	Prefix           string
	ExpirationInDays int
	Transitions      []LifecycleTransition
}

// LifecycleTransition moves objects to another storage class after a delay.
type LifecycleTransition struct {
	StorageClass     string
	TransitionInDays int
}
