// Package dynamodb provides CloudFormation resource types for Amazon
// DynamoDB tables.
package dynamodb

// Table represents AWS::DynamoDB::Table.
type Table struct {
	TableName                        string
	BillingMode                      string
	AttributeDefinitions             []AttributeDefinition
	KeySchema                        []KeySchema
	GlobalSecondaryIndexes           []GlobalSecondaryIndex
	SSESpecification                 *SSESpecification
	PointInTimeRecoverySpecification *PointInTimeRecoverySpecification
	TimeToLiveSpecification          *TimeToLiveSpecification
	StreamSpecification              *StreamSpecification
	Tags                             []any
}

func (Table) ResourceType() string { return "AWS::DynamoDB::Table" }

// AttributeDefinition is the Table AttributeDefinition property type.
type AttributeDefinition struct {
	AttributeName string
	AttributeType string
}

// KeySchema is the Table KeySchema property type.
type KeySchema struct {
	AttributeName string
	KeyType       string
}

// GlobalSecondaryIndex is the Table GlobalSecondaryIndex property type.
type GlobalSecondaryIndex struct {
	IndexName  string
	KeySchema  []KeySchema
	Projection Projection
}

// Projection is the index Projection property type.
type Projection struct {
	ProjectionType   string
	NonKeyAttributes []string
}

// SSESpecification is the Table SSESpecification property type.
type SSESpecification struct {
	SSEEnabled     bool
	SSEType        string
	KMSMasterKeyId any
}

// PointInTimeRecoverySpecification is the Table PITR property type.
type PointInTimeRecoverySpecification struct {
	PointInTimeRecoveryEnabled bool
}

// TimeToLiveSpecification is the Table TTL property type.
type TimeToLiveSpecification struct {
	AttributeName string
	Enabled       bool
}

// StreamSpecification is the Table StreamSpecification property type.
type StreamSpecification struct {
	StreamViewType string
}
