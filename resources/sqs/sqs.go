// Package sqs provides CloudFormation resource types for Amazon SQS.
package sqs

// Queue represents AWS::SQS::Queue.
type Queue struct {
	QueueName                     string
	VisibilityTimeout             int
	MessageRetentionPeriod        int
	ReceiveMessageWaitTimeSeconds int
	KmsMasterKeyId                any
	RedrivePolicy                 *RedrivePolicy
	Tags                          []any
}

func (Queue) ResourceType() string { return "AWS::SQS::Queue" }

// RedrivePolicy is the Queue RedrivePolicy property type.
type RedrivePolicy struct {
	DeadLetterTargetArn any   `json:"deadLetterTargetArn"`
	MaxReceiveCount     int   `json:"maxReceiveCount"`
}

// QueuePolicy represents AWS::SQS::QueuePolicy.
type QueuePolicy struct {
	Queues         []any
	PolicyDocument any
}

func (QueuePolicy) ResourceType() string { return "AWS::SQS::QueuePolicy" }
