// Package sns provides CloudFormation resource types for Amazon SNS.
package sns

// Topic represents AWS::SNS::Topic.
type Topic struct {
	TopicName      string
	DisplayName    string
	KmsMasterKeyId any
	Tags           []any
}

func (Topic) ResourceType() string { return "AWS::SNS::Topic" }

// Subscription represents AWS::SNS::Subscription.
type Subscription struct {
	TopicArn           any
	Protocol           string
	Endpoint           any
	RawMessageDelivery bool
	RedrivePolicy      any
}

func (Subscription) ResourceType() string { return "AWS::SNS::Subscription" }
