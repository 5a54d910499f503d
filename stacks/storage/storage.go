// Package storage declares the register-storage stack: the encrypted
// document and log buckets, and the SNS/SQS notification plumbing with
// dead letter queues.
package storage

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/kms"
	"github.com/nz-companies-register/infra/resources/s3"
	"github.com/nz-companies-register/infra/resources/sns"
	"github.com/nz-companies-register/infra/resources/sqs"
)

// StorageKey encrypts the buckets, topic and queues in this stack.
var StorageKey = kms.Key{
	Description:       "KMS key for NZ Companies Register storage encryption",
	EnableKeyRotation: true,
	KeyPolicy: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Sid:       "EnableRootAccess",
				Effect:    "Allow",
				Principal: AWSPrincipal{Sub{String: "arn:${AWS::Partition}:iam::${AWS::AccountId}:root"}},
				Action:    "kms:*",
				Resource:  "*",
			},
			PolicyStatement{
				Sid:       "AllowSNSUse",
				Effect:    "Allow",
				Principal: ServicePrincipal{"sns.amazonaws.com"},
				Action:    []any{"kms:Decrypt", "kms:GenerateDataKey*"},
				Resource:  "*",
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-storage-key"},
	},
}

// DocumentBucket stores company filings. Objects move to cheaper storage
// classes as they age and are never deleted.
var DocumentBucket = s3.Bucket{
	BucketName: "nz-companies-register-documents",
	VersioningConfiguration: &s3.VersioningConfiguration{
		Status: "Enabled",
	},
	BucketEncryption: &s3.BucketEncryption{
		ServerSideEncryptionConfiguration: []s3.ServerSideEncryptionRule{
			{
				ServerSideEncryptionByDefault: s3.ServerSideEncryptionByDefault{
					SSEAlgorithm:   "aws:kms",
					KMSMasterKeyID: Att{Resource: StorageKey, Attribute: "Arn"},
				},
				BucketKeyEnabled: true,
			},
		},
	},
	PublicAccessBlockConfiguration: &s3.PublicAccessBlockConfiguration{
		BlockPublicAcls:       true,
		BlockPublicPolicy:     true,
		IgnorePublicAcls:      true,
		RestrictPublicBuckets: true,
	},
	LifecycleConfiguration: &s3.LifecycleConfiguration{
		Rules: []s3.LifecycleRule{
			{
				Id:     "TransitionToIA",
				Status: "Enabled",
				Transitions: []s3.LifecycleTransition{
					{StorageClass: "STANDARD_IA", TransitionInDays: 30},
					{StorageClass: "GLACIER", TransitionInDays: 90},
				},
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-documents"},
	},
}

// LogsBucket keeps application logs for one year.
var LogsBucket = s3.Bucket{
	BucketName: "nz-companies-register-logs",
	BucketEncryption: &s3.BucketEncryption{
		ServerSideEncryptionConfiguration: []s3.ServerSideEncryptionRule{
			{
				ServerSideEncryptionByDefault: s3.ServerSideEncryptionByDefault{
					SSEAlgorithm:   "aws:kms",
					KMSMasterKeyID: Att{Resource: StorageKey, Attribute: "Arn"},
				},
				BucketKeyEnabled: true,
			},
		},
	},
	PublicAccessBlockConfiguration: &s3.PublicAccessBlockConfiguration{
		BlockPublicAcls:       true,
		BlockPublicPolicy:     true,
		IgnorePublicAcls:      true,
		RestrictPublicBuckets: true,
	},
	LifecycleConfiguration: &s3.LifecycleConfiguration{
		Rules: []s3.LifecycleRule{
			{
				Id:               "DeleteOldLogs",
				Status:           "Enabled",
				ExpirationInDays: 365,
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-logs"},
	},
}

// NotificationTopic fans out register events.
var NotificationTopic = sns.Topic{
	TopicName:      "nz-companies-register-notifications",
	DisplayName:    "NZ Companies Register Notifications",
	KmsMasterKeyId: StorageKey,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-notifications"},
	},
}

// NotificationQueue consumes notification events.
var NotificationQueue = sqs.Queue{
	QueueName:              "nz-companies-register-notifications",
	VisibilityTimeout:      300,
	MessageRetentionPeriod: 1209600,
	KmsMasterKeyId:         StorageKey,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-notifications"},
	},
}

// NotificationDLQ receives notifications that repeatedly fail processing.
var NotificationDLQ = sqs.Queue{
	QueueName:              "nz-companies-register-notifications-dlq",
	VisibilityTimeout:      300,
	MessageRetentionPeriod: 1209600,
	KmsMasterKeyId:         StorageKey,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-notifications-dlq"},
	},
}

// ReminderQueue carries annual return reminders.
var ReminderQueue = sqs.Queue{
	QueueName:              "nz-companies-register-reminders",
	VisibilityTimeout:      300,
	MessageRetentionPeriod: 1209600,
	KmsMasterKeyId:         StorageKey,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-reminders"},
	},
}

// ReminderDLQ receives reminders that repeatedly fail processing.
var ReminderDLQ = sqs.Queue{
	QueueName:              "nz-companies-register-reminders-dlq",
	VisibilityTimeout:      300,
	MessageRetentionPeriod: 1209600,
	KmsMasterKeyId:         StorageKey,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-reminders-dlq"},
	},
}

// NotificationSubscription delivers topic messages to the queue, with
// failed deliveries redriven to the DLQ.
var NotificationSubscription = sns.Subscription{
	TopicArn: NotificationTopic,
	Protocol: "sqs",
	Endpoint: Att{Resource: NotificationQueue, Attribute: "Arn"},
	RedrivePolicy: Json{
		"deadLetterTargetArn": Att{Resource: NotificationDLQ, Attribute: "Arn"},
	},
}

// NotificationQueuePolicy lets the topic send into the queue.
var NotificationQueuePolicy = sqs.QueuePolicy{
	Queues: []any{NotificationQueue},
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:    "Allow",
				Principal: ServicePrincipal{"sns.amazonaws.com"},
				Action:    "sqs:SendMessage",
				Resource:  Att{Resource: NotificationQueue, Attribute: "Arn"},
				Condition: Json{
					"ArnEquals": Json{
						"aws:SourceArn": NotificationTopic,
					},
				},
			},
		},
	},
}
