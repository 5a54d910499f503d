package storage

import (
	infra "github.com/nz-companies-register/infra"
)

// Stack assembles the register-storage template.
var Stack = infra.NewStack("register-storage").
	Describe("Storage for the NZ Companies Register: encrypted document and log buckets, notification topic and queues").
	Tag("Project", "NZ Companies Register").
	Tag("Environment", "Production").
	Tag("Component", "Storage").
	Add("StorageKey", StorageKey, infra.Retain()).
	Add("DocumentBucket", DocumentBucket, infra.Retain()).
	Add("LogsBucket", LogsBucket, infra.Retain()).
	Add("NotificationTopic", NotificationTopic).
	Add("NotificationQueue", NotificationQueue).
	Add("NotificationDLQ", NotificationDLQ).
	Add("ReminderQueue", ReminderQueue).
	Add("ReminderDLQ", ReminderDLQ).
	Add("NotificationSubscription", NotificationSubscription).
	Add("NotificationQueuePolicy", NotificationQueuePolicy).
	Output("DocumentBucketName", DocumentBucket, "Document bucket name").
	Output("NotificationTopicArn", NotificationTopic, "Notification topic ARN")
