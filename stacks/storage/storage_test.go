package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
)

func buildTemplate(t *testing.T) *infra.Template {
	t.Helper()
	result, err := synth.New(Stack).Build()
	require.NoError(t, err)
	tpl := result.Templates["register-storage"]
	require.NotNil(t, tpl)
	return tpl
}

func TestStorageKeyRotationEnabled(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["StorageKey"].Properties
	assert.Equal(t, "KMS key for NZ Companies Register storage encryption", props["Description"])
	assert.Equal(t, true, props["EnableKeyRotation"])
	assert.Equal(t, "Retain", tpl.Resources["StorageKey"].DeletionPolicy)

	policy := props["KeyPolicy"].(map[string]any)
	statements := policy["Statement"].([]any)
	require.Len(t, statements, 2)
	sns := statements[1].(map[string]any)
	assert.Equal(t, map[string]any{"Service": "sns.amazonaws.com"}, sns["Principal"])
}

func TestDocumentBucketConfiguration(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["DocumentBucket"].Properties
	assert.Equal(t, "nz-companies-register-documents", props["BucketName"])
	assert.Equal(t, map[string]any{"Status": "Enabled"}, props["VersioningConfiguration"])

	block := props["PublicAccessBlockConfiguration"].(map[string]any)
	assert.Equal(t, map[string]any{
		"BlockPublicAcls":       true,
		"BlockPublicPolicy":     true,
		"IgnorePublicAcls":      true,
		"RestrictPublicBuckets": true,
	}, block)
}

func TestBucketsEncryptedWithStorageKey(t *testing.T) {
	tpl := buildTemplate(t)

	for _, logical := range []string{"DocumentBucket", "LogsBucket"} {
		enc := tpl.Resources[logical].Properties["BucketEncryption"].(map[string]any)
		rules := enc["ServerSideEncryptionConfiguration"].([]any)
		require.Len(t, rules, 1, logical)

		rule := rules[0].(map[string]any)
		byDefault := rule["ServerSideEncryptionByDefault"].(map[string]any)
		assert.Equal(t, "aws:kms", byDefault["SSEAlgorithm"])
		assert.Equal(t, map[string]any{
			"Fn::GetAtt": []any{"StorageKey", "Arn"},
		}, byDefault["KMSMasterKeyID"])
		assert.Equal(t, true, rule["BucketKeyEnabled"])
	}
}

func TestDocumentBucketLifecycleTransitions(t *testing.T) {
	tpl := buildTemplate(t)

	lifecycle := tpl.Resources["DocumentBucket"].Properties["LifecycleConfiguration"].(map[string]any)
	rules := lifecycle["Rules"].([]any)
	require.Len(t, rules, 1)

	rule := rules[0].(map[string]any)
	assert.Equal(t, "TransitionToIA", rule["Id"])
	assert.Equal(t, "Enabled", rule["Status"])
	assert.Equal(t, []any{
		map[string]any{"StorageClass": "STANDARD_IA", "TransitionInDays": 30},
		map[string]any{"StorageClass": "GLACIER", "TransitionInDays": 90},
	}, rule["Transitions"])
}

func TestLogsBucketExpiresOldLogs(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["LogsBucket"].Properties
	assert.Equal(t, "nz-companies-register-logs", props["BucketName"])

	lifecycle := props["LifecycleConfiguration"].(map[string]any)
	rule := lifecycle["Rules"].([]any)[0].(map[string]any)
	assert.Equal(t, "DeleteOldLogs", rule["Id"])
	assert.Equal(t, 365, rule["ExpirationInDays"])
}

func TestNotificationTopic(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["NotificationTopic"].Properties
	assert.Equal(t, "nz-companies-register-notifications", props["TopicName"])
	assert.Equal(t, "NZ Companies Register Notifications", props["DisplayName"])
	assert.Equal(t, map[string]any{"Ref": "StorageKey"}, props["KmsMasterKeyId"])
}

func TestQueuesEncryptedWithRetention(t *testing.T) {
	tpl := buildTemplate(t)

	names := map[string]string{
		"NotificationQueue": "nz-companies-register-notifications",
		"NotificationDLQ":   "nz-companies-register-notifications-dlq",
		"ReminderQueue":     "nz-companies-register-reminders",
		"ReminderDLQ":       "nz-companies-register-reminders-dlq",
	}
	for logical, queueName := range names {
		props := tpl.Resources[logical].Properties
		assert.Equal(t, queueName, props["QueueName"], logical)
		assert.Equal(t, 300, props["VisibilityTimeout"], logical)
		assert.Equal(t, 1209600, props["MessageRetentionPeriod"], logical)
		assert.Equal(t, map[string]any{"Ref": "StorageKey"}, props["KmsMasterKeyId"], logical)
	}
}

func TestSubscriptionDeliversToQueueWithRedrive(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["NotificationSubscription"].Properties
	assert.Equal(t, "sqs", props["Protocol"])
	assert.Equal(t, map[string]any{"Ref": "NotificationTopic"}, props["TopicArn"])
	assert.Equal(t, map[string]any{
		"Fn::GetAtt": []any{"NotificationQueue", "Arn"},
	}, props["Endpoint"])
	assert.Equal(t, map[string]any{
		"deadLetterTargetArn": map[string]any{
			"Fn::GetAtt": []any{"NotificationDLQ", "Arn"},
		},
	}, props["RedrivePolicy"])
}

func TestQueuePolicyRestrictsSenderToTopic(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["NotificationQueuePolicy"].Properties
	assert.Equal(t, []any{map[string]any{"Ref": "NotificationQueue"}}, props["Queues"])

	doc := props["PolicyDocument"].(map[string]any)
	statement := doc["Statement"].([]any)[0].(map[string]any)
	assert.Equal(t, "sqs:SendMessage", statement["Action"])
	assert.Equal(t, map[string]any{"Service": "sns.amazonaws.com"}, statement["Principal"])
	assert.Equal(t, map[string]any{
		"ArnEquals": map[string]any{
			"aws:SourceArn": map[string]any{"Ref": "NotificationTopic"},
		},
	}, statement["Condition"])
}

func TestStorageTagsApplied(t *testing.T) {
	tpl := buildTemplate(t)

	tags := tpl.Resources["DocumentBucket"].Properties["Tags"].([]any)
	assert.Contains(t, tags, map[string]any{"Key": "Project", "Value": "NZ Companies Register"})
	assert.Contains(t, tags, map[string]any{"Key": "Environment", "Value": "Production"})
	assert.Contains(t, tags, map[string]any{"Key": "Component", "Value": "Storage"})
}

func TestStorageOutputs(t *testing.T) {
	tpl := buildTemplate(t)

	bucket, ok := tpl.Outputs["DocumentBucketName"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Ref": "DocumentBucket"}, bucket.Value)

	topic, ok := tpl.Outputs["NotificationTopicArn"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Ref": "NotificationTopic"}, topic.Value)
	assert.Equal(t, "register-storage-NotificationTopicArn", topic.Export.Name)
}
