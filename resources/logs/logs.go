// Package logs provides CloudFormation resource types for CloudWatch Logs.
package logs

// LogGroup represents AWS::Logs::LogGroup.
type LogGroup struct {
	LogGroupName    string
	RetentionInDays int
	KmsKeyId        any
	Tags            []any
}

func (LogGroup) ResourceType() string { return "AWS::Logs::LogGroup" }
