// Package cloudwatch provides CloudFormation resource types for
// CloudWatch alarms and dashboards.
package cloudwatch

// Alarm represents AWS::CloudWatch::Alarm.
type Alarm struct {
	AlarmName         string
	AlarmDescription  string
	Namespace         string
	MetricName        string
	Dimensions        []Dimension
	Statistic         string
	ExtendedStatistic string
	Period            int
	EvaluationPeriods int
	DatapointsToAlarm int
	// Threshold is a pointer so a literal zero threshold survives
	// zero-value omission.
	Threshold          *float64
	ComparisonOperator string
	TreatMissingData   string
	AlarmActions       []any
	OKActions          []any
	Tags               []any
}

func (Alarm) ResourceType() string { return "AWS::CloudWatch::Alarm" }

// Dimension is a metric dimension name/value pair.
type Dimension struct {
	Name  string
	Value any
}

// Dashboard represents AWS::CloudWatch::Dashboard.
type Dashboard struct {
	DashboardName string
	DashboardBody any
}

func (Dashboard) ResourceType() string { return "AWS::CloudWatch::Dashboard" }
