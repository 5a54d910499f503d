// Package monitoring declares the register-monitoring stack: the alert
// topic, service, infrastructure, database and business-metric alarms, and
// the operations dashboard.
package monitoring

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/cloudwatch"
	"github.com/nz-companies-register/infra/resources/sns"
	"github.com/nz-companies-register/infra/stacks/compute"
)

// AlertTopic receives every alarm notification.
var AlertTopic = sns.Topic{
	TopicName:   "nz-companies-register-alerts",
	DisplayName: "NZ Companies Register Alerts",
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-alerts"},
	},
}

// Backend service alarms.

var BackendHighCPU = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-backend-high-cpu",
	AlarmDescription: "Backend service CPU utilization is high",
	Namespace:        "AWS/ECS",
	MetricName:       "CPUUtilization",
	Dimensions: []cloudwatch.Dimension{
		{Name: "ServiceName", Value: Att{Resource: compute.BackendService, Attribute: "Name"}},
		{Name: "ClusterName", Value: compute.Cluster},
	},
	Statistic:          "Average",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(80),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

var BackendHighMemory = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-backend-high-memory",
	AlarmDescription: "Backend service memory utilization is high",
	Namespace:        "AWS/ECS",
	MetricName:       "MemoryUtilization",
	Dimensions: []cloudwatch.Dimension{
		{Name: "ServiceName", Value: Att{Resource: compute.BackendService, Attribute: "Name"}},
		{Name: "ClusterName", Value: compute.Cluster},
	},
	Statistic:          "Average",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(85),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

// BackendTaskCountLow treats missing data as breaching: no data means no
// running tasks.
var BackendTaskCountLow = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-backend-task-count-low",
	AlarmDescription: "Backend service task count is below minimum",
	Namespace:        "AWS/ECS",
	MetricName:       "RunningTaskCount",
	Dimensions: []cloudwatch.Dimension{
		{Name: "ServiceName", Value: Att{Resource: compute.BackendService, Attribute: "Name"}},
		{Name: "ClusterName", Value: compute.Cluster},
	},
	Statistic:          "Average",
	Period:             60,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(1),
	ComparisonOperator: "LessThanThreshold",
	TreatMissingData:   "breaching",
	AlarmActions:       []any{AlertTopic},
}

// Load balancer and cluster alarms.

var AlbHighLatency = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-alb-high-latency",
	AlarmDescription: "ALB target response time is high",
	Namespace:        "AWS/ApplicationELB",
	MetricName:       "TargetResponseTime",
	Dimensions: []cloudwatch.Dimension{
		{Name: "LoadBalancer", Value: Att{Resource: compute.Alb, Attribute: "LoadBalancerFullName"}},
	},
	Statistic:          "Average",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(1),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

var AlbHighErrorRate = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-alb-high-error-rate",
	AlarmDescription: "ALB 5xx error rate is high",
	Namespace:        "AWS/ApplicationELB",
	MetricName:       "HTTPCode_Target_5XX_Count",
	Dimensions: []cloudwatch.Dimension{
		{Name: "LoadBalancer", Value: Att{Resource: compute.Alb, Attribute: "LoadBalancerFullName"}},
	},
	Statistic:          "Sum",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(10),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

var ClusterHighCPU = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-ecs-cluster-high-cpu",
	AlarmDescription: "ECS cluster CPU reservation is high",
	Namespace:        "AWS/ECS",
	MetricName:       "CPUReservation",
	Dimensions: []cloudwatch.Dimension{
		{Name: "ClusterName", Value: compute.Cluster},
	},
	Statistic:          "Average",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(80),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

// Database alarms.

var RdsHighCPU = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-rds-high-cpu",
	AlarmDescription: "RDS CPU utilization is high",
	Namespace:        "AWS/RDS",
	MetricName:       "CPUUtilization",
	Dimensions: []cloudwatch.Dimension{
		{Name: "DBClusterIdentifier", Value: "nz-companies-register-db"},
	},
	Statistic:          "Average",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(80),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

// RdsHighConnections fires at 80% of the cluster's max_connections (200).
var RdsHighConnections = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-rds-high-connections",
	AlarmDescription: "RDS connection count is high",
	Namespace:        "AWS/RDS",
	MetricName:       "DatabaseConnections",
	Dimensions: []cloudwatch.Dimension{
		{Name: "DBClusterIdentifier", Value: "nz-companies-register-db"},
	},
	Statistic:          "Average",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(160),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

var DynamoDBThrottling = cloudwatch.Alarm{
	AlarmName:        "nz-companies-register-dynamodb-throttling",
	AlarmDescription: "DynamoDB is experiencing throttling",
	Namespace:        "AWS/DynamoDB",
	MetricName:       "ReadThrottledEvents",
	Dimensions: []cloudwatch.Dimension{
		{Name: "TableName", Value: "nz-companies-register-documents"},
	},
	Statistic:          "Sum",
	Period:             300,
	EvaluationPeriods:  1,
	Threshold:          Float64Ptr(0),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}

// Business metric alarms; the application publishes these metrics.

var LowRegistrationRate = cloudwatch.Alarm{
	AlarmName:          "nz-companies-register-low-registration-rate",
	AlarmDescription:   "Company registration rate is unusually low",
	Namespace:          "NZCompaniesRegister/Business",
	MetricName:         "CompanyRegistrations",
	Statistic:          "Sum",
	Period:             3600,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(5),
	ComparisonOperator: "LessThanThreshold",
	TreatMissingData:   "breaching",
	AlarmActions:       []any{AlertTopic},
}

var SearchResponseTimeSLA = cloudwatch.Alarm{
	AlarmName:          "nz-companies-register-search-response-time-sla",
	AlarmDescription:   "Search response time exceeds SLA",
	Namespace:          "NZCompaniesRegister/Performance",
	MetricName:         "SearchResponseTime",
	Statistic:          "Average",
	Period:             300,
	EvaluationPeriods:  2,
	Threshold:          Float64Ptr(500),
	ComparisonOperator: "GreaterThanThreshold",
	TreatMissingData:   "notBreaching",
	AlarmActions:       []any{AlertTopic},
}
