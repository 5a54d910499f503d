package monitoring

import (
	infra "github.com/nz-companies-register/infra"
)

// Stack assembles the register-monitoring template.
var Stack = infra.NewStack("register-monitoring").
	Describe("Monitoring for the NZ Companies Register: alert topic, alarms and operations dashboard").
	Tag("Project", "NZ Companies Register").
	Tag("Environment", "Production").
	Tag("Component", "Monitoring").
	Add("AlertTopic", AlertTopic).
	Add("BackendHighCPU", BackendHighCPU).
	Add("BackendHighMemory", BackendHighMemory).
	Add("BackendTaskCountLow", BackendTaskCountLow).
	Add("ALBHighLatency", AlbHighLatency).
	Add("ALBHighErrorRate", AlbHighErrorRate).
	Add("ECSClusterHighCPU", ClusterHighCPU).
	Add("RDSHighCPU", RdsHighCPU).
	Add("RDSHighConnections", RdsHighConnections).
	Add("DynamoDBThrottling", DynamoDBThrottling).
	Add("LowRegistrationRate", LowRegistrationRate).
	Add("SearchResponseTimeSLA", SearchResponseTimeSLA).
	Add("Dashboard", Dashboard).
	Output("AlertTopicArn", AlertTopic, "Alert topic ARN")
