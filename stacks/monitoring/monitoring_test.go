package monitoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
	"github.com/nz-companies-register/infra/stacks/compute"
	"github.com/nz-companies-register/infra/stacks/database"
	"github.com/nz-companies-register/infra/stacks/network"
	"github.com/nz-companies-register/infra/stacks/storage"
)

func buildTemplate(t *testing.T) *infra.Template {
	t.Helper()
	result, err := synth.New(network.Stack, database.Stack, storage.Stack, compute.Stack, Stack).Build()
	require.NoError(t, err)
	tpl := result.Templates["register-monitoring"]
	require.NotNil(t, tpl)
	return tpl
}

func TestAlertTopic(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["AlertTopic"].Properties
	assert.Equal(t, "nz-companies-register-alerts", props["TopicName"])
	assert.Equal(t, "NZ Companies Register Alerts", props["DisplayName"])
}

func TestEveryAlarmNotifiesAlertTopic(t *testing.T) {
	tpl := buildTemplate(t)

	var alarms int
	for logical, def := range tpl.Resources {
		if def.Type != "AWS::CloudWatch::Alarm" {
			continue
		}
		alarms++
		assert.Equal(t, []any{map[string]any{"Ref": "AlertTopic"}}, def.Properties["AlarmActions"], logical)
	}
	assert.Equal(t, 11, alarms)
}

func TestBackendServiceAlarms(t *testing.T) {
	tpl := buildTemplate(t)

	cpu := tpl.Resources["BackendHighCPU"].Properties
	assert.Equal(t, "AWS/ECS", cpu["Namespace"])
	assert.Equal(t, "CPUUtilization", cpu["MetricName"])
	assert.Equal(t, 80.0, cpu["Threshold"])
	assert.Equal(t, "GreaterThanThreshold", cpu["ComparisonOperator"])
	assert.Equal(t, 300, cpu["Period"])
	assert.Equal(t, 2, cpu["EvaluationPeriods"])
	assert.Equal(t, []any{
		map[string]any{
			"Name":  "ServiceName",
			"Value": map[string]any{"Fn::ImportValue": "register-compute-BackendServiceName"},
		},
		map[string]any{
			"Name":  "ClusterName",
			"Value": map[string]any{"Fn::ImportValue": "register-compute-Cluster"},
		},
	}, cpu["Dimensions"])

	memory := tpl.Resources["BackendHighMemory"].Properties
	assert.Equal(t, "MemoryUtilization", memory["MetricName"])
	assert.Equal(t, 85.0, memory["Threshold"])

	tasks := tpl.Resources["BackendTaskCountLow"].Properties
	assert.Equal(t, "RunningTaskCount", tasks["MetricName"])
	assert.Equal(t, 1.0, tasks["Threshold"])
	assert.Equal(t, 60, tasks["Period"])
	assert.Equal(t, "LessThanThreshold", tasks["ComparisonOperator"])
	assert.Equal(t, "breaching", tasks["TreatMissingData"])
}

func TestLoadBalancerAlarms(t *testing.T) {
	tpl := buildTemplate(t)

	latency := tpl.Resources["ALBHighLatency"].Properties
	assert.Equal(t, "TargetResponseTime", latency["MetricName"])
	assert.Equal(t, 1.0, latency["Threshold"])
	assert.Equal(t, []any{
		map[string]any{
			"Name":  "LoadBalancer",
			"Value": map[string]any{"Fn::ImportValue": "register-compute-AlbLoadBalancerFullName"},
		},
	}, latency["Dimensions"])

	errors := tpl.Resources["ALBHighErrorRate"].Properties
	assert.Equal(t, "HTTPCode_Target_5XX_Count", errors["MetricName"])
	assert.Equal(t, "Sum", errors["Statistic"])
	assert.Equal(t, 10.0, errors["Threshold"])
}

func TestDatabaseAlarms(t *testing.T) {
	tpl := buildTemplate(t)

	cpu := tpl.Resources["RDSHighCPU"].Properties
	assert.Equal(t, "AWS/RDS", cpu["Namespace"])
	assert.Equal(t, []any{
		map[string]any{"Name": "DBClusterIdentifier", "Value": "nz-companies-register-db"},
	}, cpu["Dimensions"])

	connections := tpl.Resources["RDSHighConnections"].Properties
	assert.Equal(t, "DatabaseConnections", connections["MetricName"])
	assert.Equal(t, 160.0, connections["Threshold"])
}

func TestDynamoDBThrottlingAlarmKeepsZeroThreshold(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["DynamoDBThrottling"].Properties
	assert.Equal(t, "ReadThrottledEvents", props["MetricName"])
	assert.Equal(t, 0.0, props["Threshold"])
	assert.Equal(t, 1, props["EvaluationPeriods"])
}

func TestBusinessMetricAlarms(t *testing.T) {
	tpl := buildTemplate(t)

	registrations := tpl.Resources["LowRegistrationRate"].Properties
	assert.Equal(t, "NZCompaniesRegister/Business", registrations["Namespace"])
	assert.Equal(t, "CompanyRegistrations", registrations["MetricName"])
	assert.Equal(t, 3600, registrations["Period"])
	assert.Equal(t, 5.0, registrations["Threshold"])
	assert.Equal(t, "breaching", registrations["TreatMissingData"])
	assert.NotContains(t, registrations, "Dimensions")

	search := tpl.Resources["SearchResponseTimeSLA"].Properties
	assert.Equal(t, "NZCompaniesRegister/Performance", search["Namespace"])
	assert.Equal(t, 500.0, search["Threshold"])
}

func TestDashboardBodyResolvesNamesAtDeployTime(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["Dashboard"].Properties
	assert.Equal(t, "NZ-Companies-Register-Dashboard", props["DashboardName"])

	body := props["DashboardBody"].(map[string]any)["Fn::Sub"].([]any)
	require.Len(t, body, 2)

	vars := body[1].(map[string]any)
	assert.Equal(t, map[string]any{"Fn::ImportValue": "register-compute-BackendServiceName"}, vars["BackendServiceName"])
	assert.Equal(t, map[string]any{"Fn::ImportValue": "register-compute-Cluster"}, vars["ClusterName"])
	assert.Equal(t, map[string]any{"Fn::ImportValue": "register-compute-AlbLoadBalancerFullName"}, vars["AlbFullName"])

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(body[0].(string)), &parsed))

	widgets := parsed["widgets"].([]any)
	require.Len(t, widgets, 4)

	first := widgets[0].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, "Backend Service Metrics", first["title"])
	assert.Equal(t, "${AWS::Region}", first["region"])
	assert.Contains(t, body[0].(string), "${BackendServiceName}")
	assert.Contains(t, body[0].(string), "${AlbFullName}")
}

func TestMonitoringStackDeploysAfterCompute(t *testing.T) {
	result, err := synth.New(Stack, compute.Stack, storage.Stack, database.Stack, network.Stack).Build()
	require.NoError(t, err)

	pos := make(map[string]int, len(result.Order))
	for i, name := range result.Order {
		pos[name] = i
	}
	assert.Less(t, pos["register-network"], pos["register-database"])
	assert.Less(t, pos["register-database"], pos["register-compute"])
	assert.Less(t, pos["register-compute"], pos["register-monitoring"])
}

func TestMonitoringOutputs(t *testing.T) {
	tpl := buildTemplate(t)

	out, ok := tpl.Outputs["AlertTopicArn"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Ref": "AlertTopic"}, out.Value)
	assert.Equal(t, "register-monitoring-AlertTopicArn", out.Export.Name)
}
