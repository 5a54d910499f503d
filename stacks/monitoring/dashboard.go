package monitoring

import (
	"encoding/json"

	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/cloudwatch"
	"github.com/nz-companies-register/infra/stacks/compute"
)

// Dashboard is the operations dashboard: backend service, load balancer,
// database and business metrics. The body is a Fn::Sub template so the
// ALB full name, service name and cluster name resolve at deploy time.
var Dashboard = cloudwatch.Dashboard{
	DashboardName: "NZ-Companies-Register-Dashboard",
	DashboardBody: SubWithMap{
		String: dashboardBody(),
		Variables: map[string]any{
			"BackendServiceName": Att{Resource: compute.BackendService, Attribute: "Name"},
			"ClusterName":        compute.Cluster,
			"AlbFullName":        Att{Resource: compute.Alb, Attribute: "LoadBalancerFullName"},
		},
	},
}

// dashboardBody renders the widget layout as JSON with ${} placeholders
// for the Fn::Sub variables.
func dashboardBody() string {
	widgets := []map[string]any{
		graphWidget(0, 0, "Backend Service Metrics", [][]any{
			{"AWS/ECS", "CPUUtilization", "ServiceName", "${BackendServiceName}", "ClusterName", "${ClusterName}", map[string]any{"stat": "Average", "period": 300}},
			{"AWS/ECS", "MemoryUtilization", "ServiceName", "${BackendServiceName}", "ClusterName", "${ClusterName}", map[string]any{"stat": "Average", "period": 300}},
			{"AWS/ECS", "RunningTaskCount", "ServiceName", "${BackendServiceName}", "ClusterName", "${ClusterName}", map[string]any{"stat": "Average", "period": 60, "yAxis": "right"}},
		}),
		graphWidget(12, 0, "ALB Metrics", [][]any{
			{"AWS/ApplicationELB", "TargetResponseTime", "LoadBalancer", "${AlbFullName}", map[string]any{"stat": "Average", "period": 300}},
			{"AWS/ApplicationELB", "RequestCount", "LoadBalancer", "${AlbFullName}", map[string]any{"stat": "Sum", "period": 300, "yAxis": "right"}},
		}),
		graphWidget(0, 6, "Database Metrics", [][]any{
			{"AWS/RDS", "CPUUtilization", "DBClusterIdentifier", "nz-companies-register-db", map[string]any{"stat": "Average", "period": 300}},
			{"AWS/RDS", "DatabaseConnections", "DBClusterIdentifier", "nz-companies-register-db", map[string]any{"stat": "Average", "period": 300, "yAxis": "right"}},
		}),
		graphWidget(12, 6, "Business Metrics", [][]any{
			{"NZCompaniesRegister/Business", "CompanyRegistrations", map[string]any{"stat": "Sum", "period": 3600}},
			{"NZCompaniesRegister/Business", "SearchRequests", map[string]any{"stat": "Sum", "period": 300}},
			{"NZCompaniesRegister/Performance", "SearchResponseTime", map[string]any{"stat": "Average", "period": 300, "yAxis": "right"}},
		}),
	}

	body, err := json.Marshal(map[string]any{"widgets": widgets})
	if err != nil {
		panic(err)
	}
	return string(body)
}

func graphWidget(x, y int, title string, metrics [][]any) map[string]any {
	return map[string]any{
		"type":   "metric",
		"x":      x,
		"y":      y,
		"width":  12,
		"height": 6,
		"properties": map[string]any{
			"title":   title,
			"view":    "timeSeries",
			"region":  "${AWS::Region}",
			"metrics": metrics,
		},
	}
}
