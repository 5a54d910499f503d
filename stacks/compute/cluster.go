// Package compute declares the register-compute stack: container
// registries, the ECS cluster, the public load balancer with its routing
// rules, the backend and frontend Fargate workloads and their autoscaling.
package compute

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/ecr"
	"github.com/nz-companies-register/infra/resources/ecs"
	"github.com/nz-companies-register/infra/resources/elasticloadbalancingv2"
	"github.com/nz-companies-register/infra/stacks/network"
)

const keepLastTenImages = `{"rules":[{"rulePriority":1,"description":"Keep last 10 images","selection":{"tagStatus":"any","countType":"imageCountMoreThan","countNumber":10},"action":{"type":"expire"}}]}`

// BackendRepository holds the Spring backend images.
var BackendRepository = ecr.Repository{
	RepositoryName: "nz-companies-register/backend",
	ImageScanningConfiguration: &ecr.ImageScanningConfiguration{
		ScanOnPush: true,
	},
	LifecyclePolicy: &ecr.LifecyclePolicy{
		LifecyclePolicyText: keepLastTenImages,
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-backend"},
	},
}

// FrontendRepository holds the frontend images.
var FrontendRepository = ecr.Repository{
	RepositoryName: "nz-companies-register/frontend",
	ImageScanningConfiguration: &ecr.ImageScanningConfiguration{
		ScanOnPush: true,
	},
	LifecyclePolicy: &ecr.LifecyclePolicy{
		LifecyclePolicyText: keepLastTenImages,
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-frontend"},
	},
}

// Cluster runs the register's Fargate services.
var Cluster = ecs.Cluster{
	ClusterName:       "nz-companies-register-cluster",
	CapacityProviders: []string{"FARGATE", "FARGATE_SPOT"},
	ClusterSettings: []ecs.ClusterSetting{
		{Name: "containerInsights", Value: "enabled"},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-cluster"},
	},
}

// Alb fronts all public traffic.
var Alb = elasticloadbalancingv2.LoadBalancer{
	Name:   "nz-companies-register-alb",
	Type:   "application",
	Scheme: "internet-facing",
	Subnets: []any{
		network.PublicSubnetA,
		network.PublicSubnetB,
		network.PublicSubnetC,
	},
	SecurityGroups: []any{network.AlbSecurityGroup},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-alb"},
	},
}

// BackendTargetGroup routes API traffic to the backend containers.
var BackendTargetGroup = elasticloadbalancingv2.TargetGroup{
	Name:                       "nz-companies-backend-tg",
	VpcId:                      network.VPC,
	Port:                       8080,
	Protocol:                   "HTTP",
	TargetType:                 "ip",
	HealthCheckPath:            "/api/actuator/health",
	HealthCheckProtocol:        "HTTP",
	HealthCheckIntervalSeconds: 30,
	HealthCheckTimeoutSeconds:  5,
	HealthyThresholdCount:      2,
	UnhealthyThresholdCount:    5,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-backend-tg"},
	},
}

// FrontendTargetGroup routes everything else to the frontend containers.
var FrontendTargetGroup = elasticloadbalancingv2.TargetGroup{
	Name:                       "nz-companies-frontend-tg",
	VpcId:                      network.VPC,
	Port:                       80,
	Protocol:                   "HTTP",
	TargetType:                 "ip",
	HealthCheckPath:            "/",
	HealthCheckProtocol:        "HTTP",
	HealthCheckIntervalSeconds: 30,
	HealthCheckTimeoutSeconds:  5,
	HealthyThresholdCount:      2,
	UnhealthyThresholdCount:    5,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-frontend-tg"},
	},
}

// HttpListener redirects all plain HTTP to HTTPS.
var HttpListener = elasticloadbalancingv2.Listener{
	LoadBalancerArn: Alb,
	Port:            80,
	Protocol:        "HTTP",
	DefaultActions: []elasticloadbalancingv2.Action{
		{
			Type: "redirect",
			RedirectConfig: &elasticloadbalancingv2.RedirectConfig{
				Protocol:   "HTTPS",
				Port:       "443",
				StatusCode: "HTTP_301",
			},
		},
	},
}

// HttpsListener serves the application.
// TODO: attach the ACM certificate once the companies.govt.nz cert is
// issued; until then the listener carries no certificate, matching the
// original deployment.
var HttpsListener = elasticloadbalancingv2.Listener{
	LoadBalancerArn: Alb,
	Port:            443,
	Protocol:        "HTTPS",
	DefaultActions: []elasticloadbalancingv2.Action{
		{
			Type: "fixed-response",
			FixedResponseConfig: &elasticloadbalancingv2.FixedResponseConfig{
				StatusCode:  "404",
				ContentType: "text/plain",
				MessageBody: "Not Found",
			},
		},
	},
}

// BackendRule forwards API paths to the backend.
var BackendRule = elasticloadbalancingv2.ListenerRule{
	ListenerArn: HttpsListener,
	Priority:    100,
	Conditions: []elasticloadbalancingv2.RuleCondition{
		{Field: "path-pattern", Values: []string{"/api/*"}},
	},
	Actions: []elasticloadbalancingv2.Action{
		{Type: "forward", TargetGroupArn: BackendTargetGroup},
	},
}

// FrontendRule forwards everything else to the frontend.
var FrontendRule = elasticloadbalancingv2.ListenerRule{
	ListenerArn: HttpsListener,
	Priority:    200,
	Conditions: []elasticloadbalancingv2.RuleCondition{
		{Field: "path-pattern", Values: []string{"/*"}},
	},
	Actions: []elasticloadbalancingv2.Action{
		{Type: "forward", TargetGroupArn: FrontendTargetGroup},
	},
}
