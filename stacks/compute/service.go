package compute

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/applicationautoscaling"
	"github.com/nz-companies-register/infra/resources/ecs"
	"github.com/nz-companies-register/infra/stacks/network"
)

// BackendService runs the backend task on Fargate behind the backend
// target group.
var BackendService = ecs.Service{
	ServiceName:    "nz-companies-register-backend",
	Cluster:        Cluster,
	TaskDefinition: BackendTaskDefinition,
	LaunchType:     "FARGATE",
	DesiredCount:   2,
	NetworkConfiguration: &ecs.NetworkConfiguration{
		AwsvpcConfiguration: ecs.AwsVpcConfiguration{
			Subnets: []any{
				network.PrivateSubnetA,
				network.PrivateSubnetB,
				network.PrivateSubnetC,
			},
			SecurityGroups: []any{network.EcsSecurityGroup},
			AssignPublicIp: "DISABLED",
		},
	},
	LoadBalancers: []ecs.LoadBalancer{
		{
			ContainerName:  "nz-companies-register-backend",
			ContainerPort:  8080,
			TargetGroupArn: BackendTargetGroup,
		},
	},
	DeploymentConfiguration: &ecs.DeploymentConfiguration{
		MaximumPercent:        200,
		MinimumHealthyPercent: 50,
		DeploymentCircuitBreaker: &ecs.DeploymentCircuitBreaker{
			Enable:   true,
			Rollback: true,
		},
	},
	HealthCheckGracePeriodSeconds: 60,
	EnableExecuteCommand:          true,
	PropagateTags:                 "SERVICE",
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-backend"},
	},
}

// FrontendService runs the frontend task on Fargate behind the frontend
// target group.
var FrontendService = ecs.Service{
	ServiceName:    "nz-companies-register-frontend",
	Cluster:        Cluster,
	TaskDefinition: FrontendTaskDefinition,
	LaunchType:     "FARGATE",
	DesiredCount:   2,
	NetworkConfiguration: &ecs.NetworkConfiguration{
		AwsvpcConfiguration: ecs.AwsVpcConfiguration{
			Subnets: []any{
				network.PrivateSubnetA,
				network.PrivateSubnetB,
				network.PrivateSubnetC,
			},
			SecurityGroups: []any{network.EcsSecurityGroup},
			AssignPublicIp: "DISABLED",
		},
	},
	LoadBalancers: []ecs.LoadBalancer{
		{
			ContainerName:  "nz-companies-register-frontend",
			ContainerPort:  80,
			TargetGroupArn: FrontendTargetGroup,
		},
	},
	DeploymentConfiguration: &ecs.DeploymentConfiguration{
		MaximumPercent:        200,
		MinimumHealthyPercent: 50,
		DeploymentCircuitBreaker: &ecs.DeploymentCircuitBreaker{
			Enable:   true,
			Rollback: true,
		},
	},
	HealthCheckGracePeriodSeconds: 60,
	EnableExecuteCommand:          true,
	PropagateTags:                 "SERVICE",
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-frontend"},
	},
}

// Autoscaling

var BackendScalableTarget = applicationautoscaling.ScalableTarget{
	ServiceNamespace:  "ecs",
	ScalableDimension: "ecs:service:DesiredCount",
	ResourceId:        Join{Delimiter: "", Values: []any{"service/", Cluster, "/", Att{Resource: BackendService, Attribute: "Name"}}},
	MinCapacity:       2,
	MaxCapacity:       10,
}

var BackendCpuScaling = applicationautoscaling.ScalingPolicy{
	PolicyName:      "nz-companies-register-backend-cpu",
	PolicyType:      "TargetTrackingScaling",
	ScalingTargetId: BackendScalableTarget,
	TargetTrackingScalingPolicyConfiguration: &applicationautoscaling.TargetTrackingScalingPolicyConfiguration{
		TargetValue: 70,
		PredefinedMetricSpecification: &applicationautoscaling.PredefinedMetricSpecification{
			PredefinedMetricType: "ECSServiceAverageCPUUtilization",
		},
		ScaleInCooldown:  300,
		ScaleOutCooldown: 300,
	},
}

var BackendMemoryScaling = applicationautoscaling.ScalingPolicy{
	PolicyName:      "nz-companies-register-backend-memory",
	PolicyType:      "TargetTrackingScaling",
	ScalingTargetId: BackendScalableTarget,
	TargetTrackingScalingPolicyConfiguration: &applicationautoscaling.TargetTrackingScalingPolicyConfiguration{
		TargetValue: 80,
		PredefinedMetricSpecification: &applicationautoscaling.PredefinedMetricSpecification{
			PredefinedMetricType: "ECSServiceAverageMemoryUtilization",
		},
		ScaleInCooldown:  300,
		ScaleOutCooldown: 300,
	},
}

var FrontendScalableTarget = applicationautoscaling.ScalableTarget{
	ServiceNamespace:  "ecs",
	ScalableDimension: "ecs:service:DesiredCount",
	ResourceId:        Join{Delimiter: "", Values: []any{"service/", Cluster, "/", Att{Resource: FrontendService, Attribute: "Name"}}},
	MinCapacity:       2,
	MaxCapacity:       6,
}

var FrontendCpuScaling = applicationautoscaling.ScalingPolicy{
	PolicyName:      "nz-companies-register-frontend-cpu",
	PolicyType:      "TargetTrackingScaling",
	ScalingTargetId: FrontendScalableTarget,
	TargetTrackingScalingPolicyConfiguration: &applicationautoscaling.TargetTrackingScalingPolicyConfiguration{
		TargetValue: 70,
		PredefinedMetricSpecification: &applicationautoscaling.PredefinedMetricSpecification{
			PredefinedMetricType: "ECSServiceAverageCPUUtilization",
		},
		ScaleInCooldown:  300,
		ScaleOutCooldown: 300,
	},
}
