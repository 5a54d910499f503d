package compute

import (
	infra "github.com/nz-companies-register/infra"
	. "github.com/nz-companies-register/infra/intrinsics"
)

// Stack assembles the register-compute template.
var Stack = infra.NewStack("register-compute").
	Describe("Compute for the NZ Companies Register: ECR repositories, ECS cluster, load balancer and Fargate services").
	Tag("Project", "NZ Companies Register").
	Tag("Environment", "Production").
	Tag("Component", "Compute").
	Add("BackendRepository", BackendRepository).
	Add("FrontendRepository", FrontendRepository).
	Add("Cluster", Cluster).
	Add("Alb", Alb).
	Add("BackendTargetGroup", BackendTargetGroup).
	Add("FrontendTargetGroup", FrontendTargetGroup).
	Add("HttpListener", HttpListener).
	Add("HttpsListener", HttpsListener).
	Add("BackendRule", BackendRule).
	Add("FrontendRule", FrontendRule).
	Add("BackendLogGroup", BackendLogGroup).
	Add("FrontendLogGroup", FrontendLogGroup).
	Add("BackendTaskDefinition", BackendTaskDefinition).
	Add("FrontendTaskDefinition", FrontendTaskDefinition).
	Add("BackendService", BackendService, infra.DependsOn("BackendRule")).
	Add("FrontendService", FrontendService, infra.DependsOn("FrontendRule")).
	Add("BackendScalableTarget", BackendScalableTarget).
	Add("BackendCpuScaling", BackendCpuScaling).
	Add("BackendMemoryScaling", BackendMemoryScaling).
	Add("FrontendScalableTarget", FrontendScalableTarget).
	Add("FrontendCpuScaling", FrontendCpuScaling).
	Output("AlbDnsName", Att{Resource: Alb, Attribute: "DNSName"}, "Public DNS name of the load balancer").
	Output("ClusterName", Cluster, "ECS cluster name")
