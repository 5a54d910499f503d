// Package ecs provides CloudFormation resource types for Amazon ECS
// clusters, task definitions and services.
package ecs

// Cluster represents AWS::ECS::Cluster.
type Cluster struct {
	ClusterName       string
	CapacityProviders []string
	ClusterSettings   []ClusterSetting
	Tags              []any
}

func (Cluster) ResourceType() string { return "AWS::ECS::Cluster" }

// ClusterSetting toggles a named cluster setting such as containerInsights.
type ClusterSetting struct {
	Name  string
	Value string
}

// TaskDefinition represents AWS::ECS::TaskDefinition.
type TaskDefinition struct {
	Family                  string
	Cpu                     string
	Memory                  string
	NetworkMode             string
	RequiresCompatibilities []string
	ExecutionRoleArn        any
	TaskRoleArn             any
	ContainerDefinitions    []ContainerDefinition
	Tags                    []any
}

func (TaskDefinition) ResourceType() string { return "AWS::ECS::TaskDefinition" }

// ContainerDefinition is a single container in a task definition.
type ContainerDefinition struct {
	Name             string
	Image            any
	Essential        bool
	PortMappings     []PortMapping
	Environment      []KeyValuePair
	Secrets          []Secret
	LogConfiguration *LogConfiguration
	HealthCheck      *HealthCheck
}

// PortMapping is the container PortMapping property type.
type PortMapping struct {
	ContainerPort int
	Protocol      string
}

// KeyValuePair is a plain environment variable.
type KeyValuePair struct {
	Name  string
	Value any
}

// Secret injects a Secrets Manager or SSM value into a container.
type Secret struct {
	Name      string
	ValueFrom any
}

// LogConfiguration is the container LogConfiguration property type.
type LogConfiguration struct {
	LogDriver string
	Options   map[string]any
}

// HealthCheck is the container HealthCheck property type.
type HealthCheck struct {
	Command     []string
	Interval    int
	Timeout     int
	Retries     int
	StartPeriod int
}

// Service represents AWS::ECS::Service.
type Service struct {
	ServiceName                   string
	Cluster                       any
	TaskDefinition                any
	LaunchType                    string
	DesiredCount                  int
	NetworkConfiguration          *NetworkConfiguration
	LoadBalancers                 []LoadBalancer
	DeploymentConfiguration       *DeploymentConfiguration
	HealthCheckGracePeriodSeconds int
	EnableExecuteCommand          bool
	PropagateTags                 string
	Tags                          []any
}

func (Service) ResourceType() string { return "AWS::ECS::Service" }

// NetworkConfiguration wraps the awsvpc configuration.
type NetworkConfiguration struct {
	AwsvpcConfiguration AwsVpcConfiguration
}

// AwsVpcConfiguration is the Service awsvpc networking property type.
type AwsVpcConfiguration struct {
	Subnets        []any
	SecurityGroups []any
	AssignPublicIp string
}

// LoadBalancer binds a container port to a target group.
type LoadBalancer struct {
	ContainerName  string
	ContainerPort  int
	TargetGroupArn any
}

// DeploymentConfiguration is the Service DeploymentConfiguration property type.
type DeploymentConfiguration struct {
	MaximumPercent           int
	MinimumHealthyPercent    int
	DeploymentCircuitBreaker *DeploymentCircuitBreaker
}

// DeploymentCircuitBreaker rolls back failed deployments.
type DeploymentCircuitBreaker struct {
	Enable   bool
	Rollback bool
}
