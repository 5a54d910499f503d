// Package applicationautoscaling provides CloudFormation resource types
// for Application Auto Scaling targets and policies.
package applicationautoscaling

// ScalableTarget represents AWS::ApplicationAutoScaling::ScalableTarget.
type ScalableTarget struct {
	ServiceNamespace  string
	ScalableDimension string
	ResourceId        any
	MinCapacity       int
	MaxCapacity       int
	RoleARN           any
}

func (ScalableTarget) ResourceType() string { return "AWS::ApplicationAutoScaling::ScalableTarget" }

// ScalingPolicy represents AWS::ApplicationAutoScaling::ScalingPolicy.
type ScalingPolicy struct {
	PolicyName                               string
	PolicyType                               string
	ScalingTargetId                          any
	TargetTrackingScalingPolicyConfiguration *TargetTrackingScalingPolicyConfiguration
}

func (ScalingPolicy) ResourceType() string { return "AWS::ApplicationAutoScaling::ScalingPolicy" }

// TargetTrackingScalingPolicyConfiguration tracks a predefined metric
// toward a target value.
type TargetTrackingScalingPolicyConfiguration struct {
	TargetValue                   float64
	PredefinedMetricSpecification *PredefinedMetricSpecification
	ScaleInCooldown               int
	ScaleOutCooldown              int
}

// PredefinedMetricSpecification names a service-defined scaling metric.
type PredefinedMetricSpecification struct {
	PredefinedMetricType string
}
