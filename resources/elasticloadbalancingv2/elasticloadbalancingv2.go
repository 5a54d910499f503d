// Package elasticloadbalancingv2 provides CloudFormation resource types
// for application load balancers, target groups, listeners and rules.
package elasticloadbalancingv2

// LoadBalancer represents AWS::ElasticLoadBalancingV2::LoadBalancer.
type LoadBalancer struct {
	Name                   string
	Type                   string
	Scheme                 string
	IpAddressType          string
	Subnets                []any
	SecurityGroups         []any
	LoadBalancerAttributes []LoadBalancerAttribute
	Tags                   []any
}

func (LoadBalancer) ResourceType() string { return "AWS::ElasticLoadBalancingV2::LoadBalancer" }

// LoadBalancerAttribute is a single load balancer attribute.
type LoadBalancerAttribute struct {
	Key   string
	Value string
}

// TargetGroup represents AWS::ElasticLoadBalancingV2::TargetGroup.
type TargetGroup struct {
	Name                       string
	VpcId                      any
	Port                       int
	Protocol                   string
	TargetType                 string
	HealthCheckPath            string
	HealthCheckProtocol        string
	HealthCheckIntervalSeconds int
	HealthCheckTimeoutSeconds  int
	HealthyThresholdCount      int
	UnhealthyThresholdCount    int
	Matcher                    *Matcher
	TargetGroupAttributes      []TargetGroupAttribute
	Tags                       []any
}

func (TargetGroup) ResourceType() string { return "AWS::ElasticLoadBalancingV2::TargetGroup" }

// Matcher is the TargetGroup health check matcher.
type Matcher struct {
	HttpCode string
}

// TargetGroupAttribute is a single target group attribute.
type TargetGroupAttribute struct {
	Key   string
	Value string
}

// Listener represents AWS::ElasticLoadBalancingV2::Listener.
type Listener struct {
	LoadBalancerArn any
	Port            int
	Protocol        string
	Certificates    []Certificate
	DefaultActions  []Action
}

func (Listener) ResourceType() string { return "AWS::ElasticLoadBalancingV2::Listener" }

// Certificate names a listener certificate by ARN.
type Certificate struct {
	CertificateArn any
}

// Action is a listener or rule action.
type Action struct {
	Type                string
	TargetGroupArn      any
	RedirectConfig      *RedirectConfig
	FixedResponseConfig *FixedResponseConfig
}

// RedirectConfig is the redirect action configuration.
type RedirectConfig struct {
	Protocol   string
	Port       string
	Host       string
	Path       string
	Query      string
	StatusCode string
}

// FixedResponseConfig is the fixed-response action configuration.
type FixedResponseConfig struct {
	StatusCode  string
	ContentType string
	MessageBody string
}

// ListenerRule represents AWS::ElasticLoadBalancingV2::ListenerRule.
type ListenerRule struct {
	ListenerArn any
	Priority    int
	Conditions  []RuleCondition
	Actions     []Action
}

func (ListenerRule) ResourceType() string { return "AWS::ElasticLoadBalancingV2::ListenerRule" }

// RuleCondition matches requests by field values such as path patterns.
type RuleCondition struct {
	Field  string
	Values []string
}
