// Package ec2 provides CloudFormation resource types for Amazon EC2
// networking: VPCs, subnets, gateways, routing, flow logs and security
// groups.
package ec2

// VPC represents AWS::EC2::VPC.
type VPC struct {
	CidrBlock          any
	EnableDnsHostnames bool
	EnableDnsSupport   bool
	InstanceTenancy    string
	Tags               []any
}

func (VPC) ResourceType() string { return "AWS::EC2::VPC" }

// InternetGateway represents AWS::EC2::InternetGateway.
type InternetGateway struct {
	Tags []any
}

func (InternetGateway) ResourceType() string { return "AWS::EC2::InternetGateway" }

// VPCGatewayAttachment represents AWS::EC2::VPCGatewayAttachment.
type VPCGatewayAttachment struct {
	InternetGatewayId any
	VpcId             any
}

func (VPCGatewayAttachment) ResourceType() string { return "AWS::EC2::VPCGatewayAttachment" }

// Subnet represents AWS::EC2::Subnet.
type Subnet struct {
	VpcId               any
	CidrBlock           any
	AvailabilityZone    any
	MapPublicIpOnLaunch bool
	Tags                []any
}

func (Subnet) ResourceType() string { return "AWS::EC2::Subnet" }

// EIP represents AWS::EC2::EIP.
type EIP struct {
	Domain string
	Tags   []any
}

func (EIP) ResourceType() string { return "AWS::EC2::EIP" }

// NatGateway represents AWS::EC2::NatGateway.
type NatGateway struct {
	AllocationId any
	SubnetId     any
	Tags         []any
}

func (NatGateway) ResourceType() string { return "AWS::EC2::NatGateway" }

// RouteTable represents AWS::EC2::RouteTable.
type RouteTable struct {
	VpcId any
	Tags  []any
}

func (RouteTable) ResourceType() string { return "AWS::EC2::RouteTable" }

// Route represents AWS::EC2::Route.
type Route struct {
	RouteTableId         any
	DestinationCidrBlock string
	GatewayId            any
	NatGatewayId         any
}

func (Route) ResourceType() string { return "AWS::EC2::Route" }

// SubnetRouteTableAssociation represents AWS::EC2::SubnetRouteTableAssociation.
type SubnetRouteTableAssociation struct {
	SubnetId     any
	RouteTableId any
}

func (SubnetRouteTableAssociation) ResourceType() string {
	return "AWS::EC2::SubnetRouteTableAssociation"
}

// FlowLog represents AWS::EC2::FlowLog.
type FlowLog struct {
	ResourceId any
	// TargetResourceType is the FlowLog ResourceType property ("VPC",
	// "Subnet", "NetworkInterface"); named apart from the interface method.
	TargetResourceType       string `json:"ResourceType"`
	TrafficType              string
	LogDestinationType       string
	LogGroupName             any
	DeliverLogsPermissionArn any
	Tags                     []any
}

func (FlowLog) ResourceType() string { return "AWS::EC2::FlowLog" }

// SecurityGroup represents AWS::EC2::SecurityGroup.
type SecurityGroup struct {
	GroupDescription     string
	GroupName            string
	VpcId                any
	SecurityGroupIngress []any
	SecurityGroupEgress  []any
	Tags                 []any
}

func (SecurityGroup) ResourceType() string { return "AWS::EC2::SecurityGroup" }

// SecurityGroup_Ingress is the SecurityGroup Ingress property type.
type SecurityGroup_Ingress struct {
	Description           string
	IpProtocol            string
	FromPort              int
	ToPort                int
	CidrIp                string
	SourceSecurityGroupId any
}

// SecurityGroup_Egress is the SecurityGroup Egress property type.
type SecurityGroup_Egress struct {
	Description string
	IpProtocol  string
	FromPort    int
	ToPort      int
	CidrIp      string
}
