// Package network declares the register-network stack: the VPC for the NZ
// Companies Register with public, private and isolated database subnets
// across three AZs, NAT egress, flow logs and the shared security groups.
package network

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/ec2"
	"github.com/nz-companies-register/infra/resources/logs"
)

// VPC is the application VPC.
var VPC = ec2.VPC{
	CidrBlock:          "10.0.0.0/16",
	EnableDnsHostnames: true,
	EnableDnsSupport:   true,
	InstanceTenancy:    "default",
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-vpc"},
	},
}

// InternetGateway provides internet access for the public subnets.
var InternetGateway = ec2.InternetGateway{
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-igw"},
	},
}

// GatewayAttachment attaches the internet gateway to the VPC.
var GatewayAttachment = ec2.VPCGatewayAttachment{
	InternetGatewayId: InternetGateway,
	VpcId:             VPC,
}

// Public subnets (ALB, NAT gateways)

var PublicSubnetA = ec2.Subnet{
	VpcId:               VPC,
	CidrBlock:           "10.0.0.0/24",
	AvailabilityZone:    Select{Index: 0, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-public-a"},
	},
}

var PublicSubnetB = ec2.Subnet{
	VpcId:               VPC,
	CidrBlock:           "10.0.1.0/24",
	AvailabilityZone:    Select{Index: 1, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-public-b"},
	},
}

var PublicSubnetC = ec2.Subnet{
	VpcId:               VPC,
	CidrBlock:           "10.0.2.0/24",
	AvailabilityZone:    Select{Index: 2, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-public-c"},
	},
}

// Private subnets (ECS tasks)

var PrivateSubnetA = ec2.Subnet{
	VpcId:            VPC,
	CidrBlock:        "10.0.3.0/24",
	AvailabilityZone: Select{Index: 0, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-private-a"},
	},
}

var PrivateSubnetB = ec2.Subnet{
	VpcId:            VPC,
	CidrBlock:        "10.0.4.0/24",
	AvailabilityZone: Select{Index: 1, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-private-b"},
	},
}

var PrivateSubnetC = ec2.Subnet{
	VpcId:            VPC,
	CidrBlock:        "10.0.5.0/24",
	AvailabilityZone: Select{Index: 2, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-private-c"},
	},
}

// Isolated database subnets (no route to the internet)

var DatabaseSubnetA = ec2.Subnet{
	VpcId:            VPC,
	CidrBlock:        "10.0.6.0/24",
	AvailabilityZone: Select{Index: 0, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-database-a"},
	},
}

var DatabaseSubnetB = ec2.Subnet{
	VpcId:            VPC,
	CidrBlock:        "10.0.7.0/24",
	AvailabilityZone: Select{Index: 1, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-database-b"},
	},
}

var DatabaseSubnetC = ec2.Subnet{
	VpcId:            VPC,
	CidrBlock:        "10.0.8.0/24",
	AvailabilityZone: Select{Index: 2, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-database-c"},
	},
}

// NAT gateways, one per AZ so a single AZ outage does not take out egress
// for the others.

var NatEipA = ec2.EIP{
	Domain: "vpc",
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-nat-eip-a"},
	},
}

var NatEipB = ec2.EIP{
	Domain: "vpc",
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-nat-eip-b"},
	},
}

var NatEipC = ec2.EIP{
	Domain: "vpc",
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-nat-eip-c"},
	},
}

var NatGatewayA = ec2.NatGateway{
	AllocationId: Att{Resource: NatEipA, Attribute: "AllocationId"},
	SubnetId:     PublicSubnetA,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-nat-a"},
	},
}

var NatGatewayB = ec2.NatGateway{
	AllocationId: Att{Resource: NatEipB, Attribute: "AllocationId"},
	SubnetId:     PublicSubnetB,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-nat-b"},
	},
}

var NatGatewayC = ec2.NatGateway{
	AllocationId: Att{Resource: NatEipC, Attribute: "AllocationId"},
	SubnetId:     PublicSubnetC,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-nat-c"},
	},
}

// Routing

var PublicRouteTable = ec2.RouteTable{
	VpcId: VPC,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-public-rt"},
	},
}

// PublicDefaultRoute needs an explicit DependsOn the gateway attachment,
// registered in stack.go.
var PublicDefaultRoute = ec2.Route{
	RouteTableId:         PublicRouteTable,
	DestinationCidrBlock: "0.0.0.0/0",
	GatewayId:            InternetGateway,
}

var PublicSubnetARouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     PublicSubnetA,
	RouteTableId: PublicRouteTable,
}

var PublicSubnetBRouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     PublicSubnetB,
	RouteTableId: PublicRouteTable,
}

var PublicSubnetCRouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     PublicSubnetC,
	RouteTableId: PublicRouteTable,
}

var PrivateRouteTableA = ec2.RouteTable{
	VpcId: VPC,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-private-rt-a"},
	},
}

var PrivateRouteTableB = ec2.RouteTable{
	VpcId: VPC,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-private-rt-b"},
	},
}

var PrivateRouteTableC = ec2.RouteTable{
	VpcId: VPC,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-private-rt-c"},
	},
}

var PrivateDefaultRouteA = ec2.Route{
	RouteTableId:         PrivateRouteTableA,
	DestinationCidrBlock: "0.0.0.0/0",
	NatGatewayId:         NatGatewayA,
}

var PrivateDefaultRouteB = ec2.Route{
	RouteTableId:         PrivateRouteTableB,
	DestinationCidrBlock: "0.0.0.0/0",
	NatGatewayId:         NatGatewayB,
}

var PrivateDefaultRouteC = ec2.Route{
	RouteTableId:         PrivateRouteTableC,
	DestinationCidrBlock: "0.0.0.0/0",
	NatGatewayId:         NatGatewayC,
}

var PrivateSubnetARouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     PrivateSubnetA,
	RouteTableId: PrivateRouteTableA,
}

var PrivateSubnetBRouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     PrivateSubnetB,
	RouteTableId: PrivateRouteTableB,
}

var PrivateSubnetCRouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     PrivateSubnetC,
	RouteTableId: PrivateRouteTableC,
}

// The database subnets share one route table with no default route.
var DatabaseRouteTable = ec2.RouteTable{
	VpcId: VPC,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-database-rt"},
	},
}

var DatabaseSubnetARouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     DatabaseSubnetA,
	RouteTableId: DatabaseRouteTable,
}

var DatabaseSubnetBRouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     DatabaseSubnetB,
	RouteTableId: DatabaseRouteTable,
}

var DatabaseSubnetCRouteAssoc = ec2.SubnetRouteTableAssociation{
	SubnetId:     DatabaseSubnetC,
	RouteTableId: DatabaseRouteTable,
}

// Flow logs

// FlowLogGroup receives the VPC flow logs.
var FlowLogGroup = logs.LogGroup{
	LogGroupName:    "/vpc/nz-companies-register-flow-logs",
	RetentionInDays: 30,
}

// FlowLog captures all VPC traffic to CloudWatch Logs.
var FlowLog = ec2.FlowLog{
	ResourceId:               VPC,
	TargetResourceType:       "VPC",
	TrafficType:              "ALL",
	LogDestinationType:       "cloud-watch-logs",
	LogGroupName:             FlowLogGroup,
	DeliverLogsPermissionArn: Att{Resource: FlowLogRole, Attribute: "Arn"},
}
