package network

import (
	infra "github.com/nz-companies-register/infra"
	. "github.com/nz-companies-register/infra/intrinsics"
)

// Stack assembles the register-network template.
var Stack = infra.NewStack("register-network").
	Describe("Networking for the NZ Companies Register: VPC, subnets, NAT gateways, flow logs and security groups").
	Tag("Project", "NZ Companies Register").
	Tag("Environment", "Production").
	Tag("Component", "Networking").
	Add("Vpc", VPC).
	Add("InternetGateway", InternetGateway).
	Add("GatewayAttachment", GatewayAttachment).
	Add("PublicSubnetA", PublicSubnetA).
	Add("PublicSubnetB", PublicSubnetB).
	Add("PublicSubnetC", PublicSubnetC).
	Add("PrivateSubnetA", PrivateSubnetA).
	Add("PrivateSubnetB", PrivateSubnetB).
	Add("PrivateSubnetC", PrivateSubnetC).
	Add("DatabaseSubnetA", DatabaseSubnetA).
	Add("DatabaseSubnetB", DatabaseSubnetB).
	Add("DatabaseSubnetC", DatabaseSubnetC).
	Add("NatEipA", NatEipA).
	Add("NatEipB", NatEipB).
	Add("NatEipC", NatEipC).
	Add("NatGatewayA", NatGatewayA, infra.DependsOn("GatewayAttachment")).
	Add("NatGatewayB", NatGatewayB, infra.DependsOn("GatewayAttachment")).
	Add("NatGatewayC", NatGatewayC, infra.DependsOn("GatewayAttachment")).
	Add("PublicRouteTable", PublicRouteTable).
	Add("PublicDefaultRoute", PublicDefaultRoute, infra.DependsOn("GatewayAttachment")).
	Add("PublicSubnetARouteAssoc", PublicSubnetARouteAssoc).
	Add("PublicSubnetBRouteAssoc", PublicSubnetBRouteAssoc).
	Add("PublicSubnetCRouteAssoc", PublicSubnetCRouteAssoc).
	Add("PrivateRouteTableA", PrivateRouteTableA).
	Add("PrivateRouteTableB", PrivateRouteTableB).
	Add("PrivateRouteTableC", PrivateRouteTableC).
	Add("PrivateDefaultRouteA", PrivateDefaultRouteA).
	Add("PrivateDefaultRouteB", PrivateDefaultRouteB).
	Add("PrivateDefaultRouteC", PrivateDefaultRouteC).
	Add("PrivateSubnetARouteAssoc", PrivateSubnetARouteAssoc).
	Add("PrivateSubnetBRouteAssoc", PrivateSubnetBRouteAssoc).
	Add("PrivateSubnetCRouteAssoc", PrivateSubnetCRouteAssoc).
	Add("DatabaseRouteTable", DatabaseRouteTable).
	Add("DatabaseSubnetARouteAssoc", DatabaseSubnetARouteAssoc).
	Add("DatabaseSubnetBRouteAssoc", DatabaseSubnetBRouteAssoc).
	Add("DatabaseSubnetCRouteAssoc", DatabaseSubnetCRouteAssoc).
	Add("FlowLogGroup", FlowLogGroup).
	Add("FlowLogRole", FlowLogRole).
	Add("FlowLog", FlowLog).
	Add("AlbSecurityGroup", AlbSecurityGroup).
	Add("EcsSecurityGroup", EcsSecurityGroup).
	Add("DatabaseSecurityGroup", DatabaseSecurityGroup).
	Output("VpcId", VPC, "VPC identifier").
	Output("VpcCidr", Att{Resource: VPC, Attribute: "CidrBlock"}, "VPC CIDR block")
