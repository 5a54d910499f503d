package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
)

func buildTemplate(t *testing.T) *infra.Template {
	t.Helper()
	result, err := synth.New(Stack).Build()
	require.NoError(t, err)
	tpl := result.Templates["register-network"]
	require.NotNil(t, tpl)
	return tpl
}

func resourcesOfType(tpl *infra.Template, typ string) []infra.ResourceDef {
	var defs []infra.ResourceDef
	for _, def := range tpl.Resources {
		if def.Type == typ {
			defs = append(defs, def)
		}
	}
	return defs
}

func TestVpcConfiguration(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["Vpc"].Properties
	assert.Equal(t, "10.0.0.0/16", props["CidrBlock"])
	assert.Equal(t, true, props["EnableDnsHostnames"])
	assert.Equal(t, true, props["EnableDnsSupport"])
}

func TestSubnetsSpanThreeZones(t *testing.T) {
	tpl := buildTemplate(t)

	subnets := resourcesOfType(tpl, "AWS::EC2::Subnet")
	assert.Len(t, subnets, 9)

	public := tpl.Resources["PublicSubnetA"].Properties
	assert.Equal(t, "10.0.0.0/24", public["CidrBlock"])
	assert.Equal(t, true, public["MapPublicIpOnLaunch"])

	private := tpl.Resources["PrivateSubnetA"].Properties
	assert.Equal(t, "10.0.3.0/24", private["CidrBlock"])
	assert.NotContains(t, private, "MapPublicIpOnLaunch")

	db := tpl.Resources["DatabaseSubnetC"].Properties
	assert.Equal(t, "10.0.8.0/24", db["CidrBlock"])
}

func TestInternetGatewayAttached(t *testing.T) {
	tpl := buildTemplate(t)

	require.Contains(t, tpl.Resources, "InternetGateway")
	attach := tpl.Resources["GatewayAttachment"].Properties
	assert.Equal(t, map[string]any{"Ref": "Vpc"}, attach["VpcId"])
	assert.Equal(t, map[string]any{"Ref": "InternetGateway"}, attach["InternetGatewayId"])
}

func TestNatGatewaysPerZone(t *testing.T) {
	tpl := buildTemplate(t)

	nats := resourcesOfType(tpl, "AWS::EC2::NatGateway")
	assert.Len(t, nats, 3)

	props := tpl.Resources["NatGatewayA"].Properties
	assert.Equal(t, map[string]any{
		"Fn::GetAtt": []any{"NatEipA", "AllocationId"},
	}, props["AllocationId"])
	assert.Equal(t, map[string]any{"Ref": "PublicSubnetA"}, props["SubnetId"])

	def := tpl.Resources["NatGatewayA"]
	assert.Equal(t, []string{"GatewayAttachment"}, def.DependsOn)
}

func TestAlbSecurityGroupIngress(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["AlbSecurityGroup"].Properties
	assert.Equal(t, "Security group for Application Load Balancer", props["GroupDescription"])

	ingress, ok := props["SecurityGroupIngress"].([]any)
	require.True(t, ok)
	require.Len(t, ingress, 2)

	http := ingress[0].(map[string]any)
	assert.Equal(t, "tcp", http["IpProtocol"])
	assert.Equal(t, 80, http["FromPort"])
	assert.Equal(t, 80, http["ToPort"])
	assert.Equal(t, "0.0.0.0/0", http["CidrIp"])

	https := ingress[1].(map[string]any)
	assert.Equal(t, 443, https["FromPort"])
	assert.Equal(t, 443, https["ToPort"])
}

func TestEcsSecurityGroupOnlyAcceptsAlbTraffic(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["EcsSecurityGroup"].Properties
	assert.Equal(t, "Security group for ECS tasks", props["GroupDescription"])

	ingress := props["SecurityGroupIngress"].([]any)
	require.Len(t, ingress, 1)

	rule := ingress[0].(map[string]any)
	assert.Equal(t, 8080, rule["FromPort"])
	assert.Equal(t, map[string]any{"Ref": "AlbSecurityGroup"}, rule["SourceSecurityGroupId"])
	assert.NotContains(t, rule, "CidrIp")
}

func TestDatabaseSecurityGroupOnlyAcceptsEcsTraffic(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["DatabaseSecurityGroup"].Properties
	assert.Equal(t, "Security group for RDS database", props["GroupDescription"])

	ingress := props["SecurityGroupIngress"].([]any)
	require.Len(t, ingress, 1)

	rule := ingress[0].(map[string]any)
	assert.Equal(t, 5432, rule["FromPort"])
	assert.Equal(t, 5432, rule["ToPort"])
	assert.Equal(t, map[string]any{"Ref": "EcsSecurityGroup"}, rule["SourceSecurityGroupId"])
}

func TestFlowLogsEnabled(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["FlowLog"].Properties
	assert.Equal(t, "VPC", props["ResourceType"])
	assert.Equal(t, "ALL", props["TrafficType"])
	assert.Equal(t, map[string]any{"Ref": "Vpc"}, props["ResourceId"])
	assert.Equal(t, map[string]any{
		"Fn::GetAtt": []any{"FlowLogRole", "Arn"},
	}, props["DeliverLogsPermissionArn"])

	group := tpl.Resources["FlowLogGroup"].Properties
	assert.Equal(t, "/vpc/nz-companies-register-flow-logs", group["LogGroupName"])
	assert.Equal(t, 30, group["RetentionInDays"])
}

func TestRouteTablesConfigured(t *testing.T) {
	tpl := buildTemplate(t)

	assert.Len(t, resourcesOfType(tpl, "AWS::EC2::RouteTable"), 5)

	public := tpl.Resources["PublicDefaultRoute"].Properties
	assert.Equal(t, "0.0.0.0/0", public["DestinationCidrBlock"])
	assert.Equal(t, map[string]any{"Ref": "InternetGateway"}, public["GatewayId"])

	private := tpl.Resources["PrivateDefaultRouteB"].Properties
	assert.Equal(t, map[string]any{"Ref": "NatGatewayB"}, private["NatGatewayId"])

	assoc := tpl.Resources["DatabaseSubnetARouteAssoc"].Properties
	assert.Equal(t, map[string]any{"Ref": "DatabaseRouteTable"}, assoc["RouteTableId"])
	assert.Equal(t, map[string]any{"Ref": "DatabaseSubnetA"}, assoc["SubnetId"])
}

func TestStackTagsApplied(t *testing.T) {
	tpl := buildTemplate(t)

	tags, ok := tpl.Resources["Vpc"].Properties["Tags"].([]any)
	require.True(t, ok)
	assert.Contains(t, tags, map[string]any{"Key": "Project", "Value": "NZ Companies Register"})
	assert.Contains(t, tags, map[string]any{"Key": "Environment", "Value": "Production"})
	assert.Contains(t, tags, map[string]any{"Key": "Component", "Value": "Networking"})
}

func TestNetworkOutputs(t *testing.T) {
	tpl := buildTemplate(t)

	vpcID, ok := tpl.Outputs["VpcId"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Ref": "Vpc"}, vpcID.Value)
	require.NotNil(t, vpcID.Export)
	assert.Equal(t, "register-network-VpcId", vpcID.Export.Name)

	cidr, ok := tpl.Outputs["VpcCidr"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Vpc", "CidrBlock"}}, cidr.Value)
}
