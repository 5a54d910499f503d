package network

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/ec2"
	"github.com/nz-companies-register/infra/resources/iam"
)

// FlowLogRole lets the VPC flow log service write to CloudWatch Logs.
var FlowLogRole = iam.Role{
	AssumeRolePolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:    "Allow",
				Principal: ServicePrincipal{"vpc-flow-logs.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		},
	},
	Policies: []iam.Role_Policy{
		{
			PolicyName: "flow-log-delivery",
			PolicyDocument: PolicyDocument{
				Version: "2012-10-17",
				Statement: []any{
					PolicyStatement{
						Effect: "Allow",
						Action: []any{
							"logs:CreateLogStream",
							"logs:PutLogEvents",
							"logs:DescribeLogGroups",
							"logs:DescribeLogStreams",
						},
						Resource: Att{Resource: FlowLogGroup, Attribute: "Arn"},
					},
				},
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-flow-log-role"},
	},
}

// AlbSecurityGroup admits HTTP and HTTPS from the internet.
var AlbSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "Security group for Application Load Balancer",
	GroupName:        "nz-companies-alb-sg",
	VpcId:            VPC,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			Description: "Allow HTTP from internet",
			IpProtocol:  "tcp",
			FromPort:    80,
			ToPort:      80,
			CidrIp:      "0.0.0.0/0",
		},
		ec2.SecurityGroup_Ingress{
			Description: "Allow HTTPS from internet",
			IpProtocol:  "tcp",
			FromPort:    443,
			ToPort:      443,
			CidrIp:      "0.0.0.0/0",
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-alb-sg"},
	},
}

// EcsSecurityGroup admits application traffic from the ALB only.
var EcsSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "Security group for ECS tasks",
	GroupName:        "nz-companies-ecs-sg",
	VpcId:            VPC,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			Description:           "Allow traffic from ALB",
			IpProtocol:            "tcp",
			FromPort:              8080,
			ToPort:                8080,
			SourceSecurityGroupId: AlbSecurityGroup,
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-ecs-sg"},
	},
}

// DatabaseSecurityGroup admits PostgreSQL from the ECS tasks only.
var DatabaseSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "Security group for RDS database",
	GroupName:        "nz-companies-db-sg",
	VpcId:            VPC,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			Description:           "Allow PostgreSQL from ECS",
			IpProtocol:            "tcp",
			FromPort:              5432,
			ToPort:                5432,
			SourceSecurityGroupId: EcsSecurityGroup,
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-db-sg"},
	},
}
