// Package security declares the register-security stack: the application
// KMS key, the ECS task and execution roles with their access policies,
// generated secrets and non-sensitive SSM configuration parameters.
package security

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/iam"
	"github.com/nz-companies-register/infra/resources/kms"
	"github.com/nz-companies-register/infra/resources/secretsmanager"
	"github.com/nz-companies-register/infra/resources/ssm"
)

// ApplicationKey encrypts application data across services.
var ApplicationKey = kms.Key{
	Description:       "KMS key for NZ Companies Register application encryption",
	EnableKeyRotation: true,
	KeyPolicy: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Sid:       "EnableRootAccess",
				Effect:    "Allow",
				Principal: AWSPrincipal{Sub{String: "arn:${AWS::Partition}:iam::${AWS::AccountId}:root"}},
				Action:    "kms:*",
				Resource:  "*",
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-key"},
	},
}

// ApplicationKeyAlias gives the key a stable, human-readable name.
var ApplicationKeyAlias = kms.Alias{
	AliasName:   "alias/nz-companies-register",
	TargetKeyId: ApplicationKey,
}

// EcsTaskRole is assumed by the running application containers.
var EcsTaskRole = iam.Role{
	RoleName:    "nz-companies-register-ecs-task-role",
	Description: "Role for NZ Companies Register ECS tasks",
	AssumeRolePolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:    "Allow",
				Principal: ServicePrincipal{"ecs-tasks.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		},
	},
	ManagedPolicyArns: []any{
		Sub{String: "arn:${AWS::Partition}:iam::aws:policy/CloudWatchAgentServerPolicy"},
		Sub{String: "arn:${AWS::Partition}:iam::aws:policy/AWSXRayDaemonWriteAccess"},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-ecs-task-role"},
	},
}

// EcsExecutionRole is assumed by the ECS agent to pull images and inject
// secrets.
var EcsExecutionRole = iam.Role{
	RoleName:    "nz-companies-register-ecs-execution-role",
	Description: "Role for ECS task execution",
	AssumeRolePolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:    "Allow",
				Principal: ServicePrincipal{"ecs-tasks.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		},
	},
	ManagedPolicyArns: []any{
		Sub{String: "arn:${AWS::Partition}:iam::aws:policy/service-role/AmazonECSTaskExecutionRolePolicy"},
	},
	Policies: []iam.Role_Policy{
		{
			PolicyName: "nz-companies-register-execution-secrets",
			PolicyDocument: PolicyDocument{
				Version: "2012-10-17",
				Statement: []any{
					PolicyStatement{
						Effect: "Allow",
						Action: []any{
							"secretsmanager:GetSecretValue",
							"ssm:GetParameters",
							"ssm:GetParameter",
							"kms:Decrypt",
						},
						Resource: []any{
							"arn:aws:secretsmanager:*:*:secret:nz-companies-register/*",
							"arn:aws:ssm:*:*:parameter/nz-companies-register/*",
							Att{Resource: ApplicationKey, Attribute: "Arn"},
						},
					},
				},
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-ecs-execution-role"},
	},
}

// Task role access policies, one per service the application touches.

var S3Policy = iam.Policy{
	PolicyName: "nz-companies-register-s3-policy",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect: "Allow",
				Action: []any{
					"s3:GetObject",
					"s3:PutObject",
					"s3:DeleteObject",
					"s3:ListBucket",
				},
				Resource: []any{
					"arn:aws:s3:::nz-companies-register-documents",
					"arn:aws:s3:::nz-companies-register-documents/*",
				},
			},
		},
	},
	Roles: []any{EcsTaskRole},
}

var DynamoDBPolicy = iam.Policy{
	PolicyName: "nz-companies-register-dynamodb-policy",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect: "Allow",
				Action: []any{
					"dynamodb:GetItem",
					"dynamodb:PutItem",
					"dynamodb:UpdateItem",
					"dynamodb:DeleteItem",
					"dynamodb:Query",
					"dynamodb:Scan",
				},
				Resource: []any{
					"arn:aws:dynamodb:*:*:table/nz-companies-register-documents",
					"arn:aws:dynamodb:*:*:table/nz-companies-register-documents/index/*",
				},
			},
		},
	},
	Roles: []any{EcsTaskRole},
}

var SnsSqsPolicy = iam.Policy{
	PolicyName: "nz-companies-register-sns-sqs-policy",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect: "Allow",
				Action: []any{
					"sns:Publish",
					"sqs:SendMessage",
					"sqs:ReceiveMessage",
					"sqs:DeleteMessage",
					"sqs:GetQueueAttributes",
				},
				Resource: []any{
					"arn:aws:sns:*:*:nz-companies-register-notifications",
					"arn:aws:sqs:*:*:nz-companies-register-notifications",
					"arn:aws:sqs:*:*:nz-companies-register-reminders",
				},
			},
		},
	},
	Roles: []any{EcsTaskRole},
}

var SecretsPolicy = iam.Policy{
	PolicyName: "nz-companies-register-secrets-policy",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect: "Allow",
				Action: []any{
					"secretsmanager:GetSecretValue",
					"secretsmanager:DescribeSecret",
				},
				Resource: "arn:aws:secretsmanager:*:*:secret:nz-companies-register/*",
			},
		},
	},
	Roles: []any{EcsTaskRole},
}

// KmsPolicy grants the task role encrypt/decrypt on the application key.
var KmsPolicy = iam.Policy{
	PolicyName: "nz-companies-register-kms-policy",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect: "Allow",
				Action: []any{
					"kms:Decrypt",
					"kms:Encrypt",
					"kms:ReEncrypt*",
					"kms:GenerateDataKey*",
					"kms:DescribeKey",
				},
				Resource: Att{Resource: ApplicationKey, Attribute: "Arn"},
			},
		},
	},
	Roles: []any{EcsTaskRole},
}

// JWTSecret holds the generated JWT signing secret.
var JWTSecret = secretsmanager.Secret{
	Name:        "nz-companies-register/jwt-secret",
	Description: "JWT signing secret for NZ Companies Register",
	GenerateSecretString: &secretsmanager.GenerateSecretString{
		SecretStringTemplate: `{"jwt_secret": ""}`,
		GenerateStringKey:    "jwt_secret",
		ExcludeCharacters:    ` "\/@'`,
		PasswordLength:       64,
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-jwt-secret"},
	},
}

// ExternalAPIKeys holds keys for external services; the real values are
// set out of band after creation.
var ExternalAPIKeys = secretsmanager.Secret{
	Name:        "nz-companies-register/external-api-keys",
	Description: "API keys for external services",
	GenerateSecretString: &secretsmanager.GenerateSecretString{
		SecretStringTemplate: `{"nz_post_api_key": "", "auth0_client_secret": ""}`,
		GenerateStringKey:    "placeholder",
		ExcludeCharacters:    ` "\/@'`,
		PasswordLength:       32,
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-external-api-keys"},
	},
}

// Non-sensitive configuration parameters.

var AppEnvironment = ssm.Parameter{
	Name:        "/nz-companies-register/environment",
	Description: "Application environment",
	Type:        "String",
	Value:       "production",
}

var AppVersion = ssm.Parameter{
	Name:        "/nz-companies-register/version",
	Description: "Application version",
	Type:        "String",
	Value:       "1.0.0",
}

var JWTIssuer = ssm.Parameter{
	Name:        "/nz-companies-register/jwt-issuer",
	Description: "JWT issuer URL",
	Type:        "String",
	Value:       "https://nz-companies-register.auth0.com/",
}

var CORSOrigins = ssm.Parameter{
	Name:        "/nz-companies-register/cors-origins",
	Description: "Allowed CORS origins",
	Type:        "String",
	Value:       "https://companies.govt.nz,https://www.companies.govt.nz",
}
