package security

import (
	infra "github.com/nz-companies-register/infra"
	. "github.com/nz-companies-register/infra/intrinsics"
)

// Stack assembles the register-security template.
var Stack = infra.NewStack("register-security").
	Describe("Security for the NZ Companies Register: KMS key, ECS roles and policies, secrets and configuration parameters").
	Tag("Project", "NZ Companies Register").
	Tag("Environment", "Production").
	Tag("Component", "Security").
	Add("ApplicationKey", ApplicationKey, infra.Retain()).
	Add("ApplicationKeyAlias", ApplicationKeyAlias).
	Add("EcsTaskRole", EcsTaskRole).
	Add("EcsExecutionRole", EcsExecutionRole).
	Add("S3Policy", S3Policy).
	Add("DynamoDBPolicy", DynamoDBPolicy).
	Add("SNSSQSPolicy", SnsSqsPolicy).
	Add("SecretsPolicy", SecretsPolicy).
	Add("KMSPolicy", KmsPolicy).
	Add("JWTSecret", JWTSecret).
	Add("ExternalAPIKeys", ExternalAPIKeys).
	Add("AppEnvironment", AppEnvironment).
	Add("AppVersion", AppVersion).
	Add("JWTIssuer", JWTIssuer).
	Add("CORSOrigins", CORSOrigins).
	Output("ApplicationKeyArn", Att{Resource: ApplicationKey, Attribute: "Arn"}, "Application KMS key ARN").
	Output("EcsTaskRoleArn", Att{Resource: EcsTaskRole, Attribute: "Arn"}, "ECS task role ARN").
	Output("EcsExecutionRoleArn", Att{Resource: EcsExecutionRole, Attribute: "Arn"}, "ECS execution role ARN")
