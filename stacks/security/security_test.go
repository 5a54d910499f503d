package security

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
	tpl := result.Templates["register-security"]
	require.NotNil(t, tpl)
	return tpl
}

func TestApplicationKeyWithAlias(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["ApplicationKey"].Properties
	assert.Equal(t, "KMS key for NZ Companies Register application encryption", props["Description"])
	assert.Equal(t, true, props["EnableKeyRotation"])
	assert.Equal(t, "Retain", tpl.Resources["ApplicationKey"].DeletionPolicy)

	alias := tpl.Resources["ApplicationKeyAlias"].Properties
	assert.Equal(t, "alias/nz-companies-register", alias["AliasName"])
	assert.Equal(t, map[string]any{"Ref": "ApplicationKey"}, alias["TargetKeyId"])
}

func TestTaskRoleAssumableByEcsTasks(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["EcsTaskRole"].Properties
	assert.Equal(t, "nz-companies-register-ecs-task-role", props["RoleName"])

	doc := props["AssumeRolePolicyDocument"].(map[string]any)
	statement := doc["Statement"].([]any)[0].(map[string]any)
	assert.Equal(t, "Allow", statement["Effect"])
	assert.Equal(t, map[string]any{"Service": "ecs-tasks.amazonaws.com"}, statement["Principal"])
	assert.Equal(t, "sts:AssumeRole", statement["Action"])

	managed := props["ManagedPolicyArns"].([]any)
	require.Len(t, managed, 2)
	assert.Equal(t, map[string]any{
		"Fn::Sub": "arn:${AWS::Partition}:iam::aws:policy/CloudWatchAgentServerPolicy",
	}, managed[0])
}

func TestExecutionRoleCanReadSecrets(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["EcsExecutionRole"].Properties
	assert.Equal(t, "nz-companies-register-ecs-execution-role", props["RoleName"])

	policies := props["Policies"].([]any)
	require.Len(t, policies, 1)
	inline := policies[0].(map[string]any)
	assert.Equal(t, "nz-companies-register-execution-secrets", inline["PolicyName"])

	statement := inline["PolicyDocument"].(map[string]any)["Statement"].([]any)[0].(map[string]any)
	assert.Contains(t, statement["Action"], "secretsmanager:GetSecretValue")
	assert.Contains(t, statement["Action"], "kms:Decrypt")

	resources := statement["Resource"].([]any)
	assert.Contains(t, resources, "arn:aws:secretsmanager:*:*:secret:nz-companies-register/*")
	assert.Contains(t, resources, map[string]any{
		"Fn::GetAtt": []any{"ApplicationKey", "Arn"},
	})
}

func TestAccessPoliciesAttachedToTaskRole(t *testing.T) {
	tpl := buildTemplate(t)

	for _, logical := range []string{"S3Policy", "DynamoDBPolicy", "SNSSQSPolicy", "SecretsPolicy", "KMSPolicy"} {
		def, ok := tpl.Resources[logical]
		require.True(t, ok, logical)
		assert.Equal(t, "AWS::IAM::Policy", def.Type, logical)
		assert.Equal(t, []any{map[string]any{"Ref": "EcsTaskRole"}}, def.Properties["Roles"], logical)
	}
}

func TestS3PolicyScopedToDocumentBucket(t *testing.T) {
	tpl := buildTemplate(t)

	doc := tpl.Resources["S3Policy"].Properties["PolicyDocument"].(map[string]any)
	statement := doc["Statement"].([]any)[0].(map[string]any)
	assert.Contains(t, statement["Action"], "s3:GetObject")
	assert.Equal(t, []any{
		"arn:aws:s3:::nz-companies-register-documents",
		"arn:aws:s3:::nz-companies-register-documents/*",
	}, statement["Resource"])
}

func TestKmsPolicyScopedToApplicationKey(t *testing.T) {
	tpl := buildTemplate(t)

	doc := tpl.Resources["KMSPolicy"].Properties["PolicyDocument"].(map[string]any)
	statement := doc["Statement"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{
		"Fn::GetAtt": []any{"ApplicationKey", "Arn"},
	}, statement["Resource"])
}

func TestGeneratedSecrets(t *testing.T) {
	tpl := buildTemplate(t)

	jwt := tpl.Resources["JWTSecret"].Properties
	assert.Equal(t, "nz-companies-register/jwt-secret", jwt["Name"])
	gen := jwt["GenerateSecretString"].(map[string]any)
	assert.Equal(t, "jwt_secret", gen["GenerateStringKey"])
	assert.Equal(t, 64, gen["PasswordLength"])

	external := tpl.Resources["ExternalAPIKeys"].Properties
	assert.Equal(t, "nz-companies-register/external-api-keys", external["Name"])
}

func TestConfigurationParameters(t *testing.T) {
	tpl := buildTemplate(t)

	params := map[string]struct {
		name  string
		value string
	}{
		"AppEnvironment": {"/nz-companies-register/environment", "production"},
		"AppVersion":     {"/nz-companies-register/version", "1.0.0"},
		"JWTIssuer":      {"/nz-companies-register/jwt-issuer", "https://nz-companies-register.auth0.com/"},
		"CORSOrigins":    {"/nz-companies-register/cors-origins", "https://companies.govt.nz,https://www.companies.govt.nz"},
	}
	for logical, want := range params {
		def, ok := tpl.Resources[logical]
		require.True(t, ok, logical)
		assert.Equal(t, "AWS::SSM::Parameter", def.Type)
		assert.Equal(t, want.name, def.Properties["Name"], logical)
		assert.Equal(t, "String", def.Properties["Type"], logical)
		assert.Equal(t, want.value, def.Properties["Value"], logical)
	}
}

func TestSecurityOutputs(t *testing.T) {
	tpl := buildTemplate(t)

	for name, logical := range map[string]string{
		"ApplicationKeyArn":   "ApplicationKey",
		"EcsTaskRoleArn":      "EcsTaskRole",
		"EcsExecutionRoleArn": "EcsExecutionRole",
	} {
		out, ok := tpl.Outputs[name]
		require.True(t, ok, name)
		assert.Equal(t, map[string]any{"Fn::GetAtt": []any{logical, "Arn"}}, out.Value)
		require.NotNil(t, out.Export)
		assert.Equal(t, "register-security-"+name, out.Export.Name)
	}
}
