package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
	"github.com/nz-companies-register/infra/stacks/network"
)

func buildTemplate(t *testing.T) *infra.Template {
	t.Helper()
	result, err := synth.New(network.Stack, Stack).Build()
	require.NoError(t, err)
	tpl := result.Templates["register-database"]
	require.NotNil(t, tpl)
	return tpl
}

func TestDatabaseSecretCreated(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["DatabaseSecret"].Properties
	assert.Equal(t, "nz-companies-register/database", props["Name"])
	assert.Equal(t, "Database credentials for NZ Companies Register", props["Description"])

	gen, ok := props["GenerateSecretString"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, `{"username": "postgres"}`, gen["SecretStringTemplate"])
	assert.Equal(t, "password", gen["GenerateStringKey"])
	assert.Equal(t, 32, gen["PasswordLength"])
}

func TestAuroraClusterConfiguration(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["Database"].Properties
	assert.Equal(t, "aurora-postgresql", props["Engine"])
	assert.Equal(t, "15.4", props["EngineVersion"])
	assert.Equal(t, "nz_companies_register", props["DatabaseName"])
	assert.Equal(t, 5432, props["Port"])
	assert.Equal(t, true, props["StorageEncrypted"])
	assert.Equal(t, true, props["DeletionProtection"])
	assert.Equal(t, []any{"postgresql"}, props["EnableCloudwatchLogsExports"])

	assert.Equal(t, "Retain", tpl.Resources["Database"].DeletionPolicy)
}

func TestClusterCredentialsResolveFromSecret(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["Database"].Properties
	assert.Equal(t, map[string]any{
		"Fn::Join": []any{"", []any{
			"{{resolve:secretsmanager:",
			map[string]any{"Ref": "DatabaseSecret"},
			":SecretString:username}}",
		}},
	}, props["MasterUsername"])

	password := props["MasterUserPassword"].(map[string]any)
	parts := password["Fn::Join"].([]any)[1].([]any)
	assert.Equal(t, ":SecretString:password}}", parts[2])
}

func TestBackupConfiguration(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["Database"].Properties
	assert.Equal(t, 30, props["BackupRetentionPeriod"])
	assert.Equal(t, "03:00-04:00", props["PreferredBackupWindow"])
	assert.Equal(t, "sun:04:00-sun:05:00", props["PreferredMaintenanceWindow"])
	assert.Equal(t, true, props["CopyTagsToSnapshot"])
}

func TestWriterAndReaderInstances(t *testing.T) {
	tpl := buildTemplate(t)

	writer := tpl.Resources["Writer"].Properties
	assert.Equal(t, "db.r6g.large", writer["DBInstanceClass"])
	assert.Equal(t, map[string]any{"Ref": "Database"}, writer["DBClusterIdentifier"])
	assert.Equal(t, true, writer["AutoMinorVersionUpgrade"])
	assert.Equal(t, true, writer["EnablePerformanceInsights"])
	assert.Equal(t, 60, writer["MonitoringInterval"])
	assert.Equal(t, map[string]any{
		"Fn::GetAtt": []any{"MonitoringRole", "Arn"},
	}, writer["MonitoringRoleArn"])
	assert.Equal(t, 1, writer["PromotionTier"])

	reader := tpl.Resources["Reader"].Properties
	assert.Equal(t, 2, reader["PromotionTier"])
}

func TestSubnetGroupUsesIsolatedSubnetsAcrossStacks(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["DatabaseSubnetGroup"].Properties
	assert.Equal(t, "nz-companies-db-subnet-group", props["DBSubnetGroupName"])
	assert.Equal(t, "Subnet group for NZ Companies Register database", props["DBSubnetGroupDescription"])

	subnets := props["SubnetIds"].([]any)
	require.Len(t, subnets, 3)
	assert.Equal(t, map[string]any{"Fn::ImportValue": "register-network-DatabaseSubnetA"}, subnets[0])
}

func TestSecurityGroupImportedFromNetworkStack(t *testing.T) {
	result, err := synth.New(network.Stack, Stack).Build()
	require.NoError(t, err)

	props := result.Templates["register-database"].Resources["Database"].Properties
	assert.Equal(t, []any{
		map[string]any{"Fn::ImportValue": "register-network-DatabaseSecurityGroup"},
	}, props["VpcSecurityGroupIds"])

	// The network stack gains the matching export.
	out, ok := result.Templates["register-network"].Outputs["DatabaseSecurityGroup"]
	require.True(t, ok)
	assert.Equal(t, "register-network-DatabaseSecurityGroup", out.Export.Name)

	assert.Equal(t, []string{"register-network", "register-database"}, result.Order)
}

func TestParameterGroups(t *testing.T) {
	tpl := buildTemplate(t)

	cluster := tpl.Resources["ClusterParameterGroup"].Properties
	assert.Equal(t, "aurora-postgresql15", cluster["Family"])
	assert.Equal(t, map[string]any{
		"log_statement":              "all",
		"log_min_duration_statement": "1000",
		"shared_preload_libraries":   "pg_stat_statements",
		"max_connections":            "200",
	}, cluster["Parameters"])

	instance := tpl.Resources["InstanceParameterGroup"].Properties
	assert.Equal(t, "aurora-postgresql15", instance["Family"])
}

func TestSecretAttachedToCluster(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["SecretAttachment"].Properties
	assert.Equal(t, map[string]any{"Ref": "DatabaseSecret"}, props["SecretId"])
	assert.Equal(t, map[string]any{"Ref": "Database"}, props["TargetId"])
	assert.Equal(t, "AWS::RDS::DBCluster", props["TargetType"])
}

func TestDocumentTableSchema(t *testing.T) {
	tpl := buildTemplate(t)

	props := tpl.Resources["DocumentTable"].Properties
	assert.Equal(t, "nz-companies-register-documents", props["TableName"])
	assert.Equal(t, "PAY_PER_REQUEST", props["BillingMode"])

	attrs := props["AttributeDefinitions"].([]any)
	require.Len(t, attrs, 4)
	assert.Equal(t, map[string]any{"AttributeName": "document_id", "AttributeType": "S"}, attrs[0])

	keys := props["KeySchema"].([]any)
	assert.Equal(t, map[string]any{"AttributeName": "document_id", "KeyType": "HASH"}, keys[0])
	assert.Equal(t, map[string]any{"AttributeName": "version", "KeyType": "RANGE"}, keys[1])

	sse := props["SSESpecification"].(map[string]any)
	assert.Equal(t, true, sse["SSEEnabled"])

	pitr := props["PointInTimeRecoverySpecification"].(map[string]any)
	assert.Equal(t, true, pitr["PointInTimeRecoveryEnabled"])

	assert.Equal(t, "Retain", tpl.Resources["DocumentTable"].DeletionPolicy)
}

func TestDocumentTableCompanyIndex(t *testing.T) {
	tpl := buildTemplate(t)

	gsis := tpl.Resources["DocumentTable"].Properties["GlobalSecondaryIndexes"].([]any)
	require.Len(t, gsis, 1)

	gsi := gsis[0].(map[string]any)
	assert.Equal(t, "CompanyIdIndex", gsi["IndexName"])
	keys := gsi["KeySchema"].([]any)
	assert.Equal(t, map[string]any{"AttributeName": "company_id", "KeyType": "HASH"}, keys[0])
	assert.Equal(t, map[string]any{"AttributeName": "created_at", "KeyType": "RANGE"}, keys[1])
	assert.Equal(t, map[string]any{"ProjectionType": "ALL"}, gsi["Projection"])
}

func TestDatabaseTagsApplied(t *testing.T) {
	tpl := buildTemplate(t)

	tags := tpl.Resources["Database"].Properties["Tags"].([]any)
	assert.Contains(t, tags, map[string]any{"Key": "Project", "Value": "NZ Companies Register"})
	assert.Contains(t, tags, map[string]any{"Key": "Environment", "Value": "Production"})
	assert.Contains(t, tags, map[string]any{"Key": "Component", "Value": "Database"})
}

func TestDatabaseOutputs(t *testing.T) {
	tpl := buildTemplate(t)

	endpoint, ok := tpl.Outputs["DatabaseEndpoint"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Database", "Endpoint.Address"}}, endpoint.Value)

	table, ok := tpl.Outputs["DocumentTableName"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Ref": "DocumentTable"}, table.Value)
}
