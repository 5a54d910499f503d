// Package database declares the register-database stack: the Aurora
// PostgreSQL cluster backing the register, its credentials secret, and the
// DynamoDB table holding document metadata.
package database

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/dynamodb"
	"github.com/nz-companies-register/infra/resources/iam"
	"github.com/nz-companies-register/infra/resources/rds"
	"github.com/nz-companies-register/infra/resources/secretsmanager"
	"github.com/nz-companies-register/infra/stacks/network"
)

// DatabaseSecret holds the master credentials; the password is generated
// at creation time.
var DatabaseSecret = secretsmanager.Secret{
	Name:        "nz-companies-register/database",
	Description: "Database credentials for NZ Companies Register",
	GenerateSecretString: &secretsmanager.GenerateSecretString{
		SecretStringTemplate: `{"username": "postgres"}`,
		GenerateStringKey:    "password",
		ExcludeCharacters:    ` "\/@'`,
		PasswordLength:       32,
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-database-secret"},
	},
}

// DatabaseSubnetGroup places the cluster in the isolated subnets.
var DatabaseSubnetGroup = rds.DBSubnetGroup{
	DBSubnetGroupName:        "nz-companies-db-subnet-group",
	DBSubnetGroupDescription: "Subnet group for NZ Companies Register database",
	SubnetIds: []any{
		network.DatabaseSubnetA,
		network.DatabaseSubnetB,
		network.DatabaseSubnetC,
	},
}

// ClusterParameterGroup tunes statement logging and connection limits.
var ClusterParameterGroup = rds.DBClusterParameterGroup{
	Description: "Parameter group for NZ Companies Register database",
	Family:      "aurora-postgresql15",
	Parameters: map[string]any{
		"log_statement":              "all",
		"log_min_duration_statement": "1000",
		"shared_preload_libraries":   "pg_stat_statements",
		"max_connections":            "200",
	},
}

// InstanceParameterGroup applies to the writer and reader instances.
var InstanceParameterGroup = rds.DBParameterGroup{
	Description: "Instance parameter group for NZ Companies Register database",
	Family:      "aurora-postgresql15",
	Parameters: map[string]any{
		"log_min_duration_statement": "1000",
	},
}

// MonitoringRole lets RDS publish enhanced monitoring metrics.
var MonitoringRole = iam.Role{
	AssumeRolePolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:    "Allow",
				Principal: ServicePrincipal{"monitoring.rds.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		},
	},
	ManagedPolicyArns: []any{
		Sub{String: "arn:${AWS::Partition}:iam::aws:policy/service-role/AmazonRDSEnhancedMonitoringRole"},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-rds-monitoring-role"},
	},
}

// Database is the Aurora PostgreSQL cluster. Credentials resolve from the
// secret at deploy time via dynamic references.
var Database = rds.DBCluster{
	DBClusterIdentifier:         "nz-companies-register-db",
	Engine:                      "aurora-postgresql",
	EngineVersion:               "15.4",
	DatabaseName:                "nz_companies_register",
	MasterUsername:              Join{Delimiter: "", Values: []any{"{{resolve:secretsmanager:", DatabaseSecret, ":SecretString:username}}"}},
	MasterUserPassword:          Join{Delimiter: "", Values: []any{"{{resolve:secretsmanager:", DatabaseSecret, ":SecretString:password}}"}},
	Port:                        5432,
	DBSubnetGroupName:           DatabaseSubnetGroup,
	DBClusterParameterGroupName: ClusterParameterGroup,
	VpcSecurityGroupIds:         []any{network.DatabaseSecurityGroup},
	StorageEncrypted:            true,
	BackupRetentionPeriod:       30,
	PreferredBackupWindow:       "03:00-04:00",
	PreferredMaintenanceWindow:  "sun:04:00-sun:05:00",
	DeletionProtection:          true,
	EnableCloudwatchLogsExports: []string{"postgresql"},
	CopyTagsToSnapshot:          true,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-db"},
	},
}

// Writer is the primary cluster instance.
var Writer = rds.DBInstance{
	DBInstanceIdentifier:      "nz-companies-register-db-writer",
	DBClusterIdentifier:       Database,
	DBInstanceClass:           "db.r6g.large",
	Engine:                    "aurora-postgresql",
	DBParameterGroupName:      InstanceParameterGroup,
	AutoMinorVersionUpgrade:   true,
	EnablePerformanceInsights: true,
	MonitoringInterval:        60,
	MonitoringRoleArn:         Att{Resource: MonitoringRole, Attribute: "Arn"},
	PromotionTier:             1,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-db-writer"},
	},
}

// Reader serves read-only traffic and takes over on writer failure.
var Reader = rds.DBInstance{
	DBInstanceIdentifier:      "nz-companies-register-db-reader",
	DBClusterIdentifier:       Database,
	DBInstanceClass:           "db.r6g.large",
	Engine:                    "aurora-postgresql",
	DBParameterGroupName:      InstanceParameterGroup,
	AutoMinorVersionUpgrade:   true,
	EnablePerformanceInsights: true,
	MonitoringInterval:        60,
	MonitoringRoleArn:         Att{Resource: MonitoringRole, Attribute: "Arn"},
	PromotionTier:             2,
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-db-reader"},
	},
}

// SecretAttachment binds the credentials secret to the cluster so rotation
// can find the endpoint.
var SecretAttachment = secretsmanager.SecretTargetAttachment{
	SecretId:   DatabaseSecret,
	TargetId:   Database,
	TargetType: "AWS::RDS::DBCluster",
}

// DocumentTable stores document metadata keyed by document and version,
// with a GSI for listing a company's documents by creation time.
var DocumentTable = dynamodb.Table{
	TableName:   "nz-companies-register-documents",
	BillingMode: "PAY_PER_REQUEST",
	AttributeDefinitions: []dynamodb.AttributeDefinition{
		{AttributeName: "document_id", AttributeType: "S"},
		{AttributeName: "version", AttributeType: "S"},
		{AttributeName: "company_id", AttributeType: "S"},
		{AttributeName: "created_at", AttributeType: "S"},
	},
	KeySchema: []dynamodb.KeySchema{
		{AttributeName: "document_id", KeyType: "HASH"},
		{AttributeName: "version", KeyType: "RANGE"},
	},
	GlobalSecondaryIndexes: []dynamodb.GlobalSecondaryIndex{
		{
			IndexName: "CompanyIdIndex",
			KeySchema: []dynamodb.KeySchema{
				{AttributeName: "company_id", KeyType: "HASH"},
				{AttributeName: "created_at", KeyType: "RANGE"},
			},
			Projection: dynamodb.Projection{ProjectionType: "ALL"},
		},
	},
	SSESpecification: &dynamodb.SSESpecification{
		SSEEnabled: true,
	},
	PointInTimeRecoverySpecification: &dynamodb.PointInTimeRecoverySpecification{
		PointInTimeRecoveryEnabled: true,
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-documents"},
	},
}
