// Package rds provides CloudFormation resource types for Amazon RDS and
// Aurora clusters.
package rds

// DBCluster represents AWS::RDS::DBCluster.
type DBCluster struct {
	DBClusterIdentifier             string
	Engine                          string
	EngineVersion                   string
	DatabaseName                    string
	MasterUsername                  any
	MasterUserPassword              any
	Port                            int
	DBSubnetGroupName               any
	DBClusterParameterGroupName     any
	VpcSecurityGroupIds             []any
	StorageEncrypted                bool
	KmsKeyId                        any
	BackupRetentionPeriod           int
	PreferredBackupWindow           string
	PreferredMaintenanceWindow      string
	DeletionProtection              bool
	EnableCloudwatchLogsExports     []string
	EnableIAMDatabaseAuthentication bool
	CopyTagsToSnapshot              bool
	Tags                            []any
}

func (DBCluster) ResourceType() string { return "AWS::RDS::DBCluster" }

// DBInstance represents AWS::RDS::DBInstance.
type DBInstance struct {
	DBInstanceIdentifier      string
	DBClusterIdentifier       any
	DBInstanceClass           string
	Engine                    string
	DBParameterGroupName      any
	PubliclyAccessible        bool
	AutoMinorVersionUpgrade   bool
	EnablePerformanceInsights bool
	MonitoringInterval        int
	MonitoringRoleArn         any
	PromotionTier             int
	Tags                      []any
}

func (DBInstance) ResourceType() string { return "AWS::RDS::DBInstance" }

// DBSubnetGroup represents AWS::RDS::DBSubnetGroup.
type DBSubnetGroup struct {
	DBSubnetGroupName        string
	DBSubnetGroupDescription string
	SubnetIds                []any
	Tags                     []any
}

func (DBSubnetGroup) ResourceType() string { return "AWS::RDS::DBSubnetGroup" }

// DBClusterParameterGroup represents AWS::RDS::DBClusterParameterGroup.
type DBClusterParameterGroup struct {
	Description string
	Family      string
	Parameters  map[string]any
	Tags        []any
}

func (DBClusterParameterGroup) ResourceType() string { return "AWS::RDS::DBClusterParameterGroup" }

// DBParameterGroup represents AWS::RDS::DBParameterGroup.
type DBParameterGroup struct {
	Description string
	Family      string
	Parameters  map[string]any
	Tags        []any
}

func (DBParameterGroup) ResourceType() string { return "AWS::RDS::DBParameterGroup" }
