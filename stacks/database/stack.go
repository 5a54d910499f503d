package database

import (
	infra "github.com/nz-companies-register/infra"
	. "github.com/nz-companies-register/infra/intrinsics"
)

// Stack assembles the register-database template.
var Stack = infra.NewStack("register-database").
	Describe("Database for the NZ Companies Register: Aurora PostgreSQL cluster and DynamoDB document metadata table").
	Tag("Project", "NZ Companies Register").
	Tag("Environment", "Production").
	Tag("Component", "Database").
	Add("DatabaseSecret", DatabaseSecret).
	Add("DatabaseSubnetGroup", DatabaseSubnetGroup).
	Add("ClusterParameterGroup", ClusterParameterGroup).
	Add("InstanceParameterGroup", InstanceParameterGroup).
	Add("MonitoringRole", MonitoringRole).
	Add("Database", Database, infra.Retain()).
	Add("Writer", Writer).
	Add("Reader", Reader).
	Add("SecretAttachment", SecretAttachment).
	Add("DocumentTable", DocumentTable, infra.Retain()).
	Output("DatabaseEndpoint", Att{Resource: Database, Attribute: "Endpoint.Address"}, "Aurora cluster writer endpoint").
	Output("DatabaseReadEndpoint", Att{Resource: Database, Attribute: "ReadEndpoint.Address"}, "Aurora cluster reader endpoint").
	Output("DocumentTableName", DocumentTable, "DynamoDB document metadata table name")
