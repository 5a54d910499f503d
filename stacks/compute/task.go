package compute

import (
	. "github.com/nz-companies-register/infra/intrinsics"
	"github.com/nz-companies-register/infra/resources/ecs"
	"github.com/nz-companies-register/infra/resources/logs"
	"github.com/nz-companies-register/infra/stacks/database"
	"github.com/nz-companies-register/infra/stacks/storage"
)

// The task and execution roles are owned by the security stack and
// referenced here by their fixed names, as the original deployment did.
var (
	taskRoleArn      = Sub{String: "arn:${AWS::Partition}:iam::${AWS::AccountId}:role/nz-companies-register-ecs-task-role"}
	executionRoleArn = Sub{String: "arn:${AWS::Partition}:iam::${AWS::AccountId}:role/nz-companies-register-ecs-execution-role"}
)

// BackendLogGroup receives backend container logs.
var BackendLogGroup = logs.LogGroup{
	LogGroupName:    "/ecs/nz-companies-register-backend",
	RetentionInDays: 30,
}

// FrontendLogGroup receives frontend container logs.
var FrontendLogGroup = logs.LogGroup{
	LogGroupName:    "/ecs/nz-companies-register-frontend",
	RetentionInDays: 30,
}

// BackendTaskDefinition runs the Spring backend.
var BackendTaskDefinition = ecs.TaskDefinition{
	Family:                  "nz-companies-register-backend",
	Cpu:                     "1024",
	Memory:                  "2048",
	NetworkMode:             "awsvpc",
	RequiresCompatibilities: []string{"FARGATE"},
	TaskRoleArn:             taskRoleArn,
	ExecutionRoleArn:        executionRoleArn,
	ContainerDefinitions: []ecs.ContainerDefinition{
		{
			Name:      "nz-companies-register-backend",
			Image:     Join{Delimiter: "", Values: []any{Att{Resource: BackendRepository, Attribute: "RepositoryUri"}, ":latest"}},
			Essential: true,
			PortMappings: []ecs.PortMapping{
				{ContainerPort: 8080, Protocol: "tcp"},
			},
			Environment: []ecs.KeyValuePair{
				{Name: "SPRING_PROFILES_ACTIVE", Value: "production"},
				{Name: "AWS_REGION", Value: AWS_REGION},
				{Name: "DB_HOST", Value: Att{Resource: database.Database, Attribute: "Endpoint.Address"}},
				{Name: "DB_PORT", Value: "5432"},
				{Name: "DB_NAME", Value: "nz_companies_register"},
				{Name: "S3_DOCUMENT_BUCKET", Value: storage.DocumentBucket},
			},
			Secrets: []ecs.Secret{
				{
					Name:      "DB_USERNAME",
					ValueFrom: Join{Delimiter: "", Values: []any{database.DatabaseSecret, ":username::"}},
				},
				{
					Name:      "DB_PASSWORD",
					ValueFrom: Join{Delimiter: "", Values: []any{database.DatabaseSecret, ":password::"}},
				},
			},
			LogConfiguration: &ecs.LogConfiguration{
				LogDriver: "awslogs",
				Options: map[string]any{
					"awslogs-group":         BackendLogGroup,
					"awslogs-region":        AWS_REGION,
					"awslogs-stream-prefix": "backend",
				},
			},
			HealthCheck: &ecs.HealthCheck{
				Command:     []string{"CMD-SHELL", "curl -f http://localhost:8080/api/actuator/health || exit 1"},
				Interval:    30,
				Timeout:     5,
				Retries:     3,
				StartPeriod: 60,
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-backend"},
	},
}

// FrontendTaskDefinition runs the static frontend.
var FrontendTaskDefinition = ecs.TaskDefinition{
	Family:                  "nz-companies-register-frontend",
	Cpu:                     "256",
	Memory:                  "512",
	NetworkMode:             "awsvpc",
	RequiresCompatibilities: []string{"FARGATE"},
	ExecutionRoleArn:        executionRoleArn,
	ContainerDefinitions: []ecs.ContainerDefinition{
		{
			Name:      "nz-companies-register-frontend",
			Image:     Join{Delimiter: "", Values: []any{Att{Resource: FrontendRepository, Attribute: "RepositoryUri"}, ":latest"}},
			Essential: true,
			PortMappings: []ecs.PortMapping{
				{ContainerPort: 80, Protocol: "tcp"},
			},
			LogConfiguration: &ecs.LogConfiguration{
				LogDriver: "awslogs",
				Options: map[string]any{
					"awslogs-group":         FrontendLogGroup,
					"awslogs-region":        AWS_REGION,
					"awslogs-stream-prefix": "frontend",
				},
			},
			HealthCheck: &ecs.HealthCheck{
				Command:     []string{"CMD-SHELL", "curl -f http://localhost:80 || exit 1"},
				Interval:    30,
				Timeout:     5,
				Retries:     3,
				StartPeriod: 30,
			},
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "nz-companies-register-frontend"},
	},
}
