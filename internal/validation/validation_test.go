package validation

import (
	"path/filepath"
	"testing"

	"github.com/lex00/cfn-lint-go/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/internal/synth"
	"github.com/nz-companies-register/infra/resources/ec2"
)

func TestTemplateResultTotalIssues(t *testing.T) {
	tests := []struct {
		name     string
		result   TemplateResult
		expected int
	}{
		{
			name:     "empty result",
			result:   TemplateResult{},
			expected: 0,
		},
		{
			name: "errors only",
			result: TemplateResult{
				Errors: []string{"error1", "error2"},
			},
			expected: 2,
		},
		{
			name: "mixed issues",
			result: TemplateResult{
				Errors:        []string{"error1"},
				Warnings:      []string{"warning1", "warning2"},
				Informational: []string{"info1"},
			},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.TotalIssues())
		})
	}
}

func TestFormatMatch(t *testing.T) {
	match := lint.Match{
		Rule:    lint.MatchRule{ID: "E3001"},
		Message: "Invalid resource type",
	}
	assert.Equal(t, "E3001: Invalid resource type", formatMatch(match))

	match.Location.Path = []any{"Resources", "Vpc", "Type"}
	assert.Equal(t, "E3001: Invalid resource type (at Resources/Vpc/Type)", formatMatch(match))
}

func TestValidateTemplateMissingFile(t *testing.T) {
	result, err := ValidateTemplate(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not found")
}

func TestValidateBuildWritesTemplates(t *testing.T) {
	vpc := ec2.VPC{CidrBlock: "10.0.0.0/16", EnableDnsSupport: true}
	stack := infra.NewStack("net").Add("Vpc", vpc)

	built, err := synth.New(stack).Build()
	require.NoError(t, err)

	dir := t.TempDir()
	results, err := ValidateBuild(built, dir)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "net", results[0].Stack)
	assert.Equal(t, filepath.Join(dir, "net.json"), results[0].TemplatePath)
	assert.Empty(t, results[0].Errors)
	assert.True(t, results[0].Passed)
}
