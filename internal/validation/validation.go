// Package validation runs cfn-lint over synthesized stack templates.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lex00/cfn-lint-go/pkg/lint"

	"github.com/nz-companies-register/infra/internal/synth"
)

// TemplateResult contains the cfn-lint outcome for one stack template.
type TemplateResult struct {
	Stack         string   `json:"stack"`
	TemplatePath  string   `json:"template_path"`
	Passed        bool     `json:"passed"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	Informational []string `json:"informational"`
}

// TotalIssues returns the total number of issues found.
func (r TemplateResult) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Informational)
}

// ValidateTemplate runs cfn-lint on a single template file. Warnings do
// not fail validation, errors do.
func ValidateTemplate(path string) (*TemplateResult, error) {
	result := &TemplateResult{
		TemplatePath:  path,
		Errors:        []string{},
		Warnings:      []string{},
		Informational: []string{},
	}

	if _, err := os.Stat(path); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("template file not found: %s", path))
		return result, nil
	}

	linter := lint.New(lint.Options{})
	matches, err := linter.LintFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("linter error: %v", err))
		return result, nil
	}

	for _, match := range matches {
		formatted := formatMatch(match)
		switch match.Level {
		case "Error":
			result.Errors = append(result.Errors, formatted)
		case "Warning":
			result.Warnings = append(result.Warnings, formatted)
		default:
			result.Informational = append(result.Informational, formatted)
		}
	}

	result.Passed = len(result.Errors) == 0
	return result, nil
}

// ValidateBuild writes every synthesized template to dir and runs
// cfn-lint over each, in deploy order.
func ValidateBuild(result *synth.Result, dir string) ([]*TemplateResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var results []*TemplateResult
	for _, stackName := range result.Order {
		data, err := synth.ToJSON(result.Templates[stackName])
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", stackName, err)
		}

		path := filepath.Join(dir, stackName+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}

		tr, err := ValidateTemplate(path)
		if err != nil {
			return nil, err
		}
		tr.Stack = stackName
		results = append(results, tr)
	}

	return results, nil
}

// formatMatch formats a cfn-lint match for display.
func formatMatch(match lint.Match) string {
	if len(match.Location.Path) > 0 {
		parts := make([]string, len(match.Location.Path))
		for i, p := range match.Location.Path {
			parts[i] = fmt.Sprintf("%v", p)
		}
		return fmt.Sprintf("%s: %s (at %s)", match.Rule.ID, match.Message, strings.Join(parts, "/"))
	}
	return fmt.Sprintf("%s: %s", match.Rule.ID, match.Message)
}
