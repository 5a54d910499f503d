// Package lint provides lint rules for stack declaration source files.
package lint

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	corelint "github.com/lex00/wetwire-core-go/lint"
)

// Type aliases for the shared core lint package.
type (
	// Issue is an alias for corelint.Issue.
	Issue = corelint.Issue
	// Severity is an alias for corelint.Severity.
	Severity = corelint.Severity
	// Rule is an alias for corelint.Rule.
	Rule = corelint.Rule
)

// Severity constants re-exported from the core lint package.
const (
	SeverityError   = corelint.SeverityError
	SeverityWarning = corelint.SeverityWarning
	SeverityInfo    = corelint.SeverityInfo
)

// Result contains the outcome of linting.
type Result struct {
	Success bool
	Issues  []Issue
}

// Options configures the linter.
type Options struct {
	// Rules to enable. If empty, all rules are enabled.
	EnabledRules []string
}

// LintFile lints a single Go file.
func LintFile(path string, opts Options) (Result, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return Result{}, err
	}

	var issues []Issue
	for _, rule := range getRules(opts) {
		issues = append(issues, rule.Check(file, fset)...)
	}

	return Result{
		Success: len(issues) == 0,
		Issues:  issues,
	}, nil
}

// LintPackage lints all Go files in a package directory. A trailing
// "..." lints recursively.
func LintPackage(pkgPath string, opts Options) (Result, error) {
	if strings.HasSuffix(pkgPath, "...") {
		return lintRecursive(strings.TrimSuffix(strings.TrimSuffix(pkgPath, "..."), "/"), opts)
	}

	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, pkgPath, nil, parser.ParseComments)
	if err != nil {
		return Result{}, err
	}

	rules := getRules(opts)
	var allIssues []Issue
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, rule := range rules {
				allIssues = append(allIssues, rule.Check(file, fset)...)
			}
		}
	}

	return Result{
		Success: len(allIssues) == 0,
		Issues:  allIssues,
	}, nil
}

func lintRecursive(root string, opts Options) (Result, error) {
	if root == "" {
		root = "."
	}

	var allIssues []Issue
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != root {
			name := info.Name()
			if name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		result, err := LintFile(path, opts)
		if err != nil {
			// Skip files that do not parse.
			return nil
		}
		allIssues = append(allIssues, result.Issues...)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: len(allIssues) == 0,
		Issues:  allIssues,
	}, nil
}

// getRules returns the rules to run based on options.
func getRules(opts Options) []Rule {
	all := AllRules()
	if len(opts.EnabledRules) == 0 {
		return all
	}

	enabled := make(map[string]bool)
	for _, id := range opts.EnabledRules {
		enabled[id] = true
	}

	var filtered []Rule
	for _, r := range all {
		if enabled[r.ID()] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
