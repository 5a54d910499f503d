// Package lint rules for infrastructure declarations.
//
// Rules:
//
//	NZR001: Use pseudo-parameter constants instead of hardcoded strings
//	NZR002: Never open sensitive ports to the internet
//	NZR003: Buckets must declare encryption
//	NZR004: Queues must declare a KMS key
//	NZR005: Never hardcode credentials in declarations
//	NZR006: Log groups must declare a retention period
//	NZR007: Stacks must carry project tags
package lint

import (
	"fmt"
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// AllRules returns every lint rule.
func AllRules() []Rule {
	return []Rule{
		HardcodedPseudoParameter{},
		OpenSensitiveIngress{},
		UnencryptedBucket{},
		UnencryptedQueue{},
		HardcodedCredential{},
		LogGroupWithoutRetention{},
		UntaggedStack{},
	}
}

// HardcodedPseudoParameter detects hardcoded AWS pseudo-parameter strings.
//
// Detects: "AWS::Region", "AWS::AccountId", "AWS::StackName"
// Suggests: AWS_REGION, AWS_ACCOUNT_ID, etc.
type HardcodedPseudoParameter struct{}

func (r HardcodedPseudoParameter) ID() string { return "NZR001" }
func (r HardcodedPseudoParameter) Description() string {
	return "Use pseudo-parameter constants instead of hardcoded strings"
}

var pseudoParams = map[string]string{
	"AWS::Region":    "AWS_REGION",
	"AWS::AccountId": "AWS_ACCOUNT_ID",
	"AWS::StackName": "AWS_STACK_NAME",
	"AWS::Partition": "AWS_PARTITION",
	"AWS::URLSuffix": "AWS_URL_SUFFIX",
}

func (r HardcodedPseudoParameter) Check(file *ast.File, fset *token.FileSet) []Issue {
	var issues []Issue

	ast.Inspect(file, func(n ast.Node) bool {
		lit, ok := n.(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}

		value := strings.Trim(lit.Value, `"`)
		if constant, found := pseudoParams[value]; found {
			pos := fset.Position(lit.Pos())
			issues = append(issues, Issue{
				Rule:       r.ID(),
				Message:    "Use " + constant + " instead of \"" + value + "\"",
				Suggestion: constant,
				File:       pos.Filename,
				Line:       pos.Line,
				Column:     pos.Column,
				Severity:   SeverityWarning,
			})
		}
		return true
	})

	return issues
}

// OpenSensitiveIngress detects security group ingress rules that open
// administrative or database ports to the whole internet.
type OpenSensitiveIngress struct{}

func (r OpenSensitiveIngress) ID() string { return "NZR002" }
func (r OpenSensitiveIngress) Description() string {
	return "Never open sensitive ports to the internet"
}

var sensitivePorts = map[int]string{
	22:    "SSH",
	3389:  "RDP",
	5432:  "PostgreSQL",
	3306:  "MySQL",
	6379:  "Redis",
	27017: "MongoDB",
}

func (r OpenSensitiveIngress) Check(file *ast.File, fset *token.FileSet) []Issue {
	var issues []Issue

	ast.Inspect(file, func(n ast.Node) bool {
		comp, ok := n.(*ast.CompositeLit)
		if !ok || !isTypeNamed(comp.Type, "SecurityGroup_Ingress") {
			return true
		}

		var fromPort int
		var openToWorld bool
		var cidrPos token.Pos
		for _, elt := range comp.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}
			switch key.Name {
			case "FromPort":
				if lit, ok := kv.Value.(*ast.BasicLit); ok && lit.Kind == token.INT {
					fmt.Sscanf(lit.Value, "%d", &fromPort)
				}
			case "CidrIp":
				if lit, ok := kv.Value.(*ast.BasicLit); ok && strings.Trim(lit.Value, `"`) == "0.0.0.0/0" {
					openToWorld = true
					cidrPos = lit.Pos()
				}
			}
		}

		if service, sensitive := sensitivePorts[fromPort]; sensitive && openToWorld {
			pos := fset.Position(cidrPos)
			issues = append(issues, Issue{
				Rule:       r.ID(),
				Message:    fmt.Sprintf("Port %d (%s) is open to 0.0.0.0/0", fromPort, service),
				Suggestion: "Restrict the source to a security group or known CIDR range",
				File:       pos.Filename,
				Line:       pos.Line,
				Column:     pos.Column,
				Severity:   SeverityError,
			})
		}
		return true
	})

	return issues
}

// UnencryptedBucket detects bucket declarations without encryption.
type UnencryptedBucket struct{}

func (r UnencryptedBucket) ID() string { return "NZR003" }
func (r UnencryptedBucket) Description() string {
	return "Buckets must declare encryption"
}

func (r UnencryptedBucket) Check(file *ast.File, fset *token.FileSet) []Issue {
	return requireField(file, fset, r.ID(), "Bucket", "BucketEncryption",
		"Bucket has no BucketEncryption",
		"Add a BucketEncryption block with SSE-KMS", SeverityWarning)
}

// UnencryptedQueue detects queue declarations without a KMS key.
type UnencryptedQueue struct{}

func (r UnencryptedQueue) ID() string { return "NZR004" }
func (r UnencryptedQueue) Description() string {
	return "Queues must declare a KMS key"
}

func (r UnencryptedQueue) Check(file *ast.File, fset *token.FileSet) []Issue {
	return requireField(file, fset, r.ID(), "Queue", "KmsMasterKeyId",
		"Queue has no KmsMasterKeyId",
		"Reference a KMS key so messages are encrypted at rest", SeverityWarning)
}

// HardcodedCredential detects credential-looking fields assigned plain
// string literals. Secrets belong in Secrets Manager or SSM, referenced
// at deploy time.
type HardcodedCredential struct{}

func (r HardcodedCredential) ID() string { return "NZR005" }
func (r HardcodedCredential) Description() string {
	return "Never hardcode credentials in declarations"
}

var credentialField = regexp.MustCompile(`(Password|Token|ApiKey|AccessKey)$`)

func (r HardcodedCredential) Check(file *ast.File, fset *token.FileSet) []Issue {
	var issues []Issue

	ast.Inspect(file, func(n ast.Node) bool {
		kv, ok := n.(*ast.KeyValueExpr)
		if !ok {
			return true
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok || !credentialField.MatchString(key.Name) {
			return true
		}
		lit, ok := kv.Value.(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING || strings.Trim(lit.Value, `"`) == "" {
			return true
		}

		pos := fset.Position(lit.Pos())
		issues = append(issues, Issue{
			Rule:       r.ID(),
			Message:    key.Name + " is assigned a literal value",
			Suggestion: "Generate the value in Secrets Manager and reference it with a dynamic reference",
			File:       pos.Filename,
			Line:       pos.Line,
			Column:     pos.Column,
			Severity:   SeverityError,
		})
		return true
	})

	return issues
}

// LogGroupWithoutRetention detects log groups that keep logs forever.
type LogGroupWithoutRetention struct{}

func (r LogGroupWithoutRetention) ID() string { return "NZR006" }
func (r LogGroupWithoutRetention) Description() string {
	return "Log groups must declare a retention period"
}

func (r LogGroupWithoutRetention) Check(file *ast.File, fset *token.FileSet) []Issue {
	return requireField(file, fset, r.ID(), "LogGroup", "RetentionInDays",
		"LogGroup has no RetentionInDays",
		"Set RetentionInDays so logs are not kept forever", SeverityWarning)
}

// UntaggedStack detects stack declarations without any Tag call.
type UntaggedStack struct{}

func (r UntaggedStack) ID() string { return "NZR007" }
func (r UntaggedStack) Description() string {
	return "Stacks must carry project tags"
}

func (r UntaggedStack) Check(file *ast.File, fset *token.FileSet) []Issue {
	var issues []Issue

	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}

		for i, value := range spec.Values {
			if !containsCall(value, "NewStack") || containsCall(value, "Tag") {
				continue
			}
			pos := fset.Position(value.Pos())
			issues = append(issues, Issue{
				Rule:       r.ID(),
				Message:    "Stack " + spec.Names[i].Name + " declares no tags",
				Suggestion: "Chain Tag(\"Project\", ...) calls after NewStack",
				File:       pos.Filename,
				Line:       pos.Line,
				Column:     pos.Column,
				Severity:   SeverityWarning,
			})
		}
		return true
	})

	return issues
}

// requireField reports composite literals of the named type that are
// missing the named field.
func requireField(file *ast.File, fset *token.FileSet, ruleID, typeName, fieldName, message, suggestion string, severity Severity) []Issue {
	var issues []Issue

	ast.Inspect(file, func(n ast.Node) bool {
		comp, ok := n.(*ast.CompositeLit)
		if !ok || !isTypeNamed(comp.Type, typeName) {
			return true
		}

		for _, elt := range comp.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				if key, ok := kv.Key.(*ast.Ident); ok && key.Name == fieldName {
					return true
				}
			}
		}

		pos := fset.Position(comp.Pos())
		issues = append(issues, Issue{
			Rule:       ruleID,
			Message:    message,
			Suggestion: suggestion,
			File:       pos.Filename,
			Line:       pos.Line,
			Column:     pos.Column,
			Severity:   severity,
		})
		return true
	})

	return issues
}

// isTypeNamed reports whether the composite literal type is the named
// struct, with or without a package qualifier.
func isTypeNamed(expr ast.Expr, name string) bool {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name == name
	case *ast.SelectorExpr:
		return t.Sel.Name == name
	}
	return false
}

// containsCall reports whether the expression tree contains a call to a
// function or method with the given name.
func containsCall(expr ast.Expr, name string) bool {
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		switch fn := call.Fun.(type) {
		case *ast.Ident:
			if fn.Name == name {
				found = true
			}
		case *ast.SelectorExpr:
			if fn.Sel.Name == name {
				found = true
			}
		}
		return !found
	})
	return found
}
