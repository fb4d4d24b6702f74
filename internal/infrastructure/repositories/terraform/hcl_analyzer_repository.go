package terraform

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// refPattern extracts the ?ref= of a Git module source.
var refPattern = regexp.MustCompile(`[?&]ref=([^&\s"]+)`)

// AnalyzerRepository implements repositories.AnalyzerRepository for Terraform files.
type AnalyzerRepository struct{}

// NewAnalyzerRepository creates a Terraform analyzer.
func NewAnalyzerRepository() repositories.AnalyzerRepository {
	return &AnalyzerRepository{}
}

// AnalyzeFile parses content as HCL native syntax and collects block counts and
// style findings: parse errors, `terraform fmt` formatting, undocumented variables
// and outputs, and remote modules without a pinned version.
func (it *AnalyzerRepository) AnalyzeFile(path, content string) entities.FileAnalysis {
	analysis := entities.FileAnalysis{Path: path}
	if content == "" {
		analysis.Missing = true
		return analysis
	}

	src := []byte(content)
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		for _, diag := range diags.Errs() {
			analysis.ParseErrors = append(analysis.ParseErrors, diag.Error())
		}
		return analysis
	}

	analysis.Formatted = bytes.Equal(hclwrite.Format(src), src)

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return analysis
	}

	for _, block := range body.Blocks {
		switch block.Type {
		case "resource":
			analysis.Resources++
		case "data":
			analysis.DataSources++
		case "provider":
			analysis.Providers++
		case "variable":
			analysis.Variables++
			if !hasAttribute(block, "description") {
				analysis.UndocumentedVariables = append(analysis.UndocumentedVariables, label(block))
			}
		case "output":
			analysis.Outputs++
			if !hasAttribute(block, "description") {
				analysis.UndocumentedOutputs = append(analysis.UndocumentedOutputs, label(block))
			}
		case "module":
			analysis.Modules++
			if !isPinned(block) {
				analysis.UnpinnedModules = append(analysis.UnpinnedModules, label(block))
			}
		}
	}

	return analysis
}

func hasAttribute(block *hclsyntax.Block, name string) bool {
	_, ok := block.Body.Attributes[name]
	return ok
}

func label(block *hclsyntax.Block) string {
	if len(block.Labels) == 0 {
		return ""
	}
	return block.Labels[0]
}

// isPinned reports whether a module refers to an exact version. Local modules are
// always pinned; Git modules need a semver ?ref=; registry modules a semver version.
func isPinned(block *hclsyntax.Block) bool {
	source, ok := stringAttribute(block, "source")
	if !ok {
		return false
	}
	if isLocalModule(source) {
		return true
	}
	if isGitModule(source) {
		matches := refPattern.FindStringSubmatch(source)
		return len(matches) > 1 && isExactVersion(matches[1])
	}

	version, ok := stringAttribute(block, "version")
	return ok && isExactVersion(version)
}

func stringAttribute(block *hclsyntax.Block, name string) (string, bool) {
	attr, ok := block.Body.Attributes[name]
	if !ok {
		return "", false
	}
	value, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() || value.IsNull() || !value.IsKnown() || value.Type() != cty.String {
		return "", false
	}
	return value.AsString(), true
}

func isLocalModule(source string) bool {
	return strings.HasPrefix(source, "./") || strings.HasPrefix(source, "../")
}

func isGitModule(source string) bool {
	return strings.HasPrefix(source, "git::") ||
		strings.HasPrefix(source, "git@") ||
		strings.HasPrefix(source, "github.com/") ||
		strings.HasPrefix(source, "bitbucket.org/")
}

// isExactVersion accepts "1.2.3" and "v1.2.3" but not constraints like "~> 1.2".
func isExactVersion(version string) bool {
	version = strings.TrimSpace(version)
	if version == "" {
		return false
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return semver.IsValid(version) && semver.Canonical(version) == strings.SplitN(version, "+", 2)[0]
}
