package static

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"join":  func(items []string) string { return strings.Join(items, ", ") },
	"score": formatScore,
}

const repositoryTemplateText = `# IaC Repository Report
- **Owner:** {{ .Owner }}
- **Repository:** {{ .Name }}
- **Terraform Files:**
{{- range .Files }}
    - ` + "`{{ .Path }}`" + `
{{- end }}

## Feedback
{{- range .Files }}
- ### {{ .Path }}
    - **Feedback:**
{{- if .Missing }}
      - The file content could not be fetched.
{{- end }}
{{- range .ParseErrors }}
      - Parse error: {{ . }}
{{- end }}
{{- if and (not .Missing) (not .ParseErrors) (not .Formatted) }}
      - The file is not formatted with ` + "`terraform fmt`" + `.
{{- end }}
{{- if .UndocumentedVariables }}
      - Variables without a description: {{ join .UndocumentedVariables }}.
{{- end }}
{{- if .UndocumentedOutputs }}
      - Outputs without a description: {{ join .UndocumentedOutputs }}.
{{- end }}
{{- if .UnpinnedModules }}
      - Modules without a pinned version: {{ join .UnpinnedModules }}.
{{- end }}
{{- if not .HasFindings }}
      - No issues found by static analysis.
{{- end }}
    - **Score:** {{ score .Score }}
{{- end }}

Total Score
- **Total Score:** {{ score .Total }}/10
`

const summaryTemplateText = `# Engineer Summary Report
- **GitHub User:** {{ .Owner }}
- **Repositories Analysed**
{{- range .Lines }}
    - {{ .Name }}
{{- end }}

### Summary
{{- range .Lines }}
- **{{ .Name }}**
    - **Score:** {{ .Score }}
{{- end }}

**Total Score:** {{ .Total }}/10
`
