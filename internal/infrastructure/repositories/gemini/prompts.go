package gemini

import (
	"strings"
	"text/template"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

const repositoryPromptText = `- You are an expert infrastructure as code programmer, specializing in Terraform.
- Your job is to judge the quality of the Terraform code and provide feedback to the author.
- Judge the code against the official Terraform Style Guide supplied below and assign a
  score out of 10 to every provided file.
- Only hold the submission to the parts of the style guide it actually uses.
- When you know how to fix an issue, start the suggestion with the file name and line
  number and quote the offending code in an hcl fenced block.
- If you are not 90% confident in a suggestion, leave it out.
- The total score is the sum of the file scores divided by the number of files.

Owner: {{ .Owner }}
Name: {{ .Name }}
Full Name: {{ .FullName }}

Official Terraform Style Guide:
{{ .StyleGuide }}

Static analysis findings:
{{- range .Analysis.Files }}
- {{ .Path }}:{{ if .Missing }} content unavailable{{ else }} formatted={{ .Formatted }}, resources={{ .Resources }}, variables={{ .Variables }}, outputs={{ .Outputs }}, modules={{ .Modules }}{{ end }}
{{- range .ParseErrors }}
  - parse error: {{ . }}
{{- end }}
{{- if .UndocumentedVariables }}
  - variables without description: {{ join .UndocumentedVariables }}
{{- end }}
{{- if .UndocumentedOutputs }}
  - outputs without description: {{ join .UndocumentedOutputs }}
{{- end }}
{{- if .UnpinnedModules }}
  - modules without a pinned version: {{ join .UnpinnedModules }}
{{- end }}
{{- end }}

Terraform Files:
{{- range .Files }}

### {{ .Path }}
` + "```hcl" + `
{{ .Content }}
` + "```" + `
{{- end }}

Your report must be Markdown in the following format:

# IaC Repository Report
- **Owner:** {{ .Owner }}
- **Repository:** {{ .Name }}
- **Terraform Files:**
{{- range .Files }}
    - ` + "`{{ .Path }}`" + `
{{- end }}

## Feedback
- ### <FILE NAME>
    - **Feedback:**
      - <FEEDBACK>
    - **Score:** <SCORE>
    - **Suggestion:**
        - Current implementation
          ` + "```hcl" + `
          <EXISTING CODE>
          ` + "```" + `
          Suggested implementation
          ` + "```hcl" + `
          <SUGGESTED CODE>
          ` + "```" + `

Total Score
- **Total Score:** <TOTAL SCORE>/10
`

const summaryPromptText = `- You are an expert infrastructure as code programmer, specializing in Terraform.
- Your job is to summarize all of the provided reports.
- Include a single sentence per report with the name of the repository and its score.
- Your report must be Markdown.

Repository Summary Quality Reports:
{{- range .Reports }}

---
{{ .Content }}
{{- end }}

Your report must be in the following format:
# Engineer Summary Report
- **GitHub User:** {{ .Owner }}
- **Repositories Analysed**
    - <LIST OF REPOSITORIES>

### Summary
- **<REPOSITORY NAME>**
    - **Summary:** <SUMMARY>
    - **Score:** <SCORE>

**Total Score:** <TOTAL SCORE>/10
`

var funcs = template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}

var (
	repositoryPrompt = template.Must(template.New("repository").Funcs(funcs).Parse(repositoryPromptText))
	summaryPrompt    = template.Must(template.New("summary").Funcs(funcs).Parse(summaryPromptText))
)

func renderRepositoryPrompt(input entities.RepositoryReportInput) (string, error) {
	var sb strings.Builder
	if err := repositoryPrompt.Execute(&sb, input); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderSummaryPrompt(input entities.UserSummaryInput) (string, error) {
	var sb strings.Builder
	if err := summaryPrompt.Execute(&sb, input); err != nil {
		return "", err
	}
	return sb.String(), nil
}
