package entities

// FileAnalysis holds the static findings for one Terraform file.
type FileAnalysis struct {
	Path                  string   `yaml:"path"`
	Missing               bool     `yaml:"missing,omitempty"` // content could not be fetched
	ParseErrors           []string `yaml:"parse_errors,omitempty"`
	Formatted             bool     `yaml:"formatted"`
	Resources             int      `yaml:"resources"`
	DataSources           int      `yaml:"data_sources"`
	Variables             int      `yaml:"variables"`
	Outputs               int      `yaml:"outputs"`
	Modules               int      `yaml:"modules"`
	Providers             int      `yaml:"providers"`
	UndocumentedVariables []string `yaml:"undocumented_variables,omitempty"`
	UndocumentedOutputs   []string `yaml:"undocumented_outputs,omitempty"`
	UnpinnedModules       []string `yaml:"unpinned_modules,omitempty"`
}

// HasFindings reports whether the file deviates from the checked conventions.
func (a FileAnalysis) HasFindings() bool {
	return a.Missing || len(a.ParseErrors) > 0 || !a.Formatted ||
		len(a.UndocumentedVariables) > 0 || len(a.UndocumentedOutputs) > 0 ||
		len(a.UnpinnedModules) > 0
}

// RepositoryAnalysis groups the file findings of one repository.
type RepositoryAnalysis struct {
	FullName string         `yaml:"full_name"`
	Files    []FileAnalysis `yaml:"files"`
}
