package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxRepos           = 3
	DefaultMaxFilesPerRepo    = 5
	DefaultMaxDepthPerRepo    = 3
	DefaultMaxContentsPerRepo = 5
	DefaultLanguage           = "HCL"
	DefaultExtension          = ".tf"
	DefaultMaxResolveAttempts = 5
	DefaultReportsDir         = "reports"
	DefaultStyleGuidePath     = "static/hcl_style_guide.md"
)

// Settings is the immutable configuration of a single run. It is loaded once and
// passed explicitly to every command and service.
type Settings struct {
	GitHub      GitHubSettings   `yaml:"github"`
	Limits      Limits           `yaml:"limits"`
	Language    string           `yaml:"language"`
	Extension   string           `yaml:"extension"`
	Concurrency int              `yaml:"concurrency"`
	Resolver    ResolverSettings `yaml:"resolver"`
	LLM         LLMSettings      `yaml:"llm"`
	Reports     ReportSettings   `yaml:"reports"`
	Debug       bool             `yaml:"debug"`
}

// GitHubSettings configures the hosting API client.
type GitHubSettings struct {
	Type              string  `yaml:"type"`  // only "github" is registered
	Token             string  `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	BaseURL           string  `yaml:"base_url"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	PerPage           int     `yaml:"per_page"`
}

// Limits bounds the crawl of an account.
type Limits struct {
	MaxRepos           int `yaml:"max_repos"`
	MaxFilesPerRepo    int `yaml:"max_files_per_repo"`
	MaxDepthPerRepo    int `yaml:"max_depth_per_repo"`
	MaxContentsPerRepo int `yaml:"max_contents_per_repo"`
}

// ResolverSettings configures the name-to-username search.
type ResolverSettings struct {
	MaxAttempts int    `yaml:"max_attempts"`
	Company     string `yaml:"company"`
}

// LLMSettings selects and configures the report generator.
type LLMSettings struct {
	Provider        string `yaml:"provider"` // "gemini" or "static"
	APIKey          string `yaml:"api_key"`
	RepositoryModel string `yaml:"repository_model"`
	SummaryModel    string `yaml:"summary_model"`
}

// ReportSettings controls where the style guide is read from and reports are written to.
type ReportSettings struct {
	Dir        string `yaml:"dir"`
	StyleGuide string `yaml:"style_guide"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file overrides them.
func DefaultSettings() Settings {
	return Settings{
		GitHub: GitHubSettings{
			Type:              "github",
			Token:             "${GH_PAT}",
			RequestsPerSecond: 5,
			PerPage:           100,
		},
		Limits: Limits{
			MaxRepos:           DefaultMaxRepos,
			MaxFilesPerRepo:    DefaultMaxFilesPerRepo,
			MaxDepthPerRepo:    DefaultMaxDepthPerRepo,
			MaxContentsPerRepo: DefaultMaxContentsPerRepo,
		},
		Language:    DefaultLanguage,
		Extension:   DefaultExtension,
		Concurrency: 1,
		Resolver: ResolverSettings{
			MaxAttempts: DefaultMaxResolveAttempts,
		},
		LLM: LLMSettings{
			Provider:        "gemini",
			APIKey:          "${GEMINI_API_KEY}",
			RepositoryModel: "gemini-2.5-pro",
			SummaryModel:    "gemini-2.5-flash",
		},
		Reports: ReportSettings{
			Dir:        DefaultReportsDir,
			StyleGuide: DefaultStyleGuidePath,
		},
	}
}

// NewSettings builds the settings of a run. When path is empty the defaults are used,
// otherwise the file is layered on top of them. Secrets are resolved and the result validated.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	settings.GitHub.Token = ResolveToken(settings.GitHub.Token)
	settings.LLM.APIKey = ResolveToken(settings.LLM.APIKey)
	if settings.Concurrency < 1 {
		settings.Concurrency = 1
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".iacreport.yaml",
		".iacreport.yml",
		"iacreport.yaml",
		"iacreport.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Debugf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// Validate checks that every limit and required value is usable.
func (s Settings) Validate() error {
	if s.Limits.MaxRepos <= 0 {
		return fmt.Errorf("limits.max_repos must be positive, got %d", s.Limits.MaxRepos)
	}
	if s.Limits.MaxFilesPerRepo <= 0 {
		return fmt.Errorf("limits.max_files_per_repo must be positive, got %d", s.Limits.MaxFilesPerRepo)
	}
	if s.Limits.MaxDepthPerRepo < 0 {
		return fmt.Errorf("limits.max_depth_per_repo must not be negative, got %d", s.Limits.MaxDepthPerRepo)
	}
	if s.Limits.MaxContentsPerRepo < 0 {
		return fmt.Errorf(
			"limits.max_contents_per_repo must not be negative, got %d",
			s.Limits.MaxContentsPerRepo,
		)
	}
	if s.Language == "" {
		return errors.New("language is required")
	}
	if s.Extension == "" {
		return errors.New("extension is required")
	}
	if s.Resolver.MaxAttempts <= 0 {
		return fmt.Errorf("resolver.max_attempts must be positive, got %d", s.Resolver.MaxAttempts)
	}
	return nil
}

// WithLimits returns a copy of the settings with the overrides applied. A zero
// MaxRepos or MaxFilesPerRepo and a negative MaxDepthPerRepo or MaxContentsPerRepo
// mean "not set" and leave the current value untouched.
func (s Settings) WithLimits(overrides Limits) Settings {
	if overrides.MaxRepos > 0 {
		s.Limits.MaxRepos = overrides.MaxRepos
	}
	if overrides.MaxFilesPerRepo > 0 {
		s.Limits.MaxFilesPerRepo = overrides.MaxFilesPerRepo
	}
	if overrides.MaxDepthPerRepo >= 0 {
		s.Limits.MaxDepthPerRepo = overrides.MaxDepthPerRepo
	}
	if overrides.MaxContentsPerRepo >= 0 {
		s.Limits.MaxContentsPerRepo = overrides.MaxContentsPerRepo
	}
	return s
}
