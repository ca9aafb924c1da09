// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	GitHubRepo      string `yaml:"github_repo"`
	TemplateRepoURL string `yaml:"template_repo_url"`
	CommitMessage   string `yaml:"commit_message"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:         "create-fias",
			DisplayName:     "create-fias",
			Description:     "Scaffold a new project from the fias-ui templates",
			HomeDir:         ".create-fias",
			EnvPrefix:       "CREATE_FIAS",
			GitHubRepo:      "fiasuz/create-fias",
			TemplateRepoURL: "https://github.com/fiasuz/fias-ui.git",
			CommitMessage:   "init create-fias",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-fias").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-fias").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_FIAS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string of the CLI itself.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// TemplateRepoURL returns the git URL the project templates are cloned from.
func TemplateRepoURL() string { load(); return defaults.TemplateRepoURL }

// CommitMessage returns the message of the initial commit in new projects.
func CommitMessage() string { load(); return defaults.CommitMessage }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REPO") → "CREATE_FIAS_REPO".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
