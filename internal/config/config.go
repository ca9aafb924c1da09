package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fiasuz/create-fias/internal/branding"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
	envFile  = ".env"
)

// Recognized configuration keys.
const (
	KeyTemplateRepo   = "template_repo"
	KeyPackageManager = "package_manager"
	KeyCommitMessage  = "commit_message"
)

// DefaultPackageManager is used when package_manager is not configured.
const DefaultPackageManager = "npm"

// Keys lists every key accepted by Set.
var Keys = []string{KeyTemplateRepo, KeyPackageManager, KeyCommitMessage}

// Dir returns the path to the config directory (~/.create-fias/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-fias/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Variables from ~/.create-fias/.env are exported first so they take part in
// the environment lookup; variables already set in the process win.
func Load() {
	_ = godotenv.Load(filepath.Join(Dir(), envFile))

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// TemplateRepo returns the template repository URL.
func TemplateRepo() string {
	if v := Get(KeyTemplateRepo); v != "" {
		return v
	}
	return branding.TemplateRepoURL()
}

// PackageManager returns the package manager binary used for installs.
func PackageManager() string {
	if v := Get(KeyPackageManager); v != "" {
		return v
	}
	return DefaultPackageManager
}

// CommitMessage returns the message for the initial project commit.
func CommitMessage() string {
	if v := Get(KeyCommitMessage); v != "" {
		return v
	}
	return branding.CommitMessage()
}
