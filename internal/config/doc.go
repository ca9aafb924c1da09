// Package config manages user-level settings stored at ~/.create-fias/config.yaml.
// It resolves the template repository URL, the package manager used for
// dependency installation, and the initial commit message, falling back to
// the branding defaults when nothing is configured.
package config
