package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fiasuz/create-fias/internal/config"
	"github.com/fiasuz/create-fias/internal/provision"
	"github.com/spf13/viper"
)

func TestBuildInput(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		template    string
		interactive bool
		wantName    string
		wantKind    provision.Kind
		wantAsk     bool
	}{
		{"name and template", []string{"my-app"}, "react", false, "my-app", provision.KindReact, false},
		{"interactive without template asks", []string{"my-app"}, "", true, "my-app", "", true},
		{"piped without template uses default", nil, "", false, "", "", false},
		{"ask forces the menu", nil, "ask", false, "", "", true},
		{"next alias", []string{"web"}, "Next.js", true, "web", provision.KindNext, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := buildInput(tt.args, tt.template, tt.interactive)
			if err != nil {
				t.Fatalf("buildInput() error: %v", err)
			}
			if in.Name != tt.wantName || in.Kind != tt.wantKind || in.AskTemplate != tt.wantAsk {
				t.Errorf("buildInput() = %+v, want name=%q kind=%q ask=%v", in, tt.wantName, tt.wantKind, tt.wantAsk)
			}
		})
	}
}

func TestBuildInput_UnknownTemplate(t *testing.T) {
	if _, err := buildInput([]string{"my-app"}, "vue", false); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestValidatePackageManager(t *testing.T) {
	for _, pm := range []string{"npm", "yarn", "pnpm", "bun"} {
		if err := validatePackageManager(pm); err != nil {
			t.Errorf("validatePackageManager(%q) error: %v", pm, err)
		}
	}
	if err := validatePackageManager("pip"); err == nil {
		t.Error("expected error for pip")
	}
}

func TestBuildOptions_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CREATE_FIAS_PACKAGE_MANAGER", "yarn")
	viper.Reset()
	t.Cleanup(viper.Reset)

	oldRepo, oldPM := createRepo, createPackageManager
	t.Cleanup(func() { createRepo, createPackageManager = oldRepo, oldPM })

	createRepo, createPackageManager = "", ""
	config.Load()
	opts, err := buildOptions()
	if err != nil {
		t.Fatalf("buildOptions() error: %v", err)
	}
	if opts.PackageManager != "yarn" {
		t.Errorf("PackageManager = %q, want yarn from env", opts.PackageManager)
	}
	if opts.RepoURL != "https://github.com/fiasuz/fias-ui.git" {
		t.Errorf("RepoURL = %q, want branding default", opts.RepoURL)
	}

	createRepo, createPackageManager = "https://example.com/t.git", "bun"
	opts, err = buildOptions()
	if err != nil {
		t.Fatalf("buildOptions() error: %v", err)
	}
	if opts.PackageManager != "bun" || opts.RepoURL != "https://example.com/t.git" {
		t.Errorf("flags should win, got %+v", opts)
	}

	createPackageManager = "pip"
	if _, err := buildOptions(); err == nil {
		t.Error("expected error for unsupported package manager")
	}
}

func TestVersionCommand(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CREATE_FIAS_TEMPLATE_REPO", "https://example.com/custom.git")
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		versionJSON = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version --json error: %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if info["version"] != "1.2.3" || info["commit"] != "abc123" {
		t.Errorf("unexpected version info: %v", info)
	}
	if info["template_repo"] != "https://example.com/custom.git" {
		t.Errorf("template_repo = %q, want env override", info["template_repo"])
	}
}

func TestVersionString(t *testing.T) {
	buildVersion, buildCommit, buildDate = "dev", "unknown", "unknown"
	if got := versionString(); !strings.HasPrefix(got, "create-fias version dev") {
		t.Errorf("versionString() = %q", got)
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"one", "two"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for two positional arguments")
	}
}
