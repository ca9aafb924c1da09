package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fiasuz/create-fias/internal/process"
)

// minGitVersion is the first git release supporting --single-branch.
const minGitVersion = "1.7.10"

// Provisioner runs the git side of provisioning through a process.Runner.
type Provisioner struct {
	Runner process.Runner
}

// New returns a Provisioner using r.
func New(r process.Runner) *Provisioner {
	return &Provisioner{Runner: r}
}

// CheckGit verifies git is installed and recent enough, returning its version.
func (p *Provisioner) CheckGit(ctx context.Context) (*semver.Version, error) {
	out, err := p.Runner.Run(ctx, process.Cmd("git", "--version"), "")
	if err != nil {
		return nil, fmt.Errorf("git is required but not available: %w", err)
	}

	v, err := ParseGitVersion(out.Stdout)
	if err != nil {
		return nil, err
	}

	c, err := semver.NewConstraint(">= " + minGitVersion)
	if err != nil {
		return nil, fmt.Errorf("parsing git constraint: %w", err)
	}
	if !c.Check(v) {
		return v, fmt.Errorf("git %s is too old: %s or newer is required", v, minGitVersion)
	}
	return v, nil
}

// ParseGitVersion extracts the version from `git --version` output such as
// "git version 2.39.3 (Apple Git-145)" or "git version 2.45.1.windows.1".
func ParseGitVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return nil, fmt.Errorf("unrecognized git version output %q", strings.TrimSpace(output))
	}

	// Keep at most major.minor.patch; vendor suffixes are not semver.
	parts := strings.SplitN(fields[2], ".", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	v, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil, fmt.Errorf("parsing git version %q: %w", fields[2], err)
	}
	return v, nil
}

// CloneArgs returns the git arguments for a shallow single-branch clone of
// src into dir.
func CloneArgs(src Source, dir string) []string {
	args := []string{"clone", "--depth=1", "--single-branch"}
	if src.Branch != "" {
		args = append(args, "--branch", src.Branch)
	}
	return append(args, src.URL, dir)
}

// Clone clones src into dir. dir may exist but must be empty.
func (p *Provisioner) Clone(ctx context.Context, src Source, dir string) error {
	if _, err := p.Runner.Run(ctx, process.Cmd("git", CloneArgs(src, dir)...), ""); err != nil {
		if src.Branch != "" {
			return fmt.Errorf("cloning %s (branch %s): %w", src.URL, src.Branch, err)
		}
		return fmt.Errorf("cloning %s: %w", src.URL, err)
	}
	return nil
}

// StripHistory removes the cloned .git directory. A missing directory is not
// an error.
func StripHistory(dir string) error {
	if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		return fmt.Errorf("removing template history: %w", err)
	}
	return nil
}

// Reinit creates a new, empty repository rooted at dir.
func (p *Provisioner) Reinit(ctx context.Context, dir string) error {
	if _, err := p.Runner.Run(ctx, process.Cmd("git", "init"), dir); err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	return nil
}

// Commit stages everything in dir and records one commit with message.
// Hooks are skipped; the template may not have its tooling installed yet.
func (p *Provisioner) Commit(ctx context.Context, dir, message string) error {
	if _, err := p.Runner.Run(ctx, process.Cmd("git", "add", "."), dir); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}
	if _, err := p.Runner.Run(ctx, process.Cmd("git", "commit", "--no-verify", "-m", message), dir); err != nil {
		return fmt.Errorf("creating commit: %w", err)
	}
	return nil
}
