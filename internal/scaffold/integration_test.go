//go:build integration

package scaffold

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fiasuz/create-fias/internal/console"
	"github.com/fiasuz/create-fias/internal/process"
	"github.com/fiasuz/create-fias/internal/provision"
)

// git runs a git command in dir and fails the test on error.
func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// setupTemplateRepo creates a local repository with templ-next and
// templ-react branches and returns its file:// URL.
func setupTemplateRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available, skipping")
	}

	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	repo := t.TempDir()
	git(t, repo, "init")
	git(t, repo, "checkout", "-b", "templ-next")
	writeFile(t, filepath.Join(repo, "package.json"), `{"name":"fias-ui","version":"0.1.0","scripts":{"dev":"next dev"}}`)
	writeFile(t, filepath.Join(repo, "next.config.mjs"), "export default {}\n")
	git(t, repo, "add", ".")
	git(t, repo, "commit", "-m", "next template")

	git(t, repo, "checkout", "-b", "templ-react")
	git(t, repo, "rm", "-q", "next.config.mjs")
	writeFile(t, filepath.Join(repo, "vite.config.ts"), "export default {}\n")
	git(t, repo, "add", ".")
	git(t, repo, "commit", "-m", "react template")

	return "file://" + filepath.ToSlash(repo)
}

func newRealScaffolder(t *testing.T, repoURL string) (*Scaffolder, string) {
	t.Helper()
	base := t.TempDir()
	var out bytes.Buffer
	runner := &process.ExecRunner{Stdout: &out, Stderr: &out}
	s := New(runner, &console.Reporter{Out: &out, Err: &out}, nil, Options{
		RepoURL:       repoURL,
		CommitMessage: "init create-fias",
		BaseDir:       base,
		SkipInstall:   true,
	})
	return s, base
}

func TestIntegration_ReactTemplate(t *testing.T) {
	repoURL := setupTemplateRepo(t)
	s, base := newRealScaffolder(t, repoURL)

	res, err := s.Run(context.Background(), Request{Name: "my-app", Kind: provision.KindReact})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	dir := filepath.Join(base, "my-app")
	if _, err := os.Stat(filepath.Join(dir, "vite.config.ts")); err != nil {
		t.Errorf("expected react template file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "next.config.mjs")); !os.IsNotExist(err) {
		t.Errorf("next template file should not be present")
	}

	if !res.Committed {
		t.Fatalf("expected an initial commit, warnings: %v", res.Warnings)
	}
	log := git(t, dir, "log", "--oneline")
	if n := len(strings.Split(strings.TrimSpace(log), "\n")); n != 1 {
		t.Errorf("expected exactly one commit, got %d:\n%s", n, log)
	}
	if !strings.Contains(log, "init create-fias") {
		t.Errorf("unexpected commit log: %s", log)
	}

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name": "my-app"`) {
		t.Errorf("package.json not patched:\n%s", data)
	}
}

func TestIntegration_UnreachableRepoRollsBack(t *testing.T) {
	setupTemplateRepo(t)
	s, base := newRealScaffolder(t, "file://"+filepath.ToSlash(filepath.Join(t.TempDir(), "missing")))

	_, err := s.Run(context.Background(), Request{Name: "my-app", Kind: provision.KindNext})
	if !errors.Is(err, ErrProvisioning) {
		t.Fatalf("Run() error = %v, want ErrProvisioning", err)
	}
	if _, err := os.Stat(filepath.Join(base, "my-app")); !os.IsNotExist(err) {
		t.Errorf("target directory should not exist after failed clone")
	}
}
