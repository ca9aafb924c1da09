package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fiasuz/create-fias/internal/config"
	"github.com/fiasuz/create-fias/internal/manifest"
	"github.com/fiasuz/create-fias/internal/process"
	"github.com/fiasuz/create-fias/internal/provision"
	"github.com/spf13/cobra"
)

var (
	checkGit      bool
	checkPM       bool
	checkRemote   bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkGit, "check-git", false, "Verify git is installed and recent enough")
	doctorCmd.Flags().BoolVar(&checkPM, "check-pm", false, "Verify the configured package manager is available")
	doctorCmd.Flags().BoolVar(&checkRemote, "check-remote", false, "Verify the template repository and its branches are reachable")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment needed to create projects",
	Long:  `Run diagnostic checks on the tools and settings create-fias depends on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		checks := doctorChecks{
			Git:      checkGit,
			PM:       checkPM,
			Remote:   checkRemote,
			Manifest: checkManifest,
		}
		// If no specific flag, run the local checks.
		if !checks.any() {
			checks.Git, checks.PM = true, true
		}
		d := &doctor{
			Out:     cmd.OutOrStdout(),
			Runner:  &process.ExecRunner{},
			RepoURL: config.TemplateRepo(),
			PM:      config.PackageManager(),
		}
		if failed := d.run(cmd.Context(), checks); failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

type doctorChecks struct {
	Git      bool
	PM       bool
	Remote   bool
	Manifest string
}

func (c doctorChecks) any() bool {
	return c.Git || c.PM || c.Remote || c.Manifest != ""
}

type doctor struct {
	Out     io.Writer
	Runner  process.Runner
	RepoURL string
	PM      string
}

// run executes the selected checks and returns the number that failed.
func (d *doctor) run(ctx context.Context, c doctorChecks) int {
	failed := 0
	if c.Git && !d.checkGit(ctx) {
		failed++
	}
	if c.PM && !d.checkPackageManager(ctx) {
		failed++
	}
	if c.Remote && !d.checkRemote(ctx) {
		failed++
	}
	if c.Manifest != "" && !d.checkManifest(c.Manifest) {
		failed++
	}
	return failed
}

func (d *doctor) checkGit(ctx context.Context) bool {
	v, err := provision.New(d.Runner).CheckGit(ctx)
	if err != nil {
		fmt.Fprintf(d.Out, "  [FAIL] git: %v\n", err)
		return false
	}
	fmt.Fprintf(d.Out, "  [ OK ] git %s\n", v)
	return true
}

func (d *doctor) checkPackageManager(ctx context.Context) bool {
	if err := validatePackageManager(d.PM); err != nil {
		fmt.Fprintf(d.Out, "  [FAIL] %v\n", err)
		return false
	}
	out, err := d.Runner.Run(ctx, process.Cmd(d.PM, "--version"), "")
	if err != nil {
		fmt.Fprintf(d.Out, "  [MISS] %s not found: %v\n", d.PM, err)
		return false
	}
	fmt.Fprintf(d.Out, "  [ OK ] %s %s\n", d.PM, strings.TrimSpace(out.Stdout))
	return true
}

// checkRemote lists the template repository heads and reports any
// template branch that is missing.
func (d *doctor) checkRemote(ctx context.Context) bool {
	var branches []string
	for _, c := range provision.Choices {
		branches = append(branches, c.Kind.Branch())
	}
	args := append([]string{"ls-remote", "--heads", d.RepoURL}, branches...)
	out, err := d.Runner.Run(ctx, process.Cmd("git", args...), "")
	if err != nil {
		fmt.Fprintf(d.Out, "  [FAIL] %s unreachable: %v\n", d.RepoURL, err)
		return false
	}

	ok := true
	for _, b := range branches {
		if !strings.Contains(out.Stdout, "refs/heads/"+b) {
			fmt.Fprintf(d.Out, "  [MISS] branch %s not found in %s\n", b, d.RepoURL)
			ok = false
		}
	}
	if ok {
		fmt.Fprintf(d.Out, "  [ OK ] %s (%s)\n", d.RepoURL, strings.Join(branches, ", "))
	}
	return ok
}

func (d *doctor) checkManifest(path string) bool {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(d.Out, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	if result.Valid {
		fmt.Fprintf(d.Out, "  [ OK ] %s is valid\n", path)
		return true
	}
	fmt.Fprintf(d.Out, "  [WARN] %s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(d.Out, "    - %s\n", issue)
	}
	return true
}
