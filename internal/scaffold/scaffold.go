package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fiasuz/create-fias/internal/console"
	"github.com/fiasuz/create-fias/internal/manifest"
	"github.com/fiasuz/create-fias/internal/process"
	"github.com/fiasuz/create-fias/internal/provision"
	"github.com/fiasuz/create-fias/internal/workspace"
	"go.uber.org/zap"
)

// Request is the resolved input of one run. It is built once and passed by
// value; nothing mutates it afterwards.
type Request struct {
	Name string
	Kind provision.Kind
}

// Options configures a Scaffolder.
type Options struct {
	RepoURL        string
	PackageManager string
	CommitMessage  string
	// BaseDir is where the project directory is created; empty means the
	// current working directory.
	BaseDir     string
	SkipInstall bool
}

// Result describes a finished run.
type Result struct {
	Request          Request
	Dir              string
	Stage            Stage
	Committed        bool
	GitignoreWritten bool
	Files            int
	Warnings         []string
}

// Scaffolder executes the pipeline. Runner is the only way it reaches git and
// the package manager.
type Scaffolder struct {
	Runner   process.Runner
	Reporter *console.Reporter
	Log      *zap.Logger
	Options  Options
}

// New returns a Scaffolder with the given collaborators.
func New(runner process.Runner, rep *console.Reporter, log *zap.Logger, opts Options) *Scaffolder {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PackageManager == "" {
		opts.PackageManager = "npm"
	}
	return &Scaffolder{Runner: runner, Reporter: rep, Log: log, Options: opts}
}

// run carries the mutable bookkeeping of a single Run call.
type run struct {
	s        *Scaffolder
	req      Request
	result   *Result
	reserved bool
}

func (r *run) enter(stage Stage) {
	r.result.Stage = stage
	r.s.Log.Debug("state transition", zap.Stringer("stage", stage), zap.String("project", r.req.Name))
}

// fail records and reports the failure, then rolls back when this run
// created the directory.
func (r *run) fail(err *StepError) (*Result, error) {
	r.s.Log.Debug("step failed", zap.Stringer("stage", err.Stage), zap.Error(err))
	r.result.Stage = StageFailed
	r.s.ReportFailure(r.req, err)
	if r.reserved {
		r.s.Rollback(r.result.Dir)
	}
	return r.result, err
}

// Run takes req from NameResolved to Done. On failure the returned Result
// has Stage == StageFailed and the error is a *StepError.
func (s *Scaffolder) Run(ctx context.Context, req Request) (*Result, error) {
	r := &run{s: s, req: req, result: &Result{Request: req, Stage: StageIdle}}

	if strings.TrimSpace(req.Name) == "" {
		return r.fail(stepErr(StageNameResolved, ErrUserInput, nil))
	}
	r.enter(StageNameResolved)

	target, err := workspace.Resolve(s.Options.BaseDir, req.Name)
	if err != nil {
		return r.fail(stepErr(StageDirectoryReserved, ErrProvisioning, err))
	}
	r.result.Dir = target

	prov := provision.New(s.Runner)
	if _, err := prov.CheckGit(ctx); err != nil {
		return r.fail(stepErr(StageDirectoryReserved, ErrGit, err))
	}

	if err := workspace.Reserve(target); err != nil {
		if errors.Is(err, workspace.ErrExists) {
			return r.fail(stepErr(StageDirectoryReserved, ErrAlreadyExists, errors.New(target)))
		}
		return r.fail(stepErr(StageDirectoryReserved, ErrProvisioning, err))
	}
	r.reserved = true
	r.enter(StageDirectoryReserved)

	s.Reporter.Info(fmt.Sprintf("Generating %s project...", req.Kind.DisplayName()))
	sp := s.Reporter.Spinner("Copying files...")
	serr := r.provisionTemplate(ctx, prov, target)
	sp.Stop()
	if serr != nil {
		return r.fail(serr)
	}
	if r.result.GitignoreWritten {
		s.Reporter.Success(".gitignore file created")
	}

	if err := s.patchManifest(target, req.Name, r.result); err != nil {
		return r.fail(stepErr(StageManifestPatched, ErrManifest, err))
	}
	r.enter(StageManifestPatched)
	s.Reporter.Success(manifest.FileName + " updated")

	if s.Options.SkipInstall {
		s.Log.Debug("dependency installation skipped")
	} else {
		s.Reporter.Info("\nInstalling packages...")
		install := process.Command{Name: s.Options.PackageManager, Args: []string{"install"}, Stream: true}
		if _, err := s.Runner.Run(ctx, install, target); err != nil {
			return r.fail(stepErr(StageDependenciesInstalled, ErrInstall, err))
		}
	}
	r.enter(StageDependenciesInstalled)

	if err := prov.Commit(ctx, target, s.commitMessage()); err != nil {
		msg := "There's a problem creating Git commit: " + err.Error()
		s.Reporter.Warning(msg)
		r.result.Warnings = append(r.result.Warnings, msg)
	} else {
		r.result.Committed = true
	}
	r.enter(StageCommitted)

	if n, err := workspace.CountFiles(target); err == nil {
		r.result.Files = n
	} else {
		s.Log.Debug("counting files failed", zap.Error(err))
	}
	r.enter(StageDone)
	return r.result, nil
}

// provisionTemplate clones the template into target, strips its history,
// reinitializes git, and ensures a .gitignore.
func (r *run) provisionTemplate(ctx context.Context, prov *provision.Provisioner, target string) *StepError {
	src := provision.SourceFor(r.req.Kind, r.s.Options.RepoURL)
	if err := prov.Clone(ctx, src, target); err != nil {
		return stepErr(StageTemplateProvisioned, ErrProvisioning, err)
	}
	r.enter(StageTemplateProvisioned)

	if err := provision.StripHistory(target); err != nil {
		return stepErr(StageGitReinitialized, ErrGit, err)
	}
	if err := prov.Reinit(ctx, target); err != nil {
		return stepErr(StageGitReinitialized, ErrGit, err)
	}
	wrote, err := provision.EnsureGitignore(target)
	if err != nil {
		return stepErr(StageGitReinitialized, ErrGit, err)
	}
	r.result.GitignoreWritten = wrote
	r.enter(StageGitReinitialized)
	return nil
}

// patchManifest rewrites the name field and collects schema warnings.
func (s *Scaffolder) patchManifest(target, name string, result *Result) error {
	path := manifest.Path(target)
	if err := manifest.PatchName(path, name); err != nil {
		return err
	}

	vr, err := manifest.ValidateFile(path)
	if err != nil {
		s.Log.Debug("manifest validation unavailable", zap.Error(err))
		return nil
	}
	for _, issue := range vr.Issues {
		msg := manifest.FileName + " " + issue.String()
		s.Reporter.Warning(msg)
		result.Warnings = append(result.Warnings, msg)
	}
	return nil
}

func (s *Scaffolder) commitMessage() string {
	if s.Options.CommitMessage != "" {
		return s.Options.CommitMessage
	}
	return "init create-fias"
}

// Rollback removes dir. It is safe to call on a path that is already gone.
func (s *Scaffolder) Rollback(dir string) {
	if dir == "" {
		return
	}
	removed, err := workspace.Cleanup(dir)
	if err != nil {
		s.Log.Debug("rollback failed", zap.String("dir", dir), zap.Error(err))
		s.Reporter.Warning(fmt.Sprintf("Could not delete %s: %v", dir, err))
		return
	}
	if removed {
		s.Reporter.Info("The created files have been deleted")
	}
}

// PromptSource supplies answers for values missing from the command line.
type PromptSource interface {
	ProjectName() (string, error)
	Template() (provision.Kind, error)
}

// Input is what the command line provided before prompting.
type Input struct {
	Name string
	// Kind is the template from flags; empty means not given.
	Kind provision.Kind
	// AskTemplate enables the template menu when Kind is empty.
	AskTemplate bool
}

// ResolveRequest moves from Idle to NameResolved: it fills a missing name or
// template from p (which may be nil when not interactive) and returns the
// immutable Request.
func ResolveRequest(in Input, p PromptSource) (Request, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" && p != nil {
		answer, err := p.ProjectName()
		if err != nil {
			return Request{}, stepErr(StageNameResolved, ErrUserInput, err)
		}
		name = strings.TrimSpace(answer)
	}
	if name == "" {
		return Request{}, stepErr(StageNameResolved, ErrUserInput, nil)
	}

	kind := in.Kind
	if kind == "" && in.AskTemplate && p != nil {
		k, err := p.Template()
		if err != nil {
			return Request{}, stepErr(StageNameResolved, ErrUserInput, err)
		}
		kind = k
	}
	if kind == "" {
		kind = provision.KindDefault
	}

	return Request{Name: name, Kind: kind}, nil
}
