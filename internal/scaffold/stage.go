package scaffold

import (
	"errors"
	"fmt"
)

// Stage is a state of the scaffolding pipeline.
type Stage int

// Pipeline states in execution order. StageFailed is terminal and reachable
// from every state before StageDone.
const (
	StageIdle Stage = iota
	StageNameResolved
	StageDirectoryReserved
	StageTemplateProvisioned
	StageGitReinitialized
	StageManifestPatched
	StageDependenciesInstalled
	StageCommitted
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageIdle:                  "Idle",
	StageNameResolved:          "NameResolved",
	StageDirectoryReserved:     "DirectoryReserved",
	StageTemplateProvisioned:   "TemplateProvisioned",
	StageGitReinitialized:      "GitReinitialized",
	StageManifestPatched:       "ManifestPatched",
	StageDependenciesInstalled: "DependenciesInstalled",
	StageCommitted:             "Committed",
	StageDone:                  "Done",
	StageFailed:                "Failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Error kinds. A *StepError wraps exactly one of these.
var (
	ErrUserInput     = errors.New("project name is required")
	ErrAlreadyExists = errors.New("project directory already exists")
	ErrProvisioning  = errors.New("error creating project")
	ErrGit           = errors.New("error in git setup")
	ErrManifest      = errors.New("error updating package.json")
	ErrInstall       = errors.New("error installing packages")
)

// StepError reports a fatal failure while moving to Stage.
type StepError struct {
	Stage Stage
	Kind  error
	Err   error
}

func (e *StepError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *StepError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func stepErr(stage Stage, kind, err error) *StepError {
	return &StepError{Stage: stage, Kind: kind, Err: err}
}
