package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fiasuz/create-fias/internal/config"
	"github.com/fiasuz/create-fias/internal/console"
	"github.com/fiasuz/create-fias/internal/process"
	"github.com/fiasuz/create-fias/internal/prompt"
	"github.com/fiasuz/create-fias/internal/provision"
	"github.com/fiasuz/create-fias/internal/scaffold"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// templateAsk forces the template menu even when stdin is not a terminal.
const templateAsk = "ask"

var packageManagers = []string{"npm", "yarn", "pnpm", "bun"}

var (
	createTemplate       string
	createPackageManager string
	createRepo           string
	createSkipInstall    bool
	createVerbose        bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&createTemplate, "template", "t", "", "Template to use: next, react, or ask (default: ask when interactive)")
	f.StringVar(&createPackageManager, "package-manager", "", "Package manager for installing dependencies: "+strings.Join(packageManagers, ", "))
	f.StringVar(&createRepo, "repo", "", "Template repository URL (overrides config)")
	f.BoolVar(&createSkipInstall, "skip-install", false, "Do not install dependencies")
	f.BoolVarP(&createVerbose, "verbose", "v", false, "Print debug logs to stderr")
}

func runCreate(cmd *cobra.Command, args []string) error {
	config.Load()

	log, err := newLogger(createVerbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	in, err := buildInput(args, createTemplate, prompt.IsTerminal(os.Stdin))
	if err != nil {
		return err
	}
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	rep := &console.Reporter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	runner := &process.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr(), Log: log}
	s := scaffold.New(runner, rep, log, opts)

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	req, err := scaffold.ResolveRequest(in, p)
	if err != nil {
		s.ReportFailure(req, err)
		return reportedError{err}
	}
	log.Debug("request resolved", zap.String("name", req.Name), zap.String("template", string(req.Kind)))

	res, err := s.Run(cmd.Context(), req)
	if err != nil {
		return reportedError{err}
	}

	s.PrintSummary(res)
	return nil
}

// buildInput converts arguments and the --template flag into scaffold input.
func buildInput(args []string, template string, interactive bool) (scaffold.Input, error) {
	var in scaffold.Input
	if len(args) > 0 {
		in.Name = args[0]
	}

	switch strings.ToLower(strings.TrimSpace(template)) {
	case "":
		in.AskTemplate = interactive
	case templateAsk:
		in.AskTemplate = true
	default:
		kind, err := provision.ParseKind(template)
		if err != nil {
			return in, err
		}
		in.Kind = kind
	}
	return in, nil
}

// buildOptions merges flags over configuration.
func buildOptions() (scaffold.Options, error) {
	opts := scaffold.Options{
		RepoURL:        config.TemplateRepo(),
		PackageManager: config.PackageManager(),
		CommitMessage:  config.CommitMessage(),
		SkipInstall:    createSkipInstall,
	}
	if createRepo != "" {
		opts.RepoURL = createRepo
	}
	if createPackageManager != "" {
		opts.PackageManager = createPackageManager
	}
	if err := validatePackageManager(opts.PackageManager); err != nil {
		return opts, err
	}
	return opts, nil
}

func validatePackageManager(pm string) error {
	for _, known := range packageManagers {
		if pm == known {
			return nil
		}
	}
	return fmt.Errorf("unsupported package manager %q: choose one of %s", pm, strings.Join(packageManagers, ", "))
}

// newLogger returns a debug logger on stderr when verbose, otherwise a no-op.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
