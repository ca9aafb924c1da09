// Package cli defines the Cobra command tree for the create-fias CLI. The
// root command scaffolds a project; version and config are the only
// subcommands. Commands only parse flags and wire collaborators; the pipeline
// itself lives in internal/scaffold.
package cli
