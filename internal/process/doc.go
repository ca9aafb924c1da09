// Package process runs external commands (git, the package manager) on behalf
// of the scaffolder. Callers depend on the Runner interface so tests can
// substitute a fake; ExecRunner is the os/exec implementation.
package process
