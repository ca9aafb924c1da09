// Package provision materializes a project directory from the template
// repository: a shallow single-branch clone, removal of the cloned history,
// and a fresh `git init`. It never deletes the target on failure; rollback is
// the caller's decision.
package provision
