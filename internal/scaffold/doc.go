// Package scaffold runs the project creation pipeline: resolve the name,
// reserve the directory, provision the template, reinitialize git, patch
// package.json, install dependencies, and make the initial commit. Every
// fatal step after the directory is reserved rolls it back; the commit step
// only warns.
package scaffold
