// Package manifest reads and rewrites a project's package.json. Only the name
// field is ever changed; every other top-level key keeps its value and its
// position. Patched manifests can be checked against an embedded JSON Schema
// of npm's naming rules, which yields warnings rather than failures.
package manifest
