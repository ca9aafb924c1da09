// Package workspace owns the target project directory: resolving its path,
// reserving it before provisioning, and removing it on rollback.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirPerm is the permission used for directories created by the scaffolder.
const DirPerm os.FileMode = 0755

// ErrExists is returned by Reserve when the target path is already present.
var ErrExists = errors.New("target already exists")

// skipDirs are not counted by CountFiles.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Resolve returns the absolute target path for name under base. An empty
// base means the current working directory.
func Resolve(base, name string) (string, error) {
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		base = cwd
	}
	abs, err := filepath.Abs(filepath.Join(base, name))
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}
	return abs, nil
}

// Exists reports whether anything is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// Reserve creates path, including missing parents. It fails with ErrExists,
// touching nothing, when path is already present.
func Reserve(path string) error {
	exists, err := Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	return nil
}

// Cleanup removes path recursively. It reports whether anything was removed;
// a missing path is not an error, so repeated calls are no-ops.
func Cleanup(path string) (bool, error) {
	exists, err := Exists(path)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("removing %s: %w", path, err)
	}
	return true, nil
}

// CountFiles returns the number of regular files under root, ignoring
// version-control metadata and installed dependencies.
func CountFiles(root string) (int, error) {
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("counting files in %s: %w", root, err)
	}
	return n, nil
}
