package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// RootDir is where cd goes without an argument.
const RootDir = "/"

// ErrNotDirectory is returned when changing into something other than a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// WorkingDir is the shell's current directory. Commands are started in it and
// only a successful Chdir changes it.
type WorkingDir struct {
	path string
}

// NewWorkingDir creates a working directory starting at path.
func NewWorkingDir(path string) (*WorkingDir, error) {
	wd := &WorkingDir{path: RootDir}
	if err := wd.Chdir(path); err != nil {
		return nil, err
	}
	return wd, nil
}

// Path returns the absolute, symlink free path of the directory.
func (w *WorkingDir) Path() string {
	return w.path
}

// Resolve returns the directory target refers to. Relative targets are
// resolved against the working directory.
func (w *WorkingDir) Resolve(target string) (string, error) {
	path := target
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.path, path)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", target, unwrapPathError(err))
	}

	info, err := os.Stat(resolved)
	switch {
	case err != nil:
		return "", fmt.Errorf("%s: %w", target, unwrapPathError(err))
	case !info.IsDir():
		return "", fmt.Errorf("%s: %w", target, ErrNotDirectory)
	}

	return filepath.Abs(resolved)
}

// Chdir changes to target, leaving the directory unchanged on error.
func (w *WorkingDir) Chdir(target string) error {
	resolved, err := w.Resolve(target)
	if err != nil {
		return err
	}
	w.path = resolved
	return nil
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
