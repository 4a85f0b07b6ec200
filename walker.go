package main

import (
	"io/fs"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// defaultExcludeDirs are directory basenames that are never descended
// into: VCS metadata, dependency caches, build output, editor state.
var defaultExcludeDirs = []string{
	".git", "node_modules", "build", "dist", "__pycache__", ".idea",
	".vscode", "vendor", "bin", "obj", ".venv", "env", "venv", "target",
	".mypy_cache",
}

// excludeSet turns a list of directory basenames into a lookup set.
func excludeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// walkTree descends from root and returns the regular files to consider,
// in deterministic lexical order. Excluded directories are pruned before
// descent, so their subtrees are never visited. Unreadable directories
// and files are skipped silently; they never abort the walk.
//
// The running executable is excluded so that self-scanning a checkout
// that contains the built binary doesn't inflate its own statistics.
func walkTree(root string, cfg *Config) ([]string, error) {
	var matcher gitignore.IgnoreMatcher
	if cfg.UseGitignore {
		// go-gitignore only consults the root-level file; nested
		// ignore files are not read.
		giPath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(giPath); err == nil {
			if m, err := gitignore.NewGitIgnore(giPath); err == nil {
				matcher = m
			}
		}
	}

	selfPath := runningExecutable()

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip and keep walking.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if _, excluded := cfg.ExcludeDirs[d.Name()]; excluded {
				return fs.SkipDir
			}
			// The matcher resolves paths against the .gitignore's own
			// directory, so it gets the walk path as-is.
			if matcher != nil && matcher.Match(path, true) {
				return fs.SkipDir
			}
			return nil
		}

		// Only regular files reach the classifier.
		if !d.Type().IsRegular() {
			return nil
		}
		if matcher != nil && matcher.Match(path, false) {
			return nil
		}
		if selfPath != "" && samePath(path, selfPath) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// runningExecutable resolves the path of the current binary, following
// symlinks. Empty string when it cannot be determined.
func runningExecutable() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}

// samePath compares two paths after cleaning and symlink resolution.
func samePath(a, b string) bool {
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		ra = filepath.Clean(a)
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		rb = filepath.Clean(b)
	}
	return ra == rb
}
