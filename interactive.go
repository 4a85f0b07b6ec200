package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// maxPickerDepth keeps the candidate walk shallow; deep trees make the
// picker useless anyway.
const maxPickerDepth = 4

// pickRootInteractively walks downward from the current directory and
// lets the user fuzzy-pick the directory to analyze. A nil error with an
// empty string means the user aborted.
func pickRootInteractively() (string, error) {
	candidates := []string{"."}
	excluded := excludeSet(defaultExcludeDirs)

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // keep scanning past unreadable entries
		}
		if path == "." || !d.IsDir() {
			return nil
		}
		name := d.Name()
		if _, skip := excluded[name]; skip {
			return fs.SkipDir
		}
		if len(name) > 1 && name[0] == '.' {
			return fs.SkipDir
		}
		if depth := strings.Count(filepath.ToSlash(path), "/") + 1; depth > maxPickerDepth {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Pick the directory to analyze."
			}
			entries, readErr := os.ReadDir(candidates[i])
			if readErr != nil {
				return fmt.Sprintf("Path: %s\nError: %v", candidates[i], readErr)
			}
			return fmt.Sprintf("Path: %s\nEntries: %d", candidates[i], len(entries))
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder: %w", err)
	}
	return candidates[idx], nil
}
