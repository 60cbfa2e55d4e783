// Package adapter contains the filesystem, report store and configuration
// adapters used by the codelimit workflow.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/codelimit/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects the files below roots that accept admits and no exclude
	// pattern matches. A root may also be a single file.
	Get(roots []m.Path, excludes []string, accept func(path string) bool) ([]m.SourceFile, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks every root and returns the admitted files in walk order. Files
// reachable from several roots are returned once.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, excludes []string, accept func(path string) bool) ([]m.SourceFile, error) {
	seen := make(map[string]struct{})

	var files []m.SourceFile

	add := func(path, name string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, ok := seen[abs]; ok {
			return nil
		}

		seen[abs] = struct{}{}
		files = append(files, m.SourceFile{Path: m.Path(path), Name: m.Path(name)})

		return nil
	}

	for _, root := range roots {
		rootStr := filepath.Clean(string(root))

		info, err := a.FileInfo(m.Path(rootStr))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			name := filepath.ToSlash(rootStr)
			if accept(rootStr) && !Excluded(name, excludes) {
				if err := add(rootStr, name); err != nil {
					return nil, err
				}
			}

			continue
		}

		err = filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path == rootStr {
				return nil
			}

			rel, err := filepath.Rel(rootStr, path)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if Excluded(rel, excludes) {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.Type().IsRegular() || !accept(path) || Excluded(rel, excludes) {
				return nil
			}

			return add(path, rel)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Excluded reports whether the slash-separated name, or its base name, matches
// one of the glob patterns. Patterns support doublestar syntax.
func Excluded(name string, patterns []string) bool {
	base := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		base = name[i+1:]
	}

	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}

		if !strings.Contains(pattern, "/") {
			if matched, err := doublestar.Match(pattern, base); err == nil && matched {
				return true
			}
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	info, err := os.Stat(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return info, err
}
