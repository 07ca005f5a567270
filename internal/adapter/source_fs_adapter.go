package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "rsort.dev/pkg/rsort/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer
// relies on when collecting and rewriting source files. It hides direct
// `os` access so workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Collect expands file and directory arguments into a deduplicated,
	// first-seen-ordered list of Rust source files.
	Collect(paths []m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile overwrites a file in a single full-file write.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish files from directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os
// package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Collect walks every argument. Explicit file arguments are taken as-is;
// directories are walked breadth-first with entries in lexicographic order,
// keeping only `.rs` files (extension matched case-insensitively).
// Directory symlinks are not followed; file symlinks to Rust files are kept.
func (a *LocalSourceFSAdapter) Collect(paths []m.Path) ([]m.Path, error) {
	c := collector{seen: make(map[string]struct{})}

	for _, path := range paths {
		info, err := os.Stat(string(path))
		if err != nil {
			return nil, fmt.Errorf("inspect %s: %w", path, err)
		}

		switch {
		case info.IsDir():
			if err := c.collectDirectory(string(path)); err != nil {
				return nil, err
			}
		case info.Mode().IsRegular():
			c.push(string(path))
		}
	}

	return c.files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

type collector struct {
	files []m.Path
	seen  map[string]struct{}
}

func (c *collector) collectDirectory(dir string) error {
	queue := []string{dir}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(current)
		if err != nil {
			return fmt.Errorf("read directory %s: %w", current, err)
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})

		for _, entry := range entries {
			path := filepath.Join(current, entry.Name())
			mode := entry.Type()

			switch {
			case mode.IsDir():
				queue = append(queue, path)

			case mode.IsRegular():
				if isRustFile(path) {
					c.push(path)
				}

			case mode&os.ModeSymlink != 0:
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("inspect symlink target %s: %w", path, err)
				}

				if info.IsDir() {
					continue
				}

				if info.Mode().IsRegular() && isRustFile(path) {
					c.push(path)
				}
			}
		}
	}

	return nil
}

// push records a candidate file, deduplicating by canonical path while
// preserving first-seen order and the path as given.
func (c *collector) push(path string) {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}

	if _, ok := c.seen[key]; ok {
		return
	}

	c.seen[key] = struct{}{}
	c.files = append(c.files, m.Path(path))
}

func isRustFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".rs")
}
