package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/sync/errgroup"

	"rsort.dev/pkg/rsort/internal/adapter"
	m "rsort.dev/pkg/rsort/internal/model"
)

const writeFileMode = 0o644

// ReorderArgs carries the inputs for a reorder run.
type ReorderArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
	DryRun  bool
}

// EstimateArgs carries the inputs for the list workflow.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// Workflow is the per-run entry point into the reorder engine.
type Workflow interface {
	// Reorder rewrites every collected file whose canonical form differs
	// from its current content. Any per-file failure aborts the run; files
	// rewritten earlier in the batch stay rewritten.
	Reorder(ctx context.Context, args ReorderArgs) ([]m.Result, error)

	// Estimate parses every collected file and reports per-category
	// declaration counts without writing anything.
	Estimate(ctx context.Context, args EstimateArgs) ([]m.FileStats, error)
}

type workflow struct {
	files adapter.RustFileAdapter
	fs    adapter.SourceFSAdapter
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(files adapter.RustFileAdapter, fs adapter.SourceFSAdapter) Workflow {
	return &workflow{files: files, fs: fs}
}

// Reorder collects the candidate files and processes each one
// independently. Files share no state, so a worker pool bounded by
// args.Threads is safe; the default of one worker preserves strictly
// sequential behavior.
func (w *workflow) Reorder(ctx context.Context, args ReorderArgs) ([]m.Result, error) {
	files, err := w.collect(args.Paths, args.Exclude)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	results := make([]m.Result, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			changed, err := w.reorderFile(groupCtx, path, args.DryRun)
			if err != nil {
				return fmt.Errorf("reorder %s: %w", path, err)
			}

			results[i] = m.Result{Path: path, Changed: changed}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Estimate classifies every declaration in every collected file and tallies
// the counts per category.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) ([]m.FileStats, error) {
	files, err := w.collect(args.Paths, args.Exclude)
	if err != nil {
		return nil, err
	}

	stats := make([]m.FileStats, 0, len(files))

	for _, path := range files {
		src, err := w.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", path, err)
		}

		parsed, err := w.files.Parse(ctx, string(path), src)
		if err != nil {
			return nil, err
		}

		fileStats := m.FileStats{Path: path}
		for _, decl := range parsed.Decls {
			fileStats.Counts[classify(decl)]++
		}

		stats = append(stats, fileStats)
	}

	return stats, nil
}

func (w *workflow) collect(paths []m.Path, exclude []string) ([]m.Path, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input paths given")
	}

	files, err := w.fs.Collect(paths)
	if err != nil {
		return nil, err
	}

	files, err = filterExcluded(files, exclude)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, errors.New("no Rust files found")
	}

	return files, nil
}

// reorderFile runs the full pipeline for one file: read, parse, classify
// and extract into buckets, reassemble, and write only when the canonical
// form differs from the original. No write ever happens on a failed parse.
func (w *workflow) reorderFile(ctx context.Context, path m.Path, dryRun bool) (bool, error) {
	src, err := w.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read file: %w", err)
	}

	parsed, err := w.files.Parse(ctx, string(path), src)
	if err != nil {
		return false, err
	}

	table := m.NewLineTable(src)

	var buckets [m.CategoryCount][]string
	for _, decl := range parsed.Decls {
		cat := classify(decl)
		buckets[cat] = append(buckets[cat], snippet(decl, src, table))
	}

	header := extractHeader(parsed, src, table)
	out := reassemble(header, &buckets)

	if out == string(src) {
		slog.Debug("file already canonical", "path", path)
		return false, nil
	}

	if dryRun {
		return true, nil
	}

	if err := w.fs.WriteFile(path, []byte(out), writeFileMode); err != nil {
		return false, fmt.Errorf("write file: %w", err)
	}

	slog.Debug("rewrote file", "path", path, "bytes", len(out))

	return true, nil
}

func filterExcluded(files []m.Path, patterns []string) ([]m.Path, error) {
	if len(patterns) == 0 {
		return files, nil
	}

	matchers := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		matcher, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		matchers = append(matchers, matcher)
	}

	kept := files[:0]

	for _, file := range files {
		excluded := false

		for _, matcher := range matchers {
			if matcher.MatchString(string(file)) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, file)
		}
	}

	return kept, nil
}
