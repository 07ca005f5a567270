// Package model defines the data structures shared by the reorder pipeline.
package model

// Path represents a file system path.
type Path string

// Span is a parser-reported source position quadruple. Lines are 1-based as
// produced by the parser; columns are byte offsets within their line.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// ByteRange is a resolved half-open [Start, End) interval into the source
// text. Start <= End holds for every range produced by the resolver.
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// LineTable holds the byte offset of every line start in a source text,
// beginning with offset 0. When the text does not already end at a line
// start, a sentinel equal to the text length is appended so lookups past
// the last newline stay in bounds.
type LineTable []int

// NewLineTable scans src once and records each line-start offset.
func NewLineTable(src []byte) LineTable {
	table := make(LineTable, 1, len(src)/32+2)
	table[0] = 0

	for i, b := range src {
		if b == '\n' {
			table = append(table, i+1)
		}
	}

	if table[len(table)-1] != len(src) {
		table = append(table, len(src))
	}

	return table
}

// FileHeader carries the leading portions of a source file that are emitted
// before any declaration bucket: an optional shebang line and the merged
// text of all file-level attributes (interleaved comments included).
type FileHeader struct {
	Shebang    string
	Attributes string
}

// Result records the outcome of reordering a single file.
type Result struct {
	Path    Path
	Changed bool
}

// FileStats holds per-category declaration counts for one file.
type FileStats struct {
	Path   Path
	Counts [CategoryCount]int
}

// Total returns the number of top-level declarations in the file.
func (s FileStats) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}

	return total
}
