// Package domain implements the reorder engine: span resolution, snippet
// extraction, declaration classification, and deterministic reassembly.
package domain

import (
	m "rsort.dev/pkg/rsort/internal/model"
)

// resolveSpan converts a line/column span into an absolute byte range over
// the source text. Both offsets are clamped to [0, textLen]; an inverted
// range collapses its start onto its end.
func resolveSpan(span m.Span, table m.LineTable, textLen int) m.ByteRange {
	start := lineBase(table, span.StartLine-1, textLen) + span.StartCol
	end := lineBase(table, span.EndLine-1, textLen) + span.EndCol

	start = clampOffset(start, textLen)
	end = clampOffset(end, textLen)

	if start > end {
		start = end
	}

	return m.ByteRange{Start: start, End: end}
}

// lineBase returns the byte offset at which the given 0-based line starts.
// Out-of-table lines fall back to the text length; well-formed spans never
// hit that path.
func lineBase(table m.LineTable, line int, textLen int) int {
	if line < 0 {
		line = 0
	}

	if line >= len(table) {
		return textLen
	}

	return table[line]
}

func clampOffset(offset, textLen int) int {
	if offset < 0 {
		return 0
	}

	if offset > textLen {
		return textLen
	}

	return offset
}
