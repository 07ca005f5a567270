package domain

import (
	m "rsort.dev/pkg/rsort/internal/model"
)

// snippet returns the exact original text of a declaration including any
// attributes lexically attached above it. The declaration's own span end is
// authoritative; attributes only ever pull the start earlier.
func snippet(decl m.Declaration, src []byte, table m.LineTable) string {
	r := resolveSpan(decl.Span, table, len(src))

	for _, attr := range decl.Attrs {
		attrRange := resolveSpan(attr.Span, table, len(src))
		if attrRange.Start < r.Start {
			r.Start = attrRange.Start
		}
	}

	if r.Start > r.End {
		r.Start = r.End
	}

	return string(src[r.Start:r.End])
}

// extractHeader builds the file header: the shebang verbatim plus the
// envelope of all file-level attributes. The envelope spans from the
// earliest attribute start to the latest attribute end, so comments and
// blank lines between attributes survive untouched.
func extractHeader(parsed *m.ParsedFile, src []byte, table m.LineTable) m.FileHeader {
	header := m.FileHeader{Shebang: parsed.Shebang}

	if len(parsed.FileAttrs) == 0 {
		return header
	}

	start := len(src)
	end := 0

	for _, span := range parsed.FileAttrs {
		r := resolveSpan(span, table, len(src))
		if r.Start < start {
			start = r.Start
		}

		if r.End > end {
			end = r.End
		}
	}

	if start > end {
		start = end
	}

	header.Attributes = string(src[start:end])

	return header
}
