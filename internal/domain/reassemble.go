package domain

import (
	"bytes"
	"strings"
	"unicode"

	m "rsort.dev/pkg/rsort/internal/model"
)

// reassemble emits the canonical form of a file: header first, then every
// non-empty bucket in category order. Output is byte-deterministic for a
// given input; reassembling an already-canonical file reproduces it.
func reassemble(header m.FileHeader, buckets *[m.CategoryCount][]string) string {
	var out []byte

	if header.Shebang != "" {
		out = append(out, header.Shebang...)
		out = append(out, '\n')
	}

	if header.Attributes != "" {
		out = append(out, strings.TrimRightFunc(header.Attributes, unicode.IsSpace)...)
		out = append(out, "\n\n"...)
	}

	wroteAny := len(out) > 0

	for cat := m.Category(0); cat < m.CategoryCount; cat++ {
		bucket := buckets[cat]
		if len(bucket) == 0 {
			continue
		}

		// Imports directly after the header keep the single blank line the
		// header already produced; every later group gets a forced blank
		// line separator.
		if wroteAny && cat != m.CategoryImports {
			out = ensureBlankSeparator(out)
		}

		wroteAny = true
		extra := blankLinesAfter(cat)

		for _, item := range bucket {
			out = append(out, strings.TrimRight(item, "\n")...)
			out = append(out, '\n')

			for i := 0; i < extra; i++ {
				out = append(out, '\n')
			}
		}
	}

	if len(out) == 0 {
		return ""
	}

	for bytes.HasSuffix(out, []byte("\n\n\n")) {
		out = out[:len(out)-1]
	}

	if bytes.HasSuffix(out, []byte("\n\n")) {
		out = out[:len(out)-1]
	}

	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	return string(out)
}

// ensureBlankSeparator normalizes the tail of the output to exactly one
// blank line. It trims before padding so it terminates no matter how many
// newlines upstream emission left behind.
func ensureBlankSeparator(out []byte) []byte {
	for bytes.HasSuffix(out, []byte("\n\n\n")) {
		out = out[:len(out)-1]
	}

	for !bytes.HasSuffix(out, []byte("\n\n")) {
		out = append(out, '\n')
	}

	return out
}
