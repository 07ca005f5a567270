package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "rsort.dev/pkg/rsort/internal/model"
)

func TestSnippet(t *testing.T) {
	t.Run("declaration without attributes uses its own span", func(t *testing.T) {
		src := []byte("use std::fmt;\nfn main() {}\n")
		table := m.NewLineTable(src)

		decl := m.Declaration{
			Kind: m.KindFunction,
			Span: m.Span{StartLine: 2, StartCol: 0, EndLine: 2, EndCol: 12},
		}

		assert.Equal(t, "fn main() {}", snippet(decl, src, table))
	})

	t.Run("attributes pull the start earlier", func(t *testing.T) {
		src := []byte("#[derive(Debug)]\n#[repr(C)]\nstruct A;\n")
		table := m.NewLineTable(src)

		decl := m.Declaration{
			Kind: m.KindStruct,
			Span: m.Span{StartLine: 3, StartCol: 0, EndLine: 3, EndCol: 9},
			Attrs: []m.Attribute{
				{Span: m.Span{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 16}},
				{Span: m.Span{StartLine: 2, StartCol: 0, EndLine: 2, EndCol: 10}},
			},
		}

		assert.Equal(t, "#[derive(Debug)]\n#[repr(C)]\nstruct A;", snippet(decl, src, table))
	})

	t.Run("comments between attributes survive verbatim", func(t *testing.T) {
		src := []byte("#[derive(Debug)]\n// interleaved\n#[repr(C)]\nstruct A;\n")
		table := m.NewLineTable(src)

		decl := m.Declaration{
			Kind: m.KindStruct,
			Span: m.Span{StartLine: 4, StartCol: 0, EndLine: 4, EndCol: 9},
			Attrs: []m.Attribute{
				{Span: m.Span{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 16}},
				{Span: m.Span{StartLine: 3, StartCol: 0, EndLine: 3, EndCol: 10}},
			},
		}

		assert.Equal(t, "#[derive(Debug)]\n// interleaved\n#[repr(C)]\nstruct A;", snippet(decl, src, table))
	})

	t.Run("attributes never extend the end", func(t *testing.T) {
		src := []byte("struct A;\n#[dangling]\n")
		table := m.NewLineTable(src)

		decl := m.Declaration{
			Kind: m.KindStruct,
			Span: m.Span{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 9},
			Attrs: []m.Attribute{
				{Span: m.Span{StartLine: 2, StartCol: 0, EndLine: 2, EndCol: 11}},
			},
		}

		assert.Equal(t, "struct A;", snippet(decl, src, table))
	})
}

func TestExtractHeader(t *testing.T) {
	t.Run("no file attributes yields only the shebang", func(t *testing.T) {
		src := []byte("#!/usr/bin/env run\nfn main() {}\n")
		table := m.NewLineTable(src)
		parsed := &m.ParsedFile{Shebang: "#!/usr/bin/env run"}

		header := extractHeader(parsed, src, table)
		assert.Equal(t, "#!/usr/bin/env run", header.Shebang)
		assert.Empty(t, header.Attributes)
	})

	t.Run("attribute envelope includes interleaved comments", func(t *testing.T) {
		src := []byte("#![allow(dead_code)]\n// between\n#![warn(missing_docs)]\n\nfn main() {}\n")
		table := m.NewLineTable(src)
		parsed := &m.ParsedFile{
			FileAttrs: []m.Span{
				{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 20},
				{StartLine: 3, StartCol: 0, EndLine: 3, EndCol: 22},
			},
		}

		header := extractHeader(parsed, src, table)
		assert.Empty(t, header.Shebang)
		assert.Equal(t, "#![allow(dead_code)]\n// between\n#![warn(missing_docs)]", header.Attributes)
	})
}
