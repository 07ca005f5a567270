package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rsort.dev/pkg/rsort/internal/model"
)

func parseSource(t *testing.T, src string) *m.ParsedFile {
	t.Helper()

	parsed, err := NewLocalRustFileAdapter().Parse(context.Background(), "test.rs", []byte(src))
	require.NoError(t, err)

	return parsed
}

func TestParseDeclarationKinds(t *testing.T) {
	src := `use std::fmt;
extern crate serde;

type Alias = u32;

const MAX: u32 = 8;
static NAME: &str = "x";

trait Render {}

struct Point { x: i32 }
enum Shape { Circle }
union Bits { a: u32 }
mod geometry {}

impl Render for Point {}

fn main() {}
extern "C" { fn abs(input: i32) -> i32; }
macro_rules! square { ($x:expr) => { $x * $x }; }
`

	parsed := parseSource(t, src)

	kinds := make([]m.DeclKind, 0, len(parsed.Decls))
	for _, decl := range parsed.Decls {
		kinds = append(kinds, decl.Kind)
	}

	assert.Equal(t, []m.DeclKind{
		m.KindUse,
		m.KindExternCrate,
		m.KindTypeAlias,
		m.KindConst,
		m.KindStatic,
		m.KindTrait,
		m.KindStruct,
		m.KindEnum,
		m.KindUnion,
		m.KindModule,
		m.KindImpl,
		m.KindFunction,
		m.KindForeign,
		m.KindMacro,
	}, kinds)
}

func TestParseAttachesAttributes(t *testing.T) {
	src := `#[derive(Debug)]
// interleaved comment
#[repr(C)]
struct Point { x: i32 }

fn main() {}
`

	parsed := parseSource(t, src)
	require.Len(t, parsed.Decls, 2)

	point := parsed.Decls[0]
	assert.Equal(t, m.KindStruct, point.Kind)
	require.Len(t, point.Attrs, 2)
	assert.Equal(t, "#[derive(Debug)]", point.Attrs[0].Text)
	assert.Equal(t, "#[repr(C)]", point.Attrs[1].Text)

	// The attribute span starts on line 1; the struct's own span does not.
	assert.Equal(t, 1, point.Attrs[0].Span.StartLine)
	assert.Equal(t, 4, point.Span.StartLine)

	// Attributes do not leak onto the next declaration.
	assert.Empty(t, parsed.Decls[1].Attrs)
}

func TestParseDocComments(t *testing.T) {
	t.Run("outer doc comments attach to the declaration", func(t *testing.T) {
		src := `/// Adds two numbers.
/// Wraps on overflow.
fn add(a: u32, b: u32) -> u32 { a + b }
`

		parsed := parseSource(t, src)
		require.Len(t, parsed.Decls, 1)

		attrs := parsed.Decls[0].Attrs
		require.Len(t, attrs, 2)
		assert.Equal(t, "/// Adds two numbers.", attrs[0].Text)
		assert.Equal(t, "/// Wraps on overflow.", attrs[1].Text)
		assert.Equal(t, 1, attrs[0].Span.StartLine)
	})

	t.Run("block doc comment mixes with attributes", func(t *testing.T) {
		src := `/** A thing. */
#[derive(Debug)]
struct A;
`

		parsed := parseSource(t, src)
		require.Len(t, parsed.Decls, 1)

		attrs := parsed.Decls[0].Attrs
		require.Len(t, attrs, 2)
		assert.Equal(t, "/** A thing. */", attrs[0].Text)
		assert.Equal(t, "#[derive(Debug)]", attrs[1].Text)
	})

	t.Run("inner doc comments join the file attributes", func(t *testing.T) {
		src := `//! Crate-level docs.
#![allow(dead_code)]

fn main() {}
`

		parsed := parseSource(t, src)
		assert.Len(t, parsed.FileAttrs, 2)
		require.Len(t, parsed.Decls, 1)
		assert.Empty(t, parsed.Decls[0].Attrs)
	})

	t.Run("plain comments stay plain", func(t *testing.T) {
		src := `//// separator
/***/
// note
fn main() {}
`

		parsed := parseSource(t, src)
		require.Len(t, parsed.Decls, 1)
		assert.Empty(t, parsed.Decls[0].Attrs)
		assert.Empty(t, parsed.FileAttrs)
	})
}

func TestParseModuleNames(t *testing.T) {
	src := `mod geometry {}

#[cfg(test)]
mod checks {}
`

	parsed := parseSource(t, src)
	require.Len(t, parsed.Decls, 2)

	assert.Equal(t, "geometry", parsed.Decls[0].Name)
	assert.Equal(t, "checks", parsed.Decls[1].Name)
	require.Len(t, parsed.Decls[1].Attrs, 1)
	assert.Equal(t, "#[cfg(test)]", parsed.Decls[1].Attrs[0].Text)
}

func TestParseFileHeader(t *testing.T) {
	t.Run("shebang and inner attributes", func(t *testing.T) {
		src := `#!/usr/bin/env run-cargo-script
#![allow(dead_code)]
#![warn(missing_docs)]

fn main() {}
`

		parsed := parseSource(t, src)
		assert.Equal(t, "#!/usr/bin/env run-cargo-script", parsed.Shebang)
		assert.Len(t, parsed.FileAttrs, 2)
	})

	t.Run("inner attribute is not a shebang", func(t *testing.T) {
		parsed := parseSource(t, "#![allow(dead_code)]\nfn main() {}\n")
		assert.Empty(t, parsed.Shebang)
		assert.Len(t, parsed.FileAttrs, 1)
	})

	t.Run("plain file has neither", func(t *testing.T) {
		parsed := parseSource(t, "fn main() {}\n")
		assert.Empty(t, parsed.Shebang)
		assert.Empty(t, parsed.FileAttrs)
	})
}

func TestParseRejectsBrokenSource(t *testing.T) {
	_, err := NewLocalRustFileAdapter().Parse(context.Background(), "broken.rs", []byte("fn main( {\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.rs")
}

func TestParseEmptySource(t *testing.T) {
	parsed := parseSource(t, "")
	assert.Empty(t, parsed.Shebang)
	assert.Empty(t, parsed.FileAttrs)
	assert.Empty(t, parsed.Decls)
}
