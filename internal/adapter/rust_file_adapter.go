// Package adapter contains parsing and filesystem adapters for the rsort CLI.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	rust "github.com/smacker/go-tree-sitter/rust"

	m "rsort.dev/pkg/rsort/internal/model"
)

// RustFileAdapter encapsulates Rust-specific parsing so the domain layer can
// work with declarations, spans, and attributes while delegating grammar
// details to an infrastructure component.
type RustFileAdapter interface {
	// Parse builds the structural view of a source file: shebang, file-level
	// attributes, and top-level declarations with their attached attributes.
	Parse(ctx context.Context, filename string, src []byte) (*m.ParsedFile, error)
}

// LocalRustFileAdapter provides a concrete RustFileAdapter backed by
// tree-sitter and its Rust grammar.
type LocalRustFileAdapter struct{}

// NewLocalRustFileAdapter constructs a LocalRustFileAdapter.
func NewLocalRustFileAdapter() *LocalRustFileAdapter {
	return &LocalRustFileAdapter{}
}

// Parse parses src and flattens the tree into a ParsedFile. Outer attributes
// and doc comments are attached to the next declaration; plain comments
// between an attribute and its declaration do not break the attachment.
// Inner doc comments count as file-level attributes. A tree containing
// syntax errors fails the whole file.
func (a *LocalRustFileAdapter) Parse(ctx context.Context, filename string, src []byte) (*m.ParsedFile, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("parse %s: source contains syntax errors", filename)
	}

	parsed := &m.ParsedFile{Shebang: shebangLine(src)}

	var pending []m.Attribute

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)

		switch node.Type() {
		case "shebang":
			continue

		case "line_comment", "block_comment":
			// Doc comments carry like attributes: outer ones ride with the
			// next declaration, inner ones belong to the file header. Plain
			// comments between attributes and their declaration stay
			// attached via the span minimum in the extractor.
			text := node.Content(src)

			switch docCommentKind(text) {
			case docOuter:
				pending = append(pending, m.Attribute{
					Span: nodeSpan(node),
					Text: text,
				})
			case docInner:
				parsed.FileAttrs = append(parsed.FileAttrs, nodeSpan(node))
			}

		case "inner_attribute_item":
			parsed.FileAttrs = append(parsed.FileAttrs, nodeSpan(node))

		case "attribute_item":
			pending = append(pending, m.Attribute{
				Span: nodeSpan(node),
				Text: node.Content(src),
			})

		default:
			decl := m.Declaration{
				Kind:  declKind(node.Type()),
				Span:  nodeSpan(node),
				Attrs: pending,
			}

			if decl.Kind == m.KindModule {
				if name := node.ChildByFieldName("name"); name != nil {
					decl.Name = name.Content(src)
				}
			}

			parsed.Decls = append(parsed.Decls, decl)
			pending = nil
		}
	}

	return parsed, nil
}

type docKind int

const (
	docNone docKind = iota
	docOuter
	docInner
)

// docCommentKind distinguishes doc comments from plain ones. Four or more
// leading slashes, `/***` runs, and the empty `/**/` are regular comments.
func docCommentKind(text string) docKind {
	switch {
	case strings.HasPrefix(text, "//!"), strings.HasPrefix(text, "/*!"):
		return docInner
	case strings.HasPrefix(text, "///"):
		if strings.HasPrefix(text, "////") {
			return docNone
		}

		return docOuter
	case strings.HasPrefix(text, "/**"):
		if text == "/**/" || strings.HasPrefix(text, "/***") {
			return docNone
		}

		return docOuter
	default:
		return docNone
	}
}

// declKind maps tree-sitter node types onto declaration kinds. Unrecognized
// node types land in KindOther, which the classifier routes with functions.
func declKind(nodeType string) m.DeclKind {
	switch nodeType {
	case "use_declaration":
		return m.KindUse
	case "extern_crate_declaration":
		return m.KindExternCrate
	case "type_item":
		return m.KindTypeAlias
	case "const_item":
		return m.KindConst
	case "static_item":
		return m.KindStatic
	case "trait_item":
		return m.KindTrait
	case "struct_item":
		return m.KindStruct
	case "enum_item":
		return m.KindEnum
	case "union_item":
		return m.KindUnion
	case "mod_item":
		return m.KindModule
	case "impl_item":
		return m.KindImpl
	case "function_item", "function_signature_item":
		return m.KindFunction
	case "foreign_mod_item":
		return m.KindForeign
	case "macro_definition", "macro_invocation":
		return m.KindMacro
	default:
		return m.KindOther
	}
}

// nodeSpan converts tree-sitter points (0-based rows, byte columns) into
// the 1-based line spans the span resolver expects.
func nodeSpan(node *sitter.Node) m.Span {
	start := node.StartPoint()
	end := node.EndPoint()

	return m.Span{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column),
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column),
	}
}

// shebangLine returns the leading interpreter directive, if any. A `#![`
// prefix is an inner attribute, not a shebang.
func shebangLine(src []byte) string {
	if !bytes.HasPrefix(src, []byte("#!")) || bytes.HasPrefix(src, []byte("#![")) {
		return ""
	}

	if idx := bytes.IndexByte(src, '\n'); idx >= 0 {
		return string(src[:idx])
	}

	return string(src)
}
