package model

// DeclKind discriminates the top-level declaration forms the classifier
// cares about. The parser maps every syntax node to exactly one kind;
// anything it does not recognize becomes KindOther.
type DeclKind int

// Available DeclKind values.
const (
	KindUse DeclKind = iota
	KindExternCrate
	KindTypeAlias
	KindConst
	KindStatic
	KindTrait
	KindStruct
	KindEnum
	KindUnion
	KindModule
	KindImpl
	KindFunction
	KindForeign
	KindMacro
	KindOther
)

// Attribute is an outer attribute lexically attached to a declaration.
// Span locates it in the original text; Text is its raw source form and is
// only consulted by the test-module rule.
type Attribute struct {
	Span Span
	Text string
}

// Declaration is a read-only view over one top-level syntactic unit. The
// declaration's own span never includes its attributes; Name is populated
// for module declarations only.
type Declaration struct {
	Kind  DeclKind
	Name  string
	Span  Span
	Attrs []Attribute
}

// ParsedFile is the structural parse of one source file: an optional
// shebang line, the spans of file-level inner attributes, and the
// top-level declarations in original order.
type ParsedFile struct {
	Shebang   string
	FileAttrs []Span
	Decls     []Declaration
}

// Category is one of the 8 fixed output groups declarations are sorted
// into. Values are ordered; emission follows ascending category order.
type Category int

// Canonical category order.
const (
	CategoryImports Category = iota
	CategoryTypeAliases
	CategoryConstants
	CategoryTraits
	CategoryTypes
	CategoryImpls
	CategoryFunctions
	CategoryTests

	CategoryCount
)

// String returns the human-readable category name used in list output.
func (c Category) String() string {
	switch c {
	case CategoryImports:
		return "imports"
	case CategoryTypeAliases:
		return "type aliases"
	case CategoryConstants:
		return "constants"
	case CategoryTraits:
		return "traits"
	case CategoryTypes:
		return "types"
	case CategoryImpls:
		return "impls"
	case CategoryFunctions:
		return "functions"
	case CategoryTests:
		return "tests"
	default:
		return "unknown"
	}
}
