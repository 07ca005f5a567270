package domain

import (
	m "rsort.dev/pkg/rsort/internal/model"
)

// classify maps a declaration to its output category. It is total: every
// declaration lands in exactly one of the 8 categories, with test modules
// taking priority over the kind dispatch.
func classify(decl m.Declaration) m.Category {
	if isTestModule(decl) {
		return m.CategoryTests
	}

	switch decl.Kind {
	case m.KindUse, m.KindExternCrate:
		return m.CategoryImports
	case m.KindTypeAlias:
		return m.CategoryTypeAliases
	case m.KindConst, m.KindStatic:
		return m.CategoryConstants
	case m.KindTrait:
		return m.CategoryTraits
	case m.KindStruct, m.KindEnum, m.KindUnion, m.KindModule:
		return m.CategoryTypes
	case m.KindImpl:
		return m.CategoryImpls
	default:
		return m.CategoryFunctions
	}
}

// isTestModule reports whether a module declaration belongs in the tests
// bucket: either a cfg attribute whose predicate mentions the test
// condition, or a module named exactly "tests".
func isTestModule(decl m.Declaration) bool {
	if decl.Kind != m.KindModule {
		return false
	}

	for _, attr := range decl.Attrs {
		if attrMatchesTest(attr.Text) {
			return true
		}
	}

	return decl.Name == "tests"
}

// blankLinesAfter returns how many extra blank lines separate consecutive
// items within one category. Imports and constants pack tightly.
func blankLinesAfter(cat m.Category) int {
	switch cat {
	case m.CategoryImports, m.CategoryConstants:
		return 0
	default:
		return 1
	}
}
