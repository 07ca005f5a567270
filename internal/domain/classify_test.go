package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "rsort.dev/pkg/rsort/internal/model"
)

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		kind m.DeclKind
		want m.Category
	}{
		{m.KindUse, m.CategoryImports},
		{m.KindExternCrate, m.CategoryImports},
		{m.KindTypeAlias, m.CategoryTypeAliases},
		{m.KindConst, m.CategoryConstants},
		{m.KindStatic, m.CategoryConstants},
		{m.KindTrait, m.CategoryTraits},
		{m.KindStruct, m.CategoryTypes},
		{m.KindEnum, m.CategoryTypes},
		{m.KindUnion, m.CategoryTypes},
		{m.KindModule, m.CategoryTypes},
		{m.KindImpl, m.CategoryImpls},
		{m.KindFunction, m.CategoryFunctions},
		{m.KindForeign, m.CategoryFunctions},
		{m.KindMacro, m.CategoryFunctions},
		{m.KindOther, m.CategoryFunctions},
	}

	for _, tc := range cases {
		got := classify(m.Declaration{Kind: tc.kind})
		assert.Equal(t, tc.want, got, "kind %d", tc.kind)
		assert.GreaterOrEqual(t, got, m.Category(0))
		assert.Less(t, got, m.CategoryCount)
	}
}

func TestClassifyTestModules(t *testing.T) {
	t.Run("module named tests without attributes", func(t *testing.T) {
		decl := m.Declaration{Kind: m.KindModule, Name: "tests"}
		assert.Equal(t, m.CategoryTests, classify(decl))
	})

	t.Run("cfg test attribute regardless of name", func(t *testing.T) {
		decl := m.Declaration{
			Kind:  m.KindModule,
			Name:  "integration",
			Attrs: []m.Attribute{{Text: "#[cfg(test)]"}},
		}
		assert.Equal(t, m.CategoryTests, classify(decl))
	})

	t.Run("cfg any with test among arguments", func(t *testing.T) {
		decl := m.Declaration{
			Kind:  m.KindModule,
			Name:  "checks",
			Attrs: []m.Attribute{{Text: `#[cfg(any(test, feature = "slow"))]`}},
		}
		assert.Equal(t, m.CategoryTests, classify(decl))
	})

	t.Run("plain module stays in the types bucket", func(t *testing.T) {
		decl := m.Declaration{Kind: m.KindModule, Name: "parser"}
		assert.Equal(t, m.CategoryTypes, classify(decl))
	})

	t.Run("function named tests is not a test module", func(t *testing.T) {
		decl := m.Declaration{Kind: m.KindFunction, Name: "tests"}
		assert.Equal(t, m.CategoryFunctions, classify(decl))
	})

	t.Run("cfg without test stays in the types bucket", func(t *testing.T) {
		decl := m.Declaration{
			Kind:  m.KindModule,
			Name:  "unix_only",
			Attrs: []m.Attribute{{Text: "#[cfg(unix)]"}},
		}
		assert.Equal(t, m.CategoryTypes, classify(decl))
	})
}

func TestAttrMatchesTest(t *testing.T) {
	matching := []string{
		"#[cfg(test)]",
		"#[cfg( test )]",
		"#[cfg((test))]",
		"#[cfg(any(test))]",
		"#[cfg(any(test, unix))]",
		"#[cfg(all(unix, test))]",
		`#[cfg(any(feature = "slow", test))]`,
		"#[cfg(test && unix)]",
		"#[cfg(unix || test)]",
		"#[cfg(any(all(unix, test), windows))]",
	}

	for _, attr := range matching {
		assert.True(t, attrMatchesTest(attr), "expected match: %s", attr)
	}

	nonMatching := []string{
		"#[cfg(unix)]",
		"#[cfg(not(test))]",
		`#[cfg(feature = "test")]`,
		"#[cfg(testing)]",
		"#[cfg(anything(test))]",
		"#[cfg_attr(test, allow(dead_code))]",
		"#[derive(Debug)]",
		"#[cfg]",
		"#[cfg(]",
		"not an attribute",
		"#[cfg(&&&)]",
	}

	for _, attr := range nonMatching {
		assert.False(t, attrMatchesTest(attr), "expected no match: %s", attr)
	}
}

func TestBlankLinesAfter(t *testing.T) {
	assert.Equal(t, 0, blankLinesAfter(m.CategoryImports))
	assert.Equal(t, 0, blankLinesAfter(m.CategoryConstants))

	for _, cat := range []m.Category{
		m.CategoryTypeAliases,
		m.CategoryTraits,
		m.CategoryTypes,
		m.CategoryImpls,
		m.CategoryFunctions,
		m.CategoryTests,
	} {
		assert.Equal(t, 1, blankLinesAfter(cat), "category %s", cat)
	}
}
