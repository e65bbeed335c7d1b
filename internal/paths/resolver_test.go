package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structon/generator/internal/domain"
)

type fakeTaxonomy struct {
	categories    map[string]bool
	subcategories map[string]bool
}

func (f fakeTaxonomy) HasCategory(slug string) bool    { return f.categories[slug] }
func (f fakeTaxonomy) HasSubcategory(slug string) bool { return f.subcategories[slug] }

func testTaxonomy() fakeTaxonomy {
	return fakeTaxonomy{
		categories:    map[string]bool{"graafbakken": true},
		subcategories: map[string]bool{"slotenbakken": true},
	}
}

func TestAssetPrefixByDepth(t *testing.T) {
	cases := []struct {
		depth int
		want  string
	}{
		{0, "../../assets"},
		{1, "../../../assets"},
		{2, "../../../../assets"},
		{3, "../../../../../assets"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AssetPrefix(c.depth), "depth %d", c.depth)
	}
}

func TestAncestorLinkCounts(t *testing.T) {
	// home sits one level above depth 0; the listing hub is depth 0 itself
	assert.Equal(t, "index.html", AncestorLink(0, 0))
	assert.Equal(t, "../index.html", AncestorLink(1, 0))
	assert.Equal(t, "../../index.html", AncestorLink(2, 0))
	assert.Equal(t, "../index.html", AncestorLink(2, 1))
	assert.Equal(t, "../../index.html", AncestorLink(3, 1))
	assert.Equal(t, "../index.html", AncestorLink(3, 2))
}

func TestResolveCategoryPage(t *testing.T) {
	r := NewResolver(testTaxonomy(), "products")

	res, err := r.Resolve(domain.PageIdentity{Locale: "be-nl", CategorySlug: "graafbakken"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Depth)
	assert.Equal(t, "be-nl/products/graafbakken", res.OutputDir)
	assert.Equal(t, "products/graafbakken/", res.PathSuffix)
	assert.Equal(t, "../../../assets", res.AssetPrefix)
	assert.Equal(t, "../../index.html", res.HomeLink)
	assert.Equal(t, "../index.html", res.ProductsLink)
	assert.Empty(t, res.CategoryLink)
	assert.Empty(t, res.SubcategoryLink)
}

func TestResolveSubcategoryPage(t *testing.T) {
	r := NewResolver(testTaxonomy(), "products")

	res, err := r.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: "graafbakken", SubcategorySlug: "slotenbakken",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Depth)
	assert.Equal(t, "be-nl/products/graafbakken/slotenbakken", res.OutputDir)
	assert.Equal(t, "../../../../assets", res.AssetPrefix)
	assert.Equal(t, "../../../index.html", res.HomeLink)
	assert.Equal(t, "../../index.html", res.ProductsLink)
	assert.Equal(t, "../index.html", res.CategoryLink)
	assert.Empty(t, res.SubcategoryLink)
}

func TestResolveProductPageWithSubcategory(t *testing.T) {
	r := NewResolver(testTaxonomy(), "products")

	res, err := r.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: "graafbakken",
		SubcategorySlug: "slotenbakken", ProductSlug: "slotenbak-400",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Depth)
	assert.Equal(t, "be-nl/products/graafbakken/slotenbakken/slotenbak-400", res.OutputDir)
	assert.Equal(t, "products/graafbakken/slotenbakken/slotenbak-400/", res.PathSuffix)
	assert.Equal(t, "../../../../../assets", res.AssetPrefix)
	assert.Equal(t, "../../../../index.html", res.HomeLink)
	assert.Equal(t, "../../../index.html", res.ProductsLink)
	assert.Equal(t, "../../index.html", res.CategoryLink)
	assert.Equal(t, "../index.html", res.SubcategoryLink)
}

func TestResolveProductPageWithoutSubcategory(t *testing.T) {
	r := NewResolver(testTaxonomy(), "products")

	res, err := r.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: "graafbakken", ProductSlug: "slotenbak-400",
	})
	require.NoError(t, err)

	// Same depth as a subcategory page: the identity shape alone decides.
	assert.Equal(t, 2, res.Depth)
	assert.Equal(t, "../index.html", res.CategoryLink)
	assert.Empty(t, res.SubcategoryLink)
}

func TestResolveUnknownCategoryFails(t *testing.T) {
	r := NewResolver(testTaxonomy(), "products")

	_, err := r.Resolve(domain.PageIdentity{Locale: "be-nl", CategorySlug: "nonexistent"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestResolveUnknownSubcategoryFails(t *testing.T) {
	r := NewResolver(testTaxonomy(), "products")

	_, err := r.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: "graafbakken", SubcategorySlug: "bogus",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
