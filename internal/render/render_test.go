package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structon/generator/internal/catalog"
	"structon/generator/internal/domain"
	"structon/generator/internal/paths"
)

const testBaseURL = "https://structon.be"

func newTestRenderer(t *testing.T) (*Renderer, *catalog.Store, *paths.Resolver) {
	t.Helper()
	store, err := catalog.NewStore()
	require.NoError(t, err)
	r, err := New(store, testBaseURL, "Structon")
	require.NoError(t, err)
	return r, store, paths.NewResolver(store, "products")
}

func locale(t *testing.T, store *catalog.Store, code string) domain.Locale {
	t.Helper()
	for _, loc := range store.Locales() {
		if loc.Code == code {
			return loc
		}
	}
	t.Fatalf("unknown test locale %s", code)
	return domain.Locale{}
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func floatPtr(v float64) *float64 { return &v }

func testProduct() domain.Product {
	return domain.Product{
		ID:                 7,
		Slug:               "slotenbak-1200",
		Title:              "Slotenbak 1200mm",
		Description:        "Slotenbak voor het graven van sloten en greppels.",
		CategorySlug:       "graafbakken",
		CategoryTitle:      "Graafbakken",
		SubcategorySlug:    "slotenbakken",
		SubcategoryTitle:   "Slotenbakken",
		Width:              floatPtr(1200),
		Weight:             floatPtr(185.5),
		AttachmentType:     "CW10",
		ExcavatorWeightMin: floatPtr(2),
		ExcavatorWeightMax: floatPtr(5),
		StockQuantity:      3,
		IsActive:           true,
		CloudinaryImages:   []domain.CloudinaryImage{{URL: "https://img.example/slotenbak.jpg"}},
	}
}

func TestRenderCategoryHeadLinks(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-nl")
	cat, err := store.Category("graafbakken")
	require.NoError(t, err)
	res, err := resolver.Resolve(domain.PageIdentity{Locale: "be-nl", CategorySlug: "graafbakken"})
	require.NoError(t, err)

	html, err := r.RenderCategory(loc, cat, res)
	require.NoError(t, err)
	doc := parseDoc(t, html)

	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, testBaseURL+"/be-nl/products/graafbakken/", canonical)

	alternates := doc.Find(`link[rel="alternate"]`)
	require.Equal(t, 5, alternates.Length())

	byHreflang := map[string]string{}
	alternates.Each(func(_ int, s *goquery.Selection) {
		hreflang, _ := s.Attr("hreflang")
		href, _ := s.Attr("href")
		byHreflang[hreflang] = href
	})
	assert.Equal(t, testBaseURL+"/be-nl/products/graafbakken/", byHreflang["nl-BE"])
	assert.Equal(t, testBaseURL+"/nl-nl/products/graafbakken/", byHreflang["nl-NL"])
	assert.Equal(t, testBaseURL+"/be-fr/products/graafbakken/", byHreflang["fr-BE"])
	assert.Equal(t, testBaseURL+"/de-de/products/graafbakken/", byHreflang["de-DE"])
	// x-default points at the default locale page
	assert.Equal(t, byHreflang["nl-BE"], byHreflang["x-default"])

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "be_nl", lang)
}

func TestRenderCategoryBreadcrumbAndCards(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-nl")
	cat, err := store.Category("graafbakken")
	require.NoError(t, err)
	res, err := resolver.Resolve(domain.PageIdentity{Locale: "be-nl", CategorySlug: "graafbakken"})
	require.NoError(t, err)

	html, err := r.RenderCategory(loc, cat, res)
	require.NoError(t, err)
	doc := parseDoc(t, html)

	crumbs := doc.Find("nav.breadcrumb a")
	require.Equal(t, 2, crumbs.Length())
	home, _ := crumbs.Eq(0).Attr("href")
	products, _ := crumbs.Eq(1).Attr("href")
	assert.Equal(t, "../../index.html", home)
	assert.Equal(t, "../index.html", products)
	assert.Equal(t, "Home", crumbs.Eq(0).Text())

	cards := doc.Find("a.subcategory-card")
	require.Equal(t, len(cat.Subcategories), cards.Length())
	firstHref, _ := cards.Eq(0).Attr("href")
	assert.Equal(t, cat.Subcategories[0]+"/", firstHref)

	// one filter scaffold per page
	assert.Equal(t, 1, doc.Find("#filters-sidebar").Length())
}

func TestRenderSubcategoryBreadcrumbIncludesParent(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-fr")
	sub, err := store.Subcategory("slotenbakken")
	require.NoError(t, err)
	parent, err := store.Category(sub.ParentCategory)
	require.NoError(t, err)
	res, err := resolver.Resolve(domain.PageIdentity{Locale: "be-fr", CategorySlug: "graafbakken", SubcategorySlug: "slotenbakken"})
	require.NoError(t, err)

	html, err := r.RenderSubcategory(loc, sub, parent, res)
	require.NoError(t, err)
	doc := parseDoc(t, html)

	crumbs := doc.Find("nav.breadcrumb a")
	require.Equal(t, 3, crumbs.Length())
	catHref, _ := crumbs.Eq(2).Attr("href")
	assert.Equal(t, "../index.html", catHref)
	assert.Equal(t, "Godets de terrassement", crumbs.Eq(2).Text())

	// subcategory pages have no card grid
	assert.Equal(t, 0, doc.Find("a.subcategory-card").Length())

	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, testBaseURL+"/be-fr/products/graafbakken/slotenbakken/", canonical)
}

func TestRenderProductCartPayloadRoundTrips(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-nl")
	p := testProduct()
	res, err := resolver.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: p.CategorySlug,
		SubcategorySlug: p.SubcategorySlug, ProductSlug: p.Slug,
	})
	require.NoError(t, err)

	html, err := r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	doc := parseDoc(t, html)

	raw, ok := doc.Find("#add-to-quote").Attr("data-product")
	require.True(t, ok)

	var payload struct {
		ID           int               `json:"id"`
		Slug         string            `json:"slug"`
		CategorySlug string            `json:"category_slug"`
		Title        string            `json:"title"`
		Image        string            `json:"image"`
		Specs        map[string]string `json:"specs"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.Equal(t, 7, payload.ID)
	assert.Equal(t, "slotenbak-1200", payload.Slug)
	assert.Equal(t, "graafbakken", payload.CategorySlug)
	assert.Equal(t, "https://img.example/slotenbak.jpg", payload.Image)
	assert.Equal(t, "1200 mm", payload.Specs["width"])
	assert.Equal(t, "185.5 kg", payload.Specs["weight"])
	assert.Equal(t, "2-5t", payload.Specs["excavator"])

	// the sticky CTA carries the identical payload
	sticky, ok := doc.Find("#add-to-quote-sticky").Attr("data-product")
	require.True(t, ok)
	assert.Equal(t, raw, sticky)
}

func TestRenderProductOmitsAbsentSpecs(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-nl")

	p := testProduct()
	p.Width = nil
	p.Volume = nil
	p.Weight = nil
	p.AttachmentType = ""
	p.ExcavatorWeightMin = nil
	p.ExcavatorWeightMax = nil

	res, err := resolver.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: p.CategorySlug,
		SubcategorySlug: p.SubcategorySlug, ProductSlug: p.Slug,
	})
	require.NoError(t, err)

	html, err := r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	doc := parseDoc(t, html)

	assert.Equal(t, 0, doc.Find(".key-spec").Length())
	// only the fixed boilerplate rows remain
	assert.Equal(t, 4, doc.Find(".specifications-table tr").Length())
	assert.NotContains(t, html, "0 mm")
}

func TestRenderProductWithoutSubcategory(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-nl")

	p := testProduct()
	p.SubcategorySlug = ""
	p.SubcategoryTitle = ""

	res, err := resolver.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: p.CategorySlug, ProductSlug: p.Slug,
	})
	require.NoError(t, err)

	html, err := r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	doc := parseDoc(t, html)

	crumbs := doc.Find("nav.breadcrumb a")
	assert.Equal(t, 3, crumbs.Length())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, testBaseURL+"/be-nl/products/graafbakken/slotenbak-1200/", canonical)
}

func TestRenderProductStockStatus(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-nl")
	res, err := resolver.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: "graafbakken",
		SubcategorySlug: "slotenbakken", ProductSlug: "slotenbak-1200",
	})
	require.NoError(t, err)

	p := testProduct()
	html, err := r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	assert.Equal(t, 1, parseDoc(t, html).Find(".stock-status.in-stock").Length())

	p.StockQuantity = 0
	html, err = r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	assert.Equal(t, 1, parseDoc(t, html).Find(".stock-status.out-of-stock").Length())
}

func TestRenderMetaDescriptionFallbacks(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "be-nl")
	res, err := resolver.Resolve(domain.PageIdentity{
		Locale: "be-nl", CategorySlug: "graafbakken",
		SubcategorySlug: "slotenbakken", ProductSlug: "slotenbak-1200",
	})
	require.NoError(t, err)

	p := testProduct()
	p.SEODescription = "Handgemaakte slotenbak uit Hardox staal."
	html, err := r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	desc, _ := parseDoc(t, html).Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, p.SEODescription, desc)

	p.SEODescription = ""
	p.Description = strings.Repeat("x", 200)
	html, err = r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	desc, _ = parseDoc(t, html).Find(`meta[name="description"]`).Attr("content")
	assert.Len(t, desc, 155)
}

func TestRenderingIsDeterministic(t *testing.T) {
	r, store, resolver := newTestRenderer(t)
	loc := locale(t, store, "de-de")
	p := testProduct()
	res, err := resolver.Resolve(domain.PageIdentity{
		Locale: "de-de", CategorySlug: p.CategorySlug,
		SubcategorySlug: p.SubcategorySlug, ProductSlug: p.Slug,
	})
	require.NoError(t, err)

	first, err := r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	second, err := r.RenderProduct(loc, p, res)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
