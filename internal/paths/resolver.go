package paths

import (
	"fmt"
	"strings"

	"structon/generator/internal/domain"
)

// TaxonomyLookup is the slice of the catalog store the resolver needs to
// reject identities that reference unknown taxonomy slugs.
type TaxonomyLookup interface {
	HasCategory(slug string) bool
	HasSubcategory(slug string) bool
}

// Resolved carries everything a renderer needs to emit correct relative links
// for one page: where the file goes and how to climb back out of it.
type Resolved struct {
	// OutputDir is the page's directory relative to the web root, e.g.
	// "be-nl/products/graafbakken/slotenbakken".
	OutputDir string
	// PathSuffix is the canonical path below the locale root, with trailing
	// slash, e.g. "products/graafbakken/slotenbakken/".
	PathSuffix string
	Depth      int
	// AssetPrefix reaches the shared asset root ("../.../assets").
	AssetPrefix string
	// Ancestor links, relative to OutputDir.
	HomeLink        string
	ProductsLink    string
	CategoryLink    string
	SubcategoryLink string // empty unless the page sits inside a subcategory
}

// Resolver computes output locations and relative ancestor links purely from
// the shape of a page identity. It never probes the filesystem.
type Resolver struct {
	taxonomy TaxonomyLookup
	segment  string // listing path segment, normally "products"
}

func NewResolver(taxonomy TaxonomyLookup, listingSegment string) *Resolver {
	return &Resolver{taxonomy: taxonomy, segment: listingSegment}
}

// AssetPrefix is the relative path from a page at the given depth back to the
// shared asset root: depth segments to clear the listing subtree, one more to
// clear the locale, one more to clear the web root.
func AssetPrefix(depth int) string {
	return strings.Repeat("../", depth+2) + "assets"
}

// AncestorLink is the relative link from a page at depth to the index page of
// an ancestor at ancestorDepth. Depth 0 linking to itself yields a bare
// "index.html" with no leading "../".
func AncestorLink(depth, ancestorDepth int) string {
	return strings.Repeat("../", depth-ancestorDepth) + "index.html"
}

// homeLink reaches the locale root index, one level above the listing hub.
func homeLink(depth int) string {
	return strings.Repeat("../", depth+1) + "index.html"
}

// Resolve maps a page identity to its output directory and link set. An
// identity whose category or subcategory slug is unknown to the taxonomy is a
// configuration error: the entity is rejected, not silently defaulted.
func (r *Resolver) Resolve(id domain.PageIdentity) (Resolved, error) {
	if id.CategorySlug != "" && !r.taxonomy.HasCategory(id.CategorySlug) {
		return Resolved{}, fmt.Errorf("page %s/%s: unknown category slug %q", id.Locale, id.PathSuffix(r.segment), id.CategorySlug)
	}
	if id.SubcategorySlug != "" && !r.taxonomy.HasSubcategory(id.SubcategorySlug) {
		return Resolved{}, fmt.Errorf("page %s/%s: unknown subcategory slug %q", id.Locale, id.PathSuffix(r.segment), id.SubcategorySlug)
	}

	depth := id.Depth()
	suffix := id.PathSuffix(r.segment)

	res := Resolved{
		OutputDir:    id.Locale + "/" + strings.TrimSuffix(suffix, "/"),
		PathSuffix:   suffix,
		Depth:        depth,
		AssetPrefix:  AssetPrefix(depth),
		HomeLink:     homeLink(depth),
		ProductsLink: AncestorLink(depth, 0),
	}

	if id.CategorySlug != "" && depth > 1 {
		res.CategoryLink = AncestorLink(depth, 1)
	}
	if id.SubcategorySlug != "" && depth > 2 {
		res.SubcategoryLink = AncestorLink(depth, 2)
	}

	return res, nil
}
