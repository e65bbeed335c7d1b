package domain

import "strings"

type PageKind string

func (k PageKind) String() string {
	return string(k)
}

const (
	PageKindListing     PageKind = "listing"
	PageKindCategory    PageKind = "category"
	PageKindSubcategory PageKind = "subcategory"
	PageKindProduct     PageKind = "product"
)

// PageIdentity uniquely determines one output file and one canonical URL:
// (locale, category, optional subcategory, optional product slug). An identity
// with an empty category slug denotes the top-level product listing hub.
type PageIdentity struct {
	Locale          string
	CategorySlug    string
	SubcategorySlug string
	ProductSlug     string
}

// Kind derives the page kind from the identity shape alone.
func (p PageIdentity) Kind() PageKind {
	switch {
	case p.ProductSlug != "":
		return PageKindProduct
	case p.SubcategorySlug != "":
		return PageKindSubcategory
	case p.CategorySlug != "":
		return PageKindCategory
	default:
		return PageKindListing
	}
}

// Depth is the number of path segments below the locale's product listing
// directory: 0 for the listing hub, 1 for a category page, 2 for a
// subcategory page or an un-subcategorized product, 3 for a product inside a
// subcategory.
func (p PageIdentity) Depth() int {
	d := 0
	if p.CategorySlug != "" {
		d++
	}
	if p.SubcategorySlug != "" {
		d++
	}
	if p.ProductSlug != "" {
		d++
	}
	return d
}

// PathSuffix is the canonical path below the locale root, with a trailing
// slash: "products/{category}/[{subcategory}/][{slug}/]". The listing segment
// ("products") is configurable site-wide.
func (p PageIdentity) PathSuffix(listingSegment string) string {
	var b strings.Builder
	b.WriteString(listingSegment)
	b.WriteByte('/')
	for _, seg := range []string{p.CategorySlug, p.SubcategorySlug, p.ProductSlug} {
		if seg != "" {
			b.WriteString(seg)
			b.WriteByte('/')
		}
	}
	return b.String()
}
