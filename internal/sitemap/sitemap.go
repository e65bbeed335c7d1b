package sitemap

import (
	"encoding/xml"
	"fmt"
	"sort"

	"structon/generator/internal/catalog"
	"structon/generator/internal/domain"
	"structon/generator/internal/paths"

	log "github.com/sirupsen/logrus"
)

// changefreq/priority classification, keyed by page role.
const (
	classHome = iota
	classHub
	classTaxonomy
	classProduct
	classOther
)

func classify(class int) (changefreq, priority string) {
	switch class {
	case classHome:
		return "daily", "1.0"
	case classHub:
		return "weekly", "0.9"
	case classTaxonomy:
		return "weekly", "0.8"
	case classProduct:
		return "weekly", "0.7"
	default:
		return "monthly", "0.7"
	}
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type urlEntry struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod"`
	ChangeFreq string      `xml:"changefreq"`
	Priority   string      `xml:"priority"`
	Alternates []xhtmlLink `xml:"xhtml:link"`
}

type urlSet struct {
	XMLName    xml.Name   `xml:"urlset"`
	Xmlns      string     `xml:"xmlns,attr"`
	XmlnsXhtml string     `xml:"xmlns:xhtml,attr"`
	URLs       []urlEntry `xml:"url"`
}

type indexEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []indexEntry `xml:"sitemap"`
}

const sitemapsNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
const xhtmlNS = "http://www.w3.org/1999/xhtml"

// Emitter derives per-locale sitemaps and the sitemap index from the same
// taxonomy and product snapshot the page generator consumes, so the URL set
// and the written page set can never drift apart.
type Emitter struct {
	store     *catalog.Store
	baseURL   string
	segment   string
	buildDate string // YYYY-MM-DD, injected so runs are reproducible in tests
}

func NewEmitter(store *catalog.Store, baseURL, listingSegment, buildDate string) *Emitter {
	return &Emitter{
		store:     store,
		baseURL:   baseURL,
		segment:   listingSegment,
		buildDate: buildDate,
	}
}

// Filename returns the per-locale sitemap file name.
func Filename(locale string) string {
	return fmt.Sprintf("sitemap-%s.xml", locale)
}

// entry is one page in classification order: path suffix plus its class.
type entry struct {
	suffix string
	class  int
}

// entries derives the page set for one locale: home, listing hub, taxonomy
// pages in catalog order, then active identifiable products sorted by
// (category, subcategory, slug). Products that cannot form a valid identity
// or reference an unknown category are skipped here exactly as the page
// generator skips them.
func (e *Emitter) entries(products []domain.Product) []entry {
	out := []entry{
		{suffix: "", class: classHome},
		{suffix: e.segment + "/", class: classHub},
	}

	for _, catSlug := range e.store.CategorySlugs() {
		cat, err := e.store.Category(catSlug)
		if err != nil {
			continue
		}
		out = append(out, entry{
			suffix: domain.PageIdentity{CategorySlug: catSlug}.PathSuffix(e.segment),
			class:  classTaxonomy,
		})
		for _, subSlug := range cat.Subcategories {
			out = append(out, entry{
				suffix: domain.PageIdentity{CategorySlug: catSlug, SubcategorySlug: subSlug}.PathSuffix(e.segment),
				class:  classTaxonomy,
			})
		}
	}

	eligible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive || !p.Identifiable() {
			continue
		}
		if !e.store.HasCategory(p.CategorySlug) {
			log.Warnf("Sitemap: skipping product %q with unknown category %q", p.Slug, p.CategorySlug)
			continue
		}
		eligible = append(eligible, p)
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.CategorySlug != b.CategorySlug {
			return a.CategorySlug < b.CategorySlug
		}
		if a.SubcategorySlug != b.SubcategorySlug {
			return a.SubcategorySlug < b.SubcategorySlug
		}
		return a.Slug < b.Slug
	})

	for _, p := range eligible {
		id := domain.PageIdentity{
			CategorySlug:    p.CategorySlug,
			SubcategorySlug: p.SubcategorySlug,
			ProductSlug:     p.Slug,
		}
		out = append(out, entry{suffix: id.PathSuffix(e.segment), class: classProduct})
	}

	return out
}

// LocaleSitemap renders the complete sitemap document for one locale. Every
// URL carries the full hreflang alternate set from the shared rule, so the
// alternates here and in page heads are always symmetric.
func (e *Emitter) LocaleSitemap(locale string, products []domain.Product) ([]byte, error) {
	set := urlSet{
		Xmlns:      sitemapsNS,
		XmlnsXhtml: xhtmlNS,
	}

	for _, ent := range e.entries(products) {
		changefreq, priority := classify(ent.class)
		u := urlEntry{
			Loc:        paths.Canonical(e.baseURL, locale, ent.suffix),
			LastMod:    e.buildDate,
			ChangeFreq: changefreq,
			Priority:   priority,
		}
		for _, alt := range paths.Alternates(e.baseURL, ent.suffix, e.store.Locales(), e.store.DefaultLocaleCode()) {
			u.Alternates = append(u.Alternates, xhtmlLink{
				Rel:      "alternate",
				Hreflang: alt.Hreflang,
				Href:     alt.Href,
			})
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap for %s: %w", locale, err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Index renders the sitemap index listing every per-locale sitemap.
func (e *Emitter) Index() ([]byte, error) {
	idx := sitemapIndex{Xmlns: sitemapsNS}
	for _, loc := range e.store.Locales() {
		idx.Sitemaps = append(idx.Sitemaps, indexEntry{
			Loc:     fmt.Sprintf("%s/%s", e.baseURL, Filename(loc.Code)),
			LastMod: e.buildDate,
		})
	}

	body, err := xml.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap index: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
