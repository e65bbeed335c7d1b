package paths

import "structon/generator/internal/domain"

// Alternate is one hreflang link: an equivalent page in another locale.
type Alternate struct {
	Hreflang string
	Href     string
}

// Canonical builds the canonical URL for a page: {base}/{locale}/{suffix}.
func Canonical(baseURL, localeCode, pathSuffix string) string {
	return baseURL + "/" + localeCode + "/" + pathSuffix
}

// Alternates emits the full hreflang set for one path suffix: one entry per
// supported locale plus an x-default pointing at the default locale. Page
// heads and sitemap entries share this single implementation; the two must
// never diverge or reciprocal hreflang validation breaks.
func Alternates(baseURL, pathSuffix string, locales []domain.Locale, defaultLocale string) []Alternate {
	out := make([]Alternate, 0, len(locales)+1)
	for _, loc := range locales {
		out = append(out, Alternate{
			Hreflang: loc.Hreflang(),
			Href:     Canonical(baseURL, loc.Code, pathSuffix),
		})
	}
	out = append(out, Alternate{
		Hreflang: "x-default",
		Href:     Canonical(baseURL, defaultLocale, pathSuffix),
	})
	return out
}
