package catalog

import (
	"fmt"

	"structon/generator/internal/domain"
)

// Store is the read-only taxonomy and locale registry for one generation run.
// It is loaded once and validated; all lookups afterwards are in-memory.
type Store struct {
	categories    map[string]domain.Category
	categoryOrder []string
	subcategories map[string]domain.Subcategory
	labels        map[string]map[string]string
	locales       []domain.Locale
	defaultLocale string
}

// NewStore builds the store from the static catalog data and verifies its
// referential invariants: every subcategory a category lists must exist, and
// every subcategory's parent must be a known category. Every locale must have
// a label bundle.
func NewStore() (*Store, error) {
	s := &Store{
		categories:    categories,
		categoryOrder: categoryOrder,
		subcategories: subcategories,
		labels:        labels,
		locales:       locales,
		defaultLocale: DefaultLocale,
	}

	for slug, cat := range s.categories {
		for _, sub := range cat.Subcategories {
			if _, ok := s.subcategories[sub]; !ok {
				return nil, fmt.Errorf("category %q references unknown subcategory %q", slug, sub)
			}
		}
	}
	for slug, sub := range s.subcategories {
		if _, ok := s.categories[sub.ParentCategory]; !ok {
			return nil, fmt.Errorf("subcategory %q references unknown parent category %q", slug, sub.ParentCategory)
		}
	}
	for _, loc := range s.locales {
		if _, ok := s.labels[loc.Code]; !ok {
			return nil, fmt.Errorf("locale %q has no label bundle", loc.Code)
		}
	}

	return s, nil
}

// Locales returns the supported locales in emission order.
func (s *Store) Locales() []domain.Locale {
	return s.locales
}

// DefaultLocaleCode returns the locale used as the x-default hreflang target.
func (s *Store) DefaultLocaleCode() string {
	return s.defaultLocale
}

// CategorySlugs returns all category slugs in taxonomy order.
func (s *Store) CategorySlugs() []string {
	return s.categoryOrder
}

// Category looks up a category by slug.
func (s *Store) Category(slug string) (domain.Category, error) {
	cat, ok := s.categories[slug]
	if !ok {
		return domain.Category{}, fmt.Errorf("unknown category slug %q", slug)
	}
	return cat, nil
}

// Subcategory looks up a subcategory by slug.
func (s *Store) Subcategory(slug string) (domain.Subcategory, error) {
	sub, ok := s.subcategories[slug]
	if !ok {
		return domain.Subcategory{}, fmt.Errorf("unknown subcategory slug %q", slug)
	}
	return sub, nil
}

// HasCategory reports whether the slug names a known category.
func (s *Store) HasCategory(slug string) bool {
	_, ok := s.categories[slug]
	return ok
}

// HasSubcategory reports whether the slug names a known subcategory.
func (s *Store) HasSubcategory(slug string) bool {
	_, ok := s.subcategories[slug]
	return ok
}

// Label returns one UI string for a locale. A missing key is an error, never
// a silent blank: pages must not render with holes in them.
func (s *Store) Label(locale, key string) (string, error) {
	bundle, ok := s.labels[locale]
	if !ok {
		return "", fmt.Errorf("no label bundle for locale %q", locale)
	}
	v, ok := bundle[key]
	if !ok {
		return "", fmt.Errorf("missing label key %q for locale %q", key, locale)
	}
	return v, nil
}

// Labels resolves a set of label keys for a locale, failing on the first
// missing key.
func (s *Store) Labels(locale string, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := s.Label(locale, k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
