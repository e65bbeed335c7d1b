package domain

// Category is a top-level catalog category with its ordered subcategories.
type Category struct {
	Slug                    string
	Title                   string
	TitleTranslations       map[string]string
	Description             string
	DescriptionTranslations map[string]string
	Subcategories           []string
}

// LocalizedTitle returns the title for the given locale code, falling back to
// the base title.
func (c Category) LocalizedTitle(locale string) string {
	if t, ok := c.TitleTranslations[locale]; ok {
		return t
	}
	return c.Title
}

// LocalizedDescription returns the description for the given locale code.
func (c Category) LocalizedDescription(locale string) string {
	if d, ok := c.DescriptionTranslations[locale]; ok {
		return d
	}
	return c.Description
}

// Subcategory belongs to exactly one parent category.
type Subcategory struct {
	Slug                    string
	ParentCategory          string
	Title                   string
	TitleTranslations       map[string]string
	Description             string
	DescriptionTranslations map[string]string
}

func (s Subcategory) LocalizedTitle(locale string) string {
	if t, ok := s.TitleTranslations[locale]; ok {
		return t
	}
	return s.Title
}

func (s Subcategory) LocalizedDescription(locale string) string {
	if d, ok := s.DescriptionTranslations[locale]; ok {
		return d
	}
	return s.Description
}
