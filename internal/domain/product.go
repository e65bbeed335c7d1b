package domain

// CloudinaryImage is one entry of a product's ordered image list.
type CloudinaryImage struct {
	URL string `json:"url"`
}

// Product mirrors one record of the content API's /products listing. Numeric
// specs are pointers so absent values are distinguishable from zero; absent
// specs are omitted from rendered output, never zero-filled.
type Product struct {
	ID                 int               `json:"id"`
	Slug               string            `json:"slug"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	SEODescription     string            `json:"seo_description,omitempty"`
	CategorySlug       string            `json:"category_slug"`
	CategoryTitle      string            `json:"category_title"`
	SubcategorySlug    string            `json:"subcategory_slug,omitempty"`
	SubcategoryTitle   string            `json:"subcategory_title,omitempty"`
	Width              *float64          `json:"width"`
	Volume             *float64          `json:"volume"`
	Weight             *float64          `json:"weight"`
	AttachmentType     string            `json:"attachment_type"`
	ExcavatorWeightMin *float64          `json:"excavator_weight_min"`
	ExcavatorWeightMax *float64          `json:"excavator_weight_max"`
	StockQuantity      int               `json:"stock_quantity"`
	IsActive           bool              `json:"is_active"`
	CloudinaryImages   []CloudinaryImage `json:"cloudinary_images"`
}

// MainImage returns the first image URL, or "" when the product has none.
func (p Product) MainImage() string {
	if len(p.CloudinaryImages) > 0 {
		return p.CloudinaryImages[0].URL
	}
	return ""
}

// Identifiable reports whether the product can form a valid page identity.
// Products without a slug or category slug produce no output.
func (p Product) Identifiable() bool {
	return p.Slug != "" && p.CategorySlug != ""
}

// HasExcavatorRange reports whether both ends of the excavator weight class
// are present.
func (p Product) HasExcavatorRange() bool {
	return p.ExcavatorWeightMin != nil && p.ExcavatorWeightMax != nil
}
