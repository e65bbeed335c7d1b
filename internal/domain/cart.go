package domain

import "encoding/json"

// CartPayload is the add-to-quote payload embedded in the data-product
// attribute for client-side consumption. Field order is fixed; the specs map
// marshals with sorted keys, so serialization is deterministic.
type CartPayload struct {
	ID              int               `json:"id"`
	Slug            string            `json:"slug"`
	CategorySlug    string            `json:"category_slug"`
	SubcategorySlug string            `json:"subcategory_slug"`
	Title           string            `json:"title"`
	Image           string            `json:"image"`
	Category        string            `json:"category"`
	Subcategory     string            `json:"subcategory"`
	Specs           map[string]string `json:"specs"`
}

// JSON serializes the payload. The template layer HTML-escapes it when
// placing it into the attribute.
func (c CartPayload) JSON() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
