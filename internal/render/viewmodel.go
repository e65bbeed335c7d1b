package render

import (
	"fmt"
	"strconv"
	"strings"

	"structon/generator/internal/domain"
	"structon/generator/internal/paths"
)

const metaDescriptionLimit = 155

// Label keys every hub page resolves before rendering. A missing key fails
// the page instead of leaving a blank string in the markup.
var hubLabelKeys = []string{
	"home", "products", "subcategories", "products_found", "filters", "clear",
	"brand", "loading_brands", "filter_volume", "excavator_class",
	"filter_width", "attachment", "apply_filters", "sort", "newest", "oldest",
	"name_az", "name_za", "loading", "prev", "next", "meta_suffix",
}

var productLabelKeys = []string{
	"home", "products", "add_to_quote", "stock", "out_of_stock",
	"width", "volume", "weight", "attachment", "excavator", "meta_suffix",
}

type headView struct {
	HTMLLang        string
	MetaDescription string
	Title           string
	MetaSuffix      string
	AssetPrefix     string
	PageStyles      []string
	Canonical       string
	Alternates      []paths.Alternate
}

type subcatCard struct {
	Slug  string
	Title string
}

type hubView struct {
	Head         headView
	Labels       map[string]string
	Title        string
	TitleUpper   string
	Description  string
	HomeLink     string
	ProductsLink string
	CategoryLink string // subcategory pages only
	ParentTitle  string // subcategory pages only
	AssetPrefix  string
	Subcats      []subcatCard // category pages only
}

type specEntry struct {
	Label string
	Value string
}

type productView struct {
	Head             headView
	Labels           map[string]string
	Title            string
	TitleUpper       string
	Description      string
	HomeLink         string
	ProductsLink     string
	CategoryLink     string
	SubcategoryLink  string
	CategoryTitle    string
	SubcategoryTitle string
	ImageURL         string
	KeySpecs         []specEntry
	SpecRows         []specEntry
	StockClass       string
	StockText        string
	ProductID        int
	CartJSON         string
	AssetPrefix      string
}

func (r *Renderer) headView(loc domain.Locale, title, metaSuffix, description string, res paths.Resolved, pageStyles []string) headView {
	return headView{
		HTMLLang:        loc.HTMLLang(),
		MetaDescription: truncate(description, metaDescriptionLimit),
		Title:           title,
		MetaSuffix:      metaSuffix,
		AssetPrefix:     res.AssetPrefix,
		PageStyles:      pageStyles,
		Canonical:       paths.Canonical(r.baseURL, loc.Code, res.PathSuffix),
		Alternates:      paths.Alternates(r.baseURL, res.PathSuffix, r.store.Locales(), r.store.DefaultLocaleCode()),
	}
}

func (r *Renderer) categoryView(loc domain.Locale, cat domain.Category, res paths.Resolved) (hubView, error) {
	labels, err := r.store.Labels(loc.Code, hubLabelKeys...)
	if err != nil {
		return hubView{}, err
	}

	title := cat.LocalizedTitle(loc.Code)
	description := cat.LocalizedDescription(loc.Code)

	cards := make([]subcatCard, 0, len(cat.Subcategories))
	for _, slug := range cat.Subcategories {
		sub, err := r.store.Subcategory(slug)
		if err != nil {
			return hubView{}, err
		}
		cards = append(cards, subcatCard{Slug: slug, Title: sub.LocalizedTitle(loc.Code)})
	}

	return hubView{
		Head:         r.headView(loc, title, labels["meta_suffix"], description, res, []string{"pages/category.css", "pages/products.css"}),
		Labels:       labels,
		Title:        title,
		TitleUpper:   strings.ToUpper(title),
		Description:  description,
		HomeLink:     res.HomeLink,
		ProductsLink: res.ProductsLink,
		AssetPrefix:  res.AssetPrefix,
		Subcats:      cards,
	}, nil
}

func (r *Renderer) subcategoryView(loc domain.Locale, sub domain.Subcategory, parent domain.Category, res paths.Resolved) (hubView, error) {
	labels, err := r.store.Labels(loc.Code, hubLabelKeys...)
	if err != nil {
		return hubView{}, err
	}

	title := sub.LocalizedTitle(loc.Code)

	return hubView{
		Head:         r.headView(loc, title, labels["meta_suffix"], sub.LocalizedDescription(loc.Code), res, []string{"pages/category.css", "pages/products.css"}),
		Labels:       labels,
		Title:        title,
		TitleUpper:   strings.ToUpper(title),
		Description:  sub.LocalizedDescription(loc.Code),
		HomeLink:     res.HomeLink,
		ProductsLink: res.ProductsLink,
		CategoryLink: res.CategoryLink,
		ParentTitle:  parent.LocalizedTitle(loc.Code),
		AssetPrefix:  res.AssetPrefix,
	}, nil
}

func (r *Renderer) productView(loc domain.Locale, p domain.Product, res paths.Resolved) (productView, error) {
	labels, err := r.store.Labels(loc.Code, productLabelKeys...)
	if err != nil {
		return productView{}, err
	}

	metaDesc := p.SEODescription
	if metaDesc == "" {
		metaDesc = truncate(p.Description, metaDescriptionLimit)
	}
	if metaDesc == "" {
		metaDesc = fmt.Sprintf("%s - Professionele kraanbak van %s", p.Title, r.siteName)
	}

	keySpecs := buildKeySpecs(p, labels)
	specRows := buildSpecRows(p, labels)

	cartJSON, err := buildCartPayload(p, labels).JSON()
	if err != nil {
		return productView{}, fmt.Errorf("serializing cart payload: %w", err)
	}

	stockClass, stockText := "out-of-stock", labels["out_of_stock"]
	if p.StockQuantity > 0 {
		stockClass, stockText = "in-stock", labels["stock"]
	}

	return productView{
		Head:             r.headView(loc, p.Title, labels["meta_suffix"], metaDesc, res, []string{"components/quote-cart.css", "pages/product.css"}),
		Labels:           labels,
		Title:            p.Title,
		TitleUpper:       strings.ToUpper(p.Title),
		Description:      p.Description,
		HomeLink:         res.HomeLink,
		ProductsLink:     res.ProductsLink,
		CategoryLink:     res.CategoryLink,
		SubcategoryLink:  res.SubcategoryLink,
		CategoryTitle:    p.CategoryTitle,
		SubcategoryTitle: p.SubcategoryTitle,
		ImageURL:         p.MainImage(),
		KeySpecs:         keySpecs,
		SpecRows:         specRows,
		StockClass:       stockClass,
		StockText:        stockText,
		ProductID:        p.ID,
		CartJSON:         cartJSON,
		AssetPrefix:      res.AssetPrefix,
	}, nil
}

// buildKeySpecs selects the summary specs shown next to the gallery. Absent
// specs are omitted, never zero-filled.
func buildKeySpecs(p domain.Product, labels map[string]string) []specEntry {
	var specs []specEntry
	if p.Width != nil {
		specs = append(specs, specEntry{labels["width"], formatNumber(*p.Width) + " mm"})
	}
	if p.Weight != nil {
		specs = append(specs, specEntry{labels["weight"], formatNumber(*p.Weight) + " kg"})
	}
	if p.AttachmentType != "" {
		specs = append(specs, specEntry{labels["attachment"], p.AttachmentType})
	}
	if p.HasExcavatorRange() {
		specs = append(specs, specEntry{labels["excavator"], fmt.Sprintf("%s-%s t", formatNumber(*p.ExcavatorWeightMin), formatNumber(*p.ExcavatorWeightMax))})
	}
	return specs
}

// buildSpecRows builds the specifications table: entity specs first, then the
// fixed boilerplate rows (material, production origin, lead time, warranty).
func buildSpecRows(p domain.Product, labels map[string]string) []specEntry {
	var rows []specEntry
	if p.Width != nil {
		rows = append(rows, specEntry{labels["width"], formatNumber(*p.Width) + " mm"})
	}
	if p.Volume != nil {
		rows = append(rows, specEntry{labels["volume"], formatNumber(*p.Volume) + " L"})
	}
	if p.Weight != nil {
		rows = append(rows, specEntry{labels["weight"], formatNumber(*p.Weight) + " kg"})
	}
	if p.AttachmentType != "" {
		rows = append(rows, specEntry{labels["attachment"], p.AttachmentType})
	}
	if p.HasExcavatorRange() {
		rows = append(rows, specEntry{"Graafmachine klasse", fmt.Sprintf("%s - %s ton", formatNumber(*p.ExcavatorWeightMin), formatNumber(*p.ExcavatorWeightMax))})
	}
	rows = append(rows,
		specEntry{"Materiaal", "Hardox 450 staal"},
		specEntry{"Productie", "Op maat gemaakt in België"},
		specEntry{"Levertijd", "2-3 weken"},
		specEntry{"Garantie", "12 maanden fabrieksgarantie"},
	)
	return rows
}

func buildCartPayload(p domain.Product, labels map[string]string) domain.CartPayload {
	specs := map[string]string{}
	if p.Width != nil {
		specs["width"] = formatNumber(*p.Width) + " mm"
	}
	if p.Volume != nil {
		specs["volume"] = formatNumber(*p.Volume) + " L"
	}
	if p.Weight != nil {
		specs["weight"] = formatNumber(*p.Weight) + " kg"
	}
	if p.AttachmentType != "" {
		specs["attachment"] = p.AttachmentType
	}
	if p.HasExcavatorRange() {
		specs["excavator"] = fmt.Sprintf("%s-%st", formatNumber(*p.ExcavatorWeightMin), formatNumber(*p.ExcavatorWeightMax))
	}

	return domain.CartPayload{
		ID:              p.ID,
		Slug:            p.Slug,
		CategorySlug:    p.CategorySlug,
		SubcategorySlug: p.SubcategorySlug,
		Title:           p.Title,
		Image:           p.MainImage(),
		Category:        p.CategoryTitle,
		Subcategory:     p.SubcategoryTitle,
		Specs:           specs,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
