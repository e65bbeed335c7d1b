package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"structon/generator/internal/catalog"
	"structon/generator/internal/domain"
	"structon/generator/internal/paths"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer turns catalog entities into complete HTML documents. Rendering is
// a pure function of (entity, locale, resolved paths): identical inputs
// produce byte-identical output, so regeneration is diffable and idempotent.
type Renderer struct {
	store    *catalog.Store
	baseURL  string
	siteName string
	tmpl     *template.Template
}

func New(store *catalog.Store, baseURL, siteName string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{
		store:    store,
		baseURL:  baseURL,
		siteName: siteName,
		tmpl:     tmpl,
	}, nil
}

// RenderCategory renders a category hub page: hero, filter scaffold,
// subcategory card grid, products toolbar.
func (r *Renderer) RenderCategory(loc domain.Locale, cat domain.Category, res paths.Resolved) (string, error) {
	vm, err := r.categoryView(loc, cat, res)
	if err != nil {
		return "", fmt.Errorf("category %s/%s: %w", loc.Code, cat.Slug, err)
	}
	return r.execute("category.gohtml", vm)
}

// RenderSubcategory renders a subcategory hub page. Same scaffold as a
// category page, without the card grid and with the parent category in the
// breadcrumb.
func (r *Renderer) RenderSubcategory(loc domain.Locale, sub domain.Subcategory, parent domain.Category, res paths.Resolved) (string, error) {
	vm, err := r.subcategoryView(loc, sub, parent, res)
	if err != nil {
		return "", fmt.Errorf("subcategory %s/%s: %w", loc.Code, sub.Slug, err)
	}
	return r.execute("subcategory.gohtml", vm)
}

// RenderProduct renders a product detail page: gallery, key specs, purchase
// card with the add-to-quote payload, specifications table.
func (r *Renderer) RenderProduct(loc domain.Locale, p domain.Product, res paths.Resolved) (string, error) {
	vm, err := r.productView(loc, p, res)
	if err != nil {
		return "", fmt.Errorf("product %s/%s: %w", loc.Code, p.Slug, err)
	}
	return r.execute("product.gohtml", vm)
}

func (r *Renderer) execute(name string, vm any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, vm); err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	return buf.String(), nil
}
