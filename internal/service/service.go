package service

import (
	"context"

	"structon/generator/internal/catalog"
	"structon/generator/internal/domain"
	"structon/generator/internal/paths"
	"structon/generator/internal/render"
	"structon/generator/internal/sitemap"
	"structon/generator/internal/writer"

	log "github.com/sirupsen/logrus"
)

// Service drives one generation run: hub pages from the taxonomy, product
// pages from the fetched snapshot, sitemaps from both.
//
// Error policy per entity class: taxonomy reference errors and render errors
// are fatal to the affected entity only (logged with its identity, run
// continues); filesystem write errors abort the run.
type Service struct {
	store    *catalog.Store
	resolver *paths.Resolver
	renderer *render.Renderer
	writer   writer.SiteWriter
	sitemaps *sitemap.Emitter
}

// Stats summarizes one generation run for the end-of-run report.
type Stats struct {
	PagesWritten    int
	EntitiesSkipped int
}

func NewService(
	store *catalog.Store,
	resolver *paths.Resolver,
	renderer *render.Renderer,
	writer writer.SiteWriter,
	sitemaps *sitemap.Emitter,
) *Service {
	return &Service{
		store:    store,
		resolver: resolver,
		renderer: renderer,
		writer:   writer,
		sitemaps: sitemaps,
	}
}

// GenerateHubPages renders and writes every category and subcategory page for
// every locale, driven directly by the taxonomy.
func (s *Service) GenerateHubPages(ctx context.Context) (Stats, error) {
	var stats Stats

	for _, loc := range s.store.Locales() {
		log.Infof("📁 Processing locale: %s", loc.Code)

		for _, catSlug := range s.store.CategorySlugs() {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			cat, err := s.store.Category(catSlug)
			if err != nil {
				log.Errorf("❌ Skipping category %s/%s: %v", loc.Code, catSlug, err)
				stats.EntitiesSkipped++
				continue
			}

			if err := s.writeCategoryPage(loc, cat, &stats); err != nil {
				return stats, err
			}

			for _, subSlug := range cat.Subcategories {
				if err := s.writeSubcategoryPage(loc, cat, subSlug, &stats); err != nil {
					return stats, err
				}
			}
		}
	}

	return stats, nil
}

func (s *Service) writeCategoryPage(loc domain.Locale, cat domain.Category, stats *Stats) error {
	id := domain.PageIdentity{Locale: loc.Code, CategorySlug: cat.Slug}

	res, err := s.resolver.Resolve(id)
	if err != nil {
		log.Errorf("❌ Skipping category page %s/%s: %v", loc.Code, cat.Slug, err)
		stats.EntitiesSkipped++
		return nil
	}

	html, err := s.renderer.RenderCategory(loc, cat, res)
	if err != nil {
		log.Errorf("❌ Failed to render category page %s/%s: %v", loc.Code, cat.Slug, err)
		stats.EntitiesSkipped++
		return nil
	}

	if err := s.writer.WritePage(res.OutputDir, html); err != nil {
		return err
	}
	stats.PagesWritten++
	log.Debugf("  ✅ Created: /%s", res.OutputDir)
	return nil
}

func (s *Service) writeSubcategoryPage(loc domain.Locale, parent domain.Category, subSlug string, stats *Stats) error {
	sub, err := s.store.Subcategory(subSlug)
	if err != nil {
		log.Errorf("❌ Skipping subcategory %s/%s/%s: %v", loc.Code, parent.Slug, subSlug, err)
		stats.EntitiesSkipped++
		return nil
	}

	id := domain.PageIdentity{Locale: loc.Code, CategorySlug: parent.Slug, SubcategorySlug: subSlug}
	res, err := s.resolver.Resolve(id)
	if err != nil {
		log.Errorf("❌ Skipping subcategory page %s/%s/%s: %v", loc.Code, parent.Slug, subSlug, err)
		stats.EntitiesSkipped++
		return nil
	}

	html, err := s.renderer.RenderSubcategory(loc, sub, parent, res)
	if err != nil {
		log.Errorf("❌ Failed to render subcategory page %s/%s/%s: %v", loc.Code, parent.Slug, subSlug, err)
		stats.EntitiesSkipped++
		return nil
	}

	if err := s.writer.WritePage(res.OutputDir, html); err != nil {
		return err
	}
	stats.PagesWritten++
	log.Debugf("    ✅ Created: /%s", res.OutputDir)
	return nil
}

// GenerateProductPages renders and writes one page per locale for every
// active product that can form a valid page identity. Inactive products are
// excluded entirely; products missing a slug or category slug are skipped
// with one warning each.
func (s *Service) GenerateProductPages(ctx context.Context, products []domain.Product) (Stats, error) {
	var stats Stats

	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if !p.Identifiable() {
			log.Warnf("⚠️ Skipping product id=%d: missing slug or category_slug", p.ID)
			stats.EntitiesSkipped++
			continue
		}

		for _, loc := range s.store.Locales() {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			id := domain.PageIdentity{
				Locale:          loc.Code,
				CategorySlug:    p.CategorySlug,
				SubcategorySlug: p.SubcategorySlug,
				ProductSlug:     p.Slug,
			}

			res, err := s.resolver.Resolve(id)
			if err != nil {
				log.Errorf("❌ Skipping product %s (category %q): %v", p.Slug, p.CategorySlug, err)
				stats.EntitiesSkipped++
				break // same taxonomy error in every locale
			}

			html, err := s.renderer.RenderProduct(loc, p, res)
			if err != nil {
				log.Errorf("❌ Failed to render product page %s/%s: %v", loc.Code, p.Slug, err)
				stats.EntitiesSkipped++
				continue
			}

			if err := s.writer.WritePage(res.OutputDir, html); err != nil {
				return stats, err
			}
			stats.PagesWritten++
		}
	}

	log.Infof("✅ Created %d product pages", stats.PagesWritten)
	return stats, nil
}

// EmitSitemaps writes one sitemap per locale plus the sitemap index, derived
// from the same taxonomy and product snapshot the page generators consumed.
func (s *Service) EmitSitemaps(products []domain.Product) error {
	for _, loc := range s.store.Locales() {
		data, err := s.sitemaps.LocaleSitemap(loc.Code, products)
		if err != nil {
			return err
		}
		if err := s.writer.WriteFile(sitemap.Filename(loc.Code), data); err != nil {
			return err
		}
		log.Infof("🗺️ Wrote %s", sitemap.Filename(loc.Code))
	}

	index, err := s.sitemaps.Index()
	if err != nil {
		return err
	}
	if err := s.writer.WriteFile("sitemap.xml", index); err != nil {
		return err
	}
	log.Info("🗺️ Wrote sitemap.xml")
	return nil
}
