package container

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"structon/generator/internal/catalog"
	"structon/generator/internal/client"
	"structon/generator/internal/config"
	"structon/generator/internal/domain"
	"structon/generator/internal/paths"
	"structon/generator/internal/render"
	"structon/generator/internal/service"
	"structon/generator/internal/sitemap"
	"structon/generator/internal/writer"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Store   *catalog.Store
	Client  client.ProductsClient
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	store, err := catalog.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog taxonomy: %w", err)
	}

	resolver := paths.NewResolver(store, cfg.Site.ProductsSegment)

	renderer, err := render.New(store, cfg.Site.BaseURL, cfg.Site.SiteName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	siteWriter := writer.NewSiteWriter(afero.NewOsFs(), cfg.Site.OutputDir)

	emitter := sitemap.NewEmitter(store, cfg.Site.BaseURL, cfg.Site.ProductsSegment, time.Now().Format("2006-01-02"))

	productsClient := client.NewProductsClient(cfg.API)

	svc := service.NewService(store, resolver, renderer, siteWriter, emitter)

	return &Container{
		Config:  cfg,
		Store:   store,
		Client:  productsClient,
		Service: svc,
	}, nil
}

// Run executes one full generation: hub pages are generated while the product
// snapshot downloads, then product pages and sitemaps follow. All filesystem
// writes happen on the hub/product path sequentially; the fetch goroutine
// only does network I/O.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	var hubStats service.Stats
	var products []domain.Product
	var fetchErr error

	g.Go(func() error {
		var err error
		hubStats, err = c.Service.GenerateHubPages(ctx)
		return err
	})

	g.Go(func() error {
		// A failed fetch is a partial-progress condition, not a run
		// failure: generate whatever was accumulated.
		products, fetchErr = c.Client.FetchAllProducts(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	productStats, err := c.Service.GenerateProductPages(ctx, products)
	if err != nil {
		return err
	}

	if err := c.Service.EmitSitemaps(products); err != nil {
		return err
	}

	log.Infof("🎉 Done! Created %d pages (%d hub, %d product), skipped %d entities",
		hubStats.PagesWritten+productStats.PagesWritten,
		hubStats.PagesWritten, productStats.PagesWritten,
		hubStats.EntitiesSkipped+productStats.EntitiesSkipped)

	if fetchErr != nil {
		log.Warnf("⚠️ Product snapshot was incomplete: %v — generated pages cover %d fetched products only", fetchErr, len(products))
	}

	return nil
}
