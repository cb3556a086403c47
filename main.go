//go:build !cli
// +build !cli

package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/oticaisis/storefront/account"
	"github.com/oticaisis/storefront/api"
	_ "github.com/oticaisis/storefront/api/accountapi"
	_ "github.com/oticaisis/storefront/api/cartapi"
	_ "github.com/oticaisis/storefront/api/catalogapi"
	_ "github.com/oticaisis/storefront/api/checkoutapi"
	_ "github.com/oticaisis/storefront/api/compareapi"
	_ "github.com/oticaisis/storefront/api/graphqlapi"
	_ "github.com/oticaisis/storefront/api/mediaapi"
	_ "github.com/oticaisis/storefront/api/newsletterapi"
	_ "github.com/oticaisis/storefront/api/wishlistapi"
	"github.com/oticaisis/storefront/cart"
	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/commerce"
	"github.com/oticaisis/storefront/config"
	"github.com/oticaisis/storefront/core/cache"
	"github.com/oticaisis/storefront/html"
	prefsrepo "github.com/oticaisis/storefront/model/repository/prefs"
	wishlistrepo "github.com/oticaisis/storefront/model/repository/wishlist"
	"github.com/oticaisis/storefront/newsletter"
	"github.com/oticaisis/storefront/session"
	"github.com/oticaisis/storefront/wishlist"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadAppConfig()

	rdb := config.NewRedis(cfg)

	db, err := config.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	prefsRepo, err := prefsrepo.NewPrefsRepository(db)
	if err != nil {
		log.Fatalf("prefs migration failed: %v", err)
	}
	wishRepo, err := wishlistrepo.NewWishlistRepository(db)
	if err != nil {
		log.Fatalf("wishlist migration failed: %v", err)
	}

	client := commerce.NewClient(cfg.ShopDomain, cfg.StorefrontToken)
	accountClient := account.NewClient(cfg.AccountAPIURL, cfg.AccountAPIKey)

	search := catalog.NewSearchService(cfg.ElasticsearchHost, "oticaisis")
	view := catalog.NewView(client, cache.New(), rdb, search, cfg.FallbackImageURL, cfg.CatalogCacheTTL)

	cartSvc := cart.NewService(client, prefsRepo, cfg.FreeShippingThreshold, cfg.FlatShippingRate)
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cartSvc.Initialize(initCtx); err != nil {
		log.Println("cart initialization deferred:", err)
	}
	cancel()

	sessions := session.NewManager(cfg.SessionTTL)
	defer sessions.Stop()

	deps := &api.Deps{
		Config:   cfg,
		Catalog:  view,
		Cart:     cartSvc,
		Wishlist: wishlist.NewService(wishRepo),
		Sessions: sessions,
		Popup:    newsletter.NewPopup(prefsRepo, accountClient, cfg.PopupDelay, cfg.PopupScrollPct, cfg.PopupCooldownDays),
		Account:  accountClient,
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.Renderer = html.NewRenderer()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})

	api.ApplyRoutes(e, deps)
	api.ApplyModules(e.Group("/api"), deps)

	log.Printf("Server running on :%s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
