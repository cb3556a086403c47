package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/account"
	"github.com/oticaisis/storefront/cart"
	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/config"
	"github.com/oticaisis/storefront/newsletter"
	"github.com/oticaisis/storefront/session"
	"github.com/oticaisis/storefront/wishlist"
)

// Deps is everything a route module may need. Built once in main and passed
// down; modules must not reach for globals.
type Deps struct {
	Config   *config.Config
	Catalog  *catalog.View
	Cart     *cart.Service
	Wishlist *wishlist.Service
	Sessions *session.Manager
	Popup    *newsletter.Popup
	Account  *account.Client
}

var (
	mu      sync.Mutex
	modules []ModuleFunc
	routes  []RouteFunc
	locked  bool
)

// --- /api group modules ---

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, deps *Deps)

// RegisterModule registers an API module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	mu.Lock()
	defer mu.Unlock()
	if locked {
		panic("api/registry: modules locked (register only during init)")
	}
	modules = append(modules, fn)
}

// ApplyModules calls all registered /api modules and locks the registry.
func ApplyModules(g *echo.Group, deps *Deps) {
	mu.Lock()
	defer mu.Unlock()
	for _, fn := range modules {
		fn(g, deps)
	}
	locked = true
}

// --- Root-level routes (public pages, health, media) ---

// RouteFunc registers routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, deps *Deps)

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	mu.Lock()
	defer mu.Unlock()
	if locked {
		panic("api/registry: routes locked (register only during init)")
	}
	routes = append(routes, fn)
}

// ApplyRoutes calls all registered root-level routes.
func ApplyRoutes(e *echo.Echo, deps *Deps) {
	mu.Lock()
	defer mu.Unlock()
	for _, fn := range routes {
		fn(e, deps)
	}
}
