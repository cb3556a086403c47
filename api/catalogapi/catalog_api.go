package catalogapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func RegisterCatalogRoutes(g *echo.Group, deps *api.Deps) {
	// GET /api/products – filtered, sorted, paginated listing
	g.GET("/products", func(c echo.Context) error {
		start := time.Now()
		filters := catalog.FiltersFromQuery(c.QueryParams())
		field, desc := catalog.SortFromQuery(c.QueryParams())
		page, _ := strconv.Atoi(c.QueryParam("page"))

		result, degraded := deps.Catalog.List(c.Request().Context(), filters, field, desc, page)
		c.Response().Header().Set("X-Request-Duration-ms",
			strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, echo.Map{
			"page":     result,
			"degraded": degraded,
		})
	})

	// GET /api/products/:handle – detail record
	g.GET("/products/:handle", func(c echo.Context) error {
		p, err := deps.Catalog.ProductByHandle(c.Request().Context(), c.Param("handle"))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		if p == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, p)
	})

	// GET /api/search?q= – full-text search
	g.GET("/search", func(c echo.Context) error {
		q := strings.TrimSpace(c.QueryParam("q"))
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
		}
		products, degraded := deps.Catalog.Search(c.Request().Context(), q)
		return c.JSON(http.StatusOK, echo.Map{
			"items":    products,
			"degraded": degraded,
		})
	})
}
