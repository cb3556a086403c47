package wishlistapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
)

func init() {
	api.RegisterModule(RegisterWishlistRoutes)
}

func RegisterWishlistRoutes(g *echo.Group, deps *api.Deps) {
	wg := g.Group("/wishlist")

	// GET /api/wishlist – saved products from their snapshots
	wg.GET("", func(c echo.Context) error {
		products, err := deps.Wishlist.Products()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"items": products,
			"count": len(products),
		})
	})

	// POST /api/wishlist – save a product by handle
	wg.POST("", func(c echo.Context) error {
		var body struct {
			Handle string `json:"handle"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Handle == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "handle is required"})
		}

		p, err := deps.Catalog.ProductByHandle(c.Request().Context(), body.Handle)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		if p == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err := deps.Wishlist.Add(*p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"saved": true, "productId": p.ID})
	})

	// DELETE /api/wishlist/:productId – drop a product (no-op when absent)
	wg.DELETE("/:productId", func(c echo.Context) error {
		if err := deps.Wishlist.Remove(c.Param("productId")); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"saved": false})
	})

	// POST /api/wishlist/clear – empty the wishlist
	wg.POST("/clear", func(c echo.Context) error {
		if err := deps.Wishlist.Clear(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"count": 0})
	})
}
