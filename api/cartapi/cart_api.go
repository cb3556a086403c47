package cartapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/cart"
	"github.com/oticaisis/storefront/checkout"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

func RegisterCartRoutes(g *echo.Group, deps *api.Deps) {
	cg := g.Group("/cart")

	// GET /api/cart – current cart with totals
	cg.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, deps.Cart.Summary())
	})

	// POST /api/cart/refresh – re-sync with the remote cart
	cg.POST("/refresh", func(c echo.Context) error {
		if err := deps.Cart.Refresh(c.Request().Context()); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, deps.Cart.Summary())
	})

	// POST /api/cart/items – add by variant ID, or by product handle (the
	// first available variant is resolved; a sold-out product is a conflict).
	// Adds merge into an existing line for the same variant.
	cg.POST("/items", func(c echo.Context) error {
		var body struct {
			VariantID string `json:"variantId"`
			Handle    string `json:"handle"`
			Quantity  int    `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		if body.Handle != "" {
			p, err := deps.Catalog.ProductByHandle(c.Request().Context(), body.Handle)
			if err != nil {
				return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
			}
			if p == nil {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			if err := deps.Cart.AddProduct(c.Request().Context(), *p, body.Quantity); err != nil {
				if errors.Is(err, cart.ErrNotPurchasable) {
					return c.JSON(http.StatusConflict, echo.Map{"error": cart.ErrNotPurchasable.Error()})
				}
				return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, deps.Cart.Summary())
		}

		if body.VariantID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "variantId or handle is required"})
		}
		if err := deps.Cart.Add(c.Request().Context(), body.VariantID, body.Quantity); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, deps.Cart.Summary())
	})

	// PUT /api/cart/items/:id – set a line's quantity (0 removes)
	cg.PUT("/items/:id", func(c echo.Context) error {
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := deps.Cart.UpdateQuantity(c.Request().Context(), c.Param("id"), body.Quantity); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, deps.Cart.Summary())
	})

	// DELETE /api/cart/items/:id – remove a line
	cg.DELETE("/items/:id", func(c echo.Context) error {
		if err := deps.Cart.Remove(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, deps.Cart.Summary())
	})

	// POST /api/cart/clear – abandon the cart for a fresh one
	cg.POST("/clear", func(c echo.Context) error {
		if err := deps.Cart.Clear(c.Request().Context()); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, deps.Cart.Summary())
	})

	// POST /api/cart/checkout – validate forms and hand off to hosted checkout
	cg.POST("/checkout", func(c echo.Context) error {
		var body struct {
			Address checkout.Address `json:"address"`
			Payment checkout.Payment `json:"payment"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		problems := checkout.ValidateAddress(body.Address)
		for field, msg := range checkout.ValidatePayment(body.Payment) {
			problems[field] = msg
		}
		if len(problems) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"problems": problems})
		}

		sum := deps.Cart.Summary()
		url, err := checkout.Handoff(sum.CheckoutURL, sum.ItemCount)
		if err != nil {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"checkoutUrl": url})
	})
}
