package checkoutapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/checkout"
)

func init() {
	api.RegisterModule(RegisterCheckoutRoutes)
}

func RegisterCheckoutRoutes(g *echo.Group, deps *api.Deps) {
	cg := g.Group("/checkout")

	// POST /api/checkout/validate – field-level form validation without handoff
	cg.POST("/validate", func(c echo.Context) error {
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
		return c.JSON(http.StatusOK, echo.Map{
			"valid":    len(problems) == 0,
			"problems": problems,
		})
	})

	// POST /api/checkout/handoff – hosted-checkout URL for a non-empty cart
	cg.POST("/handoff", func(c echo.Context) error {
		sum := deps.Cart.Summary()
		url, err := checkout.Handoff(sum.CheckoutURL, sum.ItemCount)
		if err != nil {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"checkoutUrl": url})
	})
}
