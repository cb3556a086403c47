package newsletterapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/newsletter"
	"github.com/oticaisis/storefront/session"
)

func init() {
	api.RegisterModule(RegisterNewsletterRoutes)
}

func RegisterNewsletterRoutes(g *echo.Group, deps *api.Deps) {
	ng := g.Group("/newsletter")

	// GET /api/newsletter/popup?scroll=&exit= – should the prompt appear now
	ng.GET("/popup", func(c echo.Context) error {
		s := api.ResolveSession(c, deps.Sessions)

		scroll, _ := strconv.Atoi(c.QueryParam("scroll"))
		sig := newsletter.Signal{
			Elapsed:    s.Age(time.Now()),
			ScrollPct:  scroll,
			ExitIntent: c.QueryParam("exit") == "true",
		}

		var shown bool
		s.Do(func(s *session.Session) { shown = s.PopupShown })

		show := deps.Popup.ShouldShow(shown, sig)
		if show {
			s.Do(func(s *session.Session) { s.PopupShown = true })
		}
		return c.JSON(http.StatusOK, echo.Map{"show": show})
	})

	// POST /api/newsletter/dismiss – start the cooldown
	ng.POST("/dismiss", func(c echo.Context) error {
		deps.Popup.Dismiss()
		return c.JSON(http.StatusOK, echo.Map{"dismissed": true})
	})

	// POST /api/newsletter/subscribe – join the list, suppressing the prompt
	ng.POST("/subscribe", func(c echo.Context) error {
		var body struct {
			Email string `json:"email"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := deps.Popup.Subscribe(c.Request().Context(), body.Email); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"subscribed": true})
	})
}
