package compareapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/compare"
	"github.com/oticaisis/storefront/session"
)

func init() {
	api.RegisterModule(RegisterCompareRoutes)
}

func RegisterCompareRoutes(g *echo.Group, deps *api.Deps) {
	cg := g.Group("/compare")

	state := func(c echo.Context) *session.Session {
		return api.ResolveSession(c, deps.Sessions)
	}

	// GET /api/compare – this session's comparison set
	cg.GET("", func(c echo.Context) error {
		var list compare.List
		state(c).Do(func(s *session.Session) { list = s.Compare })
		return c.JSON(http.StatusOK, list)
	})

	// POST /api/compare – add a product by handle (max 3, no duplicates)
	cg.POST("", func(c echo.Context) error {
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

		var notice string
		var added bool
		var list compare.List
		state(c).Do(func(s *session.Session) {
			notice, added = s.Compare.Add(*p)
			list = s.Compare
		})
		return c.JSON(http.StatusOK, echo.Map{
			"added":  added,
			"notice": notice,
			"list":   list,
		})
	})

	// DELETE /api/compare/:productId – drop a product
	cg.DELETE("/:productId", func(c echo.Context) error {
		var list compare.List
		state(c).Do(func(s *session.Session) {
			s.Compare.Remove(c.Param("productId"))
			list = s.Compare
		})
		return c.JSON(http.StatusOK, list)
	})

	// POST /api/compare/clear – empty the comparison
	cg.POST("/clear", func(c echo.Context) error {
		var list compare.List
		state(c).Do(func(s *session.Session) {
			s.Compare.Clear()
			list = s.Compare
		})
		return c.JSON(http.StatusOK, list)
	})

	// POST /api/compare/close – collapse the tray, keeping the items
	cg.POST("/close", func(c echo.Context) error {
		var list compare.List
		state(c).Do(func(s *session.Session) {
			s.Compare.Open = false
			list = s.Compare
		})
		return c.JSON(http.StatusOK, list)
	})
}
