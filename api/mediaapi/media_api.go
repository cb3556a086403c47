package mediaapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/media"
)

func init() {
	api.RegisterRoute(RegisterMediaRoutes)
}

// RegisterMediaRoutes serves resized webp thumbnails of remote product
// images at /media/thumb.
func RegisterMediaRoutes(e *echo.Echo, deps *api.Deps) {
	proxy := media.NewProxy(nil, time.Hour)

	e.GET("/media/thumb", func(c echo.Context) error {
		src := c.QueryParam("src")
		if src == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "src is required"})
		}
		w, _ := strconv.Atoi(c.QueryParam("w"))
		h, _ := strconv.Atoi(c.QueryParam("h"))

		out, err := proxy.Thumbnail(c.Request().Context(), src, w, h)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		return c.Blob(http.StatusOK, "image/webp", out)
	})
}
