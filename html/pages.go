package html

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/session"
)

func init() {
	api.RegisterRoute(RegisterPageRoutes)
}

// RegisterPageRoutes registers the server-rendered storefront pages.
func RegisterPageRoutes(e *echo.Echo, deps *api.Deps) {
	e.StaticFS("/static", StaticFS())

	e.GET("/", func(c echo.Context) error {
		products, degraded := deps.Catalog.Products(c.Request().Context())
		featured := make([]catalog.Product, 0, len(products))
		for _, p := range products {
			if p.Featured {
				featured = append(featured, p)
			}
		}
		return c.Render(http.StatusOK, "home.html", echo.Map{
			"Title":    deps.Config.AppName,
			"Featured": featured,
			"Degraded": degraded,
		})
	})

	e.GET("/products", func(c echo.Context) error {
		filters := catalog.FiltersFromQuery(c.QueryParams())
		field, desc := catalog.SortFromQuery(c.QueryParams())
		page, _ := strconv.Atoi(c.QueryParam("page"))

		result, degraded := deps.Catalog.List(c.Request().Context(), filters, field, desc, page)
		return c.Render(http.StatusOK, "products.html", echo.Map{
			"Title":    "Produtos",
			"Page":     result,
			"Filters":  filters,
			"Degraded": degraded,
		})
	})

	e.GET("/products/:handle", func(c echo.Context) error {
		p, err := deps.Catalog.ProductByHandle(c.Request().Context(), c.Param("handle"))
		if err != nil {
			return c.Render(http.StatusBadGateway, "404.html", echo.Map{"Title": "Erro"})
		}
		if p == nil {
			return c.Render(http.StatusNotFound, "404.html", echo.Map{"Title": "Produto não encontrado"})
		}
		saved := deps.Wishlist != nil && deps.Wishlist.Contains(p.ID)
		return c.Render(http.StatusOK, "product.html", echo.Map{
			"Title":      p.Name,
			"Product":    p,
			"InWishlist": saved,
		})
	})

	e.GET("/cart", func(c echo.Context) error {
		return c.Render(http.StatusOK, "cart.html", echo.Map{
			"Title":   "Carrinho",
			"Summary": deps.Cart.Summary(),
		})
	})

	e.GET("/wishlist", func(c echo.Context) error {
		products, err := deps.Wishlist.Products()
		if err != nil {
			products = nil
		}
		return c.Render(http.StatusOK, "wishlist.html", echo.Map{
			"Title":    "Favoritos",
			"Products": products,
		})
	})

	e.GET("/compare", func(c echo.Context) error {
		s := api.ResolveSession(c, deps.Sessions)
		var items []catalog.Product
		s.Do(func(s *session.Session) { items = s.Compare.Items })
		return c.Render(http.StatusOK, "compare.html", echo.Map{
			"Title": "Comparar",
			"Items": items,
		})
	})

	e.GET("/checkout", func(c echo.Context) error {
		sum := deps.Cart.Summary()
		if sum.ItemCount == 0 {
			return c.Redirect(http.StatusFound, "/cart")
		}
		return c.Render(http.StatusOK, "checkout.html", echo.Map{
			"Title":   "Finalizar Compra",
			"Summary": sum,
		})
	})

	e.GET("/login", func(c echo.Context) error {
		return c.Render(http.StatusOK, "login.html", echo.Map{"Title": "Entrar"})
	})

	e.GET("/account", func(c echo.Context) error {
		return c.Render(http.StatusOK, "account.html", echo.Map{"Title": "Minha Conta"})
	})

	e.GET("/about", func(c echo.Context) error {
		return c.Render(http.StatusOK, "about.html", echo.Map{"Title": "Sobre a Ótica Isis"})
	})

	e.GET("/*", func(c echo.Context) error {
		return c.Render(http.StatusNotFound, "404.html", echo.Map{"Title": "Página não encontrada"})
	})
}
