package accountapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/account"
	"github.com/oticaisis/storefront/api"
)

func init() {
	api.RegisterModule(RegisterAccountRoutes)
}

func RegisterAccountRoutes(g *echo.Group, deps *api.Deps) {
	ag := g.Group("/account")

	// POST /api/account/signup
	ag.POST("/signup", func(c echo.Context) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"fullName"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Email == "" || body.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
		}
		if err := deps.Account.SignUp(c.Request().Context(), body.Email, body.Password, body.FullName); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"registered": true})
	})

	// POST /api/account/signin
	ag.POST("/signin", func(c echo.Context) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		sess, err := deps.Account.SignIn(c.Request().Context(), body.Email, body.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, sess)
	})

	// POST /api/account/signout
	ag.POST("/signout", func(c echo.Context) error {
		token := bearer(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
		}
		if err := deps.Account.SignOut(c.Request().Context(), token); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"signedOut": true})
	})

	// GET /api/account/session – who the token belongs to
	ag.GET("/session", func(c echo.Context) error {
		token := bearer(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
		}
		user, err := deps.Account.Session(c.Request().Context(), token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, user)
	})

	// POST /api/account/recover – password recovery email
	ag.POST("/recover", func(c echo.Context) error {
		var body struct {
			Email string `json:"email"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := deps.Account.ResetPassword(c.Request().Context(), body.Email); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"sent": true})
	})

	// PUT /api/account/profile
	ag.PUT("/profile", func(c echo.Context) error {
		token := bearer(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
		}
		var profile account.Profile
		if err := c.Bind(&profile); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := deps.Account.UpdateProfile(c.Request().Context(), token, profile); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"updated": true})
	})
}

func bearer(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
