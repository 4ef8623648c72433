package middleware

import (
	"net/http"

	"callbell/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const (
	corsAllowMethods = "POST, OPTIONS"
	corsAllowHeaders = "content-type, authorization"
)

// CORS adds the browser headers to every response and answers any OPTIONS
// request with 200, whatever the path.
func CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set(echo.HeaderAccessControlAllowOrigin, "*")
		header.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
		header.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)

		if c.Request().Method == http.MethodOptions {
			return response.OK(c)
		}

		return next(c)
	}
}
