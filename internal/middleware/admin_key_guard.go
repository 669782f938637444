package middleware

import (
	"crypto/subtle"
	"net/http"

	"agarwood/internal/logging"

	"github.com/labstack/echo/v4"
)

const HeaderAdminKey = "X-Admin-Key"

//X-Admin-Key が設定値と一致するか確認します。
//key が空なら誰でも通す

func AdminKeyGuard(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return next(c)
			}

			got := c.Request().Header.Get(HeaderAdminKey)
			if got == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("admin key required"))
			}

			//一致しなければ拒否
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				logging.Security(c, "admin.key_rejected", nil)
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			return next(c)
		}
	}
}
