package server

import (
	"agarwood/internal/config"
	"agarwood/internal/handler"
	auth "agarwood/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// すべて /api 配下
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, verifier auth.TokenVerifier) {
	api := e.Group("/api")

	api.GET("/", handler.Hello)

	h.Product.RegisterRoutes(api)
	h.AdminProduct.RegisterRoutes(api, cfg.AdminAPIKey)
	h.Cart.RegisterRoutes(api, verifier)
	h.Order.RegisterRoutes(api, verifier)
	h.Auth.RegisterRoutes(api, verifier)
	h.Contact.RegisterRoutes(api, cfg.AdminAPIKey)
}
