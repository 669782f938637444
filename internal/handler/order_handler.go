package handler

import (
	"net/http"

	"agarwood/internal/domain/model"
	"agarwood/internal/logging"
	"agarwood/internal/middleware"
	"agarwood/internal/usecase"
	auth "agarwood/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// POST /orders の入力。items の価格はクライアントの申告値
type OrderCreateRequest struct {
	Items           []model.CartItem  `json:"items"`
	PaymentMethod   string            `json:"payment_method"`
	CustomerInfo    map[string]string `json:"customer_info"`
	ShippingAddress map[string]string `json:"shipping_address"`
	Notes           string            `json:"notes"`
}

// POST /orders/checkout の入力（明細はカートから）
type CheckoutRequest struct {
	PaymentMethod   string            `json:"payment_method"`
	CustomerInfo    map[string]string `json:"customer_info"`
	ShippingAddress map[string]string `json:"shipping_address"`
	Notes           string            `json:"notes"`
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group, verifier auth.TokenVerifier) {
	authMW := middleware.AuthJWT(verifier)

	//注文作成だけゲスト可
	g.POST("/orders", h.create, middleware.OptionalAuthJWT(verifier))
	g.POST("/orders/checkout", h.checkout, authMW)
	g.GET("/orders", h.list, authMW)
	g.GET("/orders/:id", h.detail, authMW)
}

func (h *OrderHandler) create(c echo.Context) error {
	//未ログインなら空文字（ゲスト注文）
	userID, _ := getUserIDFromContext(c)

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}
	if req.Items == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "items is required"})
	}
	if req.CustomerInfo == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "customer_info is required"})
	}
	if req.ShippingAddress == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "shipping_address is required"})
	}
	pm, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid payment_method"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		Items:           req.Items,
		PaymentMethod:   pm,
		CustomerInfo:    req.CustomerInfo,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	logging.Audit(c, "order.create", map[string]any{
		"order_id":     out.ID,
		"order_number": out.OrderNumber,
		"total_amount": out.TotalAmount,
		"guest":        out.IsGuest(),
	})
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}
	pm, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid payment_method"})
	}

	out, err := h.uc.CheckoutCart(c.Request().Context(), userID, usecase.CheckoutInput{
		PaymentMethod:   pm,
		CustomerInfo:    req.CustomerInfo,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	logging.Audit(c, "order.checkout", map[string]any{
		"order_id":     out.ID,
		"order_number": out.OrderNumber,
		"total_amount": out.TotalAmount,
	})
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "unauthorized"})
	}

	out, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "unauthorized"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
