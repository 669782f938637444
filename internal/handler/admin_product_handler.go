package handler

import (
	"net/http"

	"agarwood/internal/logging"
	"agarwood/internal/middleware"
	"agarwood/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SuccessResponse は { message: string } の形
type SuccessResponse struct {
	Message string `json:"message"`
}

// 商品の登録・更新・削除・初期データ投入
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// adminを登録（ADMIN_API_KEY が空なら素通し）
func (h *AdminProductHandler) RegisterRoutes(g *echo.Group, adminKey string) {
	guard := middleware.AdminKeyGuard(adminKey)

	g.POST("/products", h.createProduct, guard)
	g.POST("/products/seed", h.seed, guard)
	g.PUT("/products/:id", h.updateProduct, guard)
	g.DELETE("/products/:id", h.deleteProduct, guard)
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	p, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	logging.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	var req usecase.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}

	logging.Audit(c, "product.update", map[string]any{"product_id": p.ID})
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	logging.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted successfully"})
}

func (h *AdminProductHandler) seed(c echo.Context) error {
	msg, err := h.uc.Seed(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: msg})
}

//middleware.AuthJWT が c.Set("user_id", string) した値を取り出す

func getUserIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return "", false
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
