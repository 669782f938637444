package handler

import (
	"errors"
	"net/http"

	"agarwood/internal/logging"
	"agarwood/internal/usecase"
	auth "agarwood/internal/usecase/auth_usecase"
	"agarwood/internal/validator"

	"github.com/creasty/defaults"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			logging.Error(c, "request.failed", err, nil)
		}
		return c.JSON(he.Status, ErrorResponse{Detail: he.Message})
	}
	if ve, ok := validator.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: ve.Message})
	}

	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Email already registered"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		logging.Security(c, "auth.login_failed", nil)
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Incorrect email or password"})
	case errors.Is(err, auth.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Could not validate credentials"})
	}

	//500
	logging.Error(c, "request.failed", err, nil)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
}

// /products の公開API
type ProductHandler struct {
	uc      *usecase.ProductUsecase
	decoder *schema.Decoder
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return &ProductHandler{uc: uc, decoder: dec}
}

// GET /products のクエリ
type productListQuery struct {
	Category string `schema:"category"`
	Featured *bool  `schema:"featured"`
	Search   string `schema:"search"`
	Skip     int    `schema:"skip"`
	Limit    int    `schema:"limit" default:"20"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/categories", h.categories)
	g.GET("/categories", h.categories)
	g.GET("/products/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	var q productListQuery
	if err := h.decoder.Decode(&q, c.QueryParams()); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid query"})
	}
	if err := defaults.Set(&q); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		Category: q.Category,
		Featured: q.Featured,
		Search:   q.Search,
		Skip:     q.Skip,
		Limit:    q.Limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) categories(c echo.Context) error {
	cats, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, CategoriesResponse{Categories: cats})
}
