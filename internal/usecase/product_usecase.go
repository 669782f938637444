package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

const (
	defaultProductLimit = 20
	maxProductLimit     = 100
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	idGen       IDGenerator
	clock       Clock
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, idGen IDGenerator, clock Clock) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

// GET /productsの入力
type ListProductsInput struct {
	Category string
	Featured *bool
	Search   string
	Skip     int
	Limit    int
}

// POST /products の入力
type CreateProductInput struct {
	Name          string                   `json:"name"`
	Description   string                   `json:"description"`
	Price         int64                    `json:"price"`
	OriginalPrice *int64                   `json:"original_price"`
	Category      string                   `json:"category"`
	ImageURL      string                   `json:"image_url"`
	Images        []string                 `json:"images"`
	Variations    []model.ProductVariation `json:"variations"`
	InStock       *bool                    `json:"in_stock"`
	StockQuantity int64                    `json:"stock_quantity"`
	Featured      bool                     `json:"featured"`
	Rating        *float64                 `json:"rating"`
	ReviewsCount  int64                    `json:"reviews_count"`
	Tags          []string                 `json:"tags"`
}

// PUT /products/:id の入力。null/未指定の項目は変更しない
type UpdateProductInput struct {
	Name          model.Optional[string]                   `json:"name"`
	Description   model.Optional[string]                   `json:"description"`
	Price         model.Optional[int64]                    `json:"price"`
	OriginalPrice model.Optional[int64]                    `json:"original_price"`
	Category      model.Optional[string]                   `json:"category"`
	ImageURL      model.Optional[string]                   `json:"image_url"`
	Images        model.Optional[[]string]                 `json:"images"`
	Variations    model.Optional[[]model.ProductVariation] `json:"variations"`
	InStock       model.Optional[bool]                     `json:"in_stock"`
	StockQuantity model.Optional[int64]                    `json:"stock_quantity"`
	Featured      model.Optional[bool]                     `json:"featured"`
	Rating        model.Optional[float64]                  `json:"rating"`
	ReviewsCount  model.Optional[int64]                    `json:"reviews_count"`
	Tags          model.Optional[[]string]                 `json:"tags"`
}

func (in UpdateProductInput) empty() bool {
	return !in.Name.Set && !in.Description.Set && !in.Price.Set && !in.OriginalPrice.Set &&
		!in.Category.Set && !in.ImageURL.Set && !in.Images.Set && !in.Variations.Set &&
		!in.InStock.Set && !in.StockQuantity.Set && !in.Featured.Set && !in.Rating.Set &&
		!in.ReviewsCount.Set && !in.Tags.Set
}

// 一覧（skip/limit付き）
func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if in.Skip < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if in.Limit == 0 {
		in.Limit = defaultProductLimit
	}
	if in.Limit < 0 || in.Limit > maxProductLimit {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	products, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Category: strings.TrimSpace(in.Category),
		Featured: in.Featured,
		Search:   strings.TrimSpace(in.Search),
		Skip:     in.Skip,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for i := range products {
		products[i].FillEmpty()
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	p.FillEmpty()
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if err := validatePrices(in.Price, in.Variations); err != nil {
		return model.Product{}, err
	}

	now := u.clock.Now()
	p := model.Product{
		ID:            u.idGen.NewID(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		ImageURL:      in.ImageURL,
		Images:        in.Images,
		Variations:    in.Variations,
		InStock:       true,
		StockQuantity: in.StockQuantity,
		Featured:      in.Featured,
		Rating:        5.0,
		ReviewsCount:  in.ReviewsCount,
		Tags:          in.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	p.FillEmpty()
	p.NormalizePrice()

	if err := u.productRepo.Create(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Update は指定された項目だけ変更し、価格を最安バリエーションに揃え直す。
func (u *ProductUsecase) Update(ctx context.Context, id string, in UpdateProductInput) (model.Product, error) {
	if in.empty() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	in.Name.ApplyTo(&p.Name)
	in.Description.ApplyTo(&p.Description)
	in.Price.ApplyTo(&p.Price)
	if v, ok := in.OriginalPrice.Get(); ok {
		p.OriginalPrice = &v
	}
	in.Category.ApplyTo(&p.Category)
	in.ImageURL.ApplyTo(&p.ImageURL)
	in.Images.ApplyTo(&p.Images)
	in.Variations.ApplyTo(&p.Variations)
	in.InStock.ApplyTo(&p.InStock)
	in.StockQuantity.ApplyTo(&p.StockQuantity)
	in.Featured.ApplyTo(&p.Featured)
	in.Rating.ApplyTo(&p.Rating)
	in.ReviewsCount.ApplyTo(&p.ReviewsCount)
	in.Tags.ApplyTo(&p.Tags)

	if err := validatePrices(p.Price, p.Variations); err != nil {
		return model.Product{}, err
	}
	p.FillEmpty()
	p.NormalizePrice()
	p.UpdatedAt = u.clock.Now()

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) Categories(ctx context.Context) ([]string, error) {
	cats, err := u.productRepo.Categories(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cats, nil
}

// Seed は商品が1件も無いときだけサンプル商品を入れる。返り値はメッセージ
func (u *ProductUsecase) Seed(ctx context.Context) (string, error) {
	n, err := u.productRepo.Count(ctx)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return fmt.Sprintf("Database already has %d products", n), nil
	}

	samples, err := sampleProducts()
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "seed data error")
	}

	now := u.clock.Now()
	for i := range samples {
		samples[i].ID = u.idGen.NewID()
		samples[i].CreatedAt = now
		samples[i].UpdatedAt = now
		samples[i].FillEmpty()
		samples[i].NormalizePrice()
	}

	if err := u.productRepo.CreateBulk(ctx, samples); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return fmt.Sprintf("Successfully seeded %d products", len(samples)), nil
}

func validatePrices(price int64, variations []model.ProductVariation) error {
	if price < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	for _, v := range variations {
		if v.Price < 0 || v.StockQuantity < 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid variation")
		}
	}
	return nil
}
