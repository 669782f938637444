package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"agarwood/internal/domain/model"
	"agarwood/internal/infra/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductUsecase(s *memstore.Store) *ProductUsecase {
	return NewProductUsecase(s.Products(), &seqIDGen{prefix: "prod"}, newClock())
}

func TestProductUsecase_Seed(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	uc := newProductUsecase(s)

	msg, err := uc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Successfully seeded 8 products", msg)

	//2回目は入れない
	msg, err = uc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Database already has 8 products", msg)

	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Vòng Tay", "Trầm Khối", "Nhang Trầm", "Bộ Sưu Tập", "Trầm Bột"}, cats)
}

func TestProductUsecase_SeedPricesFollowVariations(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	uc := newProductUsecase(s)

	_, err := uc.Seed(ctx)
	require.NoError(t, err)

	all, err := uc.List(ctx, ListProductsInput{Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, 8)
	for _, p := range all {
		if len(p.Variations) == 0 {
			continue
		}
		lowest := p.Variations[0].Price
		for _, v := range p.Variations {
			lowest = min(lowest, v.Price)
		}
		assert.Equal(t, lowest, p.Price, p.Name)
	}
}

func TestProductUsecase_ListFilters(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	uc := newProductUsecase(s)
	_, err := uc.Seed(ctx)
	require.NoError(t, err)

	featured := true
	tests := []struct {
		name string
		in   ListProductsInput
		want int
	}{
		{name: "default limit", in: ListProductsInput{}, want: 8},
		{name: "category", in: ListProductsInput{Category: "Vòng Tay"}, want: 3},
		{name: "featured", in: ListProductsInput{Featured: &featured}, want: 5},
		{name: "search is case insensitive", in: ListProductsInput{Search: "vòng"}, want: 4},
		{name: "skip", in: ListProductsInput{Skip: 6}, want: 2},
		{name: "limit", in: ListProductsInput{Limit: 2}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.List(ctx, tt.in)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestProductUsecase_ListRejectsBadPaging(t *testing.T) {
	uc := newProductUsecase(memstore.New())

	_, err := uc.List(context.Background(), ListProductsInput{Skip: -1})
	assertStatus(t, err, http.StatusBadRequest)
	_, err = uc.List(context.Background(), ListProductsInput{Limit: 101})
	assertStatus(t, err, http.StatusBadRequest)
	_, err = uc.List(context.Background(), ListProductsInput{Limit: -5})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestProductUsecase_CreateDefaults(t *testing.T) {
	uc := newProductUsecase(memstore.New())

	p, err := uc.Create(context.Background(), CreateProductInput{
		Name:     "Nhang Nụ",
		Price:    999,
		Category: "Nhang Trầm",
		Variations: []model.ProductVariation{
			{Size: "L", Price: 500000},
			{Size: "S", Price: 250000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "prod-1", p.ID)
	assert.Equal(t, int64(250000), p.Price)
	assert.True(t, p.InStock)
	assert.Equal(t, 5.0, p.Rating)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, []string{}, p.Tags)

	got, err := uc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProductUsecase_CreateValidation(t *testing.T) {
	uc := newProductUsecase(memstore.New())

	_, err := uc.Create(context.Background(), CreateProductInput{Category: "x"})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid name")
	_, err = uc.Create(context.Background(), CreateProductInput{Name: "x"})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid category")
	_, err = uc.Create(context.Background(), CreateProductInput{Name: "x", Category: "y", Price: -1})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid price")
}

func TestProductUsecase_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	uc := newProductUsecase(s)
	p, err := uc.Create(ctx, CreateProductInput{Name: "Vòng", Description: "gỗ", Price: 100, Category: "Vòng Tay"})
	require.NoError(t, err)

	var in UpdateProductInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Vòng mới","description":null,"featured":true}`), &in))

	got, err := uc.Update(ctx, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Vòng mới", got.Name)
	assert.Equal(t, "gỗ", got.Description)
	assert.True(t, got.Featured)
	assert.Equal(t, int64(100), got.Price)

	//バリエーションを入れたら価格も揃う
	in = UpdateProductInput{Variations: model.Some([]model.ProductVariation{{Size: "M", Price: 70}})}
	got, err = uc.Update(ctx, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(70), got.Price)
}

func TestProductUsecase_UpdateErrors(t *testing.T) {
	uc := newProductUsecase(memstore.New())

	_, err := uc.Update(context.Background(), "missing", UpdateProductInput{})
	assertHTTPError(t, err, http.StatusBadRequest, "No fields to update")

	_, err = uc.Update(context.Background(), "missing", UpdateProductInput{Name: model.Some("x")})
	assertHTTPError(t, err, http.StatusNotFound, "Product not found")
}

func TestProductUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	uc := newProductUsecase(s)
	p := seedProduct(t, s, "p1", 100)

	require.NoError(t, uc.Delete(ctx, p.ID))

	_, err := uc.Get(ctx, p.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Product not found")
	err = uc.Delete(ctx, p.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Product not found")
}
