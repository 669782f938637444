package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// カートは user_id ごとに1ドキュメントで、読み出し→変更→丸ごと保存（後勝ち）。
type CartUsecase struct {
	carts    repo.CartRepository
	products repo.ProductRepository
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewCartUsecase(
	carts repo.CartRepository,
	products repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
) *CartUsecase {
	return &CartUsecase{
		carts:    carts,
		products: products,
		idGen:    idGen,
		clock:    clock,
	}
}

type AddCartInput struct {
	ProductID string
	Quantity  int64
}

// GetCart はカート取得（無ければ保存せずに空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.carts.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.NewCart(u.idGen.NewID(), userID, u.clock.Now()), nil
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

// AddItem はカートに追加（同一商品は数量加算、価格は最初の追加時のまま）。
func (u *CartUsecase) AddItem(ctx context.Context, userID string, in AddCartInput) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック
	p, err := u.products.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 無ければ作る
	now := u.clock.Now()
	cart, err := u.carts.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		cart = model.NewCart(u.idGen.NewID(), userID, now)
	} else if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := cart.AddItem(p.Snapshot(in.Quantity)); err != nil {
		return model.Cart{}, overflowError(err)
	}
	cart.UpdatedAt = now

	if err := u.carts.Save(ctx, cart); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

// UpdateItemQuantity は数量を上書き（0以下なら削除）。
func (u *CartUsecase) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int64) (model.Cart, error) {
	return u.mutate(ctx, userID, func(c *model.Cart) (bool, error) {
		return c.SetQuantity(productID, quantity)
	})
}

// 明細削除
func (u *CartUsecase) RemoveItem(ctx context.Context, userID, productID string) (model.Cart, error) {
	return u.mutate(ctx, userID, func(c *model.Cart) (bool, error) {
		return c.RemoveItem(productID), nil
	})
}

// ClearCart はカートごと消す（無くても成功）。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.carts.DeleteByUserID(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 既存カートの明細を変えて保存する。fn が false なら明細が無い
func (u *CartUsecase) mutate(ctx context.Context, userID string, fn func(c *model.Cart) (bool, error)) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.carts.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	found, err := fn(&cart)
	if err != nil {
		return model.Cart{}, overflowError(err)
	}
	if !found {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "Item not found in cart")
	}
	cart.UpdatedAt = u.clock.Now()

	if err := u.carts.Save(ctx, cart); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

// 桁あふれは入力の問題として400
func overflowError(err error) error {
	switch {
	case errors.Is(err, model.ErrQuantityTooLarge):
		return NewHTTPError(http.StatusBadRequest, "quantity too large")
	case errors.Is(err, model.ErrAmountTooLarge):
		return NewHTTPError(http.StatusBadRequest, "amount too large")
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}
