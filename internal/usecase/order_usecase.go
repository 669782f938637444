package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"

	"github.com/google/uuid"
)

// 一覧は最大100件
const orderListLimit = 100

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	idGen  IDGenerator
	clock  Clock
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, idGen IDGenerator, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, idGen: idGen, clock: clock}
}

// 注文作成の入力。Items の価格はクライアント申告のまま使う
type CreateOrderInput struct {
	Items           []model.CartItem
	PaymentMethod   model.PaymentMethod
	CustomerInfo    map[string]string
	ShippingAddress map[string]string
	Notes           string
}

// カートから注文するときの入力（明細はカートから取る）
type CheckoutInput struct {
	PaymentMethod   model.PaymentMethod
	CustomerInfo    map[string]string
	ShippingAddress map[string]string
	Notes           string
}

// CreateOrder は明細を確定して保存する。userID が空ならゲスト注文。
// ログイン時は住所の補完とカート削除まで同じトランザクションで行う
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (model.Order, error) {
	if err := validateOrderInput(in.PaymentMethod, in.Items); err != nil {
		return model.Order{}, err
	}

	order, err := u.buildOrder(userID, in.Items, CheckoutInput{
		PaymentMethod:   in.PaymentMethod,
		CustomerInfo:    in.CustomerInfo,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
	})
	if err != nil {
		return model.Order{}, overflowError(err)
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return u.persist(ctx, r, userID, order)
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// CheckoutCart は保存済みカートの明細（追加時点の価格）で注文する。
func (u *OrderUsecase) CheckoutCart(ctx context.Context, userID string, in CheckoutInput) (model.Order, error) {
	if userID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if !in.PaymentMethod.Valid() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	var order model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if cart.IsEmpty() {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		order, err = u.buildOrder(userID, cart.Items, in)
		if err != nil {
			return overflowError(err)
		}
		return u.persist(ctx, r, userID, order)
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// ListOrders は自分の注文を新しい順に返す。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	orders, err := u.orders.ListByUserID(ctx, userID, orderListLimit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// GetOrder は他人の注文なら404。
func (u *OrderUsecase) GetOrder(ctx context.Context, userID, orderID string) (model.Order, error) {
	if userID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	o, err := u.orders.FindByIDAndUserID(ctx, orderID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// 数量0は小計0の明細として通す。負数は弾く
func validateOrderInput(pm model.PaymentMethod, items []model.CartItem) error {
	if !pm.Valid() {
		return NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}
	for _, it := range items {
		if it.Quantity < 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.Price < 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid price")
		}
	}
	subtotal, err := model.SumItems(items)
	if err != nil {
		return overflowError(err)
	}
	if _, err := model.AddAmount(subtotal, model.ShippingFee); err != nil {
		return overflowError(err)
	}
	return nil
}

// 明細スナップショットと金額を確定
func (u *OrderUsecase) buildOrder(userID string, lines []model.CartItem, in CheckoutInput) (model.Order, error) {
	now := u.clock.Now()

	items := make([]model.OrderItem, 0, len(lines))
	var subtotal int64
	for _, it := range lines {
		oi, err := model.NewOrderItem(it)
		if err != nil {
			return model.Order{}, err
		}
		items = append(items, oi)
		if subtotal, err = model.AddAmount(subtotal, oi.Subtotal); err != nil {
			return model.Order{}, err
		}
	}
	total, err := model.AddAmount(subtotal, model.ShippingFee)
	if err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		ID:              u.idGen.NewID(),
		OrderNumber:     NewOrderNumber(now),
		Items:           items,
		Subtotal:        subtotal,
		ShippingFee:     model.ShippingFee,
		TotalAmount:     total,
		PaymentMethod:   in.PaymentMethod,
		Status:          model.OrderStatusPending,
		CustomerInfo:    copyMap(in.CustomerInfo),
		ShippingAddress: copyMap(in.ShippingAddress),
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if userID != "" {
		uid := userID
		order.UserID = &uid
	}
	return order, nil
}

// 保存→住所補完→カート削除
func (u *OrderUsecase) persist(ctx context.Context, r repo.TxRepos, userID string, order model.Order) error {
	if err := r.Orders().Create(ctx, order); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if userID == "" {
		return nil
	}

	if err := backfillAddress(ctx, r.Users(), userID, order.ShippingAddress, order.CreatedAt); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := r.Carts().DeleteByUserID(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// プロフィールの住所が未登録のときだけ注文の住所で埋める（最初の注文が勝つ）
func backfillAddress(ctx context.Context, users repo.UserRepository, userID string, addr map[string]string, now time.Time) error {
	user, err := users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !user.Incomplete() {
		return nil
	}
	if !user.FillFrom(addr) {
		return nil
	}
	user.UpdatedAt = now
	return users.Update(ctx, user)
}

// ORD-YYYYMMDD-XXXXXXXX（UTC日付 + uuidの先頭8桁）
func NewOrderNumber(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(hex.EncodeToString(id[:4])))
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
