package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// カートの明細。追加時点の価格・名前・画像を保存する
type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int64  `json:"quantity" bson:"quantity"`
	Price     int64  `json:"price" bson:"price"`
	Name      string `json:"name" bson:"name"`
	ImageURL  string `json:"image_url" bson:"image_url"`
}

// 1ユーザーにつき1つ。明細はJSONで1行にまとめて保存
type Cart struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id" bson:"id"`
	UserID      *string    `gorm:"type:uuid;uniqueIndex" json:"user_id" bson:"user_id"`
	Items       []CartItem `gorm:"serializer:json;type:jsonb;not null" json:"items" bson:"items"`
	TotalAmount int64      `gorm:"not null" json:"total_amount" bson:"total_amount"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at" bson:"updated_at"`
}

// まだ保存していない空カート
func NewCart(id, userID string, now time.Time) Cart {
	return Cart{
		ID:        id,
		UserID:    &userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem は同じ商品なら数量だけ足す（価格スナップショットは最初のまま）。
// 数量や合計が溢れるときはカートを変えずにエラー
func (c *Cart) AddItem(item CartItem) error {
	items := append([]CartItem{}, c.Items...)
	merged := false
	for i := range items {
		if items[i].ProductID != item.ProductID {
			continue
		}
		q, ok := addInt64(items[i].Quantity, item.Quantity)
		if !ok {
			return ErrQuantityTooLarge
		}
		items[i].Quantity = q
		merged = true
		break
	}
	if !merged {
		items = append(items, item)
	}
	return c.replaceItems(items)
}

// SetQuantity は数量を上書きする。0以下なら明細ごと消す。
// 明細が無ければ false
func (c *Cart) SetQuantity(productID string, quantity int64) (bool, error) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		items := append([]CartItem{}, c.Items...)
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		return true, c.replaceItems(items)
	}
	return false, nil
}

// 減らすだけなので溢れない
func (c *Cart) RemoveItem(productID string) bool {
	found, _ := c.SetQuantity(productID, 0)
	return found
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// total_amount は毎回明細から計算し直す
func (c *Cart) Recalculate() error {
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	total, err := SumItems(c.Items)
	if err != nil {
		return err
	}
	c.TotalAmount = total
	return nil
}

// 合計が計算できたときだけ差し替える
func (c *Cart) replaceItems(items []CartItem) error {
	total, err := SumItems(items)
	if err != nil {
		return err
	}
	c.Items = items
	c.TotalAmount = total
	return nil
}

// SumItems は明細の合計（溢れたら ErrAmountTooLarge）
func SumItems(items []CartItem) (int64, error) {
	var total int64
	for _, it := range items {
		sub, err := LineSubtotal(it.Price, it.Quantity)
		if err != nil {
			return 0, err
		}
		if total, err = AddAmount(total, sub); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// 数値は整数のみ。ただし 2200000.0 のような表記は受ける
func (it *CartItem) UnmarshalJSON(b []byte) error {
	type alias CartItem
	var raw struct {
		alias
		Quantity json.Number `json:"quantity"`
		Price    json.Number `json:"price"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	q, err := wholeNumber(raw.Quantity)
	if err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	p, err := wholeNumber(raw.Price)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*it = CartItem(raw.alias)
	it.Quantity = q
	it.Price = p
	return nil
}

// 保存値を共有しないようにコピー
func (c Cart) Clone() Cart {
	out := c
	out.Items = append([]CartItem{}, c.Items...)
	if c.UserID != nil {
		uid := *c.UserID
		out.UserID = &uid
	}
	return out
}
