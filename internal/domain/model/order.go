package model

import "time"

// 送料は固定
const ShippingFee int64 = 30000

// 注文明細。作成後は変更しない
type OrderItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int64  `json:"quantity" bson:"quantity"`
	Price     int64  `json:"price" bson:"price"`
	Name      string `json:"name" bson:"name"`
	ImageURL  string `json:"image_url" bson:"image_url"`
	Subtotal  int64  `json:"subtotal" bson:"subtotal"`
}

// NewOrderItem は小計が溢れるなら ErrAmountTooLarge
func NewOrderItem(it CartItem) (OrderItem, error) {
	sub, err := LineSubtotal(it.Price, it.Quantity)
	if err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Name:      it.Name,
		ImageURL:  it.ImageURL,
		Subtotal:  sub,
	}, nil
}

// user_id が nil ならゲスト注文
type Order struct {
	ID              string            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          *string           `gorm:"type:uuid;index" json:"user_id"`
	OrderNumber     string            `gorm:"type:varchar(32);not null;index" json:"order_number"`
	Items           []OrderItem       `gorm:"serializer:json;type:jsonb;not null" json:"items"`
	Subtotal        int64             `gorm:"not null" json:"subtotal"`
	ShippingFee     int64             `gorm:"not null" json:"shipping_fee"`
	TotalAmount     int64             `gorm:"not null" json:"total_amount"`
	PaymentMethod   PaymentMethod     `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status          OrderStatus       `gorm:"type:varchar(20);not null;index" json:"status"`
	CustomerInfo    map[string]string `gorm:"serializer:json;type:jsonb;not null" json:"customer_info"`
	ShippingAddress map[string]string `gorm:"serializer:json;type:jsonb;not null" json:"shipping_address"`
	Notes           string            `gorm:"type:text;not null;default:''" json:"notes"`
	CreatedAt       time.Time         `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null" json:"updated_at"`
}

func (o Order) IsGuest() bool {
	return o.UserID == nil
}

// OwnedBy はログインユーザーの注文かどうか
func (o Order) OwnedBy(userID string) bool {
	return o.UserID != nil && *o.UserID == userID
}

func (o Order) Clone() Order {
	out := o
	out.Items = append([]OrderItem{}, o.Items...)
	out.CustomerInfo = cloneMap(o.CustomerInfo)
	out.ShippingAddress = cloneMap(o.ShippingAddress)
	if o.UserID != nil {
		uid := *o.UserID
		out.UserID = &uid
	}
	return out
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
