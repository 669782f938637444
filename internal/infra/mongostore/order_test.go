package mongostore

import (
	"testing"
	"time"

	"agarwood/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOrderDoc_RoundTripThroughBSON(t *testing.T) {
	uid := "u1"
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	o := model.Order{
		ID:              "o1",
		UserID:          &uid,
		OrderNumber:     "ORD-20250304-ABCDEF12",
		Items:           []model.OrderItem{{ProductID: "p1", Quantity: 2, Price: 100, Subtotal: 200}},
		Subtotal:        200,
		ShippingFee:     model.ShippingFee,
		TotalAmount:     30200,
		PaymentMethod:   model.PaymentMethodBankTransfer,
		Status:          model.OrderStatusPending,
		CustomerInfo:    map[string]string{"name": "An"},
		ShippingAddress: map[string]string{"city": "HCM"},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	raw, err := bson.Marshal(toOrderDoc(o))
	require.NoError(t, err)

	//保存形式は文字列
	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "bank_transfer", m["payment_method"])
	assert.Equal(t, "pending", m["status"])

	var d orderDoc
	require.NoError(t, bson.Unmarshal(raw, &d))
	got, err := d.toModel()
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestOrderDoc_GuestUserIDIsNull(t *testing.T) {
	raw, err := bson.Marshal(toOrderDoc(model.Order{ID: "o1", PaymentMethod: model.PaymentMethodCOD, Status: model.OrderStatusPending}))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	v, ok := m["user_id"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestOrderDoc_RejectsUnknownPaymentMethod(t *testing.T) {
	_, err := orderDoc{PaymentMethod: "paypal", Status: "pending"}.toModel()
	assert.ErrorIs(t, err, model.ErrUnknownPaymentMethod)
}
