package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod_JSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    PaymentMethod
		wantErr bool
	}{
		{raw: `"cod"`, want: PaymentMethodCOD},
		{raw: `"bank_transfer"`, want: PaymentMethodBankTransfer},
		{raw: `"paypal"`, wantErr: true},
		{raw: `"unknown"`, wantErr: true},
		{raw: `""`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var m PaymentMethod
			err := json.Unmarshal([]byte(tt.raw), &m)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)

			b, err := json.Marshal(m)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, string(b))
		})
	}
}

func TestPaymentMethod_MarshalUnknownFails(t *testing.T) {
	_, err := json.Marshal(PaymentMethodUnknown)
	assert.Error(t, err)
}

func TestOrderStatus_String(t *testing.T) {
	assert.Equal(t, "pending", OrderStatusPending.String())
	assert.Equal(t, "cancelled", OrderStatusCancelled.String())
	assert.Equal(t, "OrderStatus(42)", OrderStatus(42).String())

	for st := OrderStatusPending; st <= OrderStatusCancelled; st++ {
		got, err := ParseOrderStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	_, err := ParseOrderStatus("PAID")
	assert.ErrorIs(t, err, ErrUnknownOrderStatus)
}

func TestEnums_Scan(t *testing.T) {
	var m PaymentMethod
	require.NoError(t, m.Scan([]byte("bank_transfer")))
	assert.Equal(t, PaymentMethodBankTransfer, m)
	assert.Error(t, m.Scan(12))

	var s OrderStatus
	require.NoError(t, s.Scan("shipped"))
	assert.Equal(t, OrderStatusShipped, s)

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "shipped", v)
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	var in struct {
		Name  Optional[string]   `json:"name"`
		Phone Optional[string]   `json:"phone"`
		Tags  Optional[[]string] `json:"tags"`
		Empty Optional[string]   `json:"empty"`
	}
	err := json.Unmarshal([]byte(`{"name":"An","phone":null,"empty":""}`), &in)
	require.NoError(t, err)

	name, ok := in.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "An", name)
	assert.False(t, in.Phone.Set)
	assert.False(t, in.Tags.Set)
	//空文字は「設定あり」
	assert.True(t, in.Empty.Set)

	dst := "old"
	in.Phone.ApplyTo(&dst)
	assert.Equal(t, "old", dst)
	in.Name.ApplyTo(&dst)
	assert.Equal(t, "An", dst)
}
