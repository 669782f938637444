package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=PaymentMethod -linecomment

// 支払い方法。JSONでは "cod" / "bank_transfer"
type PaymentMethod int

const (
	PaymentMethodUnknown      PaymentMethod = iota // unknown
	PaymentMethodCOD                               // cod
	PaymentMethodBankTransfer                      // bank_transfer
)

var ErrUnknownPaymentMethod = errors.New("unknown payment_method")

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range []PaymentMethod{PaymentMethodCOD, PaymentMethodBankTransfer} {
		if m.String() == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodBankTransfer
}

func (m PaymentMethod) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPaymentMethod, int(m))
	}
	return []byte(m.String()), nil
}

func (m *PaymentMethod) UnmarshalText(b []byte) error {
	v, err := ParsePaymentMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// DBには文字列で保存
func (m PaymentMethod) Value() (driver.Value, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPaymentMethod, int(m))
	}
	return m.String(), nil
}

func (m *PaymentMethod) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return m.UnmarshalText([]byte(v))
	case []byte:
		return m.UnmarshalText(v)
	default:
		return fmt.Errorf("payment_method: unsupported scan type %T", src)
	}
}
