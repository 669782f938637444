package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=OrderStatus -linecomment

type OrderStatus int

const (
	OrderStatusUnknown    OrderStatus = iota // unknown
	OrderStatusPending                       // pending
	OrderStatusConfirmed                     // confirmed
	OrderStatusProcessing                    // processing
	OrderStatusShipped                       // shipped
	OrderStatusDelivered                     // delivered
	OrderStatusCancelled                     // cancelled
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

func ParseOrderStatus(s string) (OrderStatus, error) {
	for st := OrderStatusPending; st <= OrderStatusCancelled; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return OrderStatusUnknown, fmt.Errorf("%w: %q", ErrUnknownOrderStatus, s)
}

func (s OrderStatus) Valid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCancelled
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrderStatus, int(s))
	}
	return []byte(s.String()), nil
}

func (s *OrderStatus) UnmarshalText(b []byte) error {
	v, err := ParseOrderStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrderStatus, int(s))
	}
	return s.String(), nil
}

func (s *OrderStatus) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("order status: unsupported scan type %T", src)
	}
}
