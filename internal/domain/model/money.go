package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// 金額・数量が int64 に収まらないとき
var (
	ErrQuantityTooLarge = errors.New("quantity too large")
	ErrAmountTooLarge   = errors.New("amount too large")
)

// 掛け算（溢れたら false）
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// 足し算（溢れたら false）
func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// LineSubtotal は 価格×数量
func LineSubtotal(price, quantity int64) (int64, error) {
	v, ok := mulInt64(price, quantity)
	if !ok {
		return 0, ErrAmountTooLarge
	}
	return v, nil
}

// AddAmount は金額の合算
func AddAmount(a, b int64) (int64, error) {
	v, ok := addInt64(a, b)
	if !ok {
		return 0, ErrAmountTooLarge
	}
	return v, nil
}

// 2200000.0 のような整数値の小数表記も受ける。端数があればエラー
func wholeNumber(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	// 2^63 ちょうどは int64 に入らない
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%s is not a whole number", n)
	}
	return int64(f), nil
}
