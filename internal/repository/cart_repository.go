package repository

import (
	"context"

	"agarwood/internal/domain/model"
)

// カートは user_id ごとに1つ。明細ごと丸ごと読み書きする
type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (model.Cart, error)
	// user_id で upsert
	Save(ctx context.Context, cart model.Cart) error
	// 無くてもエラーにしない
	DeleteByUserID(ctx context.Context, userID string) error
}
