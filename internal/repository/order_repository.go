package repository

import (
	"context"

	"agarwood/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	// 新しい順に最大 limit 件
	ListByUserID(ctx context.Context, userID string, limit int) ([]model.Order, error)
	// 他人の注文も ErrNotFound
	FindByIDAndUserID(ctx context.Context, orderID, userID string) (model.Order, error)
}
